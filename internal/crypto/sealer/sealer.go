// Package sealer encrypts chat record secrets at rest with per-record keys.
package sealer

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	pkgcrypto "github.com/and161185/pay2alpha/internal/crypto"
)

// KeyLen is the required master key length.
const KeyLen = chacha20poly1305.KeySize

// ErrOpen is returned when a blob fails authentication or is truncated.
var ErrOpen = errors.New("sealed secret cannot be opened")

// Sealer binds each ciphertext to the record it belongs to.
type Sealer struct {
	master []byte
}

// New constructs a sealer from a 32-byte master key.
func New(master []byte) (*Sealer, error) {
	if len(master) != KeyLen {
		return nil, errors.New("sealer: master key must be 32 bytes")
	}
	return &Sealer{master: append([]byte(nil), master...)}, nil
}

// recordKey derives the per-record key via HKDF-SHA256 using the record id as info.
func (s *Sealer) recordKey(id int64) ([]byte, error) {
	r := hkdf.New(sha256.New, s.master, nil, []byte("chat-record:"+strconv.FormatInt(id, 10)))
	key := make([]byte, KeyLen)
	_, err := r.Read(key)
	return key, err
}

// aad = id || expert || client
func aad(id int64, expert, client common.Address) []byte {
	out := make([]byte, 0, 8+2*common.AddressLength)
	var v [8]byte
	binary.BigEndian.PutUint64(v[:], uint64(id))
	out = append(out, v[:]...)
	out = append(out, expert.Bytes()...)
	out = append(out, client.Bytes()...)
	return out
}

// Seal encrypts secret for record id with a random nonce prefix.
func (s *Sealer) Seal(id int64, expert, client common.Address, secret []byte) ([]byte, error) {
	key, err := s.recordKey(id)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce, err := pkgcrypto.RandBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(secret)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, secret, aad(id, expert, client))...)
	return out, nil
}

// Open decrypts a blob produced by Seal for the same record.
func (s *Sealer) Open(id int64, expert, client common.Address, blob []byte) ([]byte, error) {
	if len(blob) < chacha20poly1305.NonceSizeX {
		return nil, ErrOpen
	}
	key, err := s.recordKey(id)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := blob[:chacha20poly1305.NonceSizeX]
	pt, err := aead.Open(nil, nonce, blob[chacha20poly1305.NonceSizeX:], aad(id, expert, client))
	if err != nil {
		return nil, ErrOpen
	}
	return pt, nil
}
