package sealer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	pkgcrypto "github.com/and161185/pay2alpha/internal/crypto"
)

var (
	expert = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	client = common.HexToAddress("0x00000000000000000000000000000000000000c1")
)

func newSealer(t *testing.T) *Sealer {
	t.Helper()
	key, err := pkgcrypto.RandBytes(KeyLen)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	s, err := New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew_RejectsBadKey(t *testing.T) {
	t.Parallel()
	if _, err := New(make([]byte, 16)); err == nil {
		t.Fatalf("want error on short key")
	}
}

func TestSealOpen_Roundtrip(t *testing.T) {
	t.Parallel()
	s := newSealer(t)

	pt := []byte("aes key material \x00\x01\x02")
	blob, err := s.Seal(7, expert, client, pt)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(blob, pt) {
		t.Fatalf("ciphertext must not contain plaintext")
	}

	got, err := s.Open(7, expert, client, blob)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, pt) {
		t.Fatalf("roundtrip mismatch")
	}

	blob2, _ := s.Seal(7, expert, client, pt)
	if bytes.Equal(blob, blob2) {
		t.Fatalf("nonce must be random per seal")
	}
}

func TestOpen_RejectsRebinding(t *testing.T) {
	t.Parallel()
	s := newSealer(t)
	blob, _ := s.Seal(1, expert, client, []byte("secret"))

	if _, err := s.Open(2, expert, client, blob); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen on id mismatch, got %v", err)
	}
	if _, err := s.Open(1, client, client, blob); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen on expert mismatch, got %v", err)
	}
	if _, err := s.Open(1, expert, common.Address{}, blob); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen on client mismatch, got %v", err)
	}
	if _, err := newSealer(t).Open(1, expert, client, blob); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen on wrong master key, got %v", err)
	}
	if _, err := s.Open(1, expert, client, blob[:5]); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen on truncated blob, got %v", err)
	}
}
