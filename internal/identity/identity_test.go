package identity

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestMessage_StringParseRoundTrip(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMessage("localhost", AddressOf(key), 23295, "abcDEF123456", issued)

	text := m.String()
	require.True(t, strings.HasPrefix(text, "localhost wants you to sign in with your Ethereum account:\n0x"))
	require.Contains(t, text, "\n\nPay2Alpha access\n\nURI: https://localhost/login\nVersion: 1\nChain ID: 23295\n")
	require.True(t, strings.HasSuffix(text, "Issued At: 2025-03-01T12:00:00Z"))

	got, err := ParseMessage(text)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestParseMessage_AcceptsBrowserTimestamp(t *testing.T) {
	t.Parallel()

	text := "app.example wants you to sign in with your Ethereum account:\n" +
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed\n\n" +
		"Pay2Alpha access\n\n" +
		"URI: https://app.example/login\n" +
		"Version: 1\n" +
		"Chain ID: 84532\n" +
		"Nonce: n0nce1234\n" +
		"Issued At: 2025-03-01T12:00:00.123Z"
	m, err := ParseMessage(text)
	require.NoError(t, err)
	require.Equal(t, "app.example", m.Domain)
	require.Equal(t, int64(84532), m.ChainID)
	require.Equal(t, 123*time.Millisecond, time.Duration(m.IssuedAt.Nanosecond()))
}

func TestParseMessage_Malformed(t *testing.T) {
	t.Parallel()

	good := NewMessage("localhost", AddressOf(mustKey(t)), 1, "abcdefgh1", time.Now()).String()
	cases := map[string]string{
		"empty":         "",
		"bad header":    strings.Replace(good, "wants you", "would like you", 1),
		"bad address":   strings.Replace(good, "\n0x", "\n0y", 1),
		"short nonce":   strings.Replace(good, "Nonce: abcdefgh1", "Nonce: abc", 1),
		"symbol nonce":  strings.Replace(good, "Nonce: abcdefgh1", "Nonce: abc-defgh", 1),
		"chain":         strings.Replace(good, "Chain ID: 1", "Chain ID: x", 1),
		"extra line":    good + "\nResources:",
		"missing field": strings.Replace(good, "Version: 1\n", "", 1),
		"bad time":      good[:strings.Index(good, "Issued At: ")] + "Issued At: yesterday",
	}
	for name, text := range cases {
		_, err := ParseMessage(text)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: want ErrMalformed, got %v", name, err)
		}
	}
}

func TestSignRecover(t *testing.T) {
	t.Parallel()

	key := mustKey(t)
	text := NewMessage("localhost", AddressOf(key), 23295, "abcdefgh1", time.Now()).String()

	sig, err := SignMessage(key, text)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	require.Contains(t, []byte{27, 28}, sig[64])

	got, err := RecoverAddress(text, sig)
	require.NoError(t, err)
	require.Equal(t, AddressOf(key), got)

	// raw 0/1 recovery id is accepted too
	raw := append([]byte(nil), sig...)
	raw[64] -= 27
	got, err = RecoverAddress(text, raw)
	require.NoError(t, err)
	require.Equal(t, AddressOf(key), got)

	// tampered text recovers someone else
	other, err := RecoverAddress(text+" ", sig)
	require.NoError(t, err)
	require.NotEqual(t, AddressOf(key), other)
}

func TestRecoverAddress_BadInput(t *testing.T) {
	t.Parallel()

	_, err := RecoverAddress("x", []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrBadSignature)

	sig := make([]byte, 65)
	sig[64] = 5
	_, err = RecoverAddress("x", sig)
	require.ErrorIs(t, err, ErrBadSignature)

	_, err = DecodeSignature("not-hex")
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestNewNonce(t *testing.T) {
	t.Parallel()

	a, err := NewNonce()
	require.NoError(t, err)
	b, err := NewNonce()
	require.NoError(t, err)
	require.Len(t, a, nonceLen)
	require.NotEqual(t, a, b)
	require.True(t, validNonce(a))
}

func TestLoadKey(t *testing.T) {
	t.Parallel()

	key := mustKey(t)
	hexKey := hex.EncodeToString(crypto.FromECDSA(key))
	for _, s := range []string{hexKey, "0x" + hexKey} {
		k, err := LoadKey(s)
		require.NoError(t, err)
		require.Equal(t, AddressOf(key), AddressOf(k))
	}
	_, err := LoadKey("zz")
	require.Error(t, err)
}

func mustKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	k, err := crypto.GenerateKey()
	require.NoError(t, err)
	return k
}
