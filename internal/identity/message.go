// Package identity builds and verifies EIP-4361 sign-in messages signed with EIP-191
// personal_sign by an Ethereum account.
package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultStatement is the purpose line of every sign-in message.
const DefaultStatement = "Pay2Alpha access"

// Version is the only supported message version.
const Version = "1"

const (
	headerSuffix = " wants you to sign in with your Ethereum account:"
	nonceLen     = 16
	nonceChars   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrMalformed is returned for any deviation from the canonical layout.
var ErrMalformed = errors.New("malformed sign-in message")

// Message holds the fields of a sign-in message in signing order.
type Message struct {
	Domain    string
	Address   common.Address
	Statement string
	URI       string
	Version   string
	ChainID   int64
	Nonce     string
	IssuedAt  time.Time
}

// NewMessage fills a message with the default statement and login URI for domain.
func NewMessage(domain string, addr common.Address, chainID int64, nonce string, issuedAt time.Time) Message {
	return Message{
		Domain:    domain,
		Address:   addr,
		Statement: DefaultStatement,
		URI:       "https://" + domain + "/login",
		Version:   Version,
		ChainID:   chainID,
		Nonce:     nonce,
		IssuedAt:  issuedAt.UTC(),
	}
}

// String renders the exact text that gets signed.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Domain)
	b.WriteString(headerSuffix)
	b.WriteString("\n")
	b.WriteString(m.Address.Hex())
	b.WriteString("\n\n")
	b.WriteString(m.Statement)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "URI: %s\n", m.URI)
	fmt.Fprintf(&b, "Version: %s\n", m.Version)
	fmt.Fprintf(&b, "Chain ID: %d\n", m.ChainID)
	fmt.Fprintf(&b, "Nonce: %s\n", m.Nonce)
	fmt.Fprintf(&b, "Issued At: %s", m.IssuedAt.Format(time.RFC3339))
	return b.String()
}

// ParseMessage parses the canonical layout produced by String.
func ParseMessage(s string) (Message, error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if len(lines) != 10 {
		return Message{}, fmt.Errorf("%w: want 10 lines, got %d", ErrMalformed, len(lines))
	}
	var m Message

	domain, ok := strings.CutSuffix(lines[0], headerSuffix)
	if !ok || domain == "" || strings.ContainsAny(domain, " \t") {
		return Message{}, fmt.Errorf("%w: header", ErrMalformed)
	}
	m.Domain = domain

	if !common.IsHexAddress(lines[1]) || !strings.HasPrefix(lines[1], "0x") {
		return Message{}, fmt.Errorf("%w: address", ErrMalformed)
	}
	m.Address = common.HexToAddress(lines[1])

	if lines[2] != "" || lines[4] != "" || lines[3] == "" {
		return Message{}, fmt.Errorf("%w: statement block", ErrMalformed)
	}
	m.Statement = lines[3]

	fields := make([]string, 0, 5)
	for i, prefix := range []string{"URI: ", "Version: ", "Chain ID: ", "Nonce: ", "Issued At: "} {
		v, ok := strings.CutPrefix(lines[5+i], prefix)
		if !ok || v == "" {
			return Message{}, fmt.Errorf("%w: %q", ErrMalformed, strings.TrimSuffix(prefix, ": "))
		}
		fields = append(fields, v)
	}
	m.URI, m.Version = fields[0], fields[1]

	chainID, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || chainID <= 0 {
		return Message{}, fmt.Errorf("%w: chain id", ErrMalformed)
	}
	m.ChainID = chainID

	if !validNonce(fields[3]) {
		return Message{}, fmt.Errorf("%w: nonce", ErrMalformed)
	}
	m.Nonce = fields[3]

	ts, err := time.Parse(time.RFC3339, fields[4])
	if err != nil {
		return Message{}, fmt.Errorf("%w: issued at", ErrMalformed)
	}
	m.IssuedAt = ts.UTC()
	return m, nil
}

// NewNonce returns a random alphanumeric nonce.
func NewNonce() (string, error) {
	out := make([]byte, nonceLen)
	max := big.NewInt(int64(len(nonceChars)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = nonceChars[n.Int64()]
	}
	return string(out), nil
}

// validNonce enforces at least 8 alphanumeric characters.
func validNonce(n string) bool {
	if len(n) < 8 || len(n) > 128 {
		return false
	}
	for i := 0; i < len(n); i++ {
		if !strings.ContainsRune(nonceChars, rune(n[i])) {
			return false
		}
	}
	return true
}
