package service

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/pay2alpha/internal/crypto/sealer"
	"github.com/and161185/pay2alpha/internal/identity"
	"github.com/and161185/pay2alpha/internal/limiter"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository/memory"
)

const (
	testDomain  = "localhost"
	testChainID = 23295
)

var (
	custody = common.HexToAddress("0x000000000000000000000000000000000000C0DE")
	signKey = []byte("test-sign-key-0123456789abcdef")
)

type account struct {
	key  *ecdsa.PrivateKey
	addr common.Address
}

func newAccount(t *testing.T) account {
	t.Helper()
	k, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return account{key: k, addr: ethcrypto.PubkeyToAddress(k.PublicKey)}
}

// signIn builds and signs a fresh message for acc issued at `at`.
func signIn(t *testing.T, acc account, at time.Time) (string, string) {
	t.Helper()
	nonce, err := identity.NewNonce()
	if err != nil {
		t.Fatalf("nonce: %v", err)
	}
	text := identity.NewMessage(testDomain, acc.addr, testChainID, nonce, at).String()
	sig, err := identity.SignMessage(acc.key, text)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return text, hexutil.Encode(sig)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []model.Event
}

var _ Observer = (*recordingObserver)(nil)

func (o *recordingObserver) Observe(ev model.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

// env wires every service on one memory store.
type env struct {
	store   *memory.Store
	auth    *AuthServiceImpl
	ledger  *LedgerServiceImpl
	assets  *AssetServiceImpl
	records *RecordServiceImpl
	obs     *recordingObserver
	admin   account
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := zaptest.NewLogger(t)
	st := memory.NewStore()
	admin := newAccount(t)
	obs := &recordingObserver{}

	auth := NewAuthService(st, limiter.NewMemory(time.Minute, 5, time.Minute), AuthConfig{
		SignKey:   signKey,
		TokenTTL:  5 * time.Minute,
		Domain:    testDomain,
		ChainID:   testChainID,
		MaxAge:    5 * time.Minute,
		ClockSkew: 30 * time.Second,
	}, log)
	sl, err := sealer.New(bytes.Repeat([]byte{7}, sealer.KeyLen))
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	return &env{
		store:   st,
		auth:    auth,
		ledger:  NewLedgerService(st, custody, log, obs),
		assets:  NewAssetService(st, custody, admin.addr, log),
		records: NewRecordService(st, NewGate(st, auth), sl, admin.addr, log, obs),
		obs:     obs,
		admin:   admin,
	}
}

// fund mints and approves amount for addr.
func (e *env) fund(t *testing.T, addr common.Address, amount int64) {
	t.Helper()
	ctx := context.Background()
	if err := e.assets.Mint(ctx, e.admin.addr, addr, amount); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := e.assets.Approve(ctx, addr, amount); err != nil {
		t.Fatalf("approve: %v", err)
	}
}

func (e *env) login(t *testing.T, acc account) string {
	t.Helper()
	msg, sig := signIn(t, acc, time.Now())
	tok, _, err := e.auth.Login(context.Background(), msg, sig, "10.0.0.1:5000")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return tok.AccessToken
}

func (e *env) balance(t *testing.T, addr common.Address) int64 {
	t.Helper()
	b, err := e.assets.Balance(context.Background(), addr)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	return b
}
