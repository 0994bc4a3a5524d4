package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/crypto/sealer"
	"github.com/and161185/pay2alpha/internal/limiter"
	"github.com/and161185/pay2alpha/internal/repository/memory"
	grpcserver "github.com/and161185/pay2alpha/internal/server/grpc"
	"github.com/and161185/pay2alpha/internal/service"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "pay2alpha")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken(tokenFile{AccessToken: "tok", Address: "0xabc", ExpiresAt: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tf, err := loadToken()
	if err != nil || tf.AccessToken != "tok" || tf.Address != "0xabc" {
		t.Fatalf("loadToken: %+v err=%v", tf, err)
	}
	st, err := os.Stat(tokenPath())
	if err != nil || st.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode: %v %v", st, err)
	}
	if err := saveToken(tokenFile{AccessToken: "tok2", ExpiresAt: time.Now().Add(-time.Minute)}); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_loadKey_FlagThenEnv(t *testing.T) {
	k, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := ethcrypto.PubkeyToAddress(k.PublicKey)
	hexKey := hexutil.Encode(ethcrypto.FromECDSA(k))

	t.Setenv("P2A_PRIVATE_KEY", "")
	if _, err := loadKey(""); err == nil {
		t.Fatalf("expected error without key")
	}
	got, err := loadKey(hexKey)
	if err != nil || ethcrypto.PubkeyToAddress(got.PublicKey) != want {
		t.Fatalf("flag key: %v", err)
	}
	t.Setenv("P2A_PRIVATE_KEY", hexKey[2:])
	got, err = loadKey("")
	if err != nil || ethcrypto.PubkeyToAddress(got.PublicKey) != want {
		t.Fatalf("env key: %v", err)
	}
}

func Test_readAll_File(t *testing.T) {
	t.Parallel()

	tmp := filepath.Join(t.TempDir(), "f.txt")
	_ = os.WriteFile(tmp, []byte("hello"), 0o600)
	b, err := readAll(tmp)
	if err != nil || string(b) != "hello" {
		t.Fatalf("readAll(file): %q %v", b, err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printJSON(&buf, map[string]any{"a": 1})

	var m map[string]any
	if json.Unmarshal(buf.Bytes(), &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_printProto_UsesProtoNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printProto(&buf, &pb.BalanceResponse{Balance: 7})

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("printProto produced invalid json: %s", buf.String())
	}
	// int64 travels as a string; zero values are still printed
	if m["balance"] != "7" || m["allowance"] != "0" {
		t.Fatalf("unexpected fields: %v", m)
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T", secure: true}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS when secure")
	}
	if (bearerCreds{token: "T"}).RequireTransportSecurity() {
		t.Fatalf("plaintext bearerCreds must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}
	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}
	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}

func Test_run_LocalCommands(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := &app{out: &buf, now: time.Now}

	if err := a.run(context.Background(), "nope", nil); !errors.Is(err, errUnknownCommand) {
		t.Fatalf("want errUnknownCommand, got %v", err)
	}
	if err := a.run(context.Background(), "version", nil); err != nil || !strings.HasPrefix(buf.String(), "p2a ") {
		t.Fatalf("version: %q %v", buf.String(), err)
	}

	buf.Reset()
	if err := a.run(context.Background(), "keygen", nil); err != nil {
		t.Fatalf("keygen: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("keygen output: %v", err)
	}
	k, err := loadKey(out["private_key"])
	if err != nil || ethcrypto.PubkeyToAddress(k.PublicKey).Hex() != out["address"] {
		t.Fatalf("keygen key/address mismatch: %v", out)
	}
}

/************ end to end over bufconn ************/

type cliAccount struct {
	hexKey string
	addr   common.Address
}

func newCLIAccount(t *testing.T) cliAccount {
	t.Helper()
	k, err := ethcrypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return cliAccount{hexKey: hexutil.Encode(ethcrypto.FromECDSA(k)), addr: ethcrypto.PubkeyToAddress(k.PublicKey)}
}

func startServer(t *testing.T, admin common.Address) *app {
	t.Helper()
	log := zaptest.NewLogger(t)
	st := memory.NewStore()
	custody := common.HexToAddress("0x000000000000000000000000000000000000C0DE")

	auth := service.NewAuthService(st, limiter.NewMemory(time.Minute, 5, time.Minute), service.AuthConfig{
		SignKey: []byte("cli-test-sign-key-0123456789abcdef"), TokenTTL: 5 * time.Minute,
		Domain: "localhost", ChainID: 23295, MaxAge: 5 * time.Minute, ClockSkew: 30 * time.Second,
	}, log)
	sl, err := sealer.New(bytes.Repeat([]byte{3}, sealer.KeyLen))
	if err != nil {
		t.Fatalf("sealer: %v", err)
	}
	srv := grpcserver.New(auth,
		service.NewLedgerService(st, custody, log, nil),
		service.NewAssetService(st, custody, admin, log),
		service.NewRecordService(st, service.NewGate(st, auth), sl, admin, log, nil),
	)

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcserver.RecoverUnary(log),
		grpcserver.AuthUnary(auth, grpcserver.PublicMethods),
	))
	pb.RegisterPay2AlphaServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(func() { gs.Stop(); _ = lis.Close() })

	return &app{
		out: io.Discard,
		now: time.Now,
		dial: func(ctx context.Context, bearer string) (*grpc.ClientConn, error) {
			opts := []grpc.DialOption{
				grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			}
			if bearer != "" {
				opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer}))
			}
			//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
			return grpc.DialContext(ctx, "bufnet", opts...)
		},
	}
}

// exec runs one command and returns its stdout.
func exec(t *testing.T, a *app, cmd string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	a.out = &buf
	if err := a.run(context.Background(), cmd, args); err != nil {
		t.Fatalf("%s %v: %v", cmd, args, err)
	}
	return buf.String()
}

func Test_CLI_E2E(t *testing.T) {
	_ = withTmpConfig(t)
	t.Setenv("P2A_PRIVATE_KEY", "")

	admin, expert, client := newCLIAccount(t), newCLIAccount(t), newCLIAccount(t)
	a := startServer(t, admin.addr)

	exec(t, a, "login", "-key", expert.hexKey)
	exec(t, a, "register", "-name", "alice", "-price", "10")
	exec(t, a, "create-record", "-client", client.addr.Hex(), "-pointer", "bafy", "-secret", "s3cret")

	exec(t, a, "login", "-key", admin.hexKey)
	exec(t, a, "mint", "-to", client.addr.Hex(), "-amount", "500")

	exec(t, a, "login", "-key", client.hexKey)
	exec(t, a, "approve", "-amount", "500")

	var rec pb.PurchaseRecord
	if err := protojson.Unmarshal([]byte(exec(t, a, "buy", "-expert", expert.addr.Hex(), "-credits", "4")), &rec); err != nil {
		t.Fatalf("buy output: %v", err)
	}
	if rec.GetTotalAmountPaid() != 40 || rec.GetCreditsGranted() != 4 {
		t.Fatalf("purchase: %v", &rec)
	}
	if got := exec(t, a, "secret", "-id", "0"); got != "s3cret" {
		t.Fatalf("secret: %q", got)
	}

	var settled pb.SettleResponse
	if err := protojson.Unmarshal([]byte(exec(t, a, "refund", "-id", "0", "-count", "1")), &settled); err != nil || settled.GetPayout() != 10 {
		t.Fatalf("refund: %v %v", &settled, err)
	}

	var bal pb.BalanceResponse
	if err := protojson.Unmarshal([]byte(exec(t, a, "balance")), &bal); err != nil || bal.GetBalance() != 470 {
		t.Fatalf("balance: %v %v", &bal, err)
	}

	var experts pb.GetExpertsResponse
	if err := protojson.Unmarshal([]byte(exec(t, a, "experts")), &experts); err != nil ||
		len(experts.GetProfiles()) != 1 || experts.GetProfiles()[0].GetDisplayName() != "alice" {
		t.Fatalf("experts: %v %v", &experts, err)
	}

	var evs pb.ListEventsResponse
	if err := protojson.Unmarshal([]byte(exec(t, a, "events")), &evs); err != nil || len(evs.GetEvents()) != 3 {
		t.Fatalf("events: %v %v", &evs, err)
	}

	// the client is not the administrator
	err := a.run(context.Background(), "set-rofl-app", []string{"-address", client.addr.Hex()})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", err)
	}
}
