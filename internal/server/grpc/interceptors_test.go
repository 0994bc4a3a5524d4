package grpcserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/service"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()

	ctx = peer.NewContext(ctx, &peer.Peer{Addr: fakeAddr{}})

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/pay2alpha.v1.Pay2Alpha/Method"}

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := resp.(string); s != "ok" {
		t.Fatalf("resp mismatch: %v", resp)
	}

	wantErr := errors.New("boom")
	hErr := func(ctx context.Context, req any) (any, error) { return nil, wantErr }
	_, err = ic(ctx, "req", info, hErr)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want original error, got: %v", err)
	}
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/pay2alpha.v1.Pay2Alpha/Panic"}

	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(ctx, "req", info, panicH)
	if err == nil {
		t.Fatalf("expected error from panic")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("want codes.Internal, got: %v", err)
	}
}

func TestRecoverUnary_NoPanicPassThrough(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := RecoverUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/pay2alpha.v1.Pay2Alpha/Ok"}

	h := func(ctx context.Context, req any) (any, error) { return 42, nil }

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.(int) != 42 {
		t.Fatalf("resp mismatch: %v", resp)
	}
}

func TestLoggingUnary_DurationFieldDoesNotBlock(t *testing.T) {
	t.Parallel()

	log := zaptest.NewLogger(t)
	ic := LoggingUnary(log)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: "/pay2alpha.v1.Pay2Alpha/Sleep"}
	h := func(ctx context.Context, req any) (any, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	}

	start := time.Now()
	resp, err := ic(ctx, "req", info, h)
	if err != nil || resp.(string) != "done" {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("duration should reflect handler time")
	}
}

type fakeAuthenticator struct {
	token string
	addr  common.Address
}

var _ service.Authenticator = (*fakeAuthenticator)(nil)

func (f *fakeAuthenticator) Authenticate(token string) (model.Principal, error) {
	if token != f.token {
		return model.Principal{}, errs.ErrAuthenticationFailed
	}
	return model.Principal{Address: f.addr, TokenID: "jti"}, nil
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x00000000000000000000000000000000000000A1")
	ic := AuthUnary(&fakeAuthenticator{token: "good", addr: addr}, []string{"/svc/Public"})

	var seen common.Address
	h := func(ctx context.Context, req any) (any, error) {
		p, ok := PrincipalFromCtx(ctx)
		if ok {
			seen = p.Address
		}
		return "ok", nil
	}
	withMD := func(v string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", v))
	}

	if _, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Public"}, h); err != nil {
		t.Fatalf("public method: %v", err)
	}

	private := &grpc.UnaryServerInfo{FullMethod: "/svc/Private"}
	if _, err := ic(context.Background(), nil, private, h); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without header, got: %v", err)
	}
	if _, err := ic(withMD("Bearer bad"), nil, private, h); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated for bad token, got: %v", err)
	}
	if _, err := ic(withMD("Bearer good"), nil, private, h); err != nil {
		t.Fatalf("good token: %v", err)
	}
	if seen != addr {
		t.Fatalf("principal not propagated: %v", seen)
	}
}

func TestRateLimitUnary_PerPeer(t *testing.T) {
	t.Parallel()

	ic := RateLimitUnary(0.001, 2)
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/M"}
	h := func(ctx context.Context, req any) (any, error) { return nil, nil }

	first := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})
	for i := 0; i < 2; i++ {
		if _, err := ic(first, nil, info, h); err != nil {
			t.Fatalf("call %d within burst: %v", i, err)
		}
	}
	if _, err := ic(first, nil, info, h); status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("want ResourceExhausted, got: %v", err)
	}

	other := peer.NewContext(context.Background(), &peer.Peer{Addr: otherAddr{}})
	if _, err := ic(other, nil, info, h); err != nil {
		t.Fatalf("other peer has its own bucket: %v", err)
	}
}

type otherAddr struct{}

func (otherAddr) Network() string { return "tcp" }
func (otherAddr) String() string  { return "10.1.1.1:4000" }

func TestPeerHost(t *testing.T) {
	t.Parallel()

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})
	if got := peerHost(ctx); got != "127.0.0.1" {
		t.Fatalf("peer host: %q", got)
	}
	if got := peerHost(context.Background()); got != "" {
		t.Fatalf("no peer: %q", got)
	}
}
