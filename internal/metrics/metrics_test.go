package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/pay2alpha/internal/model"
)

func TestObserve(t *testing.T) {
	t.Parallel()
	c := New()
	c.Observe(model.Event{Kind: model.EventPurchase, Credits: 10, Amount: 30})
	c.Observe(model.Event{Kind: model.EventClaim, Credits: 3, Amount: 9})
	c.Observe(model.Event{Kind: model.EventRecordCreated})

	require.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues("purchase")))
	require.Equal(t, 10.0, testutil.ToFloat64(c.credits.WithLabelValues("purchase")))
	require.Equal(t, 9.0, testutil.ToFloat64(c.amount.WithLabelValues("claim")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues("record_created")))
}

func TestUnaryInterceptor(t *testing.T) {
	t.Parallel()
	c := New()
	icp := c.UnaryInterceptor("/svc/Hidden")
	ctx := context.Background()

	ok := func(context.Context, any) (any, error) { return "ok", nil }
	denied := func(context.Context, any) (any, error) { return nil, status.Error(codes.PermissionDenied, "no") }

	_, _ = icp(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/A"}, ok)
	_, _ = icp(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/A"}, denied)
	_, _ = icp(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Hidden"}, ok)

	require.Equal(t, 1.0, testutil.ToFloat64(c.rpcs.WithLabelValues("/svc/A", "OK")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.rpcs.WithLabelValues("/svc/A", "PermissionDenied")))
	require.Equal(t, 2, testutil.CollectAndCount(c.rpcs))
}

func TestHandler(t *testing.T) {
	t.Parallel()
	c := New()
	c.Observe(model.Event{Kind: model.EventRefund, Credits: 1, Amount: 1})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	require.True(t, strings.Contains(string(body), `p2a_ledger_events_total{kind="refund"} 1`))
}
