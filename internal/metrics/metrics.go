// Package metrics exports Prometheus counters for ledger events and RPC traffic.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/and161185/pay2alpha/internal/model"
)

// Collector owns a private registry so tests and multiple servers do not collide.
type Collector struct {
	reg     *prometheus.Registry
	events  *prometheus.CounterVec
	credits *prometheus.CounterVec
	amount  *prometheus.CounterVec
	rpcs    *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "p2a",
			Name:      "ledger_events_total",
			Help:      "Committed ledger and record store events.",
		}, []string{"kind"}),
		credits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "p2a",
			Name:      "ledger_credits_total",
			Help:      "Credits purchased, claimed or refunded.",
		}, []string{"kind"}),
		amount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "p2a",
			Name:      "ledger_amount_total",
			Help:      "Funds moved in the smallest asset unit.",
		}, []string{"kind"}),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "p2a",
			Name:      "grpc_requests_total",
			Help:      "Handled unary RPCs.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "p2a",
			Name:      "grpc_request_duration_seconds",
			Help:      "Unary RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	c.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.events, c.credits, c.amount, c.rpcs, c.latency,
	)
	return c
}

// Observe counts a committed event.
func (c *Collector) Observe(ev model.Event) {
	k := string(ev.Kind)
	c.events.WithLabelValues(k).Inc()
	if ev.Credits > 0 {
		c.credits.WithLabelValues(k).Add(float64(ev.Credits))
	}
	if ev.Amount > 0 {
		c.amount.WithLabelValues(k).Add(float64(ev.Amount))
	}
}

// UnaryInterceptor counts RPCs by method and code. Methods in skip are not observed at all.
func (c *Collector) UnaryInterceptor(skip ...string) grpc.UnaryServerInterceptor {
	ignored := make(map[string]struct{}, len(skip))
	for _, m := range skip {
		ignored[m] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if _, ok := ignored[info.FullMethod]; ok {
			return next(ctx, req)
		}
		start := time.Now()
		resp, err := next(ctx, req)
		c.rpcs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		c.latency.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}
