// Command p2a-server starts the Pay2Alpha gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/config"
	"github.com/and161185/pay2alpha/internal/crypto"
	"github.com/and161185/pay2alpha/internal/crypto/sealer"
	"github.com/and161185/pay2alpha/internal/limiter"
	"github.com/and161185/pay2alpha/internal/metrics"
	"github.com/and161185/pay2alpha/internal/migrate"
	"github.com/and161185/pay2alpha/internal/repository"
	"github.com/and161185/pay2alpha/internal/repository/memory"
	"github.com/and161185/pay2alpha/internal/repository/postgres"
	grpcserver "github.com/and161185/pay2alpha/internal/server/grpc"
	"github.com/and161185/pay2alpha/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, prepares storage, and serves the API until a signal arrives.
func main() {
	cfgPath := flag.String("config", "", "YAML config path (default: $CONFIG_PATH, then env only)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// no logger yet
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}

	logger := newLogger(cfg.Server.Dev)
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Server.Addr),
		zap.String("storage", cfg.Database.Storage),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, lim, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer closeStore()

	master, err := crypto.DeriveMasterKey([]byte(cfg.Seal.Secret), []byte(cfg.Seal.Salt))
	if err != nil {
		logger.Fatal("derive seal key", zap.Error(err))
	}
	sl, err := sealer.New(master)
	if err != nil {
		logger.Fatal("sealer", zap.Error(err))
	}

	admin := cfg.AdminAddress()
	if admin == (common.Address{}) {
		logger.Warn("no administrator configured; mint and set-rofl-app are disabled")
	}
	custody := cfg.CustodyAddress()
	mc := metrics.New()

	// Services
	authSvc := service.NewAuthService(store, lim, service.AuthConfig{
		SignKey:   []byte(cfg.Auth.JWTKey),
		TokenTTL:  cfg.Auth.TokenTTL,
		Domain:    cfg.Auth.Domain,
		ChainID:   cfg.Auth.ChainID,
		MaxAge:    cfg.Auth.MaxAge,
		ClockSkew: cfg.Auth.ClockSkew,
	}, logger.Named("auth"))
	ledgerSvc := service.NewLedgerService(store, custody, logger.Named("ledger"), mc)
	assetSvc := service.NewAssetService(store, custody, admin, logger.Named("asset"))
	recordSvc := service.NewRecordService(store, service.NewGate(store, authSvc), sl, admin, logger.Named("records"), mc)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			// reveals leave no externally observable trace
			mc.UnaryInterceptor(pb.Pay2Alpha_GetSecretKey_FullMethodName),
			grpcserver.RateLimitUnary(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
			grpcserver.AuthUnary(authSvc, grpcserver.PublicMethods),
		),
	}
	if cfg.Server.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLSCert, cfg.Server.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving without TLS (dev)")
	}
	s := grpc.NewServer(opts...)

	app := grpcserver.New(authSvc, ledgerSvc, assetSvc, recordSvc)
	pb.RegisterPay2AlphaServer(s, app)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.Pay2Alpha_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// Metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", mc.Handler())
	ms := &http.Server{Addr: cfg.Server.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()

	go purgeNonces(ctx, authSvc, cfg.Server.PurgeInterval, logger)

	// Listen
	lis, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLSCert != ""))
		errCh <- s.Serve(lis)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(cfg.Server.ShutdownTimeout):
			s.Stop()
		}
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		_ = ms.Shutdown(sctx)
		cancel()
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func newLogger(dev bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// openStorage selects the backend. Postgres is migrated before use.
func openStorage(ctx context.Context, cfg *config.Config) (repository.Store, limiter.Limiter, func(), error) {
	a := cfg.Auth
	if cfg.Database.Storage == config.StorageMemory {
		return memory.NewStore(), limiter.NewMemory(a.LimiterWindow, a.LimiterMaxFails, a.LimiterBlock), func() {}, nil
	}

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		return nil, nil, nil, err
	}
	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, nil, err
	}
	lim := limiter.NewPG(db.Pool, a.LimiterWindow, a.LimiterMaxFails, a.LimiterBlock)
	return postgres.NewStore(db), lim, db.Close, nil
}

// purgeNonces drops expired sign-in nonces until ctx is done.
func purgeNonces(ctx context.Context, auth service.AuthService, every time.Duration, log *zap.Logger) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := auth.PurgeNonces(ctx)
			if err != nil {
				log.Warn("purge nonces", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("purged nonces", zap.Int64("count", n))
			}
		}
	}
}
