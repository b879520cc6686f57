// Command ecoscan-server starts the EcoScan gRPC and HTTP servers.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/archive"
	"github.com/and161185/ecoscan/internal/catalog"
	"github.com/and161185/ecoscan/internal/classifier"
	"github.com/and161185/ecoscan/internal/config"
	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/identity"
	"github.com/and161185/ecoscan/internal/ledger"
	"github.com/and161185/ecoscan/internal/limiter"
	"github.com/and161185/ecoscan/internal/migrate"
	"github.com/and161185/ecoscan/internal/pipeline"
	"github.com/and161185/ecoscan/internal/repository/postgres"
	grpcserver "github.com/and161185/ecoscan/internal/server/grpc"
	"github.com/and161185/ecoscan/internal/server/httpapi"
	"github.com/and161185/ecoscan/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves gRPC plus HTTP until signalled.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	env, err := config.Environment(".env")
	if err != nil {
		logger.Fatal("read .env", zap.Error(err))
	}
	cfg, err := config.LoadServer(os.Args[1:], env)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.GRPCAddr),
		zap.String("httpAddr", cfg.HTTPAddr),
		zap.String("classifier", cfg.Classifier),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	// Repositories
	pointsRepo := postgres.NewPointsRepo(db)
	scanRepo := postgres.NewScanRepo(db)
	locRepo := postgres.NewLocationRepo(db)
	counterRepo := postgres.NewCounterRepo(db)
	profileRepo := postgres.NewProfileRepo(db)

	var lim limiter.Limiter = limiter.Nop{}
	if cfg.MaxScans > 0 {
		lim = limiter.NewPG(db.Pool, cfg.ScanWindow, cfg.MaxScans, cfg.BlockFor)
	}

	cls, closeCls, err := newClassifier(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("classifier", zap.Error(err))
	}
	defer closeCls()

	var arch archive.Archiver = archive.Nop{}
	if cfg.S3Bucket != "" {
		s3a, err := archive.NewS3(ctx, archive.S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3Endpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
		if err != nil {
			logger.Fatal("s3 archive", zap.Error(err))
		}
		arch = s3a
	}

	// Connectivity
	oracle := connectivity.NewOracle(true)
	if target := cfg.ProbeTarget(); target != "" {
		probe := connectivity.NewProbe(oracle, target, cfg.ProbeInterval, 3*time.Second, logger)
		go probe.Run(ctx)
	}

	hub := httpapi.NewHub(logger)
	led := ledger.New(scanRepo, pointsRepo, logger,
		ledger.WithNotifier(hub),
		ledger.WithLocation(cfg.Location()),
	)
	pipe := pipeline.New(cls, catalog.Default, oracle, logger, pipeline.WithTimeout(cfg.ScanTimeout))

	// Services
	scanSvc := service.NewScanService(pipe, led, arch, counterRepo, lim, logger, service.WithCatalog(catalog.Default))
	pointsSvc := service.NewPointsService(pointsRepo, scanRepo)
	dirSvc := service.NewDirectoryService(catalog.Default, locRepo, counterRepo, profileRepo)

	verifier := identity.NewVerifier([]byte(cfg.JWTKey))

	// gRPC server with interceptors
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary(verifier),
		),
	}
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	} else {
		logger.Warn("serving gRPC without TLS")
	}
	s := grpc.NewServer(opts...)
	pb.RegisterEcoScanServer(s, grpcserver.New(scanSvc, pointsSvc, dirSvc))

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	httpSrv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(httpapi.Deps{
			Hub:      hub,
			Verifier: verifier,
			Upstream: oracle,
			DB:       db,
			Log:      logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("listening (gRPC)", zap.String("addr", cfg.GRPCAddr))
		errCh <- s.Serve(lis)
	}()
	go func() {
		logger.Info("listening (HTTP)", zap.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = httpSrv.Shutdown(shCtx)
		cancel()

		// graceful shutdown
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func newClassifier(ctx context.Context, cfg *config.Server, log *zap.Logger) (classifier.Classifier, func(), error) {
	if cfg.Classifier == "gemini" {
		g, err := classifier.NewGemini(ctx, classifier.GeminiConfig{
			ProjectID:       cfg.GeminiProject,
			Location:        cfg.GeminiLocation,
			Model:           cfg.GeminiModel,
			CredentialsFile: cfg.GeminiCredentials,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return g, func() { _ = g.Close() }, nil
	}
	o := classifier.NewOpenAI(classifier.OpenAIConfig{
		Endpoint: cfg.OpenAIEndpoint,
		APIKey:   cfg.OpenAIKey,
		Timeout:  cfg.CallTimeout,
	}, nil, log)
	return o, func() {}, nil
}
