package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/esports-tournament/application/admin"
	identityapp "github.com/muhammadheryan/esports-tournament/application/identity"
	tournamentapp "github.com/muhammadheryan/esports-tournament/application/tournament"
	"github.com/muhammadheryan/esports-tournament/cmd/config"
	redisclient "github.com/muhammadheryan/esports-tournament/cmd/redis"
	_ "github.com/muhammadheryan/esports-tournament/docs"
	identityRepo "github.com/muhammadheryan/esports-tournament/repository/identity"
	"github.com/muhammadheryan/esports-tournament/repository/memory"
	redisRepo "github.com/muhammadheryan/esports-tournament/repository/redis"
	tournamentRepo "github.com/muhammadheryan/esports-tournament/repository/tournament"
	txRepo "github.com/muhammadheryan/esports-tournament/repository/tx"
	"github.com/muhammadheryan/esports-tournament/thirdparty/msg91"
	"github.com/muhammadheryan/esports-tournament/thirdparty/rabbitmq"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
	"github.com/muhammadheryan/esports-tournament/thirdparty/storage"
	"github.com/muhammadheryan/esports-tournament/transport"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"go.uber.org/zap"
)

// @title ESPORTS TOURNAMENT API
// @version 1.0
// @description Phone-verified registration for mobile esports tournaments
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}

	if err := run(cfg); err != nil {
		logger.Error("server stopped", zap.Error(err))
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

// run wires and serves the API until a signal arrives or the listener fails.
// Every resource it opens is released on return.
func run(cfg *config.Config) error {
	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("storage", cfg.StorageDriver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var (
		IdentityRepo   identityRepo.IdentityRepository
		TournamentRepo tournamentRepo.TournamentRepository
	)
	switch cfg.StorageDriver {
	case "memory":
		IdentityRepo = memory.NewIdentityStore()
		TournamentRepo = memory.NewTournamentStore()
	default:
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("err close db", zap.Error(err))
			}
		}()

		// Set database connection pool settings
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		IdentityRepo = identityRepo.NewIdentityRepository(db)
		TournamentRepo = tournamentRepo.NewTournamentRepository(db, txRepo.NewTxRepository(db))
	}

	// Redis only throttles OTP traffic; without it the limits are off
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Warn("redis unavailable, OTP throttling disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()
	RedisRepo := redisRepo.NewRepository()

	sender, closeSender, err := newSender(cfg)
	if err != nil {
		return err
	}
	defer closeSender()

	// Initialize application layers
	IdentityApp := identityapp.NewIdentityApp(cfg, IdentityRepo, RedisRepo, sender)
	TournamentApp := tournamentapp.NewTournamentApp(TournamentRepo, IdentityRepo)

	adminOpts := []adminapp.Option{}
	if cfg.Storage.Enabled() {
		archiver, err := storage.NewS3Archiver(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("init export archiver: %w", err)
		}
		adminOpts = append(adminOpts, adminapp.WithArchiver(archiver))
	}
	AdminApp := adminapp.NewAdminApp(cfg, TournamentRepo, IdentityRepo, TournamentApp, adminOpts...)

	if cfg.Auth.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET is empty, admin routes will reject every request")
	}

	httpTransport := transport.NewTransport(cfg, IdentityApp, TournamentApp, AdminApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down server")
	case serveErr = <-serverErr:
		serveErr = fmt.Errorf("serve http: %w", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
	return serveErr
}

// newSender builds the OTP delivery chain: the MSG91 OTP API first, then the
// Flow API either directly or through the durable queue when RabbitMQ is configured.
func newSender(cfg *config.Config) (sms.Sender, func(), error) {
	httpClient := &http.Client{Timeout: cfg.MSG91.Timeout}
	primary := msg91.NewOTPChannel(cfg.MSG91, httpClient)

	if !cfg.RabbitMQ.Enabled() {
		return sms.NewFallbackSender(primary, msg91.NewFlowChannel(cfg.MSG91, httpClient)), func() {}, nil
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		return nil, nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	return sms.NewFallbackSender(primary, publisher), func() {
		if err := publisher.Close(); err != nil {
			logger.Error("err close rabbitmq publisher", zap.Error(err))
		}
	}, nil
}
