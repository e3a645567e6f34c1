package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"campaign-hub/internal/adapter/auth"
	"campaign-hub/internal/adapter/events"
	"campaign-hub/internal/adapter/http"
	"campaign-hub/internal/adapter/postgres"
	rediscache "campaign-hub/internal/adapter/redis"
	"campaign-hub/internal/adapter/usecase"
	"campaign-hub/internal/config"
	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
	"campaign-hub/internal/db"
	"campaign-hub/internal/metrics"
)

const demoTokenTTL = 24 * time.Hour

// main is the entry point of the campaign service. It loads configuration,
// optionally runs database migrations and the demo seed, wires the stores,
// cache and identity provider into the use case, then starts the HTTP
// server. On SIGINT or SIGTERM it drains in-flight requests and exits.
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return err
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	loc, err := cfg.Campaign.Location()
	if err != nil {
		logger.Error("invalid campaign time zone", slog.Any("error", err))
		return err
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	identity, err := auth.NewJWTProvider(cfg.Auth)
	if err != nil {
		logger.Error("identity provider error", slog.Any("error", err))
		return err
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return err
		}
		logDemoTokens(logger, identity)
	}

	ready := map[string]httpadapter.Check{"postgres": pool.Ping}

	var cache port.ApplicantCache
	if cfg.Redis.Enabled {
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return err
		}
		defer client.Close()
		cache = rediscache.NewApplicantCache(client, cfg.Redis.CacheTTL)
		ready["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	var publisher port.EventPublisher = events.NewLogPublisher(logger)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout)
		if err != nil {
			logger.Error("kafka publisher error", slog.Any("error", err))
			return err
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	svc := usecase.NewCampaignUseCase(
		postgres.NewCampaignRepository(pool),
		postgres.NewApplicationRepository(pool),
		postgres.NewProfileRepository(pool),
		cache,
		logger,
		usecase.Options{MonthlyLimit: cfg.Campaign.MonthlyLimit, Location: loc, Events: publisher},
	)

	opts := httpadapter.Options{
		Metrics:    metrics.New("campaign_hub"),
		RateLimit:  cfg.RateLimit,
		TrustProxy: cfg.HTTP.TrustProxy,
		Ready:      ready,
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
	}
	handler := httpadapter.NewHandler(svc, identity, logger, opts)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// logDemoTokens prints bearer tokens for the seeded users so the API can
// be exercised locally without an external identity service.
func logDemoTokens(logger *slog.Logger, identity *auth.JWTProvider) {
	users := []domain.Identity{{UserID: db.DemoAdvertiserID, Role: "advertiser"}}
	for _, id := range db.DemoInfluencerIDs {
		users = append(users, domain.Identity{UserID: id, Role: "influencer"})
	}
	for _, u := range users {
		token, err := identity.Issue(u, demoTokenTTL)
		if err != nil {
			logger.Warn("demo token not issued", slog.Any("error", err))
			return
		}
		logger.Info("demo token", slog.String("user_id", u.UserID.String()), slog.String("role", u.Role), slog.String("token", token))
	}
}
