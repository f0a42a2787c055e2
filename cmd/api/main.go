package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/snapshot/storefront/docs"
	"github.com/snapshot/storefront/internal/api"
	"github.com/snapshot/storefront/internal/api/handler"
	"github.com/snapshot/storefront/internal/api/middleware"
	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
	"github.com/snapshot/storefront/internal/core/service"
	"github.com/snapshot/storefront/internal/infrastructure/config"
	"github.com/snapshot/storefront/internal/infrastructure/db/mongo"
	"github.com/snapshot/storefront/internal/infrastructure/db/redis"
	"github.com/snapshot/storefront/internal/infrastructure/export"
	"github.com/snapshot/storefront/internal/infrastructure/mail"
	"github.com/snapshot/storefront/internal/infrastructure/queue"
	"github.com/snapshot/storefront/pkg/logger"
)

// @title        SnapShot Storefront API
// @version      1.0
// @description  Camera storefront: accounts, checkout, contact form and admin tools.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{Service: "storefront-api"})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting storefront API")

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	checks := []handler.Check{handler.MongoCheck(db)}

	var limiter middleware.Limiter
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()

		limiter = redis.NewRateLimiter(rdb, "ratelimit", cfg.RateLimit.Requests, cfg.RateLimit.Window)
		checks = append(checks, handler.RedisCheck(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiting enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, rate limiting disabled")
	}

	hasher, err := service.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		return err
	}

	users := mongo.NewUserRepository(db)
	orders := mongo.NewOrderRepository(db)
	contacts := mongo.NewContactRepository(db)

	mailCfg := mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		NotifyTo: cfg.Notify.To,
	}
	var mailer ports.Mailer = mail.NewLogMailer(logger.Component("mail"))
	if mailCfg.Enabled() {
		mailer = mail.NewSMTPMailer(mailCfg)
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, mailer, logger.Component("notify"))
	dispatcher.Start(workerCtx)
	defer func() {
		cancelWorkers()
		dispatcher.Wait()
	}()

	auth := service.NewAuthService(users, hasher, logger.Component("auth"))

	e := api.NewRouter(api.Dependencies{
		Auth:        auth,
		Admin:       service.NewAdminService(auth, users, orders, contacts, export.NewXLSXExporter(), logger.Component("admin")),
		Orders:      service.NewOrderService(orders, logger.Component("orders")),
		Contact:     service.NewContactService(contacts, dispatcher, logger.Component("contact")),
		Catalog:     service.NewCatalogService(domain.DefaultCatalog()),
		Health:      handler.NewHealthHandler(checks...),
		Limiter:     limiter,
		Logger:      logger.Component("http"),
		CORSOrigins: cfg.AllowedOrigins(),
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server exiting")
	return nil
}
