package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gpng/quip-bot/bot"
	"github.com/gpng/quip-bot/cmd/api/config"
	"github.com/gpng/quip-bot/cmd/api/handlers"
	"github.com/gpng/quip-bot/models"
	"github.com/gpng/quip-bot/services/dynamo"
	"github.com/gpng/quip-bot/services/logger"
	"github.com/gpng/quip-bot/services/postgres"
	redisstore "github.com/gpng/quip-bot/services/redis"
	"github.com/gpng/quip-bot/services/secrets"
	"github.com/gpng/quip-bot/services/telegram"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/gocraft/work"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load env vars: %v", err)
	}

	// initialise services
	l := logger.New(cfg.Debug)
	defer l.Sync()

	ctx := context.Background()

	var redisPool *redis.Pool
	if cfg.NeedsRedis() {
		redisPool = redisstore.New(cfg.RedisURL, cfg.RedisPassword)
		defer redisPool.Close()
	}

	secretSource, err := newSecretSource(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialise secret source: %v", err)
	}

	store, err := newQuipStore(ctx, cfg, l, redisPool)
	if err != nil {
		log.Fatalf("failed to initialise quip store: %v", err)
	}

	clients := telegram.NewClients()
	messengers := bot.MessengersFunc(func(token string) (bot.Messenger, error) {
		b, err := clients.Get(token)
		if err != nil {
			return nil, err
		}
		return b, nil
	})

	dispatcher := bot.New(
		bot.Settings{
			AdminID:        cfg.AdminID,
			TokenParameter: cfg.TokenParameter,
			WebhookURL:     cfg.WebhookURL(),
		},
		secretSource,
		messengers,
		store,
		bot.NewRand(time.Now().UnixNano()),
		l,
	)

	var queue handlers.Queue
	if cfg.QueueEnabled {
		queue = work.NewEnqueuer(cfg.RedisNamespace, redisPool)
	}

	h := handlers.New(l, dispatcher, queue)

	if cfg.QueueEnabled {
		pool := work.NewWorkerPool(struct{}{}, uint(cfg.QueueConcurrency), cfg.RedisNamespace, redisPool)
		pool.JobWithOptions(handlers.JobHandleEvent, work.JobOptions{MaxFails: 1}, h.HandleEventJob)
		pool.Start()
		defer pool.Stop()
	}

	if cfg.RegisterWebhookOnStart {
		out := dispatcher.Handle(ctx, models.NewWebhookEvent())
		l.Info("webhook registration attempted",
			zap.String("url", cfg.WebhookURL()),
			zap.Int("diagnostics", len(out.Diagnostics)),
		)
	}

	// initialise main router with basic middlewares, cors settings etc
	router := mainRouter()

	// mount services
	router.Mount("/", h.Routes(cfg.RoutePath))

	l.Info("listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreBackend))
	err = http.ListenAndServe(":"+cfg.Port, router)
	if err != nil {
		l.Error("server stopped", zap.Error(err))
	}
}

func newSecretSource(ctx context.Context, cfg config.Config) (bot.SecretSource, error) {
	switch cfg.SecretBackend {
	case config.SecretKeyring:
		return secrets.NewKeyring(cfg.KeyringService), nil
	case config.SecretSSM:
		return secrets.NewSSM(ctx, cfg.AWSRegion)
	default:
		return secrets.NewEnv(os.LookupEnv), nil
	}
}

func newQuipStore(ctx context.Context, cfg config.Config, l *zap.Logger, redisPool *redis.Pool) (bot.Store, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := postgres.New(l, cfg.DbHost, cfg.DbUser, cfg.DbName, cfg.DbPassword)
		if err != nil {
			return nil, err
		}
		return postgres.NewQuipStore(db, cfg.TableName)
	case config.StoreDynamoDB:
		return dynamo.New(ctx, cfg.AWSRegion, cfg.TableName)
	default:
		return redisstore.NewQuipStore(redisPool, cfg.RedisNamespace, cfg.TableName), nil
	}
}

func mainRouter() chi.Router {
	router := chi.NewRouter()

	// A good base middleware stack
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// stop crawlers
	router.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("User-agent: *\nDisallow: /"))
	})

	return router
}
