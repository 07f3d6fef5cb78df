package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/betslip/iris/adapters/theoddsapi"
	"github.com/betslip/iris/internal/cache"
	"github.com/betslip/iris/internal/config"
	"github.com/betslip/iris/internal/gateway"
	"github.com/betslip/iris/internal/registry"
	"github.com/betslip/iris/internal/server"
	"github.com/betslip/iris/sports/football"
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	// Load configuration from environment; missing ODDS_API_KEY is fatal
	cfg, err := config.New()
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}

	ctx := context.Background()

	// Response cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}

		store = cache.NewRedisStore(redisClient)
		log.Info("connected to Redis cache")
	} else {
		store = cache.NewMemoryStore()
		log.Info("using in-process cache")
	}

	// Upstream adapter
	adapter := theoddsapi.NewClient(
		cfg.Odds.APIKey,
		theoddsapi.WithBaseURL(cfg.Odds.BaseURL),
		theoddsapi.WithTimeout(cfg.Odds.Timeout),
	)

	// Register served sports
	sportRegistry := registry.NewSportRegistry()
	if err := sportRegistry.Register(football.NewNFL()); err != nil {
		log.WithError(err).Fatal("failed to register NFL module")
	}
	if err := sportRegistry.Register(football.NewNCAAF()); err != nil {
		log.WithError(err).Fatal("failed to register CFB module")
	}

	for _, sport := range sportRegistry.GetAll() {
		log.WithFields(logrus.Fields{
			"slug":    sport.GetSlug(),
			"sport":   sport.GetSportKey(),
			"markets": sport.GetFeaturedMarkets(),
		}).Infof("registered %s", sport.GetDisplayName())
	}

	gw := gateway.New(adapter, sportRegistry, store, cfg.Cache.TTL, log)
	srv := server.New(&cfg.HTTP, gw, adapter, log)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown incomplete")
			os.Exit(1)
		}
	}

	log.Info("iris stopped")
}
