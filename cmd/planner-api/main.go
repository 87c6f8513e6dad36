// README: Entry point; loads config, wires the provider and cache, starts the HTTP server.
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

	"github.com/sankalp69/AI-travel-planner/internal/ai"
	"github.com/sankalp69/AI-travel-planner/internal/config"
	httptransport "github.com/sankalp69/AI-travel-planner/internal/http"
	"github.com/sankalp69/AI-travel-planner/internal/modules/trip"
	logx "github.com/sankalp69/AI-travel-planner/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.Opts{Production: cfg.IsProduction()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing or invalid credential disables generation for the process
	// lifetime; the service still starts and answers 503 on /plan_trip/.
	var provider ai.TextGenerator
	switch {
	case !cfg.Configured():
		logx.Error().Str("provider", cfg.Provider).Msg("generation credential missing; generation disabled")
	case cfg.Provider == config.ProviderOpenAI:
		provider = ai.NewOpenAIProvider(cfg.OpenAIAPIKey)
	default:
		gemini, initErr := ai.NewGeminiProvider(ctx, cfg.GeminiAPIKey)
		if initErr != nil {
			logx.Error().Err(initErr).Msg("gemini init failed; generation disabled")
		} else {
			defer gemini.Close()
			provider = gemini
		}
	}
	if provider != nil {
		logx.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("generation backend configured")
	}

	var cache *trip.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache = trip.NewCache(rdb, cfg.CacheTTL)
		logx.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("plan cache enabled")
	}

	planner := trip.NewService(ai.NewClient(provider, cfg.Provider), cfg.Model, cache)
	server := &http.Server{Addr: cfg.HTTPAddr, Handler: httptransport.NewRouter(planner)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logx.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logx.Fatal().Err(err).Msg("server error")
	}
}
