// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tripforge/internal/agents"
	"tripforge/internal/ai"
	"tripforge/internal/config"
	httptransport "tripforge/internal/http"
	"tripforge/internal/infra"
	"tripforge/internal/modules/credits"
	"tripforge/internal/modules/trips"
	"tripforge/internal/pipeline"
	"tripforge/internal/places"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()
	logger := zl.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatalw("connect postgres", "err", err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatalw("gemini init", "err", err)
	}

	searcher, err := places.NewService(cfg.Places.MapsKey, logger)
	if err != nil {
		logger.Fatalw("places init", "err", err)
	}

	pipelineSvc := pipeline.NewService(
		searcher,
		agents.NewHotelAgent(gemini),
		agents.NewRestaurantAgent(gemini),
		agents.NewAttractionAgent(gemini),
		agents.NewMasterAgent(gemini),
		pipeline.Limits{
			Restaurants: cfg.Limits.Restaurants,
			Attractions: cfg.Limits.Attractions,
			Hotels:      cfg.Limits.Hotels,
		},
		logger,
	)

	tripsSvc := trips.NewService(trips.NewStore(redisClient))
	creditsSvc := credits.NewService(credits.NewStore(dbPool))

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Pipeline: pipelineSvc,
		Trips:    tripsSvc,
		Credits:  creditsSvc,
		Log:      logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Infow("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server", "err", err)
	}
}
