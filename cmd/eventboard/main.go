package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventboard/config"
	_ "eventboard/docs"
	httpdelivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
	"eventboard/internal/repository/memory"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/repository/sqlite"
	"eventboard/internal/services"
)

// @title eventboard API
// @version 1.0
// @description Paginated, filterable, sortable, groupable events view over a latency-simulating in-memory store.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event store: in-memory, seeded with demo data.
	storeOpts := memory.Options{}
	if cfg.SimulateDelays {
		storeOpts = memory.DefaultOptions()
	}
	repo := memory.NewEventRepository(storeOpts)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	repo.Seed(memory.GenerateEvents(rng, cfg.SeedCount))
	logger.Info("event store seeded", "events", cfg.SeedCount, "simulate_delays", cfg.SimulateDelays)

	// Preference store.
	prefsRepo, closeDB, err := openPreferenceStore(ctx, cfg)
	if err != nil {
		logger.Error("open preference store", "driver", cfg.PrefsDriver, "err", err)
		os.Exit(1)
	}
	defer closeDB()
	logger.Info("preference store ready", "driver", cfg.PrefsDriver)

	queryService := services.NewQueryService(repo)

	factory := func(profile string) *services.ViewController {
		return services.NewViewController(queryService, prefsRepo, logger, services.ViewControllerOptions{
			Profile: profile,
		})
	}

	eventController := controllers.NewEventController(logger, repo, queryService)
	viewController := controllers.NewViewSessionController(logger, ctx, factory)

	mux := httpdelivery.NewRouter(eventController, viewController)

	var handler http.Handler = mux
	if cfg.AllowedOrigins != "" {
		handler = middleware.CORS(strings.Split(cfg.AllowedOrigins, ","), handler)
	}
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "err", err)
		}
	}()

	logger.Info("server starting", "addr", server.Addr, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// openPreferenceStore opens the configured preference backend and returns
// the repository plus a close func for the underlying database.
func openPreferenceStore(ctx context.Context, cfg *config.Config) (domain.PreferenceRepository, func(), error) {
	switch cfg.PrefsDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.PrefsDSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewPreferenceRepository(db), func() { db.Close() }, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.PrefsDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewPreferenceRepository(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown preference driver %q", cfg.PrefsDriver)
	}
}
