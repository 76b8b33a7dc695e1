package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lbruckner/palletsim/internal/adapters/httpapi"
	"github.com/lbruckner/palletsim/internal/adapters/metrics"
	"github.com/lbruckner/palletsim/internal/adapters/notify"
	"github.com/lbruckner/palletsim/internal/adapters/persistence"
	"github.com/lbruckner/palletsim/internal/application/common"
	"github.com/lbruckner/palletsim/internal/application/gameops"
	"github.com/lbruckner/palletsim/internal/application/simulation"
	"github.com/lbruckner/palletsim/internal/domain/shared"
	"github.com/lbruckner/palletsim/internal/infrastructure/catalog"
	"github.com/lbruckner/palletsim/internal/infrastructure/config"
	"github.com/lbruckner/palletsim/internal/infrastructure/database"
	"github.com/lbruckner/palletsim/internal/infrastructure/pidfile"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags
	forceFlag := flag.Bool("force", false, "Kill any existing daemon and start a new one")
	flag.Parse()

	fmt.Printf("Palletsim Daemon v%s\n", version)
	fmt.Println("=====================")

	// Load configuration
	fmt.Println("Loading configuration...")
	cfg := config.MustLoadConfig("") // Empty string = search default paths

	// Acquire PID file lock to prevent multiple instances
	fmt.Printf("Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
	pf := pidfile.New(cfg.Daemon.PIDFile)

	err := pf.Acquire()
	if err != nil {
		if *forceFlag {
			fmt.Println("Force mode enabled - attempting to kill existing daemon...")
			if killErr := pf.KillExisting(); killErr != nil {
				log.Fatalf("Failed to kill existing daemon: %v", killErr)
			}
			fmt.Println("Existing daemon killed")

			if err := pf.Acquire(); err != nil {
				log.Fatalf("Failed to acquire PID file lock after killing existing daemon: %v", err)
			}
		} else {
			log.Fatalf("Failed to acquire PID file lock: %v\nUse --force to kill the existing daemon", err)
		}
	}

	defer func() {
		if err := pf.Release(); err != nil {
			log.Printf("Warning: failed to release PID file: %v", err)
		}
	}()
	fmt.Println("PID file lock acquired")

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	// Route daemon logs to the configured destination
	logOut, err := cfg.Logging.Writer()
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}
	defer logOut.Close()
	log.SetOutput(logOut)

	// 1. Setup database connection
	fmt.Printf("Connecting to %s database...\n", cfg.Database.Type)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)
	fmt.Println("Database connected")

	if cfg.Daemon.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		fmt.Println("Database schema migrated")
	}

	// 2. Initialize shared sources
	seed, err := shared.NewRandomSeed()
	if err != nil {
		return fmt.Errorf("failed to seed random source: %w", err)
	}
	rng := shared.NewSeededRandom(seed)
	clock := shared.NewRealClock()

	// 3. Initialize repositories and the round engine
	games := persistence.NewGormGameRepository(db)
	states := persistence.NewGormStateRepository(db)
	engine := simulation.NewEngine(rng, clock, catalog.NewApplicantPool(rng))
	fmt.Println("Round engine initialized")

	// 4. Initialize the websocket hub for round events
	hub := notify.NewHub(log.Default())
	defer hub.Close()

	// 5. Build the mediator with every handler registered
	registry := gameops.NewHandlerRegistry(games, states, engine, hub, rng, clock)
	med, err := registry.CreateConfiguredMediator()
	if err != nil {
		return fmt.Errorf("failed to configure mediator: %w", err)
	}
	fmt.Println("Command handlers registered")

	// 6. Metrics (optional)
	med, err = setupMetrics(cfg, med)
	if err != nil {
		return fmt.Errorf("failed to set up metrics: %w", err)
	}

	// 7. Serve the HTTP API
	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Mediator: med,
		Hub:      hub,
		Version:  version,
	})
	server := &http.Server{
		Addr:    cfg.Daemon.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Listening on %s\n", cfg.Daemon.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 8. Wait for shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		fmt.Printf("Received %s, shutting down...\n", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Daemon.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	fmt.Println("Daemon stopped")
	return nil
}

// setupMetrics wires the Prometheus collectors and starts the metrics
// endpoint. The returned mediator records per-command durations.
func setupMetrics(cfg *config.Config, med common.Mediator) (common.Mediator, error) {
	if !cfg.Metrics.Enabled {
		return med, nil
	}

	metrics.InitRegistry()

	rounds := metrics.NewRoundMetricsCollector()
	if err := rounds.Register(); err != nil {
		return nil, err
	}
	metrics.SetGlobalRoundCollector(rounds)

	cmds := metrics.NewCommandMetricsCollector()
	if err := cmds.Register(); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
	go func() {
		fmt.Printf("Metrics endpoint on http://%s%s\n", addr, cfg.Metrics.Path)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server failed: %v", err)
		}
	}()

	return metrics.NewInstrumentedMediator(med, cmds), nil
}
