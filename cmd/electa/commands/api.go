package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/api"
	"github.com/electa-app/electa/internal/api/handlers"
	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/internal/history"
	"github.com/electa-app/electa/internal/rules"
	"github.com/electa-app/electa/internal/scanner"
	"github.com/electa-app/electa/internal/scoring"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/database"
	"github.com/electa-app/electa/pkg/logger"
	"github.com/electa-app/electa/pkg/redis"
)

// apiCmd represents the api command.
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                 - Health check
  POST /api/election/compute   - Rate a date window for a project
  GET  /api/election/stream    - Same scan over a websocket
  GET  /api/election/history   - Recent persisted scans
  GET  /api/hours/{date}       - Planetary hours of a date
  GET  /api/lunar/{date}       - Lunar state of a date
  GET  /api/policy             - Active rule table and its hash

Example:
  go run ./cmd/electa api
  go run ./cmd/electa api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log := logger.New(cfg)
	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	eph, err := ephemeris.New(cfg)
	if err != nil {
		return fmt.Errorf("load ephemeris: %w", err)
	}
	defer eph.Close()

	calc := astro.NewCalculator(eph)
	sc := scanner.New(calc, scoring.NewEngine(), log)

	policyHash, err := rules.Snapshot().Hash()
	if err != nil {
		return fmt.Errorf("hash policy: %w", err)
	}

	// Scan history is optional: without DATABASE_URL the endpoint reports
	// itself unavailable and scans are simply not persisted.
	var historyRepo *history.Repository
	if cfg.HistoryEnabled() {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		historyRepo = history.NewRepository(db.Pool)
		if err := historyRepo.EnsureSchema(cmd.Context()); err != nil {
			return fmt.Errorf("ensure history schema: %w", err)
		}
		log.Info("Scan history enabled")
	}

	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "electa")

	electionHandler := handlers.NewElectionHandler(sc, historyRepo, policyHash, cfg, log)
	astroHandler := handlers.NewAstroHandler(calc, cache, cfg, log)
	historyHandler := handlers.NewHistoryHandler(historyRepo, log)
	policyHandler := handlers.NewPolicyHandler(log)

	router := api.NewRouter(cfg, electionHandler, astroHandler, historyHandler, policyHandler, log)
	server := api.New(cfg, log, router)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s (policy %s)\n", cfg.Port, policyHash[:12])
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
