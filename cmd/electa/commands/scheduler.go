package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/ephemeris"
	"github.com/electa-app/electa/internal/history"
	"github.com/electa-app/electa/internal/scheduler"
	"github.com/electa-app/electa/internal/scheduler/jobs"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/database"
	"github.com/electa-app/electa/pkg/logger"
	"github.com/electa-app/electa/pkg/redis"
)

// schedulerCmd represents the scheduler command.
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the background job scheduler",
	Long: `Starts the scheduler daemon with the maintenance jobs:

- lunar_precompute: daily 00:10, warms the redis lunar cache
- history_cleanup:  weekly, prunes old persisted scans

Example:
  go run ./cmd/electa scheduler`,
	RunE: runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	eph, err := ephemeris.New(cfg)
	if err != nil {
		return fmt.Errorf("load ephemeris: %w", err)
	}
	defer eph.Close()
	calc := astro.NewCalculator(eph)

	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "electa")

	sched := scheduler.New(log)

	if err := sched.AddJob(jobs.NewLunarPrecomputeJob(calc, cache, cfg, log)); err != nil {
		return err
	}

	if cfg.HistoryEnabled() {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo := history.NewRepository(db.Pool)
		if err := repo.EnsureSchema(cmd.Context()); err != nil {
			return fmt.Errorf("ensure history schema: %w", err)
		}
		if err := sched.AddJob(jobs.NewHistoryCleanupJob(repo, log)); err != nil {
			return err
		}
	}

	sched.Start()
	fmt.Printf("Scheduler running with jobs: %v\n", sched.Jobs())
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
