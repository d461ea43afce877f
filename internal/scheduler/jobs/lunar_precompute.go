// Package jobs holds the concrete scheduled jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/pkg/config"
	"github.com/electa-app/electa/pkg/logger"
	"github.com/electa-app/electa/pkg/redis"
)

// lunarWarmDays is how many days ahead the lunar cache is warmed.
const lunarWarmDays = 7

// LunarPrecomputeJob warms the redis lunar cache for the coming week so
// the read path rarely touches the ephemeris.
type LunarPrecomputeJob struct {
	calc   *astro.Calculator
	cache  *redis.Cache
	cfg    *config.Config
	logger *logger.Logger
}

// NewLunarPrecomputeJob creates the cache warming job.
func NewLunarPrecomputeJob(calc *astro.Calculator, cache *redis.Cache, cfg *config.Config, log *logger.Logger) *LunarPrecomputeJob {
	return &LunarPrecomputeJob{
		calc:   calc,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

// Name returns the job name.
func (j *LunarPrecomputeJob) Name() string {
	return "lunar_precompute"
}

// Schedule runs daily at 00:10, after the civil date rolls over.
func (j *LunarPrecomputeJob) Schedule() string {
	return "0 10 0 * * *"
}

// Run computes and caches lunar info for today through today+6.
func (j *LunarPrecomputeJob) Run(ctx context.Context) error {
	loc := j.cfg.Location
	today := time.Now().UTC().Add(loc.UTCOffset).Truncate(24 * time.Hour)

	warmed := 0
	for d := 0; d < lunarWarmDays; d++ {
		date := today.AddDate(0, 0, d)
		inst := contracts.NewInstant(date, 12.0, loc.Latitude, loc.Longitude, loc.UTCOffset)

		info, err := j.calc.LunarInfo(inst)
		if err != nil {
			return fmt.Errorf("lunar info for %s: %w", inst.Date, err)
		}
		if err := j.cache.Set(ctx, redis.LunarKey(inst.Date), info, redis.TTLLunar); err != nil {
			return fmt.Errorf("cache lunar info for %s: %w", inst.Date, err)
		}
		warmed++
	}

	j.logger.WithField("days", warmed).Info("Lunar cache warmed")
	return nil
}
