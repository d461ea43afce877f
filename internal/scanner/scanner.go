// Package scanner rates every day of a calendar window and ranks the
// results for election.
package scanner

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/scoring"
	"github.com/electa-app/electa/pkg/logger"
)

// MaxSpanDays bounds a single scan to one year. Oversized windows are
// rejected outright, never silently truncated.
const MaxSpanDays = 366

// scanHour is the local decimal hour every candidate day is rated at.
const scanHour = 12.0

// maxBestHours caps the favorable launch hours attached per day.
const maxBestHours = 3

// InvalidRangeError rejects a scan window before any computation runs.
type InvalidRangeError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid scan range %s..%s: %s", e.From, e.To, e.Reason)
}

// Request describes one ranked-dates scan.
type Request struct {
	ProjectName string
	ProjectType contracts.ProjectType
	From        time.Time
	To          time.Time
	Latitude    float64
	Longitude   float64
	UTCOffset   time.Duration
}

// Scanner fans per-day evaluations across a worker pool. Stateless across
// scans; safe for concurrent use.
type Scanner struct {
	calc    *astro.Calculator
	engine  *scoring.Engine
	log     *logger.Logger
	workers int
}

// New builds a scanner with one worker per CPU.
func New(calc *astro.Calculator, engine *scoring.Engine, log *logger.Logger) *Scanner {
	return &Scanner{
		calc:    calc,
		engine:  engine,
		log:     log,
		workers: runtime.NumCPU(),
	}
}

// Scan rates every day in the window and returns the results ranked: rated
// days by score descending (ties to the earlier date), then unratable days
// in date order. Every requested day appears exactly once.
func (s *Scanner) Scan(ctx context.Context, req Request) ([]contracts.ScoreResult, error) {
	days, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	results := make([]contracts.ScoreResult, days)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.rateDay(req, req.From.AddDate(0, 0, i))
			}
		}()
	}

feed:
	for i := 0; i < days; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	Rank(results)
	return results, nil
}

// RateDay rates a single date, exposed for the streaming path which emits
// results as they are computed.
func (s *Scanner) RateDay(ctx context.Context, req Request, date time.Time) (contracts.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return contracts.ScoreResult{}, err
	}
	return s.rateDay(req, date), nil
}

// Days returns the validated day count of a request window.
func (s *Scanner) Days(req Request) (int, error) {
	return s.validate(req)
}

func (s *Scanner) validate(req Request) (int, error) {
	from := req.From.Format(contracts.DateLayout)
	to := req.To.Format(contracts.DateLayout)

	if req.To.Before(req.From) {
		return 0, &InvalidRangeError{From: from, To: to, Reason: "end precedes start"}
	}
	days := int(req.To.Sub(req.From).Hours()/24) + 1
	if days > MaxSpanDays {
		return 0, &InvalidRangeError{
			From: from, To: to,
			Reason: fmt.Sprintf("%d days exceeds the %d-day limit", days, MaxSpanDays),
		}
	}
	return days, nil
}

func (s *Scanner) rateDay(req Request, date time.Time) contracts.ScoreResult {
	inst := contracts.NewInstant(date, scanHour, req.Latitude, req.Longitude, req.UTCOffset)

	snap, err := s.calc.Snapshot(inst)
	if err != nil {
		s.log.WithError(err).WithField("date", inst.Date).Warn("day left unrated")
		return contracts.ScoreResult{
			Date:      inst.Date,
			Weekday:   inst.Weekday().String(),
			Unratable: true,
			Error:     err.Error(),
		}
	}

	res := s.engine.Score(snap, req.ProjectType)
	if res.Level != contracts.Avoid {
		res.BestHours = s.bestHours(date, req)
	}
	return res
}

// bestHours picks up to three favorable daytime hours, rendered in the
// observer's clock. Hour-table failures just leave the list empty.
func (s *Scanner) bestHours(date time.Time, req Request) []string {
	hours, err := s.calc.PlanetaryHours(date, req.Latitude, req.Longitude)
	if err != nil {
		return nil
	}

	var best []string
	for _, h := range hours {
		if !h.Daytime || !h.Favorable {
			continue
		}
		best = append(best, fmt.Sprintf("%s-%s (%s)",
			h.Start.Add(req.UTCOffset).Format("15:04"),
			h.End.Add(req.UTCOffset).Format("15:04"),
			h.Ruler))
		if len(best) == maxBestHours {
			break
		}
	}
	return best
}

// Rank sorts rated days by score descending with ties to the earlier
// date; unratable days follow in date order. Also used by the streaming
// path to rank results it collected itself.
func Rank(results []contracts.ScoreResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Unratable != b.Unratable {
			return !a.Unratable
		}
		if a.Unratable {
			return a.Date < b.Date
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Date < b.Date
	})
}
