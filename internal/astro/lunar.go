package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/electa-app/electa/internal/contracts"
)

// Via Combusta, 15° Libra through 15° Scorpio (Robson p.15).
const (
	viaCombustaStart = 195.0
	viaCombustaEnd   = 225.0
)

// Void-of-course forward scan parameters. The Moon dwells in a sign for at
// most ~2.5 days, so 72 one-hour steps is a hard termination bound.
const (
	vocStep     = time.Hour
	vocMaxSteps = 72

	// The Moon gains at most ~0.55°/h on any other body, so a sampled
	// separation within this tolerance means the aspect perfects.
	vocPerfectionTol = 0.6
)

// InViaCombusta reports whether a longitude falls in the Via Combusta.
func InViaCombusta(lon float64) bool {
	return lon >= viaCombustaStart && lon <= viaCombustaEnd
}

// PhaseAngle is the Moon-Sun elongation in [0, 360).
func PhaseAngle(set contracts.PositionSet) float64 {
	return contracts.NormalizeDegrees(set[contracts.Moon].Longitude - set[contracts.Sun].Longitude)
}

// PhaseName maps an elongation to its traditional phase name and whether
// the Moon is waxing (increasing in light, elongation below 180°).
func PhaseName(angle float64) (string, bool) {
	switch {
	case angle < 45:
		return "New", true
	case angle < 90:
		return "Waxing Crescent", true
	case angle < 135:
		return "First Quarter", true
	case angle < 180:
		return "Waxing Gibbous", true
	case angle < 225:
		return "Full", false
	case angle < 270:
		return "Waning Gibbous", false
	case angle < 315:
		return "Last Quarter", false
	default:
		return "Waning Crescent", false
	}
}

type vocKey struct {
	body   contracts.Body
	aspect contracts.AspectType
}

// voidOfCourse simulates the Moon forward from the instant and reports
// whether it leaves its sign without perfecting any further major aspect.
// Iteration is explicitly bounded; the bound is a correctness requirement,
// not an optimization.
func (c *Calculator) voidOfCourse(inst contracts.Instant, set contracts.PositionSet) (bool, error) {
	moon, ok := set[contracts.Moon]
	if !ok {
		return false, fmt.Errorf("astro: position set has no Moon")
	}
	startSign := moon.Sign

	// Signed distance to exactness per (body, aspect). A zero crossing, or
	// a sample inside the perfection tolerance, means the aspect perfects.
	prev := make(map[vocKey]float64)
	done := make(map[vocKey]bool)
	record := func(cur contracts.PositionSet, into map[vocKey]float64) {
		m := cur[contracts.Moon]
		for _, body := range contracts.TrackedBodies {
			if body == contracts.Moon {
				continue
			}
			sep := contracts.Separation(m.Longitude, cur[body].Longitude)
			for _, t := range contracts.AllAspectTypes {
				into[vocKey{body, t}] = sep - t.Angle()
			}
		}
	}

	record(set, prev)
	for k, d := range prev {
		// Aspects already partile at the instant are formed, not forming.
		if math.Abs(d) <= vocPerfectionTol {
			done[k] = true
		}
	}

	for i := 1; i <= vocMaxSteps; i++ {
		step := inst.Offset(time.Duration(i) * vocStep)
		cur, err := c.eph.Positions(step)
		if err != nil {
			return false, err
		}

		if cur[contracts.Moon].Sign != startSign {
			return true, nil
		}

		next := make(map[vocKey]float64, len(prev))
		record(cur, next)
		for k, d := range next {
			if done[k] {
				continue
			}
			if math.Abs(d) <= vocPerfectionTol || d*prev[k] < 0 {
				return false, nil
			}
		}
		prev = next
	}

	// Bound reached without a sign change; treat as not void.
	return false, nil
}

// LunarInfo is the single-date lunar read path.
func (c *Calculator) LunarInfo(inst contracts.Instant) (*contracts.LunarInfo, error) {
	set, err := c.eph.Positions(inst)
	if err != nil {
		return nil, err
	}

	moon := set[contracts.Moon]
	angle := PhaseAngle(set)
	name, waxing := PhaseName(angle)

	voc, err := c.voidOfCourse(inst, set)
	if err != nil {
		return nil, err
	}

	return &contracts.LunarInfo{
		Date:         inst.Date,
		Sign:         moon.Sign,
		SignDegree:   moon.SignDegree,
		PhaseName:    name,
		PhaseAngle:   angle,
		Waxing:       waxing,
		VoidOfCourse: voc,
		ViaCombusta:  InViaCombusta(moon.Longitude),
	}, nil
}
