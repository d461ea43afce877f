// Package astro derives the higher-level astrological facts the rule set
// consumes (aspects, lunar state, rulerships) from raw ephemeris positions.
package astro

import (
	"github.com/electa-app/electa/internal/contracts"
)

// Calculator turns raw positions into derived state. Stateless apart from
// its ephemeris source; safe for concurrent use.
type Calculator struct {
	eph contracts.EphemerisSource
}

// NewCalculator creates a calculator over an ephemeris source.
func NewCalculator(eph contracts.EphemerisSource) *Calculator {
	return &Calculator{eph: eph}
}

// Snapshot builds the full derived state for one instant. Constructed
// fresh per candidate date; nothing is cached across instants.
func (c *Calculator) Snapshot(inst contracts.Instant) (*contracts.Snapshot, error) {
	set, err := c.eph.Positions(inst)
	if err != nil {
		return nil, err
	}

	angle := PhaseAngle(set)
	name, waxing := PhaseName(angle)

	voc, err := c.voidOfCourse(inst, set)
	if err != nil {
		return nil, err
	}

	dayRuler := DayRuler(inst.Weekday())
	hourRuler, err := c.HourRulerAt(inst)
	if err != nil {
		// Polar latitudes have no sunrise division; the day ruler governs.
		hourRuler = dayRuler
	}

	return &contracts.Snapshot{
		Instant:      inst,
		Positions:    set,
		Aspects:      DetectAspects(set),
		PhaseAngle:   angle,
		PhaseName:    name,
		Waxing:       waxing,
		VoidOfCourse: voc,
		ViaCombusta:  InViaCombusta(set[contracts.Moon].Longitude),
		DayRuler:     dayRuler,
		HourRuler:    hourRuler,
	}, nil
}
