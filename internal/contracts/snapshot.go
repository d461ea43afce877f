package contracts

import "time"

// EphemerisSource computes body positions for an instant. Implemented by
// the ephemeris adapter; fakes implement it in tests.
type EphemerisSource interface {
	Positions(inst Instant) (PositionSet, error)
}

// Snapshot is the full derived astrological state for one instant. Built
// fresh per candidate date and discarded after scoring; nothing in it is
// cached across instants.
type Snapshot struct {
	Instant      Instant     `json:"instant"`
	Positions    PositionSet `json:"positions"`
	Aspects      []Aspect    `json:"aspects"`
	PhaseAngle   float64     `json:"phase_angle"` // Moon-Sun elongation, [0, 360)
	PhaseName    string      `json:"phase_name"`
	Waxing       bool        `json:"waxing"`
	VoidOfCourse bool        `json:"void_of_course"`
	ViaCombusta  bool        `json:"via_combusta"`
	DayRuler     Body        `json:"day_ruler"`
	HourRuler    Body        `json:"hour_ruler"`
}

// Position returns the snapshot position of a body.
func (s *Snapshot) Position(b Body) (BodyPosition, bool) {
	p, ok := s.Positions[b]
	return p, ok
}

// AspectBetween returns the active aspect between two bodies, if any.
// Symmetric in its arguments.
func (s *Snapshot) AspectBetween(a, b Body) (Aspect, bool) {
	for _, asp := range s.Aspects {
		if asp.Involves(a) && asp.Involves(b) && a != b {
			return asp, true
		}
	}
	return Aspect{}, false
}

// LunarInfo is the single-date lunar read path result.
type LunarInfo struct {
	Date         string  `json:"date"`
	Sign         Sign    `json:"sign"`
	SignDegree   float64 `json:"sign_degree"`
	PhaseName    string  `json:"phase_name"`
	PhaseAngle   float64 `json:"phase_angle"`
	Waxing       bool    `json:"waxing"`
	VoidOfCourse bool    `json:"void_of_course"`
	ViaCombusta  bool    `json:"via_combusta"`
}

// PlanetaryHour is one of the 24 unequal divisions of an astrological day.
type PlanetaryHour struct {
	Index     int       `json:"index"` // 1..24, starting at sunrise
	Ruler     Body      `json:"ruler"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Daytime   bool      `json:"daytime"`
	Favorable bool      `json:"favorable"` // Jupiter, Venus and Sun hours
}
