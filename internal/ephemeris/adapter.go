package ephemeris

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/pkg/config"
)

// speedStep is the half-interval, in days, of the central difference used
// to derive daily motion. Half a day keeps the estimate inside the queried
// civil date even for the Moon.
const speedStep = 0.5

// Adapter computes geocentric ecliptic positions for the tracked bodies.
// It owns the VSOP87 planetary theory tables, which are loaded once at
// construction and held for the process lifetime; callers create one
// adapter at startup and Close it at shutdown.
type Adapter struct {
	earth   *planetposition.V87Planet
	planets map[contracts.Body]*planetposition.V87Planet
}

var vsopIndex = map[contracts.Body]int{
	contracts.Mercury: planetposition.Mercury,
	contracts.Venus:   planetposition.Venus,
	contracts.Mars:    planetposition.Mars,
	contracts.Jupiter: planetposition.Jupiter,
	contracts.Saturn:  planetposition.Saturn,
	contracts.Uranus:  planetposition.Uranus,
	contracts.Neptune: planetposition.Neptune,
}

// New loads the VSOP87 data files for Earth and every tracked planet.
// With an empty data path the library falls back to the VSOP87 environment
// variable.
func New(cfg *config.Config) (*Adapter, error) {
	load := func(ibody int) (*planetposition.V87Planet, error) {
		if cfg.Ephemeris.DataPath != "" {
			return planetposition.LoadPlanetPath(ibody, cfg.Ephemeris.DataPath)
		}
		return planetposition.LoadPlanet(ibody)
	}

	earth, err := load(planetposition.Earth)
	if err != nil {
		return nil, fmt.Errorf("ephemeris: loading VSOP87 Earth data: %w", err)
	}

	a := &Adapter{
		earth:   earth,
		planets: make(map[contracts.Body]*planetposition.V87Planet, len(vsopIndex)),
	}
	for body, idx := range vsopIndex {
		p, err := load(idx)
		if err != nil {
			return nil, fmt.Errorf("ephemeris: loading VSOP87 %s data: %w", body, err)
		}
		a.planets[body] = p
	}

	return a, nil
}

// Close releases the planetary tables.
func (a *Adapter) Close() {
	a.earth = nil
	a.planets = nil
}

// Positions computes longitude and daily speed for every tracked body at
// the instant. Implements contracts.EphemerisSource.
func (a *Adapter) Positions(inst contracts.Instant) (contracts.PositionSet, error) {
	if err := a.checkEpoch(inst); err != nil {
		return nil, err
	}

	jd := julian.TimeToJD(inst.Time)
	set := make(contracts.PositionSet, len(contracts.TrackedBodies))

	for _, body := range contracts.TrackedBodies {
		lon, err := a.longitude(body, jd)
		if err != nil {
			return nil, &ComputeError{Body: body, Date: inst.Date, Err: err}
		}

		before, err := a.longitude(body, jd-speedStep)
		if err != nil {
			return nil, &ComputeError{Body: body, Date: inst.Date, Err: err}
		}
		after, err := a.longitude(body, jd+speedStep)
		if err != nil {
			return nil, &ComputeError{Body: body, Date: inst.Date, Err: err}
		}

		speed := wrapDelta(after-before) / (2 * speedStep)
		set[body] = contracts.NewBodyPosition(body, lon, speed)
	}

	return set, nil
}

// checkEpoch validates the supported year window.
func (a *Adapter) checkEpoch(inst contracts.Instant) error {
	year := inst.Time.UTC().Year()
	if year < MinYear || year > MaxYear {
		return &RangeError{Date: inst.Date, Year: year}
	}
	return nil
}

// longitude returns the geocentric ecliptic longitude of a body in degrees.
func (a *Adapter) longitude(body contracts.Body, jd float64) (float64, error) {
	if a.earth == nil {
		return 0, errors.New("adapter closed")
	}

	var lon float64
	switch body {
	case contracts.Sun:
		lon = solar.ApparentLongitude(base.J2000Century(jd)).Deg()
	case contracts.Moon:
		l, _, _ := moonposition.Position(jd)
		lon = l.Deg()
	default:
		planet, ok := a.planets[body]
		if !ok {
			return 0, fmt.Errorf("untracked body %s", body)
		}
		lon = a.geocentric(planet, jd)
	}

	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 0, fmt.Errorf("non-finite longitude for %s at JD %f", body, jd)
	}
	return contracts.NormalizeDegrees(lon), nil
}

// geocentric converts a planet's heliocentric VSOP87 position to geocentric
// ecliptic longitude by differencing rectangular coordinates with Earth's.
func (a *Adapter) geocentric(planet *planetposition.V87Planet, jd float64) float64 {
	l, b, r := planet.Position2000(jd)
	l0, b0, r0 := a.earth.Position2000(jd)

	x := r*math.Cos(b.Rad())*math.Cos(l.Rad()) - r0*math.Cos(b0.Rad())*math.Cos(l0.Rad())
	y := r*math.Cos(b.Rad())*math.Sin(l.Rad()) - r0*math.Cos(b0.Rad())*math.Sin(l0.Rad())

	return math.Atan2(y, x) * 180 / math.Pi
}

// wrapDelta maps a longitude difference into (-180, 180] so daily motion
// across the 0° boundary stays continuous.
func wrapDelta(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
