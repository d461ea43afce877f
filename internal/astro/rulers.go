package astro

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/electa-app/electa/internal/contracts"
)

// ChaldeanOrder is the fixed planetary-hour cycle (Robson ch. 5).
var ChaldeanOrder = []contracts.Body{
	contracts.Saturn, contracts.Jupiter, contracts.Mars, contracts.Sun,
	contracts.Venus, contracts.Mercury, contracts.Moon,
}

// dayRulers assigns the classical ruling planet of each weekday.
var dayRulers = map[time.Weekday]contracts.Body{
	time.Sunday:    contracts.Sun,
	time.Monday:    contracts.Moon,
	time.Tuesday:   contracts.Mars,
	time.Wednesday: contracts.Mercury,
	time.Thursday:  contracts.Jupiter,
	time.Friday:    contracts.Venus,
	time.Saturday:  contracts.Saturn,
}

// favorableRulers are the benefic hour rulers recommended for launching.
var favorableRulers = map[contracts.Body]bool{
	contracts.Jupiter: true,
	contracts.Venus:   true,
	contracts.Sun:     true,
}

// DayRuler returns the classical planetary ruler of a weekday.
func DayRuler(w time.Weekday) contracts.Body { return dayRulers[w] }

// FavorableRuler reports whether a body's hours favor new undertakings.
func FavorableRuler(b contracts.Body) bool { return favorableRulers[b] }

func chaldeanIndex(b contracts.Body) int {
	for i, c := range ChaldeanOrder {
		if c == b {
			return i
		}
	}
	return 0
}

// PlanetaryHours divides the astrological day (sunrise to next sunrise)
// into 12 day and 12 night hours of unequal clock length and assigns
// rulers cycling through the Chaldean order, starting from the day
// ruler's hour.
func (c *Calculator) PlanetaryHours(date time.Time, lat, lon float64) ([]contracts.PlanetaryHour, error) {
	rise, set := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
	next := date.AddDate(0, 0, 1)
	nextRise, _ := sunrise.SunriseSunset(lat, lon, next.Year(), next.Month(), next.Day())

	if !rise.Before(set) || !set.Before(nextRise) {
		return nil, fmt.Errorf("astro: no sunrise/sunset at %.4f,%.4f on %s",
			lat, lon, date.Format(contracts.DateLayout))
	}

	dayLen := set.Sub(rise) / 12
	nightLen := nextRise.Sub(set) / 12
	start := chaldeanIndex(DayRuler(date.Weekday()))

	hours := make([]contracts.PlanetaryHour, 0, 24)
	for i := 0; i < 24; i++ {
		var hStart, hEnd time.Time
		if i < 12 {
			hStart = rise.Add(time.Duration(i) * dayLen)
			hEnd = rise.Add(time.Duration(i+1) * dayLen)
		} else {
			hStart = set.Add(time.Duration(i-12) * nightLen)
			hEnd = set.Add(time.Duration(i-11) * nightLen)
		}
		// Close the last interval exactly on the next sunrise.
		if i == 23 {
			hEnd = nextRise
		}

		ruler := ChaldeanOrder[(start+i)%len(ChaldeanOrder)]
		hours = append(hours, contracts.PlanetaryHour{
			Index:     i + 1,
			Ruler:     ruler,
			Start:     hStart,
			End:       hEnd,
			Daytime:   i < 12,
			Favorable: FavorableRuler(ruler),
		})
	}

	return hours, nil
}

// HourRulerAt returns the planetary hour ruler in effect at an instant.
func (c *Calculator) HourRulerAt(inst contracts.Instant) (contracts.Body, error) {
	date, err := time.Parse(contracts.DateLayout, inst.Date)
	if err != nil {
		return 0, fmt.Errorf("astro: bad instant date %q: %w", inst.Date, err)
	}

	// The queried instant may precede local sunrise, in which case it
	// belongs to the previous astrological day.
	for _, d := range []time.Time{date, date.AddDate(0, 0, -1)} {
		hours, err := c.PlanetaryHours(d, inst.Latitude, inst.Longitude)
		if err != nil {
			return 0, err
		}
		for _, h := range hours {
			if !inst.Time.Before(h.Start) && inst.Time.Before(h.End) {
				return h.Ruler, nil
			}
		}
	}

	return 0, fmt.Errorf("astro: no planetary hour covers %s", inst.Time.Format(time.RFC3339))
}
