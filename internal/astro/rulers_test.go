package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electa-app/electa/internal/contracts"
)

const (
	limaLat = -12.0464
	limaLon = -77.0428
)

func TestDayRuler(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want contracts.Body
	}{
		{time.Sunday, contracts.Sun},
		{time.Monday, contracts.Moon},
		{time.Tuesday, contracts.Mars},
		{time.Wednesday, contracts.Mercury},
		{time.Thursday, contracts.Jupiter},
		{time.Friday, contracts.Venus},
		{time.Saturday, contracts.Saturn},
	}

	for _, tt := range tests {
		if got := DayRuler(tt.day); got != tt.want {
			t.Errorf("DayRuler(%s) = %s, want %s", tt.day, got, tt.want)
		}
	}
}

func TestPlanetaryHours(t *testing.T) {
	calc := NewCalculator(nil) // sunrise math needs no ephemeris
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	hours, err := calc.PlanetaryHours(date, limaLat, limaLon)
	require.NoError(t, err)
	require.Len(t, hours, 24)

	// Contiguous, non-overlapping, covering sunrise to next sunrise.
	for i := 0; i < 23; i++ {
		assert.Equal(t, hours[i].End, hours[i+1].Start, "gap after hour %d", i+1)
		assert.True(t, hours[i].Start.Before(hours[i].End), "hour %d inverted", i+1)
	}
	total := hours[23].End.Sub(hours[0].Start)
	assert.InDelta(t, 24.0, total.Hours(), 0.1, "astrological day length")

	// First hour belongs to the day ruler (2026-03-15 is a Sunday), and
	// rulers cycle through the Chaldean order.
	assert.Equal(t, contracts.Sun, hours[0].Ruler)
	start := chaldeanIndex(hours[0].Ruler)
	for i, h := range hours {
		want := ChaldeanOrder[(start+i)%len(ChaldeanOrder)]
		assert.Equal(t, want, h.Ruler, "hour %d ruler", i+1)
		assert.Equal(t, i < 12, h.Daytime, "hour %d daytime flag", i+1)
		assert.Equal(t, FavorableRuler(h.Ruler), h.Favorable)
	}

	// Day and night hours have different clock lengths away from equinox
	// latitudes; both must divide their half evenly.
	dayLen := hours[0].End.Sub(hours[0].Start)
	for i := 1; i < 12; i++ {
		assert.Equal(t, dayLen, hours[i].End.Sub(hours[i].Start), "day hour %d", i+1)
	}
}

func TestHourRulerAt(t *testing.T) {
	calc := NewCalculator(nil)

	inst := contracts.Instant{
		Time:      time.Date(2026, time.March, 15, 17, 0, 0, 0, time.UTC), // local noon
		Date:      "2026-03-15",
		Latitude:  limaLat,
		Longitude: limaLon,
	}

	ruler, err := calc.HourRulerAt(inst)
	require.NoError(t, err)

	// Verify against the hour table directly.
	date := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	hours, err := calc.PlanetaryHours(date, limaLat, limaLon)
	require.NoError(t, err)

	var want contracts.Body
	for _, h := range hours {
		if !inst.Time.Before(h.Start) && inst.Time.Before(h.End) {
			want = h.Ruler
			break
		}
	}
	assert.Equal(t, want, ruler)
}

func TestHourRulerBeforeSunrise(t *testing.T) {
	calc := NewCalculator(nil)

	// 04:00 local is before sunrise: the previous astrological day rules.
	inst := contracts.Instant{
		Time:      time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC),
		Date:      "2026-03-15",
		Latitude:  limaLat,
		Longitude: limaLon,
	}

	ruler, err := calc.HourRulerAt(inst)
	require.NoError(t, err)

	prev := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	hours, err := calc.PlanetaryHours(prev, limaLat, limaLon)
	require.NoError(t, err)

	var want contracts.Body
	for _, h := range hours {
		if !inst.Time.Before(h.Start) && inst.Time.Before(h.End) {
			want = h.Ruler
			break
		}
	}
	assert.Equal(t, want, ruler)
}
