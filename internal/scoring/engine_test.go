package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electa-app/electa/internal/contracts"
)

func quietSnapshot() *contracts.Snapshot {
	s := &contracts.Snapshot{
		Instant:   contracts.Instant{Date: "2026-03-15"},
		Positions: contracts.PositionSet{},
		Waxing:    true,
		PhaseName: "Waxing Crescent",
		DayRuler:  contracts.Mars,
		HourRuler: contracts.Saturn,
	}
	s.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 75, 13) // Gemini
	s.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, 1.2)
	return s
}

func TestScoreNeutralBaseline(t *testing.T) {
	e := NewEngine()
	res := e.Score(quietSnapshot(), contracts.ProjectOtro)

	// Waxing Moon +15 and Mercury direct +10 on the base of 50.
	assert.Equal(t, 75.0, res.Raw)
	assert.Equal(t, 75, res.Score)
	assert.Equal(t, contracts.Good, res.Level)
	assert.Equal(t, "2026-03-15", res.Date)
	assert.Equal(t, "Sunday", res.Weekday)
	assert.Len(t, res.Factors, 2)
}

func TestRetrogradeWeighsHeavierForContracts(t *testing.T) {
	e := NewEngine()
	s := quietSnapshot()
	s.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, -0.4)

	general := e.Score(s, contracts.ProjectOtro)
	contract := e.Score(s, contracts.ProjectContrato)

	// Mercury rules weigh 1.5x for contracts.
	assert.Less(t, contract.Score, general.Score)

	var generalPts, contractPts float64
	for _, f := range general.Factors {
		if f.RuleID == "mercury-retrograde" {
			generalPts = f.Points
		}
	}
	for _, f := range contract.Factors {
		if f.RuleID == "mercury-retrograde" {
			contractPts = f.Points
			assert.Equal(t, "negative", f.Tone)
		}
	}
	assert.Equal(t, -20.0, generalPts)
	assert.Equal(t, -30.0, contractPts)
}

func TestRetrogradeDayScoresLowerThanDirect(t *testing.T) {
	e := NewEngine()

	direct := e.Score(quietSnapshot(), contracts.ProjectContrato)

	s := quietSnapshot()
	s.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, -0.4)
	retro := e.Score(s, contracts.ProjectContrato)

	assert.Less(t, retro.Score, direct.Score)
}

func TestVoidOfCourseDropsBand(t *testing.T) {
	e := NewEngine()

	clear := e.Score(quietSnapshot(), contracts.ProjectOtro)

	s := quietSnapshot()
	s.VoidOfCourse = true
	void := e.Score(s, contracts.ProjectOtro)

	assert.Equal(t, clear.Score-25, void.Score)
	assert.Equal(t, contracts.Good, clear.Level)
	assert.Equal(t, contracts.Caution, void.Level)
}

func TestScoreClampedToBounds(t *testing.T) {
	e := NewEngine()

	// Every affliction at once: the raw sum goes negative, the normalized
	// score must not.
	bad := quietSnapshot()
	bad.Waxing = false
	bad.PhaseName = "Waning Crescent"
	bad.VoidOfCourse = true
	bad.ViaCombusta = true
	bad.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 215, 13) // Scorpio
	bad.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, -0.4)
	bad.Aspects = []contracts.Aspect{
		{A: contracts.Moon, B: contracts.Mars, Type: contracts.Square, Orb: 2},
		{A: contracts.Moon, B: contracts.Saturn, Type: contracts.Opposition, Orb: 3},
	}
	res := e.Score(bad, contracts.ProjectOtro)
	assert.Negative(t, res.Raw)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, contracts.Avoid, res.Level)

	// Every fortune at once caps at 100.
	good := quietSnapshot()
	good.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 45, 13) // Taurus
	good.DayRuler = contracts.Jupiter
	good.HourRuler = contracts.Venus
	good.Aspects = []contracts.Aspect{
		{A: contracts.Sun, B: contracts.Moon, Type: contracts.Trine, Orb: 1},
		{A: contracts.Moon, B: contracts.Jupiter, Type: contracts.Trine, Orb: 2},
		{A: contracts.Moon, B: contracts.Venus, Type: contracts.Conjunction, Orb: 1},
	}
	res = e.Score(good, contracts.ProjectOtro)
	assert.Greater(t, res.Raw, 100.0)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, contracts.Excellent, res.Level)
}

func TestScoreDeterministic(t *testing.T) {
	e := NewEngine()
	s := quietSnapshot()
	s.Aspects = []contracts.Aspect{
		{A: contracts.Moon, B: contracts.Jupiter, Type: contracts.Sextile, Orb: 4},
	}

	a := e.Score(s, contracts.ProjectNegocio)
	b := e.Score(s, contracts.ProjectNegocio)
	assert.Equal(t, a, b)
}
