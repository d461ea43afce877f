package rules

import (
	"testing"

	"github.com/electa-app/electa/internal/contracts"
)

// baseSnapshot is a quiet sky: waxing Moon in Gemini, Mercury direct, no
// aspects, unsympathetic rulers. Tests mutate it per case.
func baseSnapshot() *contracts.Snapshot {
	s := &contracts.Snapshot{
		Positions:  contracts.PositionSet{},
		Waxing:     true,
		PhaseName:  "Waxing Crescent",
		PhaseAngle: 60,
		DayRuler:   contracts.Mars,
		HourRuler:  contracts.Saturn,
	}
	s.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 75, 13)
	s.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, 1.2)
	return s
}

func evalRule(t *testing.T, id string, s *contracts.Snapshot, p contracts.ProjectType) (float64, bool) {
	t.Helper()
	for _, r := range All() {
		if r.ID == id {
			pts, text, ok := r.Evaluate(s, p)
			if ok && text == "" {
				t.Errorf("rule %s triggered without explanation text", id)
			}
			return pts, ok
		}
	}
	t.Fatalf("rule %s not in table", id)
	return 0, false
}

func TestMoonPhaseRules(t *testing.T) {
	s := baseSnapshot()

	if pts, ok := evalRule(t, "moon-waxing", s, contracts.ProjectOtro); !ok || pts != PtsMoonWaxing {
		t.Errorf("waxing: got %v,%v", pts, ok)
	}
	if _, ok := evalRule(t, "moon-waning", s, contracts.ProjectOtro); ok {
		t.Error("waning rule fired on a waxing Moon")
	}

	s.Waxing = false
	s.PhaseName = "Waning Gibbous"
	if pts, ok := evalRule(t, "moon-waning", s, contracts.ProjectOtro); !ok || pts != PtsMoonWaning {
		t.Errorf("waning: got %v,%v", pts, ok)
	}
	if _, ok := evalRule(t, "moon-waxing", s, contracts.ProjectOtro); ok {
		t.Error("waxing rule fired on a waning Moon")
	}
}

func TestLunarAfflictionRules(t *testing.T) {
	s := baseSnapshot()
	if _, ok := evalRule(t, "moon-void", s, contracts.ProjectOtro); ok {
		t.Error("void rule fired without the flag")
	}

	s.VoidOfCourse = true
	s.ViaCombusta = true
	if pts, ok := evalRule(t, "moon-void", s, contracts.ProjectOtro); !ok || pts != PtsVoidOfCourse {
		t.Errorf("void: got %v,%v", pts, ok)
	}
	if pts, ok := evalRule(t, "via-combusta", s, contracts.ProjectOtro); !ok || pts != PtsViaCombusta {
		t.Errorf("via combusta: got %v,%v", pts, ok)
	}
}

func TestMoonSignRules(t *testing.T) {
	s := baseSnapshot()
	s.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 215, 13) // Scorpio

	if pts, ok := evalRule(t, "moon-fall", s, contracts.ProjectOtro); !ok || pts != PtsMoonFall {
		t.Errorf("fall: got %v,%v", pts, ok)
	}
	if _, ok := evalRule(t, "moon-trade-sign", s, contracts.ProjectTienda); ok {
		t.Error("Scorpio is not a trade sign")
	}

	s.Positions[contracts.Moon] = contracts.NewBodyPosition(contracts.Moon, 45, 13) // Taurus
	if pts, ok := evalRule(t, "moon-trade-sign", s, contracts.ProjectTienda); !ok || pts != PtsMoonTrade {
		t.Errorf("trade sign: got %v,%v", pts, ok)
	}
	// Applicability: contract elections ignore the trade-sign rule.
	if _, ok := evalRule(t, "moon-trade-sign", s, contracts.ProjectContrato); ok {
		t.Error("trade-sign rule fired for a contract")
	}
}

func TestMercuryRules(t *testing.T) {
	s := baseSnapshot()
	if pts, ok := evalRule(t, "mercury-direct", s, contracts.ProjectContrato); !ok || pts != PtsMercuryDirect {
		t.Errorf("direct: got %v,%v", pts, ok)
	}

	s.Positions[contracts.Mercury] = contracts.NewBodyPosition(contracts.Mercury, 10, -0.5)
	if pts, ok := evalRule(t, "mercury-retrograde", s, contracts.ProjectContrato); !ok || pts != PtsMercuryRetrograde {
		t.Errorf("retrograde: got %v,%v", pts, ok)
	}
	if _, ok := evalRule(t, "mercury-direct", s, contracts.ProjectContrato); ok {
		t.Error("direct rule fired while retrograde")
	}
}

func TestMoonBeneficAspects(t *testing.T) {
	tests := []struct {
		aspect contracts.AspectType
		rule   string
		want   float64
	}{
		{contracts.Conjunction, "moon-jupiter", PtsMoonJupiterMajor},
		{contracts.Trine, "moon-jupiter", PtsMoonJupiterMajor},
		{contracts.Sextile, "moon-jupiter", PtsMoonJupiterSextile},
		{contracts.Square, "moon-jupiter-afflicted", PtsMoonJupiterHard},
		{contracts.Opposition, "moon-jupiter-afflicted", PtsMoonJupiterHard},
	}

	for _, tt := range tests {
		s := baseSnapshot()
		s.Aspects = []contracts.Aspect{
			{A: contracts.Moon, B: contracts.Jupiter, Type: tt.aspect, Orb: 2.5},
		}
		if pts, ok := evalRule(t, tt.rule, s, contracts.ProjectOtro); !ok || pts != tt.want {
			t.Errorf("Moon %s Jupiter: rule %s got %v,%v want %v", tt.aspect, tt.rule, pts, ok, tt.want)
		}
	}

	s := baseSnapshot()
	s.Aspects = []contracts.Aspect{
		{A: contracts.Moon, B: contracts.Venus, Type: contracts.Sextile, Orb: 1.2},
	}
	if pts, ok := evalRule(t, "moon-venus", s, contracts.ProjectOtro); !ok || pts != PtsMoonVenusSextile {
		t.Errorf("Moon sextile Venus: got %v,%v", pts, ok)
	}
}

func TestMoonMaleficAspects(t *testing.T) {
	s := baseSnapshot()
	s.Aspects = []contracts.Aspect{
		{A: contracts.Moon, B: contracts.Mars, Type: contracts.Conjunction, Orb: 4},
		{A: contracts.Moon, B: contracts.Saturn, Type: contracts.Square, Orb: 3},
	}

	if pts, ok := evalRule(t, "moon-mars", s, contracts.ProjectOtro); !ok || pts != PtsMoonMaleficConj {
		t.Errorf("Moon conj Mars: got %v,%v", pts, ok)
	}
	if pts, ok := evalRule(t, "moon-saturn", s, contracts.ProjectOtro); !ok || pts != PtsMoonMaleficHard {
		t.Errorf("Moon square Saturn: got %v,%v", pts, ok)
	}

	// A trine to a malefic is not an affliction.
	s.Aspects = []contracts.Aspect{
		{A: contracts.Moon, B: contracts.Saturn, Type: contracts.Trine, Orb: 1},
	}
	if _, ok := evalRule(t, "moon-saturn", s, contracts.ProjectOtro); ok {
		t.Error("Moon trine Saturn should not fire the affliction rule")
	}
}

func TestSignificatorRules(t *testing.T) {
	// contrato is signified by Mercury and Jupiter.
	s := baseSnapshot()
	s.Aspects = []contracts.Aspect{
		{A: contracts.Mercury, B: contracts.Venus, Type: contracts.Trine, Orb: 2},
	}
	if pts, ok := evalRule(t, "benefic-significator", s, contracts.ProjectContrato); !ok || pts != PtsBeneficToSignificator {
		t.Errorf("Venus trine Mercury: got %v,%v", pts, ok)
	}

	s.Aspects = []contracts.Aspect{
		{A: contracts.Mercury, B: contracts.Saturn, Type: contracts.Opposition, Orb: 5},
	}
	if pts, ok := evalRule(t, "malefic-significator", s, contracts.ProjectContrato); !ok || pts != PtsMaleficToSignificator {
		t.Errorf("Saturn opposed Mercury: got %v,%v", pts, ok)
	}

	// A benefic aspecting itself-as-significator does not count: Jupiter
	// signifies inversion, so only Venus can deliver the benefic aspect.
	s.Aspects = []contracts.Aspect{
		{A: contracts.Mars, B: contracts.Jupiter, Type: contracts.Sextile, Orb: 1},
	}
	if _, ok := evalRule(t, "benefic-significator", s, contracts.ProjectInversion); ok {
		t.Error("Mars sextile Jupiter is not a benefic aspect to a significator")
	}
}

func TestSunMoonHarmony(t *testing.T) {
	s := baseSnapshot()
	s.Aspects = []contracts.Aspect{
		{A: contracts.Sun, B: contracts.Moon, Type: contracts.Trine, Orb: 3},
	}
	if pts, ok := evalRule(t, "sun-moon-harmony", s, contracts.ProjectOtro); !ok || pts != PtsSunMoonTrine {
		t.Errorf("trine: got %v,%v", pts, ok)
	}

	s.Aspects[0].Type = contracts.Sextile
	if pts, ok := evalRule(t, "sun-moon-harmony", s, contracts.ProjectOtro); !ok || pts != PtsSunMoonSextile {
		t.Errorf("sextile: got %v,%v", pts, ok)
	}

	s.Aspects[0].Type = contracts.Square
	if _, ok := evalRule(t, "sun-moon-harmony", s, contracts.ProjectOtro); ok {
		t.Error("square should not score as harmony")
	}
}

func TestRulerSympathy(t *testing.T) {
	s := baseSnapshot()
	s.DayRuler = contracts.Jupiter // otro significators: Jupiter, Venus
	s.HourRuler = contracts.Venus

	if pts, ok := evalRule(t, "day-ruler-sympathy", s, contracts.ProjectOtro); !ok || pts != PtsDayRulerSympathy {
		t.Errorf("day ruler: got %v,%v", pts, ok)
	}
	if pts, ok := evalRule(t, "hour-ruler-sympathy", s, contracts.ProjectOtro); !ok || pts != PtsHourRulerSympathy {
		t.Errorf("hour ruler: got %v,%v", pts, ok)
	}

	s.DayRuler = contracts.Saturn
	if _, ok := evalRule(t, "day-ruler-sympathy", s, contracts.ProjectOtro); ok {
		t.Error("Saturn's day has no sympathy for a general project")
	}
}

func TestRuleIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range All() {
		if seen[r.ID] {
			t.Errorf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = true
		if len(r.Weights) == 0 {
			t.Errorf("rule %q has no declared weights", r.ID)
		}
		if r.Trigger == "" {
			t.Errorf("rule %q has no trigger description", r.ID)
		}
	}
}
