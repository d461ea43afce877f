package astro

import (
	"testing"

	"github.com/electa-app/electa/internal/contracts"
)

func TestAspectBetweenSymmetric(t *testing.T) {
	pairs := [][2]float64{
		{10, 130},  // trine, orb 0
		{5, 352},   // conjunction across 0°
		{200, 27},  // opposition territory
		{100, 161}, // sextile, orb 1
		{40, 75},   // nothing
	}

	for _, p := range pairs {
		t1, o1, ok1 := aspectBetween(p[0], p[1])
		t2, o2, ok2 := aspectBetween(p[1], p[0])
		if t1 != t2 || o1 != o2 || ok1 != ok2 {
			t.Errorf("aspectBetween(%v, %v) not symmetric: (%v,%v,%v) vs (%v,%v,%v)",
				p[0], p[1], t1, o1, ok1, t2, o2, ok2)
		}
	}
}

func TestAspectBetween(t *testing.T) {
	tests := []struct {
		a, b float64
		want contracts.AspectType
		ok   bool
	}{
		{10, 130, contracts.Trine, true},
		{10, 131, contracts.Trine, true}, // orb 1
		{10, 139, 0, false},              // orb 9 exceeds trine's 8
		{5, 352, contracts.Conjunction, true},
		{0, 61, contracts.Sextile, true},
		{0, 67, 0, false}, // orb 7 exceeds sextile's 6
		{0, 96, contracts.Square, true},
		{0, 98, 0, false},
		{20, 195, contracts.Opposition, true},
		{40, 75, 0, false},
	}

	for _, tt := range tests {
		got, _, ok := aspectBetween(tt.a, tt.b)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("aspectBetween(%v, %v) = %v, %v; want %v, %v",
				tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectAspects(t *testing.T) {
	set := contracts.PositionSet{
		contracts.Sun:     contracts.NewBodyPosition(contracts.Sun, 0, 1),
		contracts.Moon:    contracts.NewBodyPosition(contracts.Moon, 120.5, 13),
		contracts.Jupiter: contracts.NewBodyPosition(contracts.Jupiter, 200, 0.08),
	}

	aspects := DetectAspects(set)
	if len(aspects) != 1 {
		t.Fatalf("got %d aspects, want 1: %+v", len(aspects), aspects)
	}

	a := aspects[0]
	if a.A != contracts.Sun || a.B != contracts.Moon || a.Type != contracts.Trine {
		t.Errorf("unexpected aspect %+v", a)
	}
	if !a.Exact {
		t.Error("orb 0.5 should be flagged exact")
	}
}
