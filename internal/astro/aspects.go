package astro

import (
	"math"

	"github.com/electa-app/electa/internal/contracts"
)

// Orb tolerances in degrees. Policy constants from the Robson methodology,
// not configurable.
var orbs = map[contracts.AspectType]float64{
	contracts.Conjunction: 8,
	contracts.Sextile:     6,
	contracts.Square:      7,
	contracts.Trine:       8,
	contracts.Opposition:  8,
}

// exactOrb marks an aspect as partile.
const exactOrb = 1.0

// Orb returns the allowed orb for an aspect type.
func Orb(t contracts.AspectType) float64 { return orbs[t] }

// aspectBetween finds the major aspect, if any, between two longitudes.
// Symmetric by construction: only the absolute separation is used.
func aspectBetween(lonA, lonB float64) (contracts.AspectType, float64, bool) {
	sep := contracts.Separation(lonA, lonB)

	for _, t := range contracts.AllAspectTypes {
		orb := math.Abs(sep - t.Angle())
		if orb <= orbs[t] {
			return t, orb, true
		}
	}
	return 0, 0, false
}

// DetectAspects computes the active aspects between every unordered pair of
// tracked bodies. Pairs are emitted with the lower body constant first.
func DetectAspects(set contracts.PositionSet) []contracts.Aspect {
	var aspects []contracts.Aspect

	for i := 0; i < len(contracts.TrackedBodies); i++ {
		for j := i + 1; j < len(contracts.TrackedBodies); j++ {
			a, okA := set[contracts.TrackedBodies[i]]
			b, okB := set[contracts.TrackedBodies[j]]
			if !okA || !okB {
				continue
			}

			if t, orb, ok := aspectBetween(a.Longitude, b.Longitude); ok {
				aspects = append(aspects, contracts.Aspect{
					A:     a.Body,
					B:     b.Body,
					Type:  t,
					Orb:   orb,
					Exact: orb < exactOrb,
				})
			}
		}
	}

	return aspects
}
