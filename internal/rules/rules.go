// Package rules holds the electional rule set as a declarative table.
// Each rule inspects a snapshot and reports its contribution; the scoring
// engine owns weighting and aggregation.
package rules

import (
	"fmt"

	"github.com/electa-app/electa/internal/contracts"
)

// EvalFunc checks one rule against a snapshot. It returns the unweighted
// points, the explanation text, and whether the rule triggered at all.
type EvalFunc func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool)

// Rule is one entry of the electional table. Trigger and Weights are
// static metadata exposed through the policy snapshot; Evaluate does the
// actual work.
type Rule struct {
	ID       string
	Category contracts.Category
	Trigger  string
	Weights  []float64
	Evaluate EvalFunc
}

// tradeSigns favor commerce and acquisition (Robson ch. 8).
var tradeSigns = map[contracts.Sign]bool{
	contracts.Taurus:    true,
	contracts.Cancer:    true,
	contracts.Virgo:     true,
	contracts.Capricorn: true,
	contracts.Pisces:    true,
}

// tradeTypes are the project types the trade-sign rule applies to.
var tradeTypes = map[contracts.ProjectType]bool{
	contracts.ProjectNegocio:   true,
	contracts.ProjectTienda:    true,
	contracts.ProjectInversion: true,
	contracts.ProjectOtro:      true,
}

var benefics = []contracts.Body{contracts.Jupiter, contracts.Venus}
var malefics = []contracts.Body{contracts.Mars, contracts.Saturn}

// All returns the full rule table in evaluation order. The slice is
// rebuilt per call so callers cannot mutate the shared table.
func All() []Rule {
	return []Rule{
		{
			ID:       "moon-waxing",
			Category: contracts.CategoryLunar,
			Trigger:  "Moon is waxing",
			Weights:  []float64{PtsMoonWaxing},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				if !s.Waxing {
					return 0, "", false
				}
				return PtsMoonWaxing, fmt.Sprintf("Waxing Moon (%s) supports growth", s.PhaseName), true
			},
		},
		{
			ID:       "moon-waning",
			Category: contracts.CategoryLunar,
			Trigger:  "Moon is waning",
			Weights:  []float64{PtsMoonWaning},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				if s.Waxing {
					return 0, "", false
				}
				return PtsMoonWaning, fmt.Sprintf("Waning Moon (%s) drains new beginnings", s.PhaseName), true
			},
		},
		{
			ID:       "moon-void",
			Category: contracts.CategoryLunar,
			Trigger:  "Moon is void of course",
			Weights:  []float64{PtsVoidOfCourse},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				if !s.VoidOfCourse {
					return 0, "", false
				}
				return PtsVoidOfCourse, "Void-of-course Moon: nothing will come of the matter", true
			},
		},
		{
			ID:       "via-combusta",
			Category: contracts.CategoryLunar,
			Trigger:  "Moon in the Via Combusta (15° Libra to 15° Scorpio)",
			Weights:  []float64{PtsViaCombusta},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				if !s.ViaCombusta {
					return 0, "", false
				}
				return PtsViaCombusta, "Moon transits the Via Combusta, the burned path", true
			},
		},
		{
			ID:       "moon-fall",
			Category: contracts.CategorySign,
			Trigger:  "Moon in Scorpio (its fall)",
			Weights:  []float64{PtsMoonFall},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				moon, ok := s.Position(contracts.Moon)
				if !ok || moon.Sign != contracts.Scorpio {
					return 0, "", false
				}
				return PtsMoonFall, "Moon in Scorpio, the sign of its fall", true
			},
		},
		{
			ID:       "moon-trade-sign",
			Category: contracts.CategorySign,
			Trigger:  "Moon in Taurus, Cancer, Virgo, Capricorn or Pisces (trade projects)",
			Weights:  []float64{PtsMoonTrade},
			Evaluate: func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool) {
				if !tradeTypes[p] {
					return 0, "", false
				}
				moon, ok := s.Position(contracts.Moon)
				if !ok || !tradeSigns[moon.Sign] {
					return 0, "", false
				}
				return PtsMoonTrade, fmt.Sprintf("Moon in %s favors trade and gain", moon.Sign), true
			},
		},
		{
			ID:       "mercury-retrograde",
			Category: contracts.CategoryMercury,
			Trigger:  "Mercury is retrograde",
			Weights:  []float64{PtsMercuryRetrograde},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				merc, ok := s.Position(contracts.Mercury)
				if !ok || !merc.Retrograde {
					return 0, "", false
				}
				return PtsMercuryRetrograde, "Mercury retrograde: delays, revisions, broken agreements", true
			},
		},
		{
			ID:       "mercury-direct",
			Category: contracts.CategoryMercury,
			Trigger:  "Mercury is direct",
			Weights:  []float64{PtsMercuryDirect},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				merc, ok := s.Position(contracts.Mercury)
				if !ok || merc.Retrograde {
					return 0, "", false
				}
				return PtsMercuryDirect, "Mercury direct keeps communication and paperwork flowing", true
			},
		},
		{
			ID:       "moon-jupiter",
			Category: contracts.CategoryBenefic,
			Trigger:  "Moon in soft aspect to Jupiter",
			Weights:  []float64{PtsMoonJupiterMajor, PtsMoonJupiterSextile},
			Evaluate: softAspectRule(contracts.Jupiter, PtsMoonJupiterMajor, PtsMoonJupiterSextile),
		},
		{
			ID:       "moon-venus",
			Category: contracts.CategoryBenefic,
			Trigger:  "Moon in soft aspect to Venus",
			Weights:  []float64{PtsMoonVenusMajor, PtsMoonVenusSextile},
			Evaluate: softAspectRule(contracts.Venus, PtsMoonVenusMajor, PtsMoonVenusSextile),
		},
		{
			ID:       "moon-jupiter-afflicted",
			Category: contracts.CategoryMalefic,
			Trigger:  "Moon square or opposed Jupiter",
			Weights:  []float64{PtsMoonJupiterHard},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				asp, ok := s.AspectBetween(contracts.Moon, contracts.Jupiter)
				if !ok || !asp.Type.Hard() {
					return 0, "", false
				}
				return PtsMoonJupiterHard, aspectText(asp, contracts.Jupiter, "mild excess"), true
			},
		},
		{
			ID:       "moon-mars",
			Category: contracts.CategoryMalefic,
			Trigger:  "Moon afflicted by Mars",
			Weights:  []float64{PtsMoonMaleficConj, PtsMoonMaleficHard},
			Evaluate: maleficAspectRule(contracts.Mars, "haste and conflict"),
		},
		{
			ID:       "moon-saturn",
			Category: contracts.CategoryMalefic,
			Trigger:  "Moon afflicted by Saturn",
			Weights:  []float64{PtsMoonMaleficConj, PtsMoonMaleficHard},
			Evaluate: maleficAspectRule(contracts.Saturn, "delay and restriction"),
		},
		{
			ID:       "benefic-significator",
			Category: contracts.CategoryBenefic,
			Trigger:  "Jupiter or Venus trine/sextile a project significator",
			Weights:  []float64{PtsBeneficToSignificator},
			Evaluate: func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool) {
				for _, sig := range p.Significators() {
					for _, ben := range benefics {
						if ben == sig {
							continue
						}
						asp, ok := s.AspectBetween(ben, sig)
						if ok && asp.Type.Harmonious() {
							text := fmt.Sprintf("%s %s %s strengthens the project's significator",
								ben, asp.Type.Symbol(), sig)
							return PtsBeneficToSignificator, text, true
						}
					}
				}
				return 0, "", false
			},
		},
		{
			ID:       "malefic-significator",
			Category: contracts.CategoryMalefic,
			Trigger:  "Mars or Saturn square/opposed a project significator",
			Weights:  []float64{PtsMaleficToSignificator},
			Evaluate: func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool) {
				for _, sig := range p.Significators() {
					for _, mal := range malefics {
						if mal == sig {
							continue
						}
						asp, ok := s.AspectBetween(mal, sig)
						if ok && asp.Type.Hard() {
							text := fmt.Sprintf("%s %s %s afflicts the project's significator",
								mal, asp.Type.Symbol(), sig)
							return PtsMaleficToSignificator, text, true
						}
					}
				}
				return 0, "", false
			},
		},
		{
			ID:       "sun-moon-harmony",
			Category: contracts.CategorySolar,
			Trigger:  "Sun trine or sextile the Moon",
			Weights:  []float64{PtsSunMoonTrine, PtsSunMoonSextile},
			Evaluate: func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
				asp, ok := s.AspectBetween(contracts.Sun, contracts.Moon)
				if !ok || !asp.Type.Harmonious() {
					return 0, "", false
				}
				pts := PtsSunMoonSextile
				if asp.Type == contracts.Trine {
					pts = PtsSunMoonTrine
				}
				return pts, fmt.Sprintf("Sun %s Moon harmonizes will and circumstance", asp.Type.Symbol()), true
			},
		},
		{
			ID:       "day-ruler-sympathy",
			Category: contracts.CategoryRuler,
			Trigger:  "Day ruler among the project's significators",
			Weights:  []float64{PtsDayRulerSympathy},
			Evaluate: func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool) {
				if !isSignificator(s.DayRuler, p) {
					return 0, "", false
				}
				return PtsDayRulerSympathy, fmt.Sprintf("%s's day sympathizes with the undertaking", s.DayRuler), true
			},
		},
		{
			ID:       "hour-ruler-sympathy",
			Category: contracts.CategoryRuler,
			Trigger:  "Hour ruler among the project's significators",
			Weights:  []float64{PtsHourRulerSympathy},
			Evaluate: func(s *contracts.Snapshot, p contracts.ProjectType) (float64, string, bool) {
				if !isSignificator(s.HourRuler, p) {
					return 0, "", false
				}
				return PtsHourRulerSympathy, fmt.Sprintf("The hour of %s favors the undertaking", s.HourRuler), true
			},
		},
	}
}

func isSignificator(b contracts.Body, p contracts.ProjectType) bool {
	for _, sig := range p.Significators() {
		if sig == b {
			return true
		}
	}
	return false
}

// softAspectRule scores a harmonious Moon aspect to a benefic, where the
// conjunction counts with the major (trine) weight.
func softAspectRule(body contracts.Body, major, sextile float64) EvalFunc {
	return func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
		asp, ok := s.AspectBetween(contracts.Moon, body)
		if !ok {
			return 0, "", false
		}
		switch asp.Type {
		case contracts.Conjunction, contracts.Trine:
			return major, aspectText(asp, body, "fortune and increase"), true
		case contracts.Sextile:
			return sextile, aspectText(asp, body, "opportunity"), true
		}
		return 0, "", false
	}
}

// maleficAspectRule scores a Moon affliction by Mars or Saturn.
func maleficAspectRule(body contracts.Body, theme string) EvalFunc {
	return func(s *contracts.Snapshot, _ contracts.ProjectType) (float64, string, bool) {
		asp, ok := s.AspectBetween(contracts.Moon, body)
		if !ok {
			return 0, "", false
		}
		switch {
		case asp.Type == contracts.Conjunction:
			return PtsMoonMaleficConj, aspectText(asp, body, theme), true
		case asp.Type.Hard():
			return PtsMoonMaleficHard, aspectText(asp, body, theme), true
		}
		return 0, "", false
	}
}

func aspectText(asp contracts.Aspect, body contracts.Body, theme string) string {
	return fmt.Sprintf("Moon %s %s (orb %.1f°): %s", asp.Type.Symbol(), body, asp.Orb, theme)
}
