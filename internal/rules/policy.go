package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/electa-app/electa/internal/astro"
	"github.com/electa-app/electa/internal/contracts"
)

// PolicyVersion identifies the rule table revision. Bump whenever a
// weight, orb or applicability changes so persisted scans stay auditable.
const PolicyVersion = "robson-1937.1"

// Policy is the serializable description of everything that influences a
// score: weights, orbs and project profiles. Struct (not map) fields keep
// the hash reproducible across runs.
type Policy struct {
	Version   string          `yaml:"version" json:"version"`
	BaseScore float64         `yaml:"base_score" json:"base_score"`
	ScoreMin  int             `yaml:"score_min" json:"score_min"`
	ScoreMax  int             `yaml:"score_max" json:"score_max"`
	Orbs      []OrbPolicy     `yaml:"orbs" json:"orbs"`
	Rules     []RulePolicy    `yaml:"rules" json:"rules"`
	Profiles  []ProfilePolicy `yaml:"profiles" json:"profiles"`
}

// OrbPolicy is one aspect's allowed orb.
type OrbPolicy struct {
	Aspect string  `yaml:"aspect" json:"aspect"`
	Angle  float64 `yaml:"angle" json:"angle"`
	Orb    float64 `yaml:"orb" json:"orb"`
}

// RulePolicy is one rule's static metadata.
type RulePolicy struct {
	ID       string    `yaml:"id" json:"id"`
	Category string    `yaml:"category" json:"category"`
	Trigger  string    `yaml:"trigger" json:"trigger"`
	Weights  []float64 `yaml:"weights" json:"weights"`
}

// ProfilePolicy is one project type's reading of the sky.
type ProfilePolicy struct {
	Type          string             `yaml:"type" json:"type"`
	Description   string             `yaml:"description" json:"description"`
	Significators []string           `yaml:"significators" json:"significators"`
	Weights       []CategoryOverride `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// CategoryOverride is a non-default category multiplier.
type CategoryOverride struct {
	Category string  `yaml:"category" json:"category"`
	Factor   float64 `yaml:"factor" json:"factor"`
}

// Snapshot assembles the current policy from the compiled-in tables.
func Snapshot() *Policy {
	p := &Policy{
		Version:   PolicyVersion,
		BaseScore: BaseScore,
		ScoreMin:  0,
		ScoreMax:  100,
	}

	for _, t := range contracts.AllAspectTypes {
		p.Orbs = append(p.Orbs, OrbPolicy{
			Aspect: t.String(),
			Angle:  t.Angle(),
			Orb:    astro.Orb(t),
		})
	}

	for _, r := range All() {
		p.Rules = append(p.Rules, RulePolicy{
			ID:       r.ID,
			Category: string(r.Category),
			Trigger:  r.Trigger,
			Weights:  r.Weights,
		})
	}

	for _, pt := range contracts.AllProjectTypes {
		prof := pt.Profile()
		pp := ProfilePolicy{
			Type:        string(pt),
			Description: prof.Description,
		}
		for _, sig := range prof.Significators {
			pp.Significators = append(pp.Significators, sig.String())
		}
		// Deterministic order: iterate the category declaration order,
		// not the map.
		for _, c := range allCategories {
			if f, ok := prof.Weights[c]; ok {
				pp.Weights = append(pp.Weights, CategoryOverride{Category: string(c), Factor: f})
			}
		}
		p.Profiles = append(p.Profiles, pp)
	}

	return p
}

var allCategories = []contracts.Category{
	contracts.CategoryLunar, contracts.CategoryMercury, contracts.CategoryBenefic,
	contracts.CategoryMalefic, contracts.CategorySign, contracts.CategorySolar,
	contracts.CategoryRuler,
}

// Hash returns the SHA-256 of the policy's canonical JSON form. Stored
// with every persisted scan so results can be traced to the exact table
// that produced them.
func (p *Policy) Hash() (string, error) {
	jsonBytes, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("rules: hash policy: %w", err)
	}
	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// YAML renders the policy for human review.
func (p *Policy) YAML() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("rules: marshal policy: %w", err)
	}
	return out, nil
}
