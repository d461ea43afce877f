// Package scoring turns an astrological snapshot into an explainable
// 0-100 score for one project type.
package scoring

import (
	"math"

	"github.com/electa-app/electa/internal/contracts"
	"github.com/electa-app/electa/internal/rules"
)

// Engine evaluates the rule table against snapshots. The table is bound
// at construction; scoring itself is pure and safe for concurrent use.
type Engine struct {
	table []rules.Rule
}

// NewEngine builds an engine over the compiled-in rule table.
func NewEngine() *Engine {
	return &Engine{table: rules.All()}
}

// Score rates one snapshot for a project type. Every triggered rule
// contributes its weighted points on top of the neutral base; the result
// carries the full factor list for explainability.
func (e *Engine) Score(s *contracts.Snapshot, p contracts.ProjectType) contracts.ScoreResult {
	raw := rules.BaseScore
	var hits []contracts.RuleHit

	for _, r := range e.table {
		pts, text, ok := r.Evaluate(s, p)
		if !ok {
			continue
		}

		weighted := pts * p.CategoryWeight(r.Category)
		raw += weighted

		tone := "positive"
		if weighted < 0 {
			tone = "negative"
		}
		hits = append(hits, contracts.RuleHit{
			RuleID: r.ID,
			Text:   text,
			Points: weighted,
			Tone:   tone,
		})
	}

	score := clamp(int(math.Round(raw)))
	return contracts.ScoreResult{
		Date:    s.Instant.Date,
		Weekday: s.Instant.Weekday().String(),
		Raw:     raw,
		Score:   score,
		Level:   contracts.Classify(score),
		Factors: hits,
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
