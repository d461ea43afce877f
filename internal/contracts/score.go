package contracts

// Classification bands a normalized score. Boundaries are inclusive-lower,
// exclusive-upper, except Excellent which is closed at 100.
type Classification string

const (
	Excellent Classification = "excellent" // 80-100
	Good      Classification = "good"      // 60-79
	Caution   Classification = "caution"   // 40-59
	Avoid     Classification = "avoid"     // 0-39
)

// Classify maps a normalized score to its band.
func Classify(score int) Classification {
	switch {
	case score >= 80:
		return Excellent
	case score >= 60:
		return Good
	case score >= 40:
		return Caution
	default:
		return Avoid
	}
}

// RuleHit is one triggered rule's contribution, kept for explainability.
type RuleHit struct {
	RuleID string  `json:"rule_id"`
	Text   string  `json:"text"`
	Points float64 `json:"points"`
	Tone   string  `json:"tone"` // "positive" or "negative"
}

// ScoreResult is the rated outcome for one candidate date. Plain data,
// serialized directly to the HTTP layer.
type ScoreResult struct {
	Date      string         `json:"date"`
	Weekday   string         `json:"weekday"`
	Raw       float64        `json:"raw_score"`   // unbounded signed sum
	Score     int            `json:"score"`       // normalized to [0, 100]
	Level     Classification `json:"level"`
	Factors   []RuleHit      `json:"factors"`
	BestHours []string       `json:"best_hours,omitempty"`
	Unratable bool           `json:"unratable,omitempty"`
	Error     string         `json:"error,omitempty"`
}
