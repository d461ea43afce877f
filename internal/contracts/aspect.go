package contracts

import "fmt"

// AspectType is one of the five Ptolemaic major aspects.
type AspectType int

const (
	Conjunction AspectType = iota
	Sextile
	Square
	Trine
	Opposition
)

var aspectNames = [...]string{"Conjunction", "Sextile", "Square", "Trine", "Opposition"}
var aspectAngles = [...]float64{0, 60, 90, 120, 180}
var aspectSymbols = [...]string{"☌", "⚹", "□", "△", "☍"}

// AllAspectTypes lists the major aspects in angle order.
var AllAspectTypes = []AspectType{Conjunction, Sextile, Square, Trine, Opposition}

func (t AspectType) String() string { return aspectNames[t] }

// Angle is the exact angular relationship in degrees.
func (t AspectType) Angle() float64 { return aspectAngles[t] }

// Symbol is the traditional glyph, used in explanation texts.
func (t AspectType) Symbol() string { return aspectSymbols[t] }

// Harmonious reports whether the aspect is a soft (benefic) one.
func (t AspectType) Harmonious() bool { return t == Sextile || t == Trine }

// Hard reports whether the aspect is a square or opposition.
func (t AspectType) Hard() bool { return t == Square || t == Opposition }

// MarshalText renders aspect types by name in JSON output.
func (t AspectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses an aspect type name.
func (t *AspectType) UnmarshalText(text []byte) error {
	for i, name := range aspectNames {
		if name == string(text) {
			*t = AspectType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown aspect %q", text)
}

// Aspect is an active angular relationship between two bodies. Pairs are
// unordered; A is always the lower body constant so detection stays
// symmetric.
type Aspect struct {
	A     Body       `json:"a"`
	B     Body       `json:"b"`
	Type  AspectType `json:"type"`
	Orb   float64    `json:"orb"` // distance from exact, degrees
	Exact bool       `json:"exact"`
}

// Involves reports whether the aspect touches the given body.
func (a Aspect) Involves(b Body) bool { return a.A == b || a.B == b }

// Other returns the partner of the given body in this aspect.
func (a Aspect) Other(b Body) (Body, bool) {
	switch b {
	case a.A:
		return a.B, true
	case a.B:
		return a.A, true
	}
	return 0, false
}
