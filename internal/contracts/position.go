package contracts

import (
	"fmt"
	"math"
)

// Body identifies a tracked celestial body.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
}

// TrackedBodies lists every body the engine computes, in canonical order.
var TrackedBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Unknown"
	}
	return bodyNames[b]
}

// MarshalText renders bodies by name in JSON output.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses a body name.
func (b *Body) UnmarshalText(text []byte) error {
	for i, name := range bodyNames {
		if name == string(text) {
			*b = Body(i)
			return nil
		}
	}
	return fmt.Errorf("unknown body %q", text)
}

// Sign is a zodiac sign, Aries = 0 through Pisces = 11.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return "Unknown"
	}
	return signNames[s]
}

// MarshalText renders signs by name in JSON output.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a sign name.
func (s *Sign) UnmarshalText(text []byte) error {
	for i, name := range signNames {
		if name == string(text) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sign %q", text)
}

// BodyPosition is the computed state of one body at one instant.
type BodyPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"`   // ecliptic degrees, [0, 360)
	Speed      float64 `json:"speed"`       // degrees per day, negative when retrograde
	Sign       Sign    `json:"sign"`        // floor(longitude / 30)
	SignDegree float64 `json:"sign_degree"` // degrees into the sign, [0, 30)
	Retrograde bool    `json:"retrograde"`
}

// NewBodyPosition normalizes the longitude and derives sign placement.
func NewBodyPosition(body Body, longitude, speed float64) BodyPosition {
	lon := NormalizeDegrees(longitude)
	return BodyPosition{
		Body:       body,
		Longitude:  lon,
		Speed:      speed,
		Sign:       Sign(int(lon / 30)),
		SignDegree: math.Mod(lon, 30),
		Retrograde: speed < 0,
	}
}

// PositionSet holds the positions of all tracked bodies for one instant.
type PositionSet map[Body]BodyPosition

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Separation returns the absolute angular distance between two longitudes,
// in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
