package contracts

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Classification
	}{
		{100, Excellent},
		{80, Excellent},
		{79, Good},
		{60, Good},
		{59, Caution},
		{40, Caution},
		{39, Avoid},
		{0, Avoid},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-370, 350},
		{725, 5},
	}

	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); got != tt.want {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 90, 0},
		{359, 1, 2},
	}

	for _, tt := range tests {
		if got := Separation(tt.a, tt.b); got != tt.want {
			t.Errorf("Separation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewBodyPosition(t *testing.T) {
	p := NewBodyPosition(Moon, 375.5, -12.1)

	if p.Longitude != 15.5 {
		t.Errorf("Longitude = %v, want 15.5", p.Longitude)
	}
	if p.Sign != Aries {
		t.Errorf("Sign = %s, want Aries", p.Sign)
	}
	if !p.Retrograde {
		t.Error("negative speed should mark retrograde")
	}

	p = NewBodyPosition(Saturn, 212.0, 0.03)
	if p.Sign != Scorpio {
		t.Errorf("Sign = %s, want Scorpio", p.Sign)
	}
	if p.SignDegree != 2.0 {
		t.Errorf("SignDegree = %v, want 2.0", p.SignDegree)
	}
	if p.Retrograde {
		t.Error("positive speed should not mark retrograde")
	}
}
