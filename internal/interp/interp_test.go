package interp

import (
	"math"
	"testing"
)

// TestLerpClamp verifies out-of-range progress returns the endpoints,
// never an extrapolated value.
func TestLerpClamp(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		expected float64
	}{
		{"below range", -0.5, 10},
		{"far below range", -100, 10},
		{"at start", 0, 10},
		{"midpoint", 0.5, 15},
		{"at end", 1, 20},
		{"above range", 1.5, 20},
		{"far above range", 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(10, 20, tt.progress, "linear")
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Lerp(10, 20, %v) = %v, want %v", tt.progress, got, tt.expected)
			}
		})
	}
}

// TestLerpApplyEasing verifies the named easing shapes the interpolation.
func TestLerpApplyEasing(t *testing.T) {
	// easeOutCubic(0.5) = 0.875, so Lerp(0, 100, 0.5) = 87.5
	got := Lerp(0, 100, 0.5, "easeOutCubic")
	if math.Abs(got-87.5) > 0.001 {
		t.Errorf("Lerp with easeOutCubic = %v, want 87.5", got)
	}
}

// TestLerpUnknownEasingFallsBackToLinear verifies the non-fatal fallback.
func TestLerpUnknownEasingFallsBackToLinear(t *testing.T) {
	got := Lerp(0, 100, 0.25, "noSuchEasing")
	if math.Abs(got-25) > 1e-9 {
		t.Errorf("Lerp with unknown easing = %v, want linear 25", got)
	}
}

// TestLerpDescending verifies interpolation works with from > to.
func TestLerpDescending(t *testing.T) {
	got := Lerp(1.0, 0.2, 0.5, "linear")
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Lerp(1.0, 0.2, 0.5) = %v, want 0.6", got)
	}
}

// TestSmoothstep verifies the fixed cross-phase blend curve.
func TestSmoothstep(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{0.25, 0.15625}, // t²(3-2t)
		{0.5, 0.5},
		{0.75, 0.84375},
		{1, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.input); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestLerpColor verifies per-channel RGB interpolation.
func TestLerpColor(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		progress float64
		expected string
	}{
		{"at start", "#000000", "#ffffff", 0, "#000000"},
		{"at end", "#000000", "#ffffff", 1, "#ffffff"},
		{"midpoint gray", "#000000", "#fefefe", 0.5, "#7f7f7f"},
		{"red to blue midpoint", "#ff0000", "#0000ff", 0.5, "#800080"},
		{"clamped above", "#102030", "#405060", 2.0, "#405060"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(tt.from, tt.to, tt.progress); got != tt.expected {
				t.Errorf("LerpColor(%s, %s, %v) = %s, want %s",
					tt.from, tt.to, tt.progress, got, tt.expected)
			}
		})
	}
}

// TestLerpColorMalformed verifies the fallback to the from color.
func TestLerpColorMalformed(t *testing.T) {
	if got := LerpColor("nothex", "#ffffff", 0.5); got != "nothex" {
		t.Errorf("malformed from: got %s, want passthrough", got)
	}
	if got := LerpColor("#102030", "short", 0.5); got != "#102030" {
		t.Errorf("malformed to: got %s, want from color", got)
	}
}
