package phase

import (
	"math"
	"testing"
)

func referenceTimeline(t *testing.T) *Timeline {
	t.Helper()
	tl, err := NewTimeline(referencePhases(), 0.05)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	return tl
}

// TestDetect_ReferenceScenario runs the canonical four-phase scenario.
func TestDetect_ReferenceScenario(t *testing.T) {
	tl := referenceTimeline(t)

	tests := []struct {
		name          string
		progress      float64
		current       string
		next          string
		blend         float64
		phaseProgress float64
	}{
		{"start of timeline", 0.0, "awakening", "awakening", 0, 0},
		{"mid awakening", 0.1, "awakening", "awakening", 0, 0.5},
		{"pre-boundary zone", 0.18, "awakening", "ascension", 0.6, 0.9},
		{"exact boundary", 0.2, "ascension", "ascension", 1.0, 0},
		{"post-boundary zone", 0.22, "ascension", "ascension", 0.6, 0.05},
		{"mid ascension", 0.50, "ascension", "ascension", 0, 0.75},
		{"mid radiance", 0.7, "radiance", "radiance", 0, 0.4},
		{"end of timeline", 1.0, "descent", "descent", 0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := tl.Detect(tt.progress)
			if det.Current.Name != tt.current {
				t.Errorf("Current = %q, want %q", det.Current.Name, tt.current)
			}
			if det.Next.Name != tt.next {
				t.Errorf("Next = %q, want %q", det.Next.Name, tt.next)
			}
			if math.Abs(det.Blend-tt.blend) > 1e-9 {
				t.Errorf("Blend = %v, want %v", det.Blend, tt.blend)
			}
			if math.Abs(det.PhaseProgress-tt.phaseProgress) > 1e-9 {
				t.Errorf("PhaseProgress = %v, want %v", det.PhaseProgress, tt.phaseProgress)
			}
		})
	}
}

// TestDetect_BoundaryOwnership verifies boundary values belong to the phase
// that starts there, except 1.0 which belongs to the final phase.
func TestDetect_BoundaryOwnership(t *testing.T) {
	tl := referenceTimeline(t)

	tests := []struct {
		progress float64
		want     string
	}{
		{0.0, "awakening"},
		{0.2, "ascension"},
		{0.6, "radiance"},
		{0.85, "descent"},
		{1.0, "descent"},
	}
	for _, tt := range tests {
		if got := tl.Detect(tt.progress).Current.Name; got != tt.want {
			t.Errorf("Detect(%v).Current = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

// TestDetect_ExactlyOneCurrentPhase samples the timeline densely and checks
// the phase partition: every progress value maps to exactly one phase, and
// Next differs from Current only inside a forward transition zone.
func TestDetect_ExactlyOneCurrentPhase(t *testing.T) {
	tl := referenceTimeline(t)
	w := tl.TransitionWidth()

	const steps = 10000
	for i := 0; i <= steps; i++ {
		p := float64(i) / steps
		det := tl.Detect(p)

		owns := 0
		for _, ph := range tl.Phases() {
			if (p >= ph.Start && p < ph.End) || (ph.End == 1.0 && p == 1.0) {
				owns++
			}
		}
		if owns != 1 {
			t.Fatalf("progress %v owned by %d phases, want exactly 1", p, owns)
		}

		if det.Next.Name != det.Current.Name {
			dist := det.Current.End - p
			if dist < 0 || dist > w {
				t.Fatalf("progress %v reports next phase %q outside its transition zone",
					p, det.Next.Name)
			}
		}
	}
}

// TestDetect_BlendContinuity verifies the blend factor never jumps: stepping
// the timeline finely, consecutive blend values stay within the slope a
// continuous ramp of width w allows.
func TestDetect_BlendContinuity(t *testing.T) {
	tl := referenceTimeline(t)
	w := tl.TransitionWidth()

	const steps = 20000
	step := 1.0 / steps
	maxDelta := step/w + 1e-9

	prev := tl.Detect(0).Blend
	for i := 1; i <= steps; i++ {
		p := float64(i) / steps
		cur := tl.Detect(p).Blend
		if math.Abs(cur-prev) > maxDelta {
			t.Fatalf("blend jumped from %v to %v at progress %v", prev, cur, p)
		}
		prev = cur
	}
}

// TestDetect_BlendRisesThenFalls verifies the two halves of a transition
// zone: blend rises toward the boundary and decays past it.
func TestDetect_BlendRisesThenFalls(t *testing.T) {
	tl := referenceTimeline(t)

	// Approaching awakening→ascension at 0.2.
	if b1, b2 := tl.Detect(0.16).Blend, tl.Detect(0.19).Blend; b1 >= b2 {
		t.Errorf("blend should rise approaching the boundary: %v then %v", b1, b2)
	}
	// Departing the boundary into ascension.
	if b1, b2 := tl.Detect(0.21).Blend, tl.Detect(0.24).Blend; b1 <= b2 {
		t.Errorf("blend should fall leaving the boundary: %v then %v", b1, b2)
	}
	// Both sides meet at 1 on the boundary itself.
	if b := tl.Detect(0.2).Blend; math.Abs(b-1) > 1e-9 {
		t.Errorf("blend at boundary = %v, want 1", b)
	}
}

// TestDetect_NoWrapAtTimelineEnds verifies the 1→0 wrap blends nothing:
// loop continuity is a property of the synthesized parameters, not of
// phase identity, so no transition zone straddles progress 0 or 1.
func TestDetect_NoWrapAtTimelineEnds(t *testing.T) {
	tl := referenceTimeline(t)
	if det := tl.Detect(0.01); det.Blend != 0 {
		t.Errorf("blend near progress 0 = %v, want 0 (no predecessor)", det.Blend)
	}
	if det := tl.Detect(0.99); det.Blend != 0 {
		t.Errorf("blend near progress 1 = %v, want 0 (no successor)", det.Blend)
	}
}

// TestDetect_NextPhaseProgressClampedToZero verifies that during a forward
// transition the next phase's local progress reads 0 (its interval has not
// started yet), giving the synthesizer the next phase's start value.
func TestDetect_NextPhaseProgressClampedToZero(t *testing.T) {
	tl := referenceTimeline(t)
	det := tl.Detect(0.18)
	if det.NextPhaseProgress != 0 {
		t.Errorf("NextPhaseProgress = %v, want 0", det.NextPhaseProgress)
	}
}

// TestDetect_ZeroWidth verifies a timeline with no transition zones never
// reports a blend.
func TestDetect_ZeroWidth(t *testing.T) {
	tl, err := NewTimeline(referencePhases(), 0)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		if det := tl.Detect(p); det.Blend != 0 || det.Next.Name != det.Current.Name {
			t.Fatalf("width 0 produced a transition at progress %v", p)
		}
	}
}
