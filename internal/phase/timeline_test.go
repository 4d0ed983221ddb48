package phase

import (
	"math"
	"strings"
	"testing"
)

func referencePhases() []Phase {
	return []Phase{
		{Name: "awakening", Start: 0, End: 0.2},
		{Name: "ascension", Start: 0.2, End: 0.6},
		{Name: "radiance", Start: 0.6, End: 0.85},
		{Name: "descent", Start: 0.85, End: 1.0},
	}
}

// TestNewTimeline_Valid verifies a well-formed timeline constructs cleanly.
func TestNewTimeline_Valid(t *testing.T) {
	tl, err := NewTimeline(referencePhases(), 0.05)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	if got := len(tl.Phases()); got != 4 {
		t.Errorf("expected 4 phases, got %d", got)
	}
	if tl.TransitionWidth() != 0.05 {
		t.Errorf("expected width 0.05, got %v", tl.TransitionWidth())
	}
}

// TestNewTimeline_AggregatesErrors verifies all validation problems are
// reported at once rather than failing on the first.
func TestNewTimeline_AggregatesErrors(t *testing.T) {
	phases := []Phase{
		{Name: "a", Start: 0.1, End: 0.5}, // does not start at 0
		{Name: "b", Start: 0.6, End: 0.4}, // gap after a, ends before start
	}
	_, err := NewTimeline(phases, 0.05)
	if err != nil {
		msg := err.Error()
		for _, want := range []string{"starts at 0.1", "gap or overlap", "ends (0.4) before it starts"} {
			if !strings.Contains(msg, want) {
				t.Errorf("error %q missing %q", msg, want)
			}
		}
	} else {
		t.Fatal("expected error for malformed timeline")
	}
}

// TestNewTimeline_Empty verifies the empty timeline is rejected.
func TestNewTimeline_Empty(t *testing.T) {
	if _, err := NewTimeline(nil, 0.05); err == nil {
		t.Fatal("expected error for empty timeline")
	}
}

// TestNewTimeline_ClampsWidth verifies oversized transition zones are
// clamped to half the shortest phase; overlapping zones are undefined.
func TestNewTimeline_ClampsWidth(t *testing.T) {
	tl, err := NewTimeline(referencePhases(), 0.3)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	// Shortest phase is descent (0.15), half of that is 0.075.
	if got := tl.TransitionWidth(); math.Abs(got-0.075) > 1e-12 {
		t.Errorf("expected clamped width 0.075, got %v", got)
	}

	tl, err = NewTimeline(referencePhases(), -1)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	if got := tl.TransitionWidth(); got != 0 {
		t.Errorf("expected negative width clamped to 0, got %v", got)
	}
}

// TestNewTimeline_ZeroWidthPhasePermitted verifies degenerate phases pass
// validation (they just never own any progress interval).
func TestNewTimeline_ZeroWidthPhasePermitted(t *testing.T) {
	phases := []Phase{
		{Name: "a", Start: 0, End: 0.5},
		{Name: "flash", Start: 0.5, End: 0.5},
		{Name: "b", Start: 0.5, End: 1},
	}
	tl, err := NewTimeline(phases, 0.05)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	det := tl.Detect(0.5)
	if det.Current.Name != "b" {
		t.Errorf("progress 0.5 should land in %q's interval, got %q", "b", det.Current.Name)
	}
}

// TestTimeline_Immutable verifies the phase list handed out is a copy.
func TestTimeline_Immutable(t *testing.T) {
	tl, err := NewTimeline(referencePhases(), 0.05)
	if err != nil {
		t.Fatalf("NewTimeline() error: %v", err)
	}
	got := tl.Phases()
	got[0].Name = "mutated"
	if tl.Phases()[0].Name != "awakening" {
		t.Error("mutating the returned slice changed the timeline")
	}
}
