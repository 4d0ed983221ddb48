// Package phase implements the phase timeline model and the phase
// detection / transition blending algorithm at the heart of the animation
// synthesis engine.
//
// A timeline divides the normalized animation progress [0, 1] into named,
// contiguous phases. Around each internal phase boundary lies a symmetric
// transition zone inside which output parameters are cross-faded between
// the two adjacent phases instead of snapping.
package phase

import (
	"fmt"
	"log"
	"strings"
)

// Phase is one named, time-bounded segment of the animation timeline.
// Start and End are fractions of the overall timeline. Intervals are
// half-open [Start, End); the final phase is closed at 1.0.
type Phase struct {
	Name  string
	Start float64
	End   float64
}

// Length returns the phase's share of the timeline.
func (p Phase) Length() float64 {
	return p.End - p.Start
}

// Timeline is an ordered, validated list of phases covering [0, 1] with no
// gaps or overlaps, plus the transition zone width. Built once at effect
// construction and immutable thereafter; safe for concurrent use.
type Timeline struct {
	phases []Phase
	width  float64
}

// NewTimeline validates the phase list and returns an immutable timeline.
// Validation problems are aggregated into a single error so callers can
// report everything at once. The transition zone width is clamped, with a
// logged warning, to half the shortest non-degenerate phase length;
// overlapping zones from adjacent boundaries are undefined.
func NewTimeline(phases []Phase, transitionWidth float64) (*Timeline, error) {
	var errs []string
	if len(phases) == 0 {
		errs = append(errs, "timeline has no phases")
	}
	for i, p := range phases {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("phase %d has no name", i))
		}
		if p.End < p.Start {
			errs = append(errs, fmt.Sprintf("phase %q ends (%v) before it starts (%v)", p.Name, p.End, p.Start))
		}
		if i > 0 && p.Start != phases[i-1].End {
			errs = append(errs, fmt.Sprintf("gap or overlap between %q (ends %v) and %q (starts %v)",
				phases[i-1].Name, phases[i-1].End, p.Name, p.Start))
		}
	}
	if len(phases) > 0 {
		if phases[0].Start != 0 {
			errs = append(errs, fmt.Sprintf("first phase %q starts at %v, want 0", phases[0].Name, phases[0].Start))
		}
		if last := phases[len(phases)-1]; last.End != 1 {
			errs = append(errs, fmt.Sprintf("last phase %q ends at %v, want 1", last.Name, last.End))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid phase timeline: %s", strings.Join(errs, "; "))
	}

	if transitionWidth < 0 {
		log.Printf("[Phase] Warning: negative transition zone width %v, using 0", transitionWidth)
		transitionWidth = 0
	}
	if limit := shortestPhase(phases) / 2; transitionWidth > limit {
		log.Printf("[Phase] Warning: transition zone width %v exceeds half the shortest phase, clamping to %v",
			transitionWidth, limit)
		transitionWidth = limit
	}

	tl := &Timeline{
		phases: make([]Phase, len(phases)),
		width:  transitionWidth,
	}
	copy(tl.phases, phases)
	return tl, nil
}

// shortestPhase returns the length of the shortest non-degenerate phase.
// Zero-width phases are permitted by the schema and ignored here.
func shortestPhase(phases []Phase) float64 {
	shortest := 1.0
	for _, p := range phases {
		if l := p.Length(); l > 0 && l < shortest {
			shortest = l
		}
	}
	return shortest
}

// Phases returns a copy of the ordered phase list.
func (tl *Timeline) Phases() []Phase {
	out := make([]Phase, len(tl.phases))
	copy(out, tl.phases)
	return out
}

// TransitionWidth returns the (possibly clamped) transition zone width.
func (tl *Timeline) TransitionWidth() float64 {
	return tl.width
}

// indexAt returns the index of the phase containing progress. Intervals are
// half-open [Start, End), except the final phase which includes 1.0.
// Zero-width phases contain no progress values and are never current.
func (tl *Timeline) indexAt(progress float64) int {
	for i, p := range tl.phases {
		if i == len(tl.phases)-1 {
			return i
		}
		if progress >= p.Start && progress < p.End {
			return i
		}
	}
	return len(tl.phases) - 1
}
