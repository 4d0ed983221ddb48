// Package timing holds the loop-closure conventions every effect and
// oscillator in the pack must obey for seamless playback: the progress
// formula, integer-multiple oscillation speeds, and sine/cosine phase
// alignment. Frame 0 and frame N-1 of a render are visually equivalent
// exactly when all callers go through these helpers.
package timing

import "math"

// Progress maps a frame index to global timeline progress in [0, 1].
//
// The divisor is totalFrames-1 so the final frame lands exactly on
// progress 1; dividing by totalFrames instead leaves a visible seam when
// the loop wraps (frame 0 at progress 0 vs the wrapped last frame just
// short of it). Degenerate totals (totalFrames ≤ 1) report 0. The result
// is clamped so out-of-range frame indices cannot escape [0, 1].
func Progress(currentFrame, totalFrames int) float64 {
	if totalFrames <= 1 {
		return 0
	}
	p := float64(currentFrame) / float64(totalFrames-1)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Oscillate returns sin(2π · progress · cycles), cycles being the number
// of full oscillations per timeline. The loop closes when the cycle count
// at progress 1 is a whole number, which configuration validation enforces
// for every speed-class phase endpoint; mid-timeline the synthesizer may
// blend cycle counts fractionally, which is harmless away from the wrap
// point.
func Oscillate(progress, cycles float64) float64 {
	return math.Sin(2 * math.Pi * progress * cycles)
}

// OscillateCos is the cosine-aligned variant, 1 at both loop endpoints.
func OscillateCos(progress, cycles float64) float64 {
	return math.Cos(2 * math.Pi * progress * cycles)
}

// Pulse maps a sinusoid into [lo, hi]: lo + (hi-lo) · (½ + ½·sin(...)).
// Used for glow and aura breathing; inherits loop closure from Oscillate.
func Pulse(progress, cycles, lo, hi float64) float64 {
	return lo + (hi-lo)*(0.5+0.5*Oscillate(progress, cycles))
}

// Angle returns the rotation angle in radians for a rotating element:
// 2π · progress · turns. Whole turn counts at progress 1 bring the element
// back to its starting orientation on the final frame.
func Angle(progress, turns float64) float64 {
	return 2 * math.Pi * progress * turns
}
