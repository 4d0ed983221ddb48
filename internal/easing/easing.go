// Package easing provides the pure timing curves used by the animation
// synthesis engine.
//
// Every function maps a normalized time t ∈ [0, 1] to an eased value.
// All curves satisfy f(0) = 0 and f(1) = 1; the overshoot and elastic
// variants may leave [0, 1] in between, which is intentional. Callers
// clamp t upstream (see internal/interp), never inside the curve itself.
//
// Reference: https://easings.net/
package easing

import "math"

// Func maps normalized time t ∈ [0, 1] to eased time.
type Func func(t float64) float64

// Linear returns t unchanged (constant rate of change).
func Linear(t float64) float64 {
	return t
}

// InQuad accelerates from zero: f(t) = t².
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad decelerates to zero: f(t) = 1 - (1-t)².
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates, then decelerates.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// InCubic accelerates from zero: f(t) = t³.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic decelerates to zero: f(t) = 1 - (1-t)³.
// Recommended for "fly to target" motion.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutCubic accelerates, then decelerates.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// InQuart accelerates from zero: f(t) = t⁴.
func InQuart(t float64) float64 {
	return t * t * t * t
}

// OutQuart decelerates to zero: f(t) = 1 - (1-t)⁴.
func OutQuart(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}

// InOutQuart accelerates, then decelerates.
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u/2
}

// InQuint accelerates from zero: f(t) = t⁵.
func InQuint(t float64) float64 {
	return t * t * t * t * t
}

// OutQuint decelerates to zero: f(t) = 1 - (1-t)⁵.
func OutQuint(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u*u
}

// InOutQuint accelerates, then decelerates.
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u*u*u/2
}

// InOutSine is a gentle sine-shaped ease, softer than InOutQuad.
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// OutExpo starts very fast and settles very slowly: f(t) = 1 - 2^(-10t).
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Smoothstep is the classic Hermite curve 3t² - 2t³.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Smootherstep is Perlin's 6t⁵ - 15t⁴ + 10t³ variant with zero second
// derivatives at both endpoints.
func Smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// OutBack overshoots the target slightly before settling on it.
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// OutElastic rings past the target with exponentially decaying bounces.
func OutElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
