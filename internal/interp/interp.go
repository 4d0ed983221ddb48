// Package interp provides the interpolation primitives shared by the phase
// synthesis engine and the decorative drawing routines.
//
// Numeric animation parameters always travel through Lerp; LerpColor exists
// only for discrete color transitions and interpolates raw RGB channels with
// no gamma correction.
package interp

import (
	"fmt"
	"log"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/easing"
)

// Lerp interpolates between from and to. Progress is clamped to [0, 1]
// before the named easing is applied, so out-of-range callers receive the
// endpoint values rather than an extrapolation. Unknown easing names fall
// back to linear (see easing.ForName); this never fails.
func Lerp(from, to, progress float64, easingName string) float64 {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	eased := easing.ForName(easingName)(progress)
	return from + (to-from)*eased
}

// Smoothstep is the fixed cross-phase blend curve, t²(3-2t). The synthesizer
// applies it to the transition blend factor of speed-class parameters
// independently of any per-phase easing choice.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// LerpColor interpolates two "#rrggbb" colors per channel in RGB space.
// A malformed color falls back to fromHex with a logged warning; color
// problems are cosmetic and must never abort a render.
func LerpColor(fromHex, toHex string, progress float64) string {
	fr, fg, fb, err := parseHex(fromHex)
	if err != nil {
		log.Printf("[Interp] Warning: bad color %q: %v", fromHex, err)
		return fromHex
	}
	tr, tg, tb, err := parseHex(toHex)
	if err != nil {
		log.Printf("[Interp] Warning: bad color %q: %v", toHex, err)
		return fromHex
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	r := uint8(float64(fr) + (float64(tr)-float64(fr))*progress + 0.5)
	g := uint8(float64(fg) + (float64(tg)-float64(fg))*progress + 0.5)
	b := uint8(float64(fb) + (float64(tb)-float64(fb))*progress + 0.5)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func parseHex(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
