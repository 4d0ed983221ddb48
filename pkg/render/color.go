package render

import (
	"fmt"
	"image/color"
	"log"
)

// parseColor converts a "#rrggbb" string and an alpha multiplier into an
// NRGBA color. Malformed colors degrade to opaque white with a warning;
// a bad color string must never abort a frame.
func parseColor(hex string, alpha float64) color.NRGBA {
	r, g, b, err := hexChannels(hex)
	if err != nil {
		log.Printf("[Render] Warning: %v, using white", err)
		r, g, b = 0xff, 0xff, 0xff
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

func hexChannels(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("bad color %q (expected #rrggbb)", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("bad color %q (expected #rrggbb)", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
