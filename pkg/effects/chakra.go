package effects

import (
	"fmt"
	"math"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/interp"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/timing"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// ChakraMandalaEffect renders an animated chakra column: seven centers on
// a vertical axis, each with a rotating petal ring, a breathing outer ring
// and a filled core, revealed in the configured activation order.
type ChakraMandalaEffect struct {
	resolved *config.Resolved
}

// NewChakraMandala builds the effect from a raw config and seed. A nil
// raw uses the built-in defaults.
func NewChakraMandala(raw config.Raw, seed int64) (*ChakraMandalaEffect, error) {
	if raw == nil {
		raw = DefaultChakraMandalaConfig()
	}
	resolved, err := config.Resolve(raw, seed)
	if err != nil {
		return nil, fmt.Errorf("chakra mandala: %w", err)
	}
	return &ChakraMandalaEffect{resolved: resolved}, nil
}

func (e *ChakraMandalaEffect) Name() string { return "chakra_mandala" }

// Invoke draws one frame. Pure given the frozen config.
func (e *ChakraMandalaEffect) Invoke(s render.Surface, currentFrame, totalFrames int) error {
	progress, _, bundle := frameState(e.resolved, currentFrame, totalFrames)

	w, h := s.Size()
	scale := math.Min(w, h)
	cx := w / 2

	petalAlpha := bundle.Value("petalAlpha", 0)
	centerAlpha := bundle.Value("centerAlpha", 0)
	reveal := bundle.Value("chakraReveal", 1)
	ringScale := bundle.Value("ringScale", 1)
	colorShift := bundle.Value("colorShift", 0)
	rotationSpeed := bundle.Value("rotationSpeed", 1)
	pulseSpeed := bundle.Value("pulseSpeed", 2)

	accent := color(e.resolved, "accentColor", "#f5f0ff")
	axis := color(e.resolved, "axisColor", "#d8d0e8")

	// The central channel connecting the centers.
	s.SetAlpha(centerAlpha * 0.6)
	s.StrokeLine(cx, chakras[len(chakras)-1].y*scale, cx, chakras[0].y*scale,
		math.Max(scale*0.003, 1), axis)

	visible := reveal * float64(len(chakras))
	angle := timing.Angle(progress, rotationSpeed)
	breath := timing.Pulse(progress, pulseSpeed, 0.9, 1.1)

	for i, id := range bundle.Activation {
		var v float64
		switch {
		case float64(i+1) <= visible:
			v = 1
		case float64(i) < visible:
			v = visible - float64(i)
		default:
			continue
		}

		c, ok := chakraByID(id)
		if !ok {
			continue
		}
		cy := c.y * scale
		radius := scale * 0.055 * ringScale * breath
		petalColor := interp.LerpColor(c.color, accent, colorShift)

		// Petal ring: one diamond petal per traditional petal count,
		// rotating about the center.
		s.SetAlpha(petalAlpha * v)
		for p := 0; p < c.petals; p++ {
			theta := angle + 2*math.Pi*float64(p)/float64(c.petals)
			s.FillPolygon(petalDiamond(cx, cy, radius, theta), petalColor)
		}

		// Breathing outer ring and the core.
		s.SetAlpha(petalAlpha * v * 0.8)
		s.StrokeCircle(cx, cy, radius*1.35, math.Max(scale*0.003, 1), petalColor)

		s.SetAlpha(centerAlpha * v)
		s.FillCircle(cx, cy, radius*0.38, c.color)
	}

	return nil
}

// petalDiamond builds one four-point petal with its inner tip on the ring
// center side, pointing outward along theta.
func petalDiamond(cx, cy, radius float64, theta float64) []render.Point {
	inner := radius * 0.45
	outer := radius * 1.05
	mid := (inner + outer) / 2
	halfWidth := radius * 0.18

	sin, cos := math.Sin(theta), math.Cos(theta)
	// Perpendicular direction for the side points.
	psin, pcos := math.Sin(theta+math.Pi/2), math.Cos(theta+math.Pi/2)

	return []render.Point{
		{X: cx + cos*inner, Y: cy + sin*inner},
		{X: cx + cos*mid + pcos*halfWidth, Y: cy + sin*mid + psin*halfWidth},
		{X: cx + cos*outer, Y: cy + sin*outer},
		{X: cx + cos*mid - pcos*halfWidth, Y: cy + sin*mid - psin*halfWidth},
	}
}
