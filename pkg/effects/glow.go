package effects

import (
	"fmt"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/timing"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// glowEngine draws the layered aura rings around nodes. It is an optional
// decorative sub-engine: when construction fails (no usable glow color in
// the resolved config), the owning effect logs the failure and disables
// glow for its lifetime instead of aborting frames. Workers reconstruct it
// freely from the same resolved config.
type glowEngine struct {
	color  string
	layers int
}

func newGlowEngine(resolved *config.Resolved) (*glowEngine, error) {
	c, ok := resolved.Colors["glowColor"]
	if !ok {
		c, ok = resolved.Colors["accentColor"]
	}
	if !ok {
		return nil, fmt.Errorf("no glowColor or accentColor resolved")
	}
	if len(c) != 7 || c[0] != '#' {
		return nil, fmt.Errorf("unusable glow color %q", c)
	}
	return &glowEngine{color: c, layers: 3}, nil
}

// drawAura draws concentric breathing rings around a point. The ring radii
// pulse with the synthesized speed; intensity scales both alpha and reach.
func (g *glowEngine) drawAura(s render.Surface, cx, cy, baseRadius, intensity, progress, pulseSpeed float64) {
	if intensity <= 0 {
		return
	}
	breath := timing.Pulse(progress, pulseSpeed, 0.85, 1.15)
	for layer := 1; layer <= g.layers; layer++ {
		f := float64(layer)
		s.SetAlpha(intensity * 0.5 / f)
		s.StrokeCircle(cx, cy, baseRadius*breath*(1+0.45*f), baseRadius*0.12, g.color)
	}
}
