package effects

import (
	"fmt"
	"log"
	"math"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// TreeOfLifeEffect renders an animated Tree of Life mandala: ten sephirot
// nodes joined by twenty-two paths, revealed in the configured activation
// order and breathing with the synthesized glow parameters.
type TreeOfLifeEffect struct {
	resolved *config.Resolved

	glow        *glowEngine
	glowEnabled bool
}

// NewTreeOfLife builds the effect from a raw config and seed. A nil raw
// uses the built-in defaults. Construction resolves all randomness; the
// returned effect is immutable and cheap enough to rebuild per worker.
func NewTreeOfLife(raw config.Raw, seed int64) (*TreeOfLifeEffect, error) {
	if raw == nil {
		raw = DefaultTreeOfLifeConfig()
	}
	resolved, err := config.Resolve(raw, seed)
	if err != nil {
		return nil, fmt.Errorf("tree of life: %w", err)
	}

	e := &TreeOfLifeEffect{resolved: resolved}
	if glow, err := newGlowEngine(resolved); err != nil {
		log.Printf("[TreeOfLife] Warning: glow engine unavailable: %v (glow disabled)", err)
	} else {
		e.glow = glow
		e.glowEnabled = true
	}
	return e, nil
}

func (e *TreeOfLifeEffect) Name() string { return "tree_of_life" }

// Invoke draws one frame. Pure given the frozen config: the same frame
// index always produces the same draw calls.
func (e *TreeOfLifeEffect) Invoke(s render.Surface, currentFrame, totalFrames int) error {
	progress, _, bundle := frameState(e.resolved, currentFrame, totalFrames)

	w, h := s.Size()
	scale := math.Min(w, h)
	cx := w / 2

	nodeAlpha := bundle.Value("nodeAlpha", 0)
	pathAlpha := bundle.Value("pathAlpha", 0)
	reveal := bundle.Value("nodeReveal", 1)
	glowIntensity := bundle.Value("glowIntensity", 0)
	pulseSpeed := bundle.Value("pulseSpeed", 1)

	primary := color(e.resolved, "primaryColor", "#e8c872")
	accent := color(e.resolved, "accentColor", "#8a2be2")

	// Which nodes are revealed, in this phase's activation order. The
	// fractional tail node fades in rather than popping.
	visible := reveal * float64(len(sephirot))
	alphaFor := make(map[string]float64, len(bundle.Activation))
	for i, id := range bundle.Activation {
		switch {
		case float64(i+1) <= visible:
			alphaFor[id] = 1
		case float64(i) < visible:
			alphaFor[id] = visible - float64(i)
		default:
			alphaFor[id] = 0
		}
	}

	nodeRadius := scale * 0.040
	lineWidth := math.Max(scale*0.004, 1)

	// Paths first, under the nodes. A path is only as visible as its
	// dimmer endpoint.
	for _, pair := range treePaths {
		a, b := sephirot[pair[0]], sephirot[pair[1]]
		va, vb := alphaFor[a.id], alphaFor[b.id]
		alpha := pathAlpha * math.Min(va, vb)
		if alpha <= 0 {
			continue
		}
		s.SetAlpha(alpha)
		s.StrokeLine(nodeX(a, cx, scale), a.y*scale, nodeX(b, cx, scale), b.y*scale,
			lineWidth, accent)
	}

	for _, node := range sephirot {
		v := alphaFor[node.id]
		if v <= 0 {
			continue
		}
		x, y := nodeX(node, cx, scale), node.y*scale

		if e.glowEnabled {
			e.glow.drawAura(s, x, y, nodeRadius*1.6, glowIntensity*v, progress, pulseSpeed)
		}

		s.SetAlpha(nodeAlpha * v)
		s.FillCircle(x, y, nodeRadius, primary)
		s.StrokeCircle(x, y, nodeRadius, lineWidth, accent)
	}

	return nil
}

// nodeX centers the tree horizontally regardless of the surface's aspect
// ratio.
func nodeX(n sephira, cx, scale float64) float64 {
	return cx + (n.x-0.5)*scale
}
