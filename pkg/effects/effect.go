// Package effects contains the visual effect plugins shipped with the
// pack: the Tree of Life and the Chakra Mandala mandalas.
//
// An effect is constructed once from a raw configuration and a seed, which
// freezes every random choice (see config.Resolve), and is then invoked
// once per frame. The per-frame path is a pure function of the frame index
// and the frozen config, so the host may render frames out of order and
// across workers, reconstructing effects per worker as needed.
package effects

import (
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/phase"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/synth"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/internal/timing"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// Effect is one animated visual layer. Invoke draws the layer's frame
// currentFrame of totalFrames onto the surface; it must be safe to call
// concurrently for different frames.
type Effect interface {
	Name() string
	Invoke(s render.Surface, currentFrame, totalFrames int) error
}

// frameState runs the synthesis engine for one frame: the progress
// formula, phase detection, and parameter bundle resolution.
func frameState(resolved *config.Resolved, currentFrame, totalFrames int) (float64, phase.Result, synth.Bundle) {
	progress := timing.Progress(currentFrame, totalFrames)
	det := resolved.Timeline.Detect(progress)
	return progress, det, synth.Synthesize(resolved.Table, det)
}

// color returns the resolved color for role, or fallback when the config
// did not declare one.
func color(resolved *config.Resolved, role, fallback string) string {
	if c, ok := resolved.Colors[role]; ok {
		return c
	}
	return fallback
}
