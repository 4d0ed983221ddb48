// Package mysticeffects is the root of the mystic effects plugin pack:
// phase-driven generative mandala effects for NFT animation rendering.
//
// The effects themselves live in pkg/effects; this package embeds the
// shipped preset catalog, which must sit at the module root because
// go:embed only reaches the current package directory and below.
package mysticeffects

import "embed"

// PresetFS holds the shipped preset catalog under data/presets. Pass it
// to config.NewPresetManager.
//
//go:embed data/presets
var PresetFS embed.FS
