// Package app provides the interactive preview application.
//
// The preview exists for authoring: it runs an effect's frame loop in a
// window so the phase timing, transition blending and loop seam can be
// inspected by eye. The host framework renders the same effects headless;
// nothing here is required for production rendering.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/effects"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// Logical screen size of the preview window.
const (
	PreviewWidth  = 900
	PreviewHeight = 900
)

// Config is the preview startup configuration.
type Config struct {
	// Verbose enables log output; without it logs are discarded.
	Verbose bool
	// Effect selects the starting effect; empty restores the last used one.
	Effect string
	// Preset selects a preset by name; empty uses the effect defaults.
	Preset string
	// TotalFrames overrides the loop length when positive.
	TotalFrames int
	// Seed overrides the construction seed when nonzero.
	Seed int64
}

// App runs one effect's frame loop in a window, implementing ebiten.Game.
type App struct {
	presets  *config.PresetManager
	settings *SettingsManager

	effect      effects.Effect
	effectName  string
	presetName  string // empty when running on defaults
	seed        int64
	totalFrames int

	frame  int
	paused bool
}

// NewApp creates the preview from the startup config and a preset catalog.
func NewApp(cfg Config, presets *config.PresetManager) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "mystic_effects_preview"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v (settings will not be saved)", err)
		gdataManager = nil
	}
	settings := NewSettingsManager(gdataManager)

	a := &App{
		presets:     presets,
		settings:    settings,
		effectName:  settings.Settings().LastEffect,
		presetName:  settings.Settings().LastPreset,
		seed:        settings.Settings().Seed,
		totalFrames: settings.Settings().TotalFrames,
	}
	if cfg.Effect != "" {
		a.effectName = cfg.Effect
		a.presetName = ""
	}
	if cfg.Preset != "" {
		a.presetName = cfg.Preset
	}
	if cfg.TotalFrames > 1 {
		a.totalFrames = cfg.TotalFrames
	}
	if cfg.Seed != 0 {
		a.seed = cfg.Seed
	}

	if err := a.rebuild(); err != nil {
		return nil, err
	}
	log.Printf("[App] Previewing %s (preset %q, seed %d, %d frames)",
		a.effectName, a.presetName, a.seed, a.totalFrames)
	return a, nil
}

// rebuild constructs the current effect from its preset (or defaults) and
// restarts the loop.
func (a *App) rebuild() error {
	var raw config.Raw
	seed := a.seed
	if a.presetName != "" {
		preset, ok := a.presets.Get(a.presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q", a.presetName)
		}
		if preset.Effect != "" {
			a.effectName = preset.Effect
		}
		raw = preset.Raw()
		if preset.Seed != 0 {
			seed = preset.Seed
		}
	}

	effect, err := effects.New(a.effectName, raw, seed)
	if err != nil {
		return fmt.Errorf("failed to build effect %s: %w", a.effectName, err)
	}
	a.effect = effect
	a.frame = 0
	return nil
}

// Update advances the loop one frame and handles the preview keys.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.cycleEffect()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.cyclePreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.frame = 0
	}

	// Frame stepping while paused, for inspecting phase boundaries.
	if a.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			a.frame = (a.frame + 1) % a.totalFrames
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			a.frame = (a.frame + a.totalFrames - 1) % a.totalFrames
		}
		return nil
	}

	a.frame = (a.frame + 1) % a.totalFrames
	return nil
}

// cycleEffect switches to the next registered effect, dropping any preset.
func (a *App) cycleEffect() {
	names := effects.Names()
	next := names[0]
	for i, name := range names {
		if name == a.effectName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	a.effectName = next
	a.presetName = ""
	if err := a.rebuild(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// cyclePreset steps through the current effect's presets, wrapping back to
// the built-in defaults after the last one.
func (a *App) cyclePreset() {
	names := a.presets.ForEffect(a.effectName)
	if len(names) == 0 {
		return
	}
	next := ""
	if a.presetName == "" {
		next = names[0]
	} else {
		for i, name := range names {
			if name == a.presetName {
				if i+1 < len(names) {
					next = names[i+1]
				}
				break
			}
		}
	}
	a.presetName = next
	if err := a.rebuild(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw renders the current frame and the status line.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	surface := render.NewEbitenSurface(screen)
	if err := a.effect.Invoke(surface, a.frame, a.totalFrames); err != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frame error: %v", err))
		return
	}

	preset := a.presetName
	if preset == "" {
		preset = "defaults"
	}
	status := fmt.Sprintf("%s | %s | frame %d/%d", a.effectName, preset, a.frame, a.totalFrames)
	if a.paused {
		status += " | paused"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size; Ebitengine scales the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return PreviewWidth, PreviewHeight
}

// SaveSettings persists the current selection for the next launch.
func (a *App) SaveSettings() error {
	s := a.settings.Settings()
	s.LastEffect = a.effectName
	s.LastPreset = a.presetName
	s.TotalFrames = a.totalFrames
	s.Seed = a.seed
	return a.settings.Save()
}
