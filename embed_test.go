package mysticeffects_test

import (
	"testing"

	mysticeffects "github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/effects"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/render"
)

// TestShippedPresets resolves every embedded preset into its effect and
// renders a frame. A preset that fails validation must never ship.
func TestShippedPresets(t *testing.T) {
	presets, err := config.NewPresetManager(mysticeffects.PresetFS, "data/presets")
	if err != nil {
		t.Fatalf("load preset catalog: %v", err)
	}
	if got := len(presets.List()); got < 4 {
		t.Fatalf("catalog has %d presets, want at least 4", got)
	}

	for _, name := range presets.List() {
		name := name
		t.Run(name, func(t *testing.T) {
			preset, ok := presets.Get(name)
			if !ok {
				t.Fatalf("preset %q vanished from the catalog", name)
			}
			e, err := effects.New(preset.Effect, preset.Raw(), preset.Seed)
			if err != nil {
				t.Fatalf("preset does not resolve: %v", err)
			}
			r := render.NewRecorder(512, 512)
			if err := e.Invoke(r, 150, 300); err != nil {
				t.Fatalf("Invoke: %v", err)
			}
			if len(r.Calls) == 0 {
				t.Errorf("mid-animation frame drew nothing")
			}
		})
	}
}

// TestEveryEffectHasAPreset keeps the catalog in step with the registry.
func TestEveryEffectHasAPreset(t *testing.T) {
	presets, err := config.NewPresetManager(mysticeffects.PresetFS, "data/presets")
	if err != nil {
		t.Fatalf("load preset catalog: %v", err)
	}
	for _, effect := range effects.Names() {
		if len(presets.ForEffect(effect)) == 0 {
			t.Errorf("effect %q ships no preset", effect)
		}
	}
}
