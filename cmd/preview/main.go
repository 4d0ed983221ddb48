// Command preview opens a window and plays an effect's frame loop for
// visual inspection of phase timing and the loop seam.
//
// Keys: Space pauses, arrow keys step frames while paused, Tab cycles
// effects, P cycles the effect's presets, R restarts the loop, F11
// toggles fullscreen. The last selection is persisted and restored on
// the next launch.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	mysticeffects "github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/app"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/config"
	"github.com/john-paul-ruf/my-nft-mystic-effects-plugin-pack-sub001/pkg/effects"
)

var (
	effectFlag = flag.String("effect", "", "effect to preview (default: last used)")
	presetFlag = flag.String("preset", "", "preset name (default: effect defaults)")
	frames     = flag.Int("frames", 0, "loop length in frames (default: last used)")
	seed       = flag.Int64("seed", 0, "construction seed (default: last used)")
	verbose    = flag.Bool("verbose", false, "enable log output")
	list       = flag.Bool("list", false, "list effects and presets, then exit")
)

func main() {
	flag.Parse()

	presets, err := config.NewPresetManager(mysticeffects.PresetFS, "data/presets")
	if err != nil {
		log.Fatalf("failed to load preset catalog: %v", err)
	}

	if *list {
		for _, name := range effects.Names() {
			fmt.Println(name)
			for _, preset := range presets.ForEffect(name) {
				fmt.Printf("  %s\n", preset)
			}
		}
		os.Exit(0)
	}

	a, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Effect:      *effectFlag,
		Preset:      *presetFlag,
		TotalFrames: *frames,
		Seed:        *seed,
	}, presets)
	if err != nil {
		log.Fatalf("failed to start preview: %v", err)
	}

	ebiten.SetWindowSize(app.PreviewWidth, app.PreviewHeight)
	ebiten.SetWindowTitle("Mystic Effects Preview")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}

	if err := a.SaveSettings(); err != nil {
		log.Printf("[Preview] Warning: failed to save settings: %v", err)
	}
}
