package config

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is one shipped parameter bundle for an effect: a named raw config
// plus the seed its construction-time choices are drawn with.
type Preset struct {
	Version string         `yaml:"version"`
	Effect  string         `yaml:"effect"`
	Name    string         `yaml:"name"`
	Seed    int64          `yaml:"seed"`
	Config  map[string]any `yaml:"config"`
}

// Raw returns the preset's config as a resolvable Raw object.
func (p *Preset) Raw() Raw {
	return Raw(p.Config)
}

// PresetManager loads and indexes the YAML preset catalog. Files that fail
// to parse are skipped with a logged warning; one broken preset must not
// take the whole catalog down.
type PresetManager struct {
	presets map[string]*Preset
	order   []string
}

// NewPresetManager loads every .yaml file under dir in fsys (typically the
// embedded data/presets directory).
func NewPresetManager(fsys fs.FS, dir string) (*PresetManager, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory %s: %w", dir, err)
	}

	pm := &PresetManager{presets: make(map[string]*Preset)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		full := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, full)
		if err != nil {
			log.Printf("[Preset] Warning: failed to read %s: %v (skipped)", full, err)
			continue
		}
		preset := &Preset{}
		if err := yaml.Unmarshal(data, preset); err != nil {
			log.Printf("[Preset] Warning: failed to parse %s: %v (skipped)", full, err)
			continue
		}
		if preset.Name == "" {
			preset.Name = strings.TrimSuffix(entry.Name(), ".yaml")
		}
		if _, dup := pm.presets[preset.Name]; dup {
			log.Printf("[Preset] Warning: duplicate preset name %q in %s (skipped)", preset.Name, full)
			continue
		}
		pm.presets[preset.Name] = preset
		pm.order = append(pm.order, preset.Name)
	}

	sort.Strings(pm.order)
	log.Printf("[Preset] Loaded %d presets from %s", len(pm.order), dir)
	return pm, nil
}

// List returns all preset names in sorted order.
func (pm *PresetManager) List() []string {
	out := make([]string, len(pm.order))
	copy(out, pm.order)
	return out
}

// ForEffect returns the names of presets declared for the given effect.
func (pm *PresetManager) ForEffect(effect string) []string {
	var out []string
	for _, name := range pm.order {
		if pm.presets[name].Effect == effect {
			out = append(out, name)
		}
	}
	return out
}

// Get returns the named preset.
func (pm *PresetManager) Get(name string) (*Preset, bool) {
	p, ok := pm.presets[name]
	return p, ok
}
