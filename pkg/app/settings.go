package app

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PreviewSettings are the persisted preview preferences. They are global,
// not tied to any particular preset file.
type PreviewSettings struct {
	// Selection restored on the next launch.
	LastEffect string `yaml:"lastEffect"`
	LastPreset string `yaml:"lastPreset"`

	// Loop length in frames.
	TotalFrames int `yaml:"totalFrames"`

	// Seed used when a preset does not carry its own.
	Seed int64 `yaml:"seed"`
}

// DefaultSettings returns the stock preview settings.
func DefaultSettings() *PreviewSettings {
	return &PreviewSettings{
		LastEffect:  "tree_of_life",
		TotalFrames: 300,
		Seed:        1,
	}
}

// SettingsManager loads and saves the preview settings. A nil gdata
// manager puts it in degraded mode: settings live in memory only and
// Save is a no-op.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *PreviewSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "preview"
)

// NewSettingsManager creates a manager and loads any saved settings. A
// load failure is not fatal; the defaults are used instead.
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load reads the settings from gdata. When the manager is nil or nothing
// has been saved yet, the defaults are used.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.TotalFrames < 2 {
		loaded.TotalFrames = DefaultSettings().TotalFrames
	}

	sm.settings = loaded
	log.Printf("[Settings] Settings loaded successfully")
	return nil
}

// Save writes the settings to gdata. In degraded mode it silently does
// nothing.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns the in-memory settings. Mutations are not persisted
// until Save.
func (sm *SettingsManager) Settings() *PreviewSettings {
	return sm.settings
}
