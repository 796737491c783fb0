package gioui

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gioui.org/unit"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window WindowPreferences
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, "chordscope", filename)
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bytes, target)
}

func loadPreferences() Preferences {
	var preferences Preferences
	if err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences); err != nil {
		panic(fmt.Errorf("failed to unmarshal default preferences: %w", err))
	}
	ReadCustomConfigYml("preferences.yml", &preferences)
	return preferences
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}
