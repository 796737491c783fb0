package gioui

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gopkg.in/yaml.v3"
)

type (
	// Theme is the visual styling of the whole application, unmarshaled from
	// the embedded theme.yml. Users can override parts of it with a
	// theme.yml in their config dir.
	Theme struct {
		Material material.Theme `yaml:"-"`

		Palette struct {
			Bg         HexColor
			Fg         HexColor
			ContrastBg HexColor
			ContrastFg HexColor
		}

		Label struct {
			Title   LabelStyle
			Caption LabelStyle
		}

		Alert struct {
			Info    PopupAlertStyle
			Warning PopupAlertStyle
			Error   PopupAlertStyle
		}

		Tooltip struct {
			Bg    HexColor
			Color HexColor
		}

		Button struct {
			Primary  HexColor
			Disabled HexColor
		}

		NumericUpDown NumericUpDownStyle

		Viewport ViewportStyle

		Panel struct {
			Bg HexColor
		}
	}

	HexColor color.NRGBA
)

//go:embed theme.yml
var defaultTheme []byte

func NewTheme() (*Theme, error) {
	var theme Theme
	dec := yaml.NewDecoder(bytes.NewReader(defaultTheme))
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil {
		panic(fmt.Errorf("failed to unmarshal default theme: %w", err))
	}
	var warn error
	if err := ReadCustomConfig("theme.yml", &theme); err != nil && !errors.Is(err, fs.ErrNotExist) {
		warn = fmt.Errorf("reading user theme.yml failed: %w", err)
	}
	theme.Material = *material.NewTheme()
	theme.Material.Palette = material.Palette{
		Bg:         color.NRGBA(theme.Palette.Bg),
		Fg:         color.NRGBA(theme.Palette.Fg),
		ContrastBg: color.NRGBA(theme.Palette.ContrastBg),
		ContrastFg: color.NRGBA(theme.Palette.ContrastFg),
	}
	return &theme, warn
}

// ReadCustomConfig merges a yaml file of the given name from the user config
// dir into target, i.e. needs a pointer.
func ReadCustomConfig(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filepath.Join(configDir, "chordscope", filename))
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(target)
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	var r, g, b, a uint8
	a = 255
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = fmt.Errorf("expected #rrggbb or #rrggbbaa, got %q", s)
	}
	if err != nil {
		return err
	}
	*c = HexColor{R: r, G: g, B: b, A: a}
	return nil
}

func Tooltip(th *Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(&th.Material, tip)
	tooltip.Bg = color.NRGBA(th.Tooltip.Bg)
	tooltip.Text.Color = color.NRGBA(th.Tooltip.Color)
	return tooltip
}
