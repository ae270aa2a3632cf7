// Copyright (c) 2024, The Round Slider Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command roundslider-render renders a round slider to an SVG file from a
// TOML or YAML settings file.
//
// Usage:
//
//	roundslider-render -settings slider.toml -o slider.svg
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ericsakmar/roundslider"
	"github.com/ericsakmar/roundslider/math32"
	"github.com/ericsakmar/roundslider/svg"
)

// pointerConfig mirrors [roundslider.PointerSettings] with flat fields for
// settings files.
type pointerConfig struct {
	Value              any     `toml:"value" yaml:"value"`
	RX                 float32 `toml:"rx" yaml:"rx"`
	RY                 float32 `toml:"ry" yaml:"ry"`
	ID                 string  `toml:"id" yaml:"id"`
	BgColor            string  `toml:"bg_color" yaml:"bg_color"`
	Disabled           bool    `toml:"disabled" yaml:"disabled"`
	KeyboardDisabled   bool    `toml:"keyboard_disabled" yaml:"keyboard_disabled"`
	MousewheelDisabled bool    `toml:"mousewheel_disabled" yaml:"mousewheel_disabled"`
}

// config mirrors [roundslider.Settings] with flat fields for settings files.
type config struct {
	Min               any             `toml:"min" yaml:"min"`
	Max               any             `toml:"max" yaml:"max"`
	Step              any             `toml:"step" yaml:"step"`
	Data              []any           `toml:"data" yaml:"data"`
	PathStartAngle    float32         `toml:"path_start_angle" yaml:"path_start_angle"`
	PathEndAngle      float32         `toml:"path_end_angle" yaml:"path_end_angle"`
	RX                float32         `toml:"rx" yaml:"rx"`
	RY                float32         `toml:"ry" yaml:"ry"`
	PointerRX         float32         `toml:"pointer_rx" yaml:"pointer_rx"`
	PointerRY         float32         `toml:"pointer_ry" yaml:"pointer_ry"`
	StrokeWidth       float32         `toml:"stroke_width" yaml:"stroke_width"`
	PathBgColor       string          `toml:"path_bg_color" yaml:"path_bg_color"`
	ConnectionBgColor string          `toml:"connection_bg_color" yaml:"connection_bg_color"`
	PointerBgColor    string          `toml:"pointer_bg_color" yaml:"pointer_bg_color"`
	Pointers          []pointerConfig `toml:"pointers" yaml:"pointers"`
}

func (c *config) settings() roundslider.Settings {
	s := roundslider.Settings{
		Min:               c.Min,
		Max:               c.Max,
		Step:              c.Step,
		Data:              c.Data,
		PathStartAngle:    c.PathStartAngle,
		PathEndAngle:      c.PathEndAngle,
		SVGRadii:          math32.Vec2(c.RX, c.RY),
		PointerRadii:      math32.Vec2(c.PointerRX, c.PointerRY),
		StrokeWidth:       c.StrokeWidth,
		PathBgColor:       c.PathBgColor,
		ConnectionBgColor: c.ConnectionBgColor,
		PointerBgColor:    c.PointerBgColor,
	}
	for _, pc := range c.Pointers {
		s.Pointers = append(s.Pointers, roundslider.PointerSettings{
			Value:              pc.Value,
			Radii:              math32.Vec2(pc.RX, pc.RY),
			ID:                 pc.ID,
			BgColor:            pc.BgColor,
			Disabled:           pc.Disabled,
			KeyboardDisabled:   pc.KeyboardDisabled,
			MousewheelDisabled: pc.MousewheelDisabled,
		})
	}
	return s
}

// openConfig reads a settings file, choosing the decoder by extension.
func openConfig(file string) (*config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	c := &config{}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("unsupported settings format %q (want .toml, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	return c, nil
}

func run() error {
	settingsFile := flag.String("settings", "", "Slider settings file (.toml, .yaml, or .yml); empty uses defaults")
	out := flag.String("o", "slider.svg", "Output SVG file")
	percent := flag.Float64("percent", -1, "Override the first pointer's percent (0-100)")
	flag.Parse()

	settings := roundslider.DefaultSettings()
	if *settingsFile != "" {
		c, err := openConfig(*settingsFile)
		if err != nil {
			return err
		}
		settings = c.settings()
	}

	sl := roundslider.NewSlider(settings)
	if *percent >= 0 {
		sl.SetPointerPercent(0, float32(*percent))
	}

	doc := svg.Render(sl)
	if err := os.WriteFile(*out, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	slog.Info("rendered slider", "out", *out,
		"size", sl.Size().String(), "pointers", len(sl.Pointers))
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
