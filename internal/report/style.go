// SPDX-License-Identifier: Apache-2.0

// Package report turns analysis results into a render-facing view: labels,
// formatted values and colours ready for a chart or slide renderer.
package report

import (
	"errors"
	"fmt"
	"regexp"
)

// Style is the palette and typeface handed to renderers.
type Style struct {
	Main   string `yaml:"main" json:"main"`
	Bad    string `yaml:"bad" json:"bad"`
	Good   string `yaml:"good" json:"good"`
	Warn   string `yaml:"warn" json:"warn"`
	Muted  string `yaml:"muted" json:"muted"`
	Accent string `yaml:"accent" json:"accent"`
	Font   string `yaml:"font" json:"font"`
}

// DefaultStyle returns the house palette.
func DefaultStyle() Style {
	return Style{
		Main:   "#397577",
		Bad:    "#e76f51",
		Good:   "#2a9d8f",
		Warn:   "#F4A261",
		Muted:  "#999999",
		Accent: "#013E34",
		Font:   "Noto Sans JP",
	}
}

var reHexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Merge overwrites non-empty fields from overlay.
func (s *Style) Merge(overlay Style) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&s.Main, overlay.Main},
		{&s.Bad, overlay.Bad},
		{&s.Good, overlay.Good},
		{&s.Warn, overlay.Warn},
		{&s.Muted, overlay.Muted},
		{&s.Accent, overlay.Accent},
		{&s.Font, overlay.Font},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// Validate checks that every colour is a hex triplet.
func (s Style) Validate() error {
	var errs []error
	for name, c := range map[string]string{
		"main":   s.Main,
		"bad":    s.Bad,
		"good":   s.Good,
		"warn":   s.Warn,
		"muted":  s.Muted,
		"accent": s.Accent,
	} {
		if !reHexColor.MatchString(c) {
			errs = append(errs, fmt.Errorf("style.%s: invalid colour %q", name, c))
		}
	}
	if s.Font == "" {
		errs = append(errs, errors.New("style.font: required"))
	}
	return errors.Join(errs...)
}
