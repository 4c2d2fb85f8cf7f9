// Package presets provides named seed brands that bootstrap a token tree.
package presets

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/migrate"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

var (
	// ErrPresetNameRequired is returned when a preset has no name.
	ErrPresetNameRequired = errors.New("preset name is required")
	// ErrPresetNotFound is returned when a preset is not found.
	ErrPresetNotFound = errors.New("preset not found")
)

// defaultPadding migrates to the default spacing base.
const defaultPadding = 24

// PresetValidationError describes a validation error in a preset.
type PresetValidationError struct {
	Field   string
	Message string
}

func (e *PresetValidationError) Error() string {
	return fmt.Sprintf("preset %s: %s", e.Field, e.Message)
}

// Preset is a seed brand written in the legacy flat shape, so it flows
// through the same migration as stored legacy profiles.
type Preset struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Colors      PresetColors `yaml:"colors"`
	Fonts       PresetFonts  `yaml:"fonts,omitempty"`
	Layout      PresetLayout `yaml:"layout,omitempty"`
	Voice       PresetVoice  `yaml:"voice,omitempty"`
	Source      string       `yaml:"-"` // file path or "builtin"
}

type PresetColors struct {
	Dark   string `yaml:"dark"`
	Light  string `yaml:"light,omitempty"`
	Accent string `yaml:"accent,omitempty"`
}

type PresetFonts struct {
	Heading   string `yaml:"heading,omitempty"`
	Body      string `yaml:"body,omitempty"`
	Weight    string `yaml:"weight,omitempty"`
	Uppercase bool   `yaml:"uppercase,omitempty"`
}

type PresetLayout struct {
	Padding  float64  `yaml:"padding,omitempty"`
	Radius   *float64 `yaml:"radius,omitempty"`
	PaddingX *float64 `yaml:"padding_x,omitempty"`
	PaddingY *float64 `yaml:"padding_y,omitempty"`
}

type PresetVoice struct {
	Formality string   `yaml:"formality,omitempty"`
	Tone      []string `yaml:"tone,omitempty"`
}

// Validate checks that the preset has usable seed values.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return ErrPresetNameRequired
	}
	if !color.IsHex(p.Colors.Dark) {
		return &PresetValidationError{Field: "colors.dark", Message: fmt.Sprintf("invalid hex color %q", p.Colors.Dark)}
	}
	for field, value := range map[string]string{"colors.light": p.Colors.Light, "colors.accent": p.Colors.Accent} {
		if value != "" && !color.IsHex(value) {
			return &PresetValidationError{Field: field, Message: fmt.Sprintf("invalid hex color %q", value)}
		}
	}
	switch p.Voice.Formality {
	case "", tokens.FormalityFormal, tokens.FormalityNeutral, tokens.FormalityCasual:
	default:
		return &PresetValidationError{Field: "voice.formality", Message: fmt.Sprintf("unknown formality %q", p.Voice.Formality)}
	}
	return nil
}

// Legacy converts the preset into a legacy profile.
func (p *Preset) Legacy() *models.LegacyProfile {
	legacy := &models.LegacyProfile{
		Colors: &models.LegacyColors{Dark: p.Colors.Dark, Light: p.Colors.Light, Accent: p.Colors.Accent},
	}
	if p.Fonts != (PresetFonts{}) {
		upper := p.Fonts.Uppercase
		legacy.Fonts = &models.LegacyFonts{
			Headline: models.LegacyHeadline{Family: p.Fonts.Heading, Weight: p.Fonts.Weight, Uppercase: &upper},
			Body:     models.LegacyBody{Family: p.Fonts.Body},
		}
	}
	if p.Layout != (PresetLayout{}) {
		top := p.Layout.Padding
		if top <= 0 {
			top = defaultPadding
		}
		legacy.Layout = &models.LegacyLayout{
			Padding: models.LegacyPadding{Top: top},
			Button: models.LegacyButton{
				Radius:   p.Layout.Radius,
				PaddingX: p.Layout.PaddingX,
				PaddingY: p.Layout.PaddingY,
			},
		}
	}
	return legacy
}

// Tree builds the token tree for the preset.
func (p *Preset) Tree() *tokens.Tree {
	tree := migrate.FromLegacy(p.Legacy())
	if p.Voice.Formality != "" {
		tree.Voice.Formality = p.Voice.Formality
	}
	if len(p.Voice.Tone) > 0 {
		tree.Voice.Tone = append([]string(nil), p.Voice.Tone...)
	}
	if p.Description != "" {
		tree.Voice.Description = p.Description
	}
	return tree
}

// parsePreset decodes one preset file. A preset is accepted only when its
// seed values are usable and the tree it migrates to passes the schema.
func parsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(p.Name)
	p.Colors.Dark = strings.TrimSpace(p.Colors.Dark)
	p.Colors.Light = strings.TrimSpace(p.Colors.Light)
	p.Colors.Accent = strings.TrimSpace(p.Colors.Accent)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if issues := schema.ValidateTree(p.Tree()); len(issues) > 0 {
		return nil, &PresetValidationError{Field: issues[0].Path, Message: "migrated tree is invalid: " + issues.Error()}
	}
	return &p, nil
}
