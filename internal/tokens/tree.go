// Package tokens defines the brand design-token tree, its typed partial
// updates, and the deep-merge that applies one to the other.
package tokens

import "github.com/opencode-ai/brandkit/internal/scale"

// CurrentVersion is the only tree version this module understands.
const CurrentVersion = 1

// Tree is the canonical design-token tree for one brand.
type Tree struct {
	Version    int        `json:"version" validate:"eq=1"`
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    Spacing    `json:"spacing"`
	Borders    Borders    `json:"borders"`
	Shadows    Shadows    `json:"shadows"`
	Components Components `json:"components"`
	Media      Media      `json:"media"`
	Voice      Voice      `json:"voice"`
}

// Colors holds named swatches and the semantic roles mapped onto them.
type Colors struct {
	Palette  map[string]string `json:"palette"`
	Semantic Semantic          `json:"semantic"`
}

// Semantic maps abstract color roles to concrete colors.
type Semantic struct {
	Primary    string           `json:"primary"`
	Secondary  string           `json:"secondary"`
	Accent     string           `json:"accent"`
	Background BackgroundColors `json:"background"`
	Text       TextColors       `json:"text"`
	Status     StatusColors     `json:"status"`
	Border     BorderColors     `json:"border"`
}

type BackgroundColors struct {
	Default string `json:"default"`
	Subtle  string `json:"subtle"`
	Inverse string `json:"inverse"`
}

type TextColors struct {
	Default   string `json:"default"`
	Muted     string `json:"muted"`
	Inverse   string `json:"inverse"`
	OnPrimary string `json:"onPrimary"`
}

type StatusColors struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

type BorderColors struct {
	Default string `json:"default"`
	Subtle  string `json:"subtle"`
}

// Typography describes fonts and the modular type scale.
type Typography struct {
	Fonts            Fonts         `json:"fonts"`
	Scale            TypeScale     `json:"scale"`
	LineHeight       LineHeight    `json:"lineHeight"`
	LetterSpacing    LetterSpacing `json:"letterSpacing"`
	FontWeights      FontWeights   `json:"fontWeights"`
	HeadingUppercase bool          `json:"headingUppercase"`
}

type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono,omitempty"`
}

// TypeScale carries the numeric inputs of the scale next to the generated
// steps. Steps must be regenerated whenever Base or Ratio change.
type TypeScale struct {
	Base  float64 `json:"base" validate:"gt=0"`
	Ratio float64 `json:"ratio" validate:"gt=1"`
	scale.TypeScale
}

type LineHeight struct {
	Tight   float64 `json:"tight" validate:"gt=0"`
	Normal  float64 `json:"normal" validate:"gt=0"`
	Relaxed float64 `json:"relaxed" validate:"gt=0"`
}

type LetterSpacing struct {
	Tight  string `json:"tight"`
	Normal string `json:"normal"`
	Wide   string `json:"wide"`
}

type FontWeights struct {
	Normal   int `json:"normal" validate:"min=100,max=900"`
	Medium   int `json:"medium" validate:"min=100,max=900"`
	Semibold int `json:"semibold" validate:"min=100,max=900"`
	Bold     int `json:"bold" validate:"min=100,max=900"`
}

// Spacing carries the spacing base next to its generated scale.
type Spacing struct {
	Base           float64            `json:"base" validate:"gt=0"`
	Scale          scale.SpacingScale `json:"scale"`
	Container      string             `json:"container"`
	SectionPadding string             `json:"sectionPadding"`
}

type Borders struct {
	Radius Radius `json:"radius"`
	Width  string `json:"width"`
	Color  string `json:"color"`
}

type Radius struct {
	None    string `json:"none"`
	SM      string `json:"sm"`
	MD      string `json:"md"`
	LG      string `json:"lg"`
	XL      string `json:"xl"`
	Full    string `json:"full"`
	Default string `json:"default"`
}

type Shadows struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

type Components struct {
	Button Buttons    `json:"button"`
	Input  InputStyle `json:"input"`
	Card   CardStyle  `json:"card"`
	Link   LinkStyle  `json:"link"`
}

type Buttons struct {
	Primary   ButtonStyle `json:"primary"`
	Secondary ButtonStyle `json:"secondary"`
	Ghost     ButtonStyle `json:"ghost"`
	Outline   ButtonStyle `json:"outline"`
}

// TextTransform values accepted on button labels.
const (
	TextTransformNone       = "none"
	TextTransformUppercase  = "uppercase"
	TextTransformLowercase  = "lowercase"
	TextTransformCapitalize = "capitalize"
)

type ButtonStyle struct {
	Background    string `json:"background"`
	Foreground    string `json:"foreground"`
	Border        string `json:"border"`
	Radius        string `json:"radius"`
	PaddingX      string `json:"paddingX"`
	PaddingY      string `json:"paddingY"`
	FontWeight    int    `json:"fontWeight" validate:"min=100,max=900"`
	TextTransform string `json:"textTransform" validate:"oneof=none uppercase lowercase capitalize"`
}

type InputStyle struct {
	Background  string `json:"background"`
	Foreground  string `json:"foreground"`
	Border      string `json:"border"`
	FocusBorder string `json:"focusBorder"`
	Radius      string `json:"radius"`
	Padding     string `json:"padding"`
	Placeholder string `json:"placeholder"`
}

type CardStyle struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Radius     string `json:"radius"`
	Shadow     string `json:"shadow"`
	Padding    string `json:"padding"`
}

type LinkStyle struct {
	Color      string `json:"color"`
	HoverColor string `json:"hoverColor"`
	Underline  bool   `json:"underline"`
}

type Media struct {
	LogoVariants LogoVariants `json:"logoVariants"`
	Favicon      string       `json:"favicon,omitempty"`
	ImageStyle   string       `json:"imageStyle"`
	IconStyle    string       `json:"iconStyle"`
}

type LogoVariants struct {
	Primary string `json:"primary"`
	Dark    string `json:"dark,omitempty"`
	Light   string `json:"light,omitempty"`
	Icon    string `json:"icon,omitempty"`
}

// Voice formality and address values.
const (
	FormalityFormal  = "formal"
	FormalityNeutral = "neutral"
	FormalityCasual  = "casual"

	AddressFormal   = "formal"
	AddressInformal = "informal"
)

// Voice describes how the brand writes.
type Voice struct {
	Formality   string   `json:"formality" validate:"oneof=formal neutral casual"`
	Tone        []string `json:"tone"`
	Address     string   `json:"address" validate:"oneof=formal informal"`
	Languages   []string `json:"languages"`
	Dos         []string `json:"dos"`
	Donts       []string `json:"donts"`
	Description string   `json:"description"`
}

// Clone returns a deep copy of t. Maps and slices are never shared.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := *t
	out.Colors.Palette = cloneMap(t.Colors.Palette)
	out.Voice.Tone = cloneSlice(t.Voice.Tone)
	out.Voice.Languages = cloneSlice(t.Voice.Languages)
	out.Voice.Dos = cloneSlice(t.Voice.Dos)
	out.Voice.Donts = cloneSlice(t.Voice.Donts)
	return &out
}

// SetScale sets the type scale inputs and regenerates every step.
func (t *Typography) SetScale(base, ratio float64) {
	t.Scale.Base = base
	t.Scale.Ratio = ratio
	t.Scale.TypeScale = scale.GenerateScale(base, ratio)
}

// SetBase sets the spacing base and regenerates every step.
func (s *Spacing) SetBase(base float64) {
	s.Base = base
	s.Scale = scale.GenerateSpacingScale(base)
}

// SetRadius applies one radius to the default border and every button variant.
func (t *Tree) SetRadius(radius string) {
	t.Borders.Radius.Default = radius
	t.Components.Button.Primary.Radius = radius
	t.Components.Button.Secondary.Radius = radius
	t.Components.Button.Ghost.Radius = radius
	t.Components.Button.Outline.Radius = radius
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
