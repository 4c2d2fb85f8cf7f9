// Package bridge resolves an abstract token tree into flat, pixel-exact
// values for one fixed-size rendering surface.
package bridge

import (
	"math"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/scale"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// ReferenceArea is the surface area, in px², that resolves at scale 1.
// It is roughly a 300x250 rectangle.
const ReferenceArea = 75000

const (
	tinyArea  = 20000
	smallArea = 40000
	// aspectThreshold marks a surface as horizontal or vertical.
	aspectThreshold = 1.5
	// narrowStrip hides the subline on horizontal surfaces thinner than this.
	narrowStrip = 55

	minScaleFactor = 0.45
	maxScaleFactor = 2.5

	headlineStep = 2
	sublineStep  = 0
	ctaStep      = -1
	logoRatio    = 1.6

	mutedOpacityOnLight = 0.65
	mutedOpacityOnDark  = 0.75
)

// clamp bounds are compatibility contracts with existing renderers.
var (
	headlineBounds = bounds{9, 72}
	sublineBounds  = bounds{7, 28}
	ctaBounds      = bounds{7, 20}
	logoBounds     = bounds{14, 64}
)

type bounds struct{ min, max float64 }

func (b bounds) clamp(v float64) float64 {
	return math.Min(b.max, math.Max(b.min, v))
}

// Overrides are per-instance choices made on a single surface. Empty fields
// fall back to the tree or to fixed defaults.
type Overrides struct {
	// TextColor forces the foreground instead of deriving it from the
	// gradient.
	TextColor    string `json:"textColor,omitempty"`
	GradientFrom string `json:"gradientFrom,omitempty"`
	GradientTo   string `json:"gradientTo,omitempty"`
	// Accent colors the call-to-action when the tree has no button tokens.
	Accent string `json:"accent,omitempty"`
}

type Flags struct {
	IsTiny       bool `json:"isTiny"`
	IsSmall      bool `json:"isSmall"`
	IsHorizontal bool `json:"isHorizontal"`
	IsVertical   bool `json:"isVertical"`
	HideSubline  bool `json:"hideSubline"`
	HideLogo     bool `json:"hideLogo"`
	// HideCta is always false. Renderers may shrink the call-to-action but
	// never omit it.
	HideCta bool `json:"hideCta"`
}

type FontSizes struct {
	Headline int `json:"headline"`
	Subline  int `json:"subline"`
	CTA      int `json:"cta"`
	Logo     int `json:"logo"`
}

type Spacing struct {
	Padding      int `json:"padding"`
	Gap          int `json:"gap"`
	CTAMarginTop int `json:"ctaMarginTop"`
}

type Colors struct {
	Text          string  `json:"text"`
	TextMuted     string  `json:"textMuted"`
	MutedOpacity  float64 `json:"mutedOpacity"`
	CTABackground string  `json:"ctaBackground"`
	CTAForeground string  `json:"ctaForeground"`
	GradientFrom  string  `json:"gradientFrom"`
	GradientTo    string  `json:"gradientTo"`
}

type Fonts struct {
	Heading          string `json:"heading"`
	Body             string `json:"body"`
	HeadingWeight    int    `json:"headingWeight"`
	HeadingUppercase bool   `json:"headingUppercase"`
	CTARadius        string `json:"ctaRadius"`
}

// Resolved is everything a fixed-pixel renderer needs for one surface.
type Resolved struct {
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	ScaleFactor float64   `json:"scaleFactor"`
	FontSize    FontSizes `json:"fontSize"`
	Spacing     Spacing   `json:"spacing"`
	Colors      Colors    `json:"colors"`
	Fonts       Fonts     `json:"fonts"`
	Flags       Flags     `json:"flags"`
}

// Resolve maps a tree onto a width x height surface. It never fails: a nil
// tree resolves with the default scale and colors, and dimensions below one
// pixel are treated as one.
func Resolve(width, height float64, o Overrides, tree *tokens.Tree) Resolved {
	width = atLeastOne(width)
	height = atLeastOne(height)

	area := width * height
	minDim := math.Min(width, height)
	aspect := width / height

	r := Resolved{Width: width, Height: height}
	r.Flags = Flags{
		IsTiny:       area < tinyArea,
		IsSmall:      area < smallArea,
		IsHorizontal: aspect > aspectThreshold,
		IsVertical:   1/aspect > aspectThreshold,
	}
	r.Flags.HideSubline = r.Flags.IsTiny || (r.Flags.IsHorizontal && minDim < narrowStrip)
	r.Flags.HideLogo = r.Flags.IsTiny

	factor := ScaleFactor(width, height)
	r.ScaleFactor = factor

	base, ratio := float64(tokens.DefaultScaleBase), tokens.DefaultScaleRatio
	if tree != nil && tree.Typography.Scale.Base > 0 && tree.Typography.Scale.Ratio > 0 {
		base = tree.Typography.Scale.Base
		ratio = tree.Typography.Scale.Ratio
	}
	headline := headlineBounds.clamp(scale.Size(base, ratio, headlineStep) * factor)
	r.FontSize = FontSizes{
		Headline: round(headline),
		Subline:  round(sublineBounds.clamp(scale.Size(base, ratio, sublineStep) * factor)),
		CTA:      round(ctaBounds.clamp(scale.Size(base, ratio, ctaStep) * factor)),
		Logo:     round(logoBounds.clamp(headline * logoRatio)),
	}

	r.Spacing = Spacing{
		Padding:      round(math.Max(4, minDim*0.06)),
		Gap:          round(math.Max(2, minDim*0.025)),
		CTAMarginTop: round(math.Max(2, minDim*0.02)),
	}

	r.Colors = resolveColors(o, tree)
	r.Fonts = resolveFonts(tree)
	return r
}

// ScaleFactor returns sqrt(area / ReferenceArea) clamped to [0.45, 2.5].
func ScaleFactor(width, height float64) float64 {
	f := math.Sqrt(atLeastOne(width) * atLeastOne(height) / ReferenceArea)
	return math.Min(maxScaleFactor, math.Max(minScaleFactor, f))
}

func resolveColors(o Overrides, tree *tokens.Tree) Colors {
	primary, accent := tokens.DefaultPrimary, tokens.DefaultPrimary
	if tree != nil {
		if tree.Colors.Semantic.Primary != "" {
			primary = tree.Colors.Semantic.Primary
		}
		if tree.Colors.Semantic.Accent != "" {
			accent = tree.Colors.Semantic.Accent
		}
	}

	c := Colors{
		GradientFrom: firstNonEmpty(o.GradientFrom, primary),
		GradientTo:   firstNonEmpty(o.GradientTo, o.GradientFrom, primary),
	}

	auto := color.GetContrastColorForGradient(c.GradientFrom, c.GradientTo)
	c.Text = firstNonEmpty(o.TextColor, auto)
	c.TextMuted = c.Text
	c.MutedOpacity = mutedOpacityOnDark
	if !color.Same(c.Text, color.White) {
		c.MutedOpacity = mutedOpacityOnLight
	}

	if tree != nil && tree.Components.Button.Primary.Background != "" {
		btn := tree.Components.Button.Primary
		c.CTABackground = btn.Background
		c.CTAForeground = firstNonEmpty(btn.Foreground, color.GetContrastColor(btn.Background))
		return c
	}
	c.CTABackground = firstNonEmpty(o.Accent, accent)
	c.CTAForeground = color.GetContrastColor(c.CTABackground)
	return c
}

func resolveFonts(tree *tokens.Tree) Fonts {
	if tree == nil {
		tree = tokens.Default()
	}
	f := Fonts{
		Heading:          firstNonEmpty(tree.Typography.Fonts.Heading, tokens.DefaultFont),
		Body:             firstNonEmpty(tree.Typography.Fonts.Body, tree.Typography.Fonts.Heading, tokens.DefaultFont),
		HeadingWeight:    tree.Typography.FontWeights.Bold,
		HeadingUppercase: tree.Typography.HeadingUppercase,
		CTARadius:        firstNonEmpty(tree.Components.Button.Primary.Radius, tree.Borders.Radius.Default, tokens.DefaultRadius),
	}
	if f.HeadingWeight == 0 {
		f.HeadingWeight = 700
	}
	return f
}

func atLeastOne(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}

func round(v float64) int {
	return int(math.Round(v))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
