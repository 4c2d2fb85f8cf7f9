// Package migrate bootstraps a token tree from a legacy flat profile.
package migrate

import (
	"math"
	"strconv"
	"strings"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/logging"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

const (
	defaultBoldWeight = 700
	// spacingDivisor turns legacy section padding into a spacing base.
	spacingDivisor = 6
	minSpacingBase = 1
	maxSpacingBase = 64
)

// FromLegacy builds a tree from a legacy profile. It never fails: every
// missing section falls back to the default tree. A nil or empty profile
// yields the default tree with only the primary logo carried over.
func FromLegacy(legacy *models.LegacyProfile) *tokens.Tree {
	logger := logging.Component("migrate")

	if legacy.IsEmpty() {
		tree := tokens.Default()
		if legacy != nil {
			tree.Media.LogoVariants.Primary = legacy.Logo
		}
		logger.Debug().Msg("no legacy sections, using default tree")
		return tree
	}

	tree := tokens.Default()
	if legacy.Colors != nil {
		tree = fromColors(legacy.Colors)
	}
	if legacy.Fonts != nil {
		applyFonts(tree, legacy.Fonts)
	}
	if legacy.Layout != nil {
		applyLayout(tree, legacy.Layout)
	}
	applyMedia(tree, legacy)

	logger.Debug().
		Bool("colors", legacy.Colors != nil).
		Bool("fonts", legacy.Fonts != nil).
		Bool("layout", legacy.Layout != nil).
		Msg("migrated legacy profile")
	return tree
}

func fromColors(c *models.LegacyColors) *tokens.Tree {
	dark := strings.TrimSpace(c.Dark)
	if dark == "" {
		dark = tokens.DefaultPrimary
	}

	tree := tokens.FromPalette(color.GeneratePalette(dark))
	palette := tree.Colors.Palette
	semantic := &tree.Colors.Semantic

	// User-chosen swatches win over derived ones.
	palette["primary"] = dark
	semantic.Primary = dark
	if c.Light != "" {
		palette["secondary"] = c.Light
		semantic.Secondary = c.Light
	}
	if c.Accent != "" {
		palette["accent"] = c.Accent
		semantic.Accent = c.Accent
	}
	semantic.Text.OnPrimary = color.GetContrastColor(dark)

	buttons := &tree.Components.Button
	buttons.Primary.Background = semantic.Accent
	buttons.Primary.Border = semantic.Accent
	buttons.Primary.Foreground = color.GetContrastColor(semantic.Accent)
	buttons.Secondary.Background = semantic.Secondary
	buttons.Secondary.Border = semantic.Secondary
	buttons.Secondary.Foreground = color.GetContrastColor(semantic.Secondary)
	buttons.Ghost.Foreground = dark
	buttons.Outline.Foreground = dark
	buttons.Outline.Border = dark

	tree.Components.Link.Color = semantic.Accent
	tree.Components.Input.FocusBorder = semantic.Accent
	return tree
}

func applyFonts(tree *tokens.Tree, f *models.LegacyFonts) {
	fonts := &tree.Typography.Fonts
	if f.Headline.Family != "" {
		fonts.Heading = f.Headline.Family
	}
	fonts.Body = f.Body.Family
	if fonts.Body == "" {
		fonts.Body = fonts.Heading
	}

	tree.Typography.FontWeights.Bold = parseWeight(f.Headline.Weight)
	tree.Typography.HeadingUppercase = f.Headline.Uppercase != nil && *f.Headline.Uppercase
}

func applyLayout(tree *tokens.Tree, l *models.LegacyLayout) {
	base := math.Round(l.Padding.Top / spacingDivisor)
	switch {
	case math.IsNaN(base) || base < minSpacingBase:
		base = minSpacingBase
	case base > maxSpacingBase:
		base = maxSpacingBase
	}
	tree.Spacing.SetBase(base)

	if l.Button.Radius != nil {
		tree.SetRadius(px(*l.Button.Radius))
	}
	b := &tree.Components.Button
	for _, variant := range []*tokens.ButtonStyle{&b.Primary, &b.Secondary, &b.Ghost, &b.Outline} {
		if l.Button.PaddingX != nil {
			variant.PaddingX = px(*l.Button.PaddingX)
		}
		if l.Button.PaddingY != nil {
			variant.PaddingY = px(*l.Button.PaddingY)
		}
	}
}

func applyMedia(tree *tokens.Tree, legacy *models.LegacyProfile) {
	logos := &tree.Media.LogoVariants
	logos.Primary = legacy.Logo
	if v := legacy.LogoVariants; v != nil {
		logos.Dark = v.Dark
		logos.Light = v.Light
		logos.Icon = v.Icon
	}
}

// parseWeight reads the leading integer of a legacy weight such as "700" or
// "600 semibold". Anything else, or a weight outside 100-900, yields 700.
func parseWeight(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	w, err := strconv.Atoi(s[:end])
	if err != nil || w < 100 || w > 900 {
		return defaultBoldWeight
	}
	return w
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
