package migrate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

func legacyFixture() *models.LegacyProfile {
	radius := 6.0
	padX, padY := 24.0, 12.0
	upper := true
	return &models.LegacyProfile{
		Colors: &models.LegacyColors{Dark: "#0f172a", Light: "#f8fafc", Accent: "#f97316"},
		Fonts: &models.LegacyFonts{
			Headline: models.LegacyHeadline{Family: "Poppins", Weight: "800", Uppercase: &upper},
		},
		Layout: &models.LegacyLayout{
			Padding: models.LegacyPadding{Top: 48},
			Button:  models.LegacyButton{Radius: &radius, PaddingX: &padX, PaddingY: &padY},
		},
		Logo:         "https://cdn.example.com/logo.svg",
		LogoVariants: &models.LegacyLogoVariants{Dark: "https://cdn.example.com/logo-dark.svg"},
	}
}

func requireValid(t *testing.T, tree *tokens.Tree) {
	t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	_, issues, err := schema.ValidateJSON(data)
	require.NoError(t, err)
	require.Empty(t, issues, "migrated tree issues: %v", issues)
}

func TestFromLegacyNil(t *testing.T) {
	tree := FromLegacy(nil)
	require.True(t, tokens.Equal(tokens.Default(), tree))
	requireValid(t, tree)
}

func TestFromLegacyLogoOnly(t *testing.T) {
	tree := FromLegacy(&models.LegacyProfile{Logo: "logo.png"})

	want := tokens.Default()
	want.Media.LogoVariants.Primary = "logo.png"
	if diff := tokens.Diff(want, tree); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
	requireValid(t, tree)
}

func TestFromLegacyColorsKeepUserSwatches(t *testing.T) {
	tree := FromLegacy(legacyFixture())

	palette := tree.Colors.Palette
	require.Equal(t, "#0f172a", palette["primary"])
	require.Equal(t, "#f8fafc", palette["secondary"])
	require.Equal(t, "#f97316", palette["accent"])
	require.Equal(t, "#f97316", tree.Colors.Semantic.Accent)
	require.Equal(t, color.GetContrastColor("#0f172a"), tree.Colors.Semantic.Text.OnPrimary)

	derived := color.GeneratePalette("#0f172a")
	require.Equal(t, derived.Background, tree.Colors.Semantic.Background.Default)
	require.Equal(t, derived.Border, tree.Colors.Semantic.Border.Default)

	buttons := tree.Components.Button
	require.Equal(t, "#f97316", buttons.Primary.Background)
	require.Equal(t, color.GetContrastColor("#f97316"), buttons.Primary.Foreground)
	require.Equal(t, "#0f172a", buttons.Ghost.Foreground)
	require.Equal(t, "#0f172a", buttons.Outline.Foreground)
	require.Equal(t, "#0f172a", buttons.Outline.Border)
}

func TestFromLegacyTypography(t *testing.T) {
	tree := FromLegacy(legacyFixture())

	require.Equal(t, "Poppins", tree.Typography.Fonts.Heading)
	require.Equal(t, "Poppins", tree.Typography.Fonts.Body, "body falls back to heading family")
	require.Equal(t, 800, tree.Typography.FontWeights.Bold)
	require.True(t, tree.Typography.HeadingUppercase)

	legacy := legacyFixture()
	legacy.Fonts.Body.Family = "Lora"
	legacy.Fonts.Headline.Uppercase = nil
	tree = FromLegacy(legacy)
	require.Equal(t, "Lora", tree.Typography.Fonts.Body)
	require.False(t, tree.Typography.HeadingUppercase)
}

func TestParseWeight(t *testing.T) {
	tests := map[string]int{
		"700":          700,
		"600 semibold": 600,
		"bold":         700,
		"":             700,
		"50":           700,
		"1000":         700,
		" 300 ":        300,
	}
	for in, want := range tests {
		if got := parseWeight(in); got != want {
			t.Fatalf("parseWeight(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFromLegacyLayout(t *testing.T) {
	tree := FromLegacy(legacyFixture())

	require.Equal(t, 8.0, tree.Spacing.Base)
	require.Equal(t, "8px", tree.Spacing.Scale.XS)
	require.Equal(t, "192px", tree.Spacing.Scale.XL4)

	require.Equal(t, "6px", tree.Borders.Radius.Default)
	b := tree.Components.Button
	for name, variant := range map[string]tokens.ButtonStyle{
		"primary": b.Primary, "secondary": b.Secondary, "ghost": b.Ghost, "outline": b.Outline,
	} {
		require.Equalf(t, "6px", variant.Radius, "%s radius", name)
		require.Equalf(t, "24px", variant.PaddingX, "%s paddingX", name)
		require.Equalf(t, "12px", variant.PaddingY, "%s paddingY", name)
	}
}

func TestFromLegacySmallPaddingFloorsSpacingBase(t *testing.T) {
	legacy := legacyFixture()
	legacy.Layout.Padding.Top = 2

	tree := FromLegacy(legacy)
	require.Equal(t, 1.0, tree.Spacing.Base)
	require.Equal(t, "1px", tree.Spacing.Scale.XS)
	requireValid(t, tree)
}

func TestFromLegacyHugePaddingCapsSpacingBase(t *testing.T) {
	legacy := legacyFixture()
	legacy.Layout.Padding.Top = 1e20

	tree := FromLegacy(legacy)
	require.Equal(t, 64.0, tree.Spacing.Base)
	require.Equal(t, "64px", tree.Spacing.Scale.XS)
	require.Equal(t, "1536px", tree.Spacing.Scale.XL4)
	requireValid(t, tree)
}

func TestFromLegacyMedia(t *testing.T) {
	tree := FromLegacy(legacyFixture())
	require.Equal(t, "https://cdn.example.com/logo.svg", tree.Media.LogoVariants.Primary)
	require.Equal(t, "https://cdn.example.com/logo-dark.svg", tree.Media.LogoVariants.Dark)
	require.Empty(t, tree.Media.LogoVariants.Icon)
}

func TestFromLegacyAlwaysSchemaValid(t *testing.T) {
	partial := []*models.LegacyProfile{
		legacyFixture(),
		{Colors: &models.LegacyColors{Dark: "#ffffff"}},
		{Colors: &models.LegacyColors{Dark: "#facc15", Accent: "#000000"}},
		{Colors: &models.LegacyColors{Dark: "not-a-color"}},
		{Fonts: &models.LegacyFonts{Headline: models.LegacyHeadline{Weight: "heavy"}}},
		{Layout: &models.LegacyLayout{}},
	}
	for i, legacy := range partial {
		tree := FromLegacy(legacy)
		data, err := json.Marshal(tree)
		require.NoError(t, err)
		_, issues, err := schema.ValidateJSON(data)
		require.NoError(t, err)
		require.Emptyf(t, issues, "case %d: %v", i, issues)
	}
}
