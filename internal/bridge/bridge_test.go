package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

func TestResolveReferenceSurface(t *testing.T) {
	r := Resolve(300, 250, Overrides{}, tokens.Default())

	require.Equal(t, 1.0, r.ScaleFactor)
	require.Equal(t, FontSizes{Headline: 25, Subline: 16, CTA: 13, Logo: 40}, r.FontSize)
	require.Equal(t, Spacing{Padding: 15, Gap: 6, CTAMarginTop: 5}, r.Spacing)
	require.Equal(t, Flags{}, r.Flags)
}

func TestResolveNilTreeUsesDefaultScale(t *testing.T) {
	r := Resolve(300, 250, Overrides{}, nil)
	require.Equal(t, 25, r.FontSize.Headline)
	require.Equal(t, tokens.DefaultFont, r.Fonts.Heading)
	require.Equal(t, 700, r.Fonts.HeadingWeight)
}

func TestResolveMobileBanner(t *testing.T) {
	r := Resolve(320, 50, Overrides{}, tokens.Default())

	require.True(t, r.Flags.IsTiny)
	require.True(t, r.Flags.IsHorizontal)
	require.True(t, r.Flags.HideSubline)
	require.True(t, r.Flags.HideLogo)
	require.False(t, r.Flags.HideCta)
	require.Equal(t, 12, r.FontSize.Headline)
	require.Equal(t, Spacing{Padding: 4, Gap: 2, CTAMarginTop: 2}, r.Spacing)
}

func TestResolveLeaderboardKeepsSubline(t *testing.T) {
	r := Resolve(728, 90, Overrides{}, tokens.Default())
	require.False(t, r.Flags.IsTiny)
	require.True(t, r.Flags.IsHorizontal)
	require.False(t, r.Flags.HideSubline)
}

func TestResolveVertical(t *testing.T) {
	r := Resolve(160, 600, Overrides{}, nil)
	require.True(t, r.Flags.IsVertical)
	require.False(t, r.Flags.IsHorizontal)
}

func TestResolveClampsDegenerateSurfaces(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          FontSizes
		factor        float64
	}{
		{"one pixel", 1, 1, FontSizes{Headline: 11, Subline: 7, CTA: 7, Logo: 18}, 0.45},
		{"zero", 0, 0, FontSizes{Headline: 11, Subline: 7, CTA: 7, Logo: 18}, 0.45},
		{"huge", 3000, 3000, FontSizes{Headline: 63, Subline: 28, CTA: 20, Logo: 64}, 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.width, tt.height, Overrides{}, nil)
			require.Equal(t, tt.want, r.FontSize)
			require.Equal(t, tt.factor, r.ScaleFactor)
			require.False(t, r.Flags.HideCta)
			require.GreaterOrEqual(t, r.Spacing.Padding, 4)
		})
	}
}

func TestResolveTextColor(t *testing.T) {
	r := Resolve(300, 250, Overrides{}, tokens.Default())
	require.Equal(t, color.White, r.Colors.Text)
	require.Equal(t, 0.75, r.Colors.MutedOpacity)

	r = Resolve(300, 250, Overrides{GradientFrom: "#ffffff", GradientTo: "#fafafa"}, nil)
	require.Equal(t, color.NearBlack, r.Colors.Text)
	require.Equal(t, 0.65, r.Colors.MutedOpacity)

	r = Resolve(300, 250, Overrides{TextColor: "#ff00ff", GradientFrom: "#000000"}, nil)
	require.Equal(t, "#ff00ff", r.Colors.Text)
	require.Equal(t, "#ff00ff", r.Colors.TextMuted)
}

func TestResolveWhiteOverrideSpellings(t *testing.T) {
	for _, white := range []string{"#ffffff", "#FFFFFF", "#fff", "#FFF"} {
		r := Resolve(300, 250, Overrides{TextColor: white}, nil)
		require.Equalf(t, 0.75, r.Colors.MutedOpacity, "text %s", white)
		require.Equal(t, white, r.Colors.Text)
	}
}

func TestResolveCTAColors(t *testing.T) {
	tree := tokens.Default()
	tree.Components.Button.Primary.Background = "#f97316"
	tree.Components.Button.Primary.Foreground = "#111111"

	r := Resolve(300, 250, Overrides{Accent: "#00ff00"}, tree)
	require.Equal(t, "#f97316", r.Colors.CTABackground)
	require.Equal(t, "#111111", r.Colors.CTAForeground)

	r = Resolve(300, 250, Overrides{Accent: "#f97316"}, nil)
	require.Equal(t, "#f97316", r.Colors.CTABackground)
	require.Equal(t, color.GetContrastColor("#f97316"), r.Colors.CTAForeground)
}

func TestResolveUsesTreeScale(t *testing.T) {
	tree := tokens.Default()
	tree.Typography.SetScale(20, 1.5)

	r := Resolve(300, 250, Overrides{}, tree)
	require.Equal(t, 45, r.FontSize.Headline)
	require.Equal(t, 20, r.FontSize.Subline)
	require.Equal(t, 13, r.FontSize.CTA)
}

func TestScaleFactor(t *testing.T) {
	require.Equal(t, 1.0, ScaleFactor(300, 250))
	require.Equal(t, 0.45, ScaleFactor(10, 10))
	require.Equal(t, 2.5, ScaleFactor(10000, 10000))
}

func TestResolveBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	results, err := ResolveBatch(context.Background(), StandardSurfaces, Overrides{}, tokens.Default())
	require.NoError(t, err)
	require.Len(t, results, len(StandardSurfaces))
	for i, res := range results {
		require.Equal(t, StandardSurfaces[i], res.Surface)
		require.Equal(t, Resolve(res.Surface.Width, res.Surface.Height, Overrides{}, tokens.Default()), res.Resolved)
	}
}

func TestResolveBatchCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveBatch(ctx, StandardSurfaces, Overrides{}, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}
