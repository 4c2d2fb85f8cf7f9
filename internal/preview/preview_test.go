package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

func TestThemeFromTree(t *testing.T) {
	tree := tokens.Default()
	theme := ThemeFromTree("acme", tree)

	require.Equal(t, "acme", theme.Name)
	require.Equal(t, tree.Colors.Semantic.Primary, theme.Tokens.Primary)
	require.Equal(t, tree.Colors.Semantic.Text.OnPrimary, theme.Tokens.OnPrimary)
	require.Equal(t, tree.Colors.Semantic.Status.Error, theme.Tokens.Error)

	require.Equal(t, tokens.DefaultPrimary, ThemeFromTree("x", nil).Tokens.Primary)
}

func TestBuildStylesButtons(t *testing.T) {
	tree := tokens.Default()
	tree.Components.Button.Primary.TextTransform = tokens.TextTransformUppercase

	styles := BuildStyles(ThemeFromTree("acme", tree), tree)
	require.Len(t, styles.Buttons, 4)
	require.Contains(t, styles.Buttons["primary"].Render("buy"), "BUY")

	bare := BuildStyles(ThemeFromTree("acme", tree), nil)
	require.Empty(t, bare.Buttons)
}

func TestBuildStylesUppercaseHeading(t *testing.T) {
	tree := tokens.Default()
	tree.Typography.HeadingUppercase = true

	styles := BuildStyles(ThemeFromTree("acme", tree), tree)
	require.Contains(t, styles.Heading.Render("palette"), "PALETTE")
}

func TestRenderIncludesSections(t *testing.T) {
	tree := tokens.Default()
	out := Render(tree, Options{Name: "acme", Width: 60})

	for _, want := range []string{"acme", "Palette", "Semantic", "Type scale", "Spacing", "Buttons", "primary", tokens.DefaultPrimary, "2xl", "base_"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render output missing %q:\n%s", want, out)
		}
	}
	require.NotContains(t, out, "Voice", "empty voice is omitted")
}

func TestRenderRespectsWidth(t *testing.T) {
	out := Render(tokens.Default(), Options{Width: 80})
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 80, "line too wide: %q", line)
	}
}

func TestRenderVoice(t *testing.T) {
	tree := tokens.Default()
	tree.Voice.Description = "Plainspoken and warm."
	tree.Voice.Tone = []string{"warm", "direct"}

	out := Render(tree, Options{})
	require.Contains(t, out, "Voice")
	require.Contains(t, out, "Plainspoken and warm.")
	require.Contains(t, out, "warm, direct")
}
