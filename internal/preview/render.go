package preview

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/brandkit/internal/scale"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// DefaultWidth is used when the caller cannot detect a terminal width.
const DefaultWidth = 80

const (
	minWidth    = 40
	swatchWidth = 6
)

// Options controls Render.
type Options struct {
	Name  string
	Width int
}

// Render draws the palette, semantic roles, type ramp, spacing ramp and
// buttons of a tree.
func Render(tree *tokens.Tree, opts Options) string {
	if tree == nil {
		tree = tokens.Default()
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	name := opts.Name
	if name == "" {
		name = "brand"
	}

	styles := BuildStyles(ThemeFromTree(name, tree), tree)

	sections := []string{
		styles.Title.Render(name),
		section(styles, "Palette", renderPalette(styles, tree.Colors.Palette)),
		section(styles, "Semantic", renderSemantic(styles, tree.Colors.Semantic)),
		section(styles, "Type scale", renderTypeScale(styles, tree.Typography, width)),
		section(styles, "Spacing", renderSpacing(styles, tree.Spacing, width)),
		section(styles, "Buttons", renderButtons(styles)),
	}
	if tree.Voice.Description != "" || len(tree.Voice.Tone) > 0 {
		sections = append(sections, section(styles, "Voice", renderVoice(styles, tree.Voice)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func section(styles Styles, title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, "", styles.Heading.Render(title), body)
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
}

func renderPalette(styles Styles, palette map[string]string) string {
	keys := make([]string, 0, len(palette))
	for k := range palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %-12s %s", swatch(palette[k]), k, styles.Muted.Render(palette[k])))
	}
	return strings.Join(lines, "\n")
}

func renderSemantic(styles Styles, s tokens.Semantic) string {
	roles := []struct{ name, hex string }{
		{"primary", s.Primary},
		{"secondary", s.Secondary},
		{"accent", s.Accent},
		{"background", s.Background.Default},
		{"text", s.Text.Default},
		{"text.muted", s.Text.Muted},
		{"text.onPrimary", s.Text.OnPrimary},
		{"border", s.Border.Default},
		{"success", s.Status.Success},
		{"warning", s.Status.Warning},
		{"error", s.Status.Error},
		{"info", s.Status.Info},
	}
	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		lines = append(lines, fmt.Sprintf("%s %-15s %s", swatch(r.hex), r.name, styles.Muted.Render(r.hex)))
	}
	return strings.Join(lines, "\n")
}

// renderTypeScale draws one bar per step, proportional to the largest step.
func renderTypeScale(styles Styles, t tokens.Typography, width int) string {
	steps := t.Scale.Steps()
	names := scale.TypeStepNames()
	return ramp(styles, names, steps, width, fmt.Sprintf("%s / %s  base %.0fpx  ratio %.3g", t.Fonts.Heading, t.Fonts.Body, t.Scale.Base, t.Scale.Ratio))
}

func renderSpacing(styles Styles, s tokens.Spacing, width int) string {
	return ramp(styles, scale.SpacingStepNames(), s.Scale.Steps(), width, fmt.Sprintf("base %.0fpx", s.Base))
}

func ramp(styles Styles, names, values []string, width int, caption string) string {
	sizes := make([]float64, len(values))
	largest := 0.0
	for i, v := range values {
		if px, ok := scale.ParsePx(v); ok {
			sizes[i] = px
			largest = math.Max(largest, px)
		}
	}

	barSpace := width - 20
	lines := []string{styles.Muted.Render(caption)}
	for i, name := range names {
		n := 1
		if largest > 0 {
			n = int(math.Max(1, math.Round(sizes[i]/largest*float64(barSpace))))
		}
		lines = append(lines, fmt.Sprintf("%-5s %8s %s", name, values[i], styles.Accent.Render(strings.Repeat("█", n))))
	}
	return strings.Join(lines, "\n")
}

func renderButtons(styles Styles) string {
	order := []string{"primary", "secondary", "ghost", "outline"}
	rendered := make([]string, 0, len(order))
	for _, name := range order {
		style, ok := styles.Buttons[name]
		if !ok {
			continue
		}
		rendered = append(rendered, style.Render(name), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func renderVoice(styles Styles, v tokens.Voice) string {
	lines := []string{}
	if v.Description != "" {
		lines = append(lines, styles.Text.Render(v.Description))
	}
	lines = append(lines, styles.Muted.Render(fmt.Sprintf("formality %s, address %s", v.Formality, v.Address)))
	if len(v.Tone) > 0 {
		lines = append(lines, styles.Muted.Render("tone: "+strings.Join(v.Tone, ", ")))
	}
	return strings.Join(lines, "\n")
}

func upper(s string) string { return strings.ToUpper(s) }
func lower(s string) string { return strings.ToLower(s) }
