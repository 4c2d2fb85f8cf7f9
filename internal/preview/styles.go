// Package preview renders a token tree as a terminal swatch sheet.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Buttons map[string]lipgloss.Style
}

// BuildStyles converts theme tokens into lipgloss styles. Button styles are
// taken from the tree's component tokens when a tree is given.
func BuildStyles(theme Theme, tree *tokens.Tree) Styles {
	t := theme.Tokens

	styles := Styles{
		Theme:   theme,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.OnPrimary)).Background(lipgloss.Color(t.Primary)).Bold(true).Padding(0, 1),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Background(lipgloss.Color(t.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t.Border)).Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		Buttons: make(map[string]lipgloss.Style),
	}

	if tree == nil {
		return styles
	}
	if tree.Typography.HeadingUppercase {
		styles.Heading = styles.Heading.Transform(upper)
	}
	b := tree.Components.Button
	for name, variant := range map[string]tokens.ButtonStyle{
		"primary": b.Primary, "secondary": b.Secondary, "ghost": b.Ghost, "outline": b.Outline,
	} {
		styles.Buttons[name] = buttonStyle(variant)
	}
	return styles
}

func buttonStyle(b tokens.ButtonStyle) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.Foreground)).
		Padding(0, 2).
		Bold(b.FontWeight >= 600)
	if b.Background != "" && b.Background != "transparent" {
		style = style.Background(lipgloss.Color(b.Background))
	}
	if b.Border != "" && b.Border != "transparent" && b.Border != b.Background {
		style = style.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(b.Border))
	}
	switch b.TextTransform {
	case tokens.TextTransformUppercase:
		style = style.Transform(upper)
	case tokens.TextTransformLowercase:
		style = style.Transform(lower)
	}
	return style
}
