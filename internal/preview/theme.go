package preview

import "github.com/opencode-ai/brandkit/internal/tokens"

// ThemeTokens are the terminal color roles taken from a token tree.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	OnPrimary  string
	Border     string
	Primary    string
	Secondary  string
	Accent     string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles the color roles with a display name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// ThemeFromTree maps the semantic colors of a tree onto terminal roles.
func ThemeFromTree(name string, tree *tokens.Tree) Theme {
	if tree == nil {
		tree = tokens.Default()
	}
	s := tree.Colors.Semantic
	return Theme{
		Name: name,
		Tokens: ThemeTokens{
			Background: s.Background.Default,
			Panel:      s.Background.Subtle,
			Text:       s.Text.Default,
			TextMuted:  s.Text.Muted,
			OnPrimary:  s.Text.OnPrimary,
			Border:     s.Border.Default,
			Primary:    s.Primary,
			Secondary:  s.Secondary,
			Accent:     s.Accent,
			Success:    s.Status.Success,
			Warning:    s.Status.Warning,
			Error:      s.Status.Error,
			Info:       s.Status.Info,
		},
	}
}
