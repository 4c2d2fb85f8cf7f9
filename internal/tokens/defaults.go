package tokens

import "github.com/opencode-ai/brandkit/internal/color"

// Default inputs for a tree built from nothing.
const (
	DefaultPrimary     = "#2563eb"
	DefaultFont        = "Inter"
	DefaultScaleBase   = 16.0
	DefaultScaleRatio  = 1.25
	DefaultSpacingBase = 4.0
	DefaultRadius      = "8px"
)

// Default returns a new, fully populated tree derived from DefaultPrimary.
func Default() *Tree {
	return FromPalette(color.GeneratePalette(DefaultPrimary))
}

// FromPalette returns the default tree with every color role taken from p.
func FromPalette(p color.Palette) *Tree {
	t := &Tree{
		Version: CurrentVersion,
		Colors: Colors{
			Palette: map[string]string{
				"primary":   p.Primary,
				"secondary": p.Secondary,
				"accent":    p.Accent,
				"neutral":   p.Neutral,
			},
			Semantic: Semantic{
				Primary:   p.Primary,
				Secondary: p.Secondary,
				Accent:    p.Accent,
				Background: BackgroundColors{
					Default: p.Background,
					Subtle:  p.BackgroundSubtle,
					Inverse: p.BackgroundInverse,
				},
				Text: TextColors{
					Default:   p.Text,
					Muted:     p.TextMuted,
					Inverse:   p.TextInverse,
					OnPrimary: p.OnPrimary,
				},
				Status: StatusColors{
					Success: "#16a34a",
					Warning: "#d97706",
					Error:   "#dc2626",
					Info:    "#0284c7",
				},
				Border: BorderColors{
					Default: p.Border,
					Subtle:  p.BorderSubtle,
				},
			},
		},
		Typography: Typography{
			Fonts: Fonts{
				Heading: DefaultFont,
				Body:    DefaultFont,
			},
			LineHeight: LineHeight{Tight: 1.2, Normal: 1.5, Relaxed: 1.75},
			LetterSpacing: LetterSpacing{
				Tight:  "-0.02em",
				Normal: "0em",
				Wide:   "0.05em",
			},
			FontWeights: FontWeights{Normal: 400, Medium: 500, Semibold: 600, Bold: 700},
		},
		Spacing: Spacing{
			Container:      "1200px",
			SectionPadding: "64px",
		},
		Borders: Borders{
			Radius: Radius{
				None: "0px",
				SM:   "4px",
				MD:   "8px",
				LG:   "12px",
				XL:   "16px",
				Full: "9999px",
			},
			Width: "1px",
			Color: p.Border,
		},
		Shadows: Shadows{
			SM: "0 1px 2px rgba(0,0,0,0.05)",
			MD: "0 4px 6px rgba(0,0,0,0.1)",
			LG: "0 10px 15px rgba(0,0,0,0.1)",
			XL: "0 20px 25px rgba(0,0,0,0.15)",
		},
		Components: Components{
			Button: Buttons{
				Primary: ButtonStyle{
					Background: p.Primary,
					Foreground: p.OnPrimary,
					Border:     p.Primary,
				},
				Secondary: ButtonStyle{
					Background: p.Secondary,
					Foreground: color.GetContrastColor(p.Secondary),
					Border:     p.Secondary,
				},
				Ghost: ButtonStyle{
					Background: "transparent",
					Foreground: p.Primary,
					Border:     "transparent",
				},
				Outline: ButtonStyle{
					Background: "transparent",
					Foreground: p.Primary,
					Border:     p.Primary,
				},
			},
			Input: InputStyle{
				Background:  p.Background,
				Foreground:  p.Text,
				Border:      p.Border,
				FocusBorder: p.Primary,
				Radius:      DefaultRadius,
				Padding:     "8px 12px",
				Placeholder: p.TextMuted,
			},
			Card: CardStyle{
				Background: p.Background,
				Border:     p.BorderSubtle,
				Radius:     "12px",
				Shadow:     "0 4px 6px rgba(0,0,0,0.1)",
				Padding:    "24px",
			},
			Link: LinkStyle{
				Color:      p.Primary,
				HoverColor: p.Secondary,
				Underline:  true,
			},
		},
		Media: Media{
			ImageStyle: "photography",
			IconStyle:  "outline",
		},
		Voice: Voice{
			Formality: FormalityNeutral,
			Tone:      []string{},
			Address:   AddressInformal,
			Languages: []string{"en"},
			Dos:       []string{},
			Donts:     []string{},
		},
	}

	for _, b := range t.buttons() {
		b.PaddingX = "20px"
		b.PaddingY = "10px"
		b.FontWeight = 600
		b.TextTransform = TextTransformNone
	}
	t.Typography.SetScale(DefaultScaleBase, DefaultScaleRatio)
	t.Spacing.SetBase(DefaultSpacingBase)
	t.SetRadius(DefaultRadius)
	return t
}

func (t *Tree) buttons() []*ButtonStyle {
	b := &t.Components.Button
	return []*ButtonStyle{&b.Primary, &b.Secondary, &b.Ghost, &b.Outline}
}
