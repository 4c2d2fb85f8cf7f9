package color

import "math"

// Palette is the set of colors derived from a single primary.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Neutral   string `json:"neutral"`

	Background        string `json:"background"`
	BackgroundSubtle  string `json:"backgroundSubtle"`
	BackgroundInverse string `json:"backgroundInverse"`

	Text        string `json:"text"`
	TextMuted   string `json:"textMuted"`
	TextInverse string `json:"textInverse"`
	OnPrimary   string `json:"onPrimary"`

	Border       string `json:"border"`
	BorderSubtle string `json:"borderSubtle"`
}

// tone describes a surface derived from the primary hue.
type tone struct {
	satFactor float64
	lightness float64
}

var (
	toneBackground        = tone{satFactor: 0.03, lightness: 0.97}
	toneBackgroundSubtle  = tone{satFactor: 0.05, lightness: 0.96}
	toneBackgroundInverse = tone{satFactor: 0.15, lightness: 0.06}
	toneText              = tone{satFactor: 0.15, lightness: 0.09}
	toneTextMuted         = tone{satFactor: 0.10, lightness: 0.42}
	toneBorder            = tone{satFactor: 0.10, lightness: 0.88}
	toneBorderSubtle      = tone{satFactor: 0.06, lightness: 0.93}
)

// GeneratePalette derives a harmonic palette from primaryHex. The primary is
// returned verbatim. An unparsable primary derives from black.
func GeneratePalette(primaryHex string) Palette {
	base, err := HexToHSL(primaryHex)
	if err != nil {
		base = HSL{}
	}

	secondary := HSL{
		H: rotate(base.H, 30),
		S: base.S * 0.85,
		L: math.Min(base.L, 0.65),
	}
	accent := HSL{
		H: rotate(base.H, 180),
		S: math.Min(base.S*1.1, 1),
		L: 0.55,
	}

	return Palette{
		Primary:   primaryHex,
		Secondary: HSLToHex(secondary),
		Accent:    HSLToHex(accent),
		Neutral:   Neutral,

		Background:        toneOf(base, toneBackground),
		BackgroundSubtle:  toneOf(base, toneBackgroundSubtle),
		BackgroundInverse: toneOf(base, toneBackgroundInverse),

		Text:        toneOf(base, toneText),
		TextMuted:   toneOf(base, toneTextMuted),
		TextInverse: White,
		OnPrimary:   onPrimary(base),

		Border:       toneOf(base, toneBorder),
		BorderSubtle: toneOf(base, toneBorderSubtle),
	}
}

func onPrimary(base HSL) string {
	if base.L < contrastLightnessThreshold {
		return White
	}
	return NearBlack
}

func toneOf(base HSL, t tone) string {
	return HSLToHex(HSL{H: base.H, S: base.S * t.satFactor, L: t.lightness})
}

func rotate(h, deg float64) float64 {
	return math.Mod(h+deg, 360)
}
