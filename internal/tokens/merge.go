package tokens

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Merge deep-merges p into a copy of t and returns the copy. t is never
// modified. Merge has no failure mode and performs no validation.
func Merge(t *Tree, p Patch) *Tree {
	out := t.Clone()
	if out == nil {
		out = &Tree{}
	}

	set(&out.Version, p.Version)
	if p.Colors != nil {
		mergeColors(&out.Colors, p.Colors)
	}
	if p.Typography != nil {
		mergeTypography(&out.Typography, p.Typography)
	}
	if p.Spacing != nil {
		mergeSpacing(&out.Spacing, p.Spacing)
	}
	if p.Borders != nil {
		mergeBorders(&out.Borders, p.Borders)
	}
	if s := p.Shadows; s != nil {
		set(&out.Shadows.SM, s.SM)
		set(&out.Shadows.MD, s.MD)
		set(&out.Shadows.LG, s.LG)
		set(&out.Shadows.XL, s.XL)
	}
	if p.Components != nil {
		mergeComponents(&out.Components, p.Components)
	}
	if p.Media != nil {
		mergeMedia(&out.Media, p.Media)
	}
	if v := p.Voice; v != nil {
		set(&out.Voice.Formality, v.Formality)
		setSlice(&out.Voice.Tone, v.Tone)
		set(&out.Voice.Address, v.Address)
		setSlice(&out.Voice.Languages, v.Languages)
		setSlice(&out.Voice.Dos, v.Dos)
		setSlice(&out.Voice.Donts, v.Donts)
		set(&out.Voice.Description, v.Description)
	}
	return out
}

// Equal reports whether two trees are structurally equal. Nil and empty
// collections compare equal.
func Equal(a, b *Tree) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// Diff returns a human-readable structural diff, empty when equal.
func Diff(a, b *Tree) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setSlice(dst *[]string, v *[]string) {
	if v != nil {
		*dst = cloneSlice(*v)
	}
}

func mergeColors(dst *Colors, p *ColorsPatch) {
	if p.Palette != nil {
		if dst.Palette == nil {
			dst.Palette = make(map[string]string, len(p.Palette))
		}
		for name, hex := range p.Palette {
			dst.Palette[name] = hex
		}
	}

	s := p.Semantic
	if s == nil {
		return
	}
	set(&dst.Semantic.Primary, s.Primary)
	set(&dst.Semantic.Secondary, s.Secondary)
	set(&dst.Semantic.Accent, s.Accent)
	if b := s.Background; b != nil {
		set(&dst.Semantic.Background.Default, b.Default)
		set(&dst.Semantic.Background.Subtle, b.Subtle)
		set(&dst.Semantic.Background.Inverse, b.Inverse)
	}
	if t := s.Text; t != nil {
		set(&dst.Semantic.Text.Default, t.Default)
		set(&dst.Semantic.Text.Muted, t.Muted)
		set(&dst.Semantic.Text.Inverse, t.Inverse)
		set(&dst.Semantic.Text.OnPrimary, t.OnPrimary)
	}
	if st := s.Status; st != nil {
		set(&dst.Semantic.Status.Success, st.Success)
		set(&dst.Semantic.Status.Warning, st.Warning)
		set(&dst.Semantic.Status.Error, st.Error)
		set(&dst.Semantic.Status.Info, st.Info)
	}
	if b := s.Border; b != nil {
		set(&dst.Semantic.Border.Default, b.Default)
		set(&dst.Semantic.Border.Subtle, b.Subtle)
	}
}

func mergeTypography(dst *Typography, p *TypographyPatch) {
	if f := p.Fonts; f != nil {
		set(&dst.Fonts.Heading, f.Heading)
		set(&dst.Fonts.Body, f.Body)
		set(&dst.Fonts.Mono, f.Mono)
	}
	if s := p.Scale; s != nil {
		set(&dst.Scale.Base, s.Base)
		set(&dst.Scale.Ratio, s.Ratio)
		set(&dst.Scale.XS, s.XS)
		set(&dst.Scale.SM, s.SM)
		set(&dst.Scale.TypeScale.Base, s.Step)
		set(&dst.Scale.MD, s.MD)
		set(&dst.Scale.LG, s.LG)
		set(&dst.Scale.XL, s.XL)
		set(&dst.Scale.XL2, s.XL2)
		set(&dst.Scale.XL3, s.XL3)
		set(&dst.Scale.XL4, s.XL4)
		set(&dst.Scale.XL5, s.XL5)
	}
	if l := p.LineHeight; l != nil {
		set(&dst.LineHeight.Tight, l.Tight)
		set(&dst.LineHeight.Normal, l.Normal)
		set(&dst.LineHeight.Relaxed, l.Relaxed)
	}
	if l := p.LetterSpacing; l != nil {
		set(&dst.LetterSpacing.Tight, l.Tight)
		set(&dst.LetterSpacing.Normal, l.Normal)
		set(&dst.LetterSpacing.Wide, l.Wide)
	}
	if w := p.FontWeights; w != nil {
		set(&dst.FontWeights.Normal, w.Normal)
		set(&dst.FontWeights.Medium, w.Medium)
		set(&dst.FontWeights.Semibold, w.Semibold)
		set(&dst.FontWeights.Bold, w.Bold)
	}
	set(&dst.HeadingUppercase, p.HeadingUppercase)
}

func mergeSpacing(dst *Spacing, p *SpacingPatch) {
	set(&dst.Base, p.Base)
	if s := p.Scale; s != nil {
		set(&dst.Scale.XS, s.XS)
		set(&dst.Scale.SM, s.SM)
		set(&dst.Scale.MD, s.MD)
		set(&dst.Scale.LG, s.LG)
		set(&dst.Scale.XL, s.XL)
		set(&dst.Scale.XL2, s.XL2)
		set(&dst.Scale.XL3, s.XL3)
		set(&dst.Scale.XL4, s.XL4)
	}
	set(&dst.Container, p.Container)
	set(&dst.SectionPadding, p.SectionPadding)
}

func mergeBorders(dst *Borders, p *BordersPatch) {
	if r := p.Radius; r != nil {
		set(&dst.Radius.None, r.None)
		set(&dst.Radius.SM, r.SM)
		set(&dst.Radius.MD, r.MD)
		set(&dst.Radius.LG, r.LG)
		set(&dst.Radius.XL, r.XL)
		set(&dst.Radius.Full, r.Full)
		set(&dst.Radius.Default, r.Default)
	}
	set(&dst.Width, p.Width)
	set(&dst.Color, p.Color)
}

func mergeComponents(dst *Components, p *ComponentsPatch) {
	if b := p.Button; b != nil {
		mergeButton(&dst.Button.Primary, b.Primary)
		mergeButton(&dst.Button.Secondary, b.Secondary)
		mergeButton(&dst.Button.Ghost, b.Ghost)
		mergeButton(&dst.Button.Outline, b.Outline)
	}
	if i := p.Input; i != nil {
		set(&dst.Input.Background, i.Background)
		set(&dst.Input.Foreground, i.Foreground)
		set(&dst.Input.Border, i.Border)
		set(&dst.Input.FocusBorder, i.FocusBorder)
		set(&dst.Input.Radius, i.Radius)
		set(&dst.Input.Padding, i.Padding)
		set(&dst.Input.Placeholder, i.Placeholder)
	}
	if c := p.Card; c != nil {
		set(&dst.Card.Background, c.Background)
		set(&dst.Card.Border, c.Border)
		set(&dst.Card.Radius, c.Radius)
		set(&dst.Card.Shadow, c.Shadow)
		set(&dst.Card.Padding, c.Padding)
	}
	if l := p.Link; l != nil {
		set(&dst.Link.Color, l.Color)
		set(&dst.Link.HoverColor, l.HoverColor)
		set(&dst.Link.Underline, l.Underline)
	}
}

func mergeButton(dst *ButtonStyle, p *ButtonStylePatch) {
	if p == nil {
		return
	}
	set(&dst.Background, p.Background)
	set(&dst.Foreground, p.Foreground)
	set(&dst.Border, p.Border)
	set(&dst.Radius, p.Radius)
	set(&dst.PaddingX, p.PaddingX)
	set(&dst.PaddingY, p.PaddingY)
	set(&dst.FontWeight, p.FontWeight)
	set(&dst.TextTransform, p.TextTransform)
}

func mergeMedia(dst *Media, p *MediaPatch) {
	if l := p.LogoVariants; l != nil {
		set(&dst.LogoVariants.Primary, l.Primary)
		set(&dst.LogoVariants.Dark, l.Dark)
		set(&dst.LogoVariants.Light, l.Light)
		set(&dst.LogoVariants.Icon, l.Icon)
	}
	set(&dst.Favicon, p.Favicon)
	set(&dst.ImageStyle, p.ImageStyle)
	set(&dst.IconStyle, p.IconStyle)
}
