package tokens

// Patch is a partial Tree. A nil field means "absent": Merge leaves the
// corresponding part of the tree untouched. Objects recurse, while scalars
// and slices replace the current value wholesale.
type Patch struct {
	Version    *int             `json:"version,omitempty"`
	Colors     *ColorsPatch     `json:"colors,omitempty"`
	Typography *TypographyPatch `json:"typography,omitempty"`
	Spacing    *SpacingPatch    `json:"spacing,omitempty"`
	Borders    *BordersPatch    `json:"borders,omitempty"`
	Shadows    *ShadowsPatch    `json:"shadows,omitempty"`
	Components *ComponentsPatch `json:"components,omitempty"`
	Media      *MediaPatch      `json:"media,omitempty"`
	Voice      *VoicePatch      `json:"voice,omitempty"`
}

type ColorsPatch struct {
	Palette  map[string]string `json:"palette,omitempty"`
	Semantic *SemanticPatch    `json:"semantic,omitempty"`
}

type SemanticPatch struct {
	Primary    *string                `json:"primary,omitempty"`
	Secondary  *string                `json:"secondary,omitempty"`
	Accent     *string                `json:"accent,omitempty"`
	Background *BackgroundColorsPatch `json:"background,omitempty"`
	Text       *TextColorsPatch       `json:"text,omitempty"`
	Status     *StatusColorsPatch     `json:"status,omitempty"`
	Border     *BorderColorsPatch     `json:"border,omitempty"`
}

type BackgroundColorsPatch struct {
	Default *string `json:"default,omitempty"`
	Subtle  *string `json:"subtle,omitempty"`
	Inverse *string `json:"inverse,omitempty"`
}

type TextColorsPatch struct {
	Default   *string `json:"default,omitempty"`
	Muted     *string `json:"muted,omitempty"`
	Inverse   *string `json:"inverse,omitempty"`
	OnPrimary *string `json:"onPrimary,omitempty"`
}

type StatusColorsPatch struct {
	Success *string `json:"success,omitempty"`
	Warning *string `json:"warning,omitempty"`
	Error   *string `json:"error,omitempty"`
	Info    *string `json:"info,omitempty"`
}

type BorderColorsPatch struct {
	Default *string `json:"default,omitempty"`
	Subtle  *string `json:"subtle,omitempty"`
}

type TypographyPatch struct {
	Fonts            *FontsPatch         `json:"fonts,omitempty"`
	Scale            *TypeScalePatch     `json:"scale,omitempty"`
	LineHeight       *LineHeightPatch    `json:"lineHeight,omitempty"`
	LetterSpacing    *LetterSpacingPatch `json:"letterSpacing,omitempty"`
	FontWeights      *FontWeightsPatch   `json:"fontWeights,omitempty"`
	HeadingUppercase *bool               `json:"headingUppercase,omitempty"`
}

type FontsPatch struct {
	Heading *string `json:"heading,omitempty"`
	Body    *string `json:"body,omitempty"`
	Mono    *string `json:"mono,omitempty"`
}

type TypeScalePatch struct {
	Base  *float64 `json:"base,omitempty"`
	Ratio *float64 `json:"ratio,omitempty"`
	XS    *string  `json:"xs,omitempty"`
	SM    *string  `json:"sm,omitempty"`
	Step  *string  `json:"base_,omitempty"`
	MD    *string  `json:"md,omitempty"`
	LG    *string  `json:"lg,omitempty"`
	XL    *string  `json:"xl,omitempty"`
	XL2   *string  `json:"2xl,omitempty"`
	XL3   *string  `json:"3xl,omitempty"`
	XL4   *string  `json:"4xl,omitempty"`
	XL5   *string  `json:"5xl,omitempty"`
}

type LineHeightPatch struct {
	Tight   *float64 `json:"tight,omitempty"`
	Normal  *float64 `json:"normal,omitempty"`
	Relaxed *float64 `json:"relaxed,omitempty"`
}

type LetterSpacingPatch struct {
	Tight  *string `json:"tight,omitempty"`
	Normal *string `json:"normal,omitempty"`
	Wide   *string `json:"wide,omitempty"`
}

type FontWeightsPatch struct {
	Normal   *int `json:"normal,omitempty"`
	Medium   *int `json:"medium,omitempty"`
	Semibold *int `json:"semibold,omitempty"`
	Bold     *int `json:"bold,omitempty"`
}

type SpacingPatch struct {
	Base           *float64           `json:"base,omitempty"`
	Scale          *SpacingScalePatch `json:"scale,omitempty"`
	Container      *string            `json:"container,omitempty"`
	SectionPadding *string            `json:"sectionPadding,omitempty"`
}

type SpacingScalePatch struct {
	XS  *string `json:"xs,omitempty"`
	SM  *string `json:"sm,omitempty"`
	MD  *string `json:"md,omitempty"`
	LG  *string `json:"lg,omitempty"`
	XL  *string `json:"xl,omitempty"`
	XL2 *string `json:"2xl,omitempty"`
	XL3 *string `json:"3xl,omitempty"`
	XL4 *string `json:"4xl,omitempty"`
}

type BordersPatch struct {
	Radius *RadiusPatch `json:"radius,omitempty"`
	Width  *string      `json:"width,omitempty"`
	Color  *string      `json:"color,omitempty"`
}

type RadiusPatch struct {
	None    *string `json:"none,omitempty"`
	SM      *string `json:"sm,omitempty"`
	MD      *string `json:"md,omitempty"`
	LG      *string `json:"lg,omitempty"`
	XL      *string `json:"xl,omitempty"`
	Full    *string `json:"full,omitempty"`
	Default *string `json:"default,omitempty"`
}

type ShadowsPatch struct {
	SM *string `json:"sm,omitempty"`
	MD *string `json:"md,omitempty"`
	LG *string `json:"lg,omitempty"`
	XL *string `json:"xl,omitempty"`
}

type ComponentsPatch struct {
	Button *ButtonsPatch    `json:"button,omitempty"`
	Input  *InputStylePatch `json:"input,omitempty"`
	Card   *CardStylePatch  `json:"card,omitempty"`
	Link   *LinkStylePatch  `json:"link,omitempty"`
}

type ButtonsPatch struct {
	Primary   *ButtonStylePatch `json:"primary,omitempty"`
	Secondary *ButtonStylePatch `json:"secondary,omitempty"`
	Ghost     *ButtonStylePatch `json:"ghost,omitempty"`
	Outline   *ButtonStylePatch `json:"outline,omitempty"`
}

type ButtonStylePatch struct {
	Background    *string `json:"background,omitempty"`
	Foreground    *string `json:"foreground,omitempty"`
	Border        *string `json:"border,omitempty"`
	Radius        *string `json:"radius,omitempty"`
	PaddingX      *string `json:"paddingX,omitempty"`
	PaddingY      *string `json:"paddingY,omitempty"`
	FontWeight    *int    `json:"fontWeight,omitempty"`
	TextTransform *string `json:"textTransform,omitempty"`
}

type InputStylePatch struct {
	Background  *string `json:"background,omitempty"`
	Foreground  *string `json:"foreground,omitempty"`
	Border      *string `json:"border,omitempty"`
	FocusBorder *string `json:"focusBorder,omitempty"`
	Radius      *string `json:"radius,omitempty"`
	Padding     *string `json:"padding,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
}

type CardStylePatch struct {
	Background *string `json:"background,omitempty"`
	Border     *string `json:"border,omitempty"`
	Radius     *string `json:"radius,omitempty"`
	Shadow     *string `json:"shadow,omitempty"`
	Padding    *string `json:"padding,omitempty"`
}

type LinkStylePatch struct {
	Color      *string `json:"color,omitempty"`
	HoverColor *string `json:"hoverColor,omitempty"`
	Underline  *bool   `json:"underline,omitempty"`
}

type MediaPatch struct {
	LogoVariants *LogoVariantsPatch `json:"logoVariants,omitempty"`
	Favicon      *string            `json:"favicon,omitempty"`
	ImageStyle   *string            `json:"imageStyle,omitempty"`
	IconStyle    *string            `json:"iconStyle,omitempty"`
}

type LogoVariantsPatch struct {
	Primary *string `json:"primary,omitempty"`
	Dark    *string `json:"dark,omitempty"`
	Light   *string `json:"light,omitempty"`
	Icon    *string `json:"icon,omitempty"`
}

type VoicePatch struct {
	Formality   *string   `json:"formality,omitempty"`
	Tone        *[]string `json:"tone,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Languages   *[]string `json:"languages,omitempty"`
	Dos         *[]string `json:"dos,omitempty"`
	Donts       *[]string `json:"donts,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// Ptr returns a pointer to v. It keeps hand-built patches short.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether the patch names no field at all.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}
