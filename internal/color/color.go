// Package color provides hex/HSL conversion and harmonic palette derivation
// for brand token trees.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a #rgb or #rrggbb color.
var ErrInvalidHex = errors.New("invalid hex color")

// Contrast foreground colors.
const (
	White     = "#ffffff"
	NearBlack = "#18181b"
	Neutral   = "#71717a"
)

// Lightness above which a surface takes dark foreground text.
const contrastLightnessThreshold = 0.55

// Average stop luminance above which a gradient takes dark foreground text.
const gradientLuminanceThreshold = 0.5

// HSL is a color in hue/saturation/lightness form.
// H is in degrees [0,360); S and L are in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Parse parses a #rgb or #rrggbb string.
func Parse(hex string) (colorful.Color, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return c, nil
}

// IsHex reports whether s parses as a hex color.
func IsHex(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Same reports whether a and b are the same color, ignoring case and the
// short #rgb form. Unparsable strings are never the same as anything.
func Same(a, b string) bool {
	ca, err := Parse(a)
	if err != nil {
		return false
	}
	cb, err := Parse(b)
	if err != nil {
		return false
	}
	return ca.Hex() == cb.Hex()
}

// HexToHSL converts a hex color to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := Parse(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := c.Hsl()
	return HSL{H: h, S: s, L: l}, nil
}

// HSLToHex converts HSL to a lowercase #rrggbb string. Inputs are clamped;
// rounding happens only here.
func HSLToHex(c HSL) string {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, clamp01(c.S), clamp01(c.L)).Clamped().Hex()
}

// Luminance returns the perceived brightness of a hex color in [0,1] using
// the 0.299/0.587/0.114 weighting.
func Luminance(hex string) (float64, error) {
	c, err := Parse(hex)
	if err != nil {
		return 0, err
	}
	return 0.299*c.R + 0.587*c.G + 0.114*c.B, nil
}

// GetContrastColor returns a readable foreground for the given background:
// white when its HSL lightness is below 0.55, near-black otherwise.
// Unparsable input is treated as black.
func GetContrastColor(hex string) string {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return White
	}
	if hsl.L < contrastLightnessThreshold {
		return White
	}
	return NearBlack
}

// GetContrastColorForGradient returns a readable foreground for a two-stop
// gradient by averaging the stops' luminance against 0.5.
// Unparsable stops count as black.
func GetContrastColorForGradient(from, to string) string {
	a, _ := Luminance(from)
	b, _ := Luminance(to)
	if (a+b)/2 > gradientLuminanceThreshold {
		return NearBlack
	}
	return White
}

// Lighten raises lightness by amount, clamped to [0,1].
func Lighten(hex string, amount float64) (string, error) {
	return adjustLightness(hex, amount)
}

// Darken lowers lightness by amount, clamped to [0,1].
func Darken(hex string, amount float64) (string, error) {
	return adjustLightness(hex, -amount)
}

func adjustLightness(hex string, delta float64) (string, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}
	hsl.L = clamp01(hsl.L + delta)
	return HSLToHex(hsl), nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
