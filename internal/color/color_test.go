package color

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestHSLRoundTrip(t *testing.T) {
	// 8-bit channels cannot pin hue to a degree for near-gray colors, so the
	// sweep covers chromatic inputs.
	for h := 0.0; h < 360; h += 15 {
		for _, s := range []float64{0.6, 0.8, 1} {
			for _, l := range []float64{0.4, 0.5, 0.6} {
				in := HSL{H: h, S: s, L: l}
				out, err := HexToHSL(HSLToHex(in))
				require.NoError(t, err)

				require.LessOrEqualf(t, hueDistance(in.H, out.H), 1.0, "hue drift for %+v -> %+v", in, out)
				require.InDeltaf(t, in.S, out.S, 0.01, "saturation drift for %+v -> %+v", in, out)
				require.InDeltaf(t, in.L, out.L, 0.01, "lightness drift for %+v -> %+v", in, out)
			}
		}
	}
}

func TestHexToHSLKnownValues(t *testing.T) {
	hsl, err := HexToHSL("#ff0000")
	require.NoError(t, err)
	require.InDelta(t, 0, hsl.H, 0.001)
	require.InDelta(t, 1, hsl.S, 0.001)
	require.InDelta(t, 0.5, hsl.L, 0.001)

	hsl, err = HexToHSL("#000")
	require.NoError(t, err)
	require.Equal(t, 0.0, hsl.L)

	if _, err := HexToHSL("not-a-color"); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}
	if _, err := HexToHSL("#12345"); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex for short hex, got %v", err)
	}
}

func TestHSLToHexClampsInputs(t *testing.T) {
	if got := HSLToHex(HSL{H: 0, S: 0, L: 2}); got != "#ffffff" {
		t.Fatalf("expected white, got %s", got)
	}
	if got := HSLToHex(HSL{H: -120, S: 1, L: 0.5}); got != HSLToHex(HSL{H: 240, S: 1, L: 0.5}) {
		t.Fatalf("negative hue should wrap, got %s", got)
	}
}

func TestGetContrastColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "black", hex: "#000000", want: White},
		{name: "dark blue", hex: "#1e3a8a", want: White},
		{name: "white", hex: "#ffffff", want: NearBlack},
		{name: "light yellow", hex: "#fde047", want: NearBlack},
		{name: "invalid", hex: "zzz", want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetContrastColor(tt.hex); got != tt.want {
				t.Fatalf("GetContrastColor(%s) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestGetContrastColorThresholdBoundary(t *testing.T) {
	require.Equal(t, NearBlack, onPrimary(HSL{L: 0.55}))
	require.Equal(t, White, onPrimary(HSL{L: 0.5499}))

	require.Equal(t, White, GetContrastColor(HSLToHex(HSL{L: 0.53})))
	require.Equal(t, NearBlack, GetContrastColor(HSLToHex(HSL{L: 0.57})))
}

func TestGetContrastColorForGradient(t *testing.T) {
	require.Equal(t, NearBlack, GetContrastColorForGradient("#ffffff", "#f0f0f0"))
	require.Equal(t, White, GetContrastColorForGradient("#000000", "#202020"))
	// Average exactly at 0.5 stays on the white branch.
	require.Equal(t, White, GetContrastColorForGradient("#000000", "#ffffff"))
}

func TestLightenDarkenClamp(t *testing.T) {
	got, err := Lighten("#808080", 0.9)
	require.NoError(t, err)
	require.Equal(t, "#ffffff", got)

	got, err = Darken("#808080", 0.9)
	require.NoError(t, err)
	require.Equal(t, "#000000", got)

	_, err = Darken("nope", 0.1)
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestSame(t *testing.T) {
	require.True(t, Same("#ffffff", "#FFF"))
	require.True(t, Same(" #0b3954", "#0B3954"))
	require.False(t, Same("#ffffff", "#fffffe"))
	require.False(t, Same("white", "#ffffff"))
}

func TestLuminance(t *testing.T) {
	l, err := Luminance("#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 1, l, 1e-9)

	l, err = Luminance("#00ff00")
	require.NoError(t, err)
	require.InDelta(t, 0.587, l, 1e-9)
}
