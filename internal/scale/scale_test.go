package scale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateScaleGeometric(t *testing.T) {
	s := GenerateScale(16, 1.25)

	require.Equal(t, "16.0px", s.Base)
	require.Equal(t, "20.0px", s.MD)
	require.Equal(t, "25.0px", s.LG)
	require.Equal(t, "10.2px", s.XS)

	steps := s.Steps()
	prev, ok := ParsePx(steps[0])
	require.True(t, ok)
	for i := 1; i < len(steps); i++ {
		cur, ok := ParsePx(steps[i])
		require.Truef(t, ok, "step %d unparsable: %q", i, steps[i])
		require.Greater(t, cur, prev)
		// Each value is rounded to one decimal, so allow the rounding of both.
		require.InDeltaf(t, prev*1.25, cur, 0.1*1.25, "step %d not ×1.25 of previous", i)
		prev = cur
	}
}

func TestGenerateScaleRecomputesFromInputs(t *testing.T) {
	a := GenerateScale(16, 1.25)
	b := GenerateScale(18, 1.333)
	if a == b {
		t.Fatalf("expected different scales for different inputs")
	}
	if b.Base != "18.0px" {
		t.Fatalf("unexpected base step: %q", b.Base)
	}
}

func TestGenerateSpacingScale(t *testing.T) {
	s := GenerateSpacingScale(4)
	require.Equal(t, []string{"4px", "8px", "16px", "24px", "32px", "48px", "64px", "96px"}, s.Steps())

	s = GenerateSpacingScale(3)
	require.Equal(t, "3px", s.XS)
	require.Equal(t, "72px", s.XL4)

	s = GenerateSpacingScale(1e20)
	require.Equal(t, "100000000000000000000px", s.XS)
	for _, v := range s.Steps() {
		require.NotContains(t, v, "-", "large bases must not wrap around")
	}
}

func TestStepNames(t *testing.T) {
	require.Equal(t, []string{"xs", "sm", "base_", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl"}, TypeStepNames())
	require.Equal(t, []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}, SpacingStepNames())
}

func TestParsePx(t *testing.T) {
	v, ok := ParsePx("12.5px")
	require.True(t, ok)
	require.Equal(t, 12.5, v)

	_, ok = ParsePx("12rem")
	require.False(t, ok)
	_, ok = ParsePx("px")
	require.False(t, ok)
}
