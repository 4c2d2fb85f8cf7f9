// Package scale generates the modular type scale and the spacing scale.
package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Step exponents for the type scale, smallest first.
var typeSteps = []struct {
	name     string
	exponent int
}{
	{"xs", -2},
	{"sm", -1},
	{"base_", 0},
	{"md", 1},
	{"lg", 2},
	{"xl", 3},
	{"2xl", 4},
	{"3xl", 5},
	{"4xl", 6},
	{"5xl", 7},
}

// Spacing multipliers, smallest first.
var spacingSteps = []struct {
	name       string
	multiplier int
}{
	{"xs", 1},
	{"sm", 2},
	{"md", 4},
	{"lg", 6},
	{"xl", 8},
	{"2xl", 12},
	{"3xl", 16},
	{"4xl", 24},
}

// TypeScale holds px strings for each named type step.
// Base is the step at exponent 0; it is named base_ on the wire because
// "base" holds the numeric base size.
type TypeScale struct {
	XS   string `json:"xs"`
	SM   string `json:"sm"`
	Base string `json:"base_"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	XL2  string `json:"2xl"`
	XL3  string `json:"3xl"`
	XL4  string `json:"4xl"`
	XL5  string `json:"5xl"`
}

// SpacingScale holds integer px strings for each named spacing step.
type SpacingScale struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	XL2 string `json:"2xl"`
	XL3 string `json:"3xl"`
	XL4 string `json:"4xl"`
}

// Size returns base × ratio^step in px without rounding.
func Size(base, ratio float64, step int) float64 {
	return base * math.Pow(ratio, float64(step))
}

// GenerateScale returns the geometric type scale for base and ratio.
func GenerateScale(base, ratio float64) TypeScale {
	values := make(map[string]string, len(typeSteps))
	for _, step := range typeSteps {
		values[step.name] = fmt.Sprintf("%.1fpx", Size(base, ratio, step.exponent))
	}
	return TypeScale{
		XS:   values["xs"],
		SM:   values["sm"],
		Base: values["base_"],
		MD:   values["md"],
		LG:   values["lg"],
		XL:   values["xl"],
		XL2:  values["2xl"],
		XL3:  values["3xl"],
		XL4:  values["4xl"],
		XL5:  values["5xl"],
	}
}

// GenerateSpacingScale returns the arithmetic spacing scale for base.
func GenerateSpacingScale(base float64) SpacingScale {
	values := make(map[string]string, len(spacingSteps))
	for _, step := range spacingSteps {
		values[step.name] = strconv.FormatFloat(math.Round(base*float64(step.multiplier)), 'f', 0, 64) + "px"
	}
	return SpacingScale{
		XS:  values["xs"],
		SM:  values["sm"],
		MD:  values["md"],
		LG:  values["lg"],
		XL:  values["xl"],
		XL2: values["2xl"],
		XL3: values["3xl"],
		XL4: values["4xl"],
	}
}

// Steps returns the type scale values in ascending step order.
func (s TypeScale) Steps() []string {
	return []string{s.XS, s.SM, s.Base, s.MD, s.LG, s.XL, s.XL2, s.XL3, s.XL4, s.XL5}
}

// Steps returns the spacing values in ascending step order.
func (s SpacingScale) Steps() []string {
	return []string{s.XS, s.SM, s.MD, s.LG, s.XL, s.XL2, s.XL3, s.XL4}
}

// TypeStepNames lists the wire names of the type steps in ascending order.
func TypeStepNames() []string {
	names := make([]string, len(typeSteps))
	for i, step := range typeSteps {
		names[i] = step.name
	}
	return names
}

// SpacingStepNames lists the wire names of the spacing steps in ascending order.
func SpacingStepNames() []string {
	names := make([]string, len(spacingSteps))
	for i, step := range spacingSteps {
		names[i] = step.name
	}
	return names
}

// ParsePx parses a "12px" or "12.5px" string.
func ParsePx(s string) (float64, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "px")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
