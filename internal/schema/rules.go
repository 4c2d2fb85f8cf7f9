package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/opencode-ai/brandkit/internal/color"
	"github.com/opencode-ai/brandkit/internal/scale"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// minReadableLightnessGap is the smallest HSL lightness difference accepted
// between the primary color and the text drawn on it.
const minReadableLightnessGap = 0.3

// treeValidate is the validator instance for token trees. Field names in
// reported namespaces are the JSON names.
var treeValidate *validator.Validate

func init() {
	treeValidate = validator.New()
	treeValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Check applies the value rules to a decoded tree: tag constraints on
// weights, enums, version and scale inputs, strictly increasing scale
// steps, and a readable onPrimary.
func Check(tree *tokens.Tree) Issues {
	var issues Issues

	if err := treeValidate.Struct(tree); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Issues{{Message: err.Error()}}
		}
		for _, fe := range verrs {
			issues = append(issues, Issue{Path: fieldPath(fe), Message: ruleMessage(fe)})
		}
	}

	issues = append(issues, checkIncreasing("typography.scale", scale.TypeStepNames(), tree.Typography.Scale.Steps())...)
	issues = append(issues, checkIncreasing("spacing.scale", scale.SpacingStepNames(), tree.Spacing.Scale.Steps())...)
	issues = append(issues, checkOnPrimary(tree.Colors.Semantic)...)
	return issues
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "eq":
		return fmt.Sprintf("must equal %s, got %v", fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func checkIncreasing(prefix string, names, values []string) Issues {
	var issues Issues
	prev := 0.0
	for i, v := range values {
		path := prefix + "." + names[i]
		px, ok := scale.ParsePx(v)
		if !ok {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("must be a px value, got %q", v)})
			continue
		}
		if i > 0 && px <= prev {
			issues = append(issues, Issue{
				Path:    path,
				Message: fmt.Sprintf("must be larger than %s (%s), got %s", names[i-1], values[i-1], v),
			})
		}
		prev = px
	}
	return issues
}

func checkOnPrimary(s tokens.Semantic) Issues {
	primary, err := color.HexToHSL(s.Primary)
	if err != nil {
		// Non-hex CSS colors cannot be compared here.
		return nil
	}
	on, err := color.HexToHSL(s.Text.OnPrimary)
	if err != nil {
		return nil
	}
	gap := primary.L - on.L
	if gap < 0 {
		gap = -gap
	}
	if gap < minReadableLightnessGap {
		return Issues{{
			Path:    "colors.semantic.text.onPrimary",
			Message: fmt.Sprintf("%s is not readable on primary %s", s.Text.OnPrimary, s.Primary),
		}}
	}
	return nil
}
