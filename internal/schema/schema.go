package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

// ErrMalformedJSON is returned when input is not parseable JSON at all.
var ErrMalformedJSON = errors.New("malformed token JSON")

// Issue is one validation failure located by a dotted path such as
// "typography.fontWeights.bold" or "voice.tone[2]".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return "<root>: " + i.Message
	}
	return i.Path + ": " + i.Message
}

// Issues is a list of validation failures. A non-empty Issues is an error.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%d token issue(s): %s", len(is), strings.Join(parts, "; "))
}

// Err returns is as an error, or nil when empty.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	return is
}

var (
	buttonNode = object(
		req("background", str()),
		req("foreground", str()),
		req("border", str()),
		req("radius", str()),
		req("paddingX", str()),
		req("paddingY", str()),
		req("fontWeight", integer()),
		req("textTransform", enum(
			tokens.TextTransformNone,
			tokens.TextTransformUppercase,
			tokens.TextTransformLowercase,
			tokens.TextTransformCapitalize,
		)),
	)

	treeNode = object(
		req("version", literal(tokens.CurrentVersion)),
		req("colors", object(
			req("palette", mapOf(str())),
			req("semantic", object(
				req("primary", str()),
				req("secondary", str()),
				req("accent", str()),
				req("background", strs("default", "subtle", "inverse")),
				req("text", strs("default", "muted", "inverse", "onPrimary")),
				req("status", strs("success", "warning", "error", "info")),
				req("border", strs("default", "subtle")),
			)),
		)),
		req("typography", object(
			req("fonts", object(
				req("heading", str()),
				req("body", str()),
				opt("mono", str()),
			)),
			req("scale", object(
				req("base", number()),
				req("ratio", number()),
				req("xs", str()),
				req("sm", str()),
				req("base_", str()),
				req("md", str()),
				req("lg", str()),
				req("xl", str()),
				req("2xl", str()),
				req("3xl", str()),
				req("4xl", str()),
				req("5xl", str()),
			)),
			req("lineHeight", object(
				req("tight", number()),
				req("normal", number()),
				req("relaxed", number()),
			)),
			req("letterSpacing", strs("tight", "normal", "wide")),
			req("fontWeights", object(
				req("normal", integer()),
				req("medium", integer()),
				req("semibold", integer()),
				req("bold", integer()),
			)),
			req("headingUppercase", boolean()),
		)),
		req("spacing", object(
			req("base", number()),
			req("scale", strs("xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl")),
			req("container", str()),
			req("sectionPadding", str()),
		)),
		req("borders", object(
			req("radius", strs("none", "sm", "md", "lg", "xl", "full", "default")),
			req("width", str()),
			req("color", str()),
		)),
		req("shadows", strs("sm", "md", "lg", "xl")),
		req("components", object(
			req("button", object(
				req("primary", buttonNode),
				req("secondary", buttonNode),
				req("ghost", buttonNode),
				req("outline", buttonNode),
			)),
			req("input", strs("background", "foreground", "border", "focusBorder", "radius", "padding", "placeholder")),
			req("card", strs("background", "border", "radius", "shadow", "padding")),
			req("link", object(
				req("color", str()),
				req("hoverColor", str()),
				req("underline", boolean()),
			)),
		)),
		req("media", object(
			req("logoVariants", object(
				req("primary", str()),
				opt("dark", str()),
				opt("light", str()),
				opt("icon", str()),
			)),
			opt("favicon", str()),
			req("imageStyle", str()),
			req("iconStyle", str()),
		)),
		req("voice", object(
			req("formality", enum(tokens.FormalityFormal, tokens.FormalityNeutral, tokens.FormalityCasual)),
			req("tone", arrayOf(str())),
			req("address", enum(tokens.AddressFormal, tokens.AddressInformal)),
			req("languages", arrayOf(str())),
			req("dos", arrayOf(str())),
			req("donts", arrayOf(str())),
			req("description", str()),
		)),
	)
)

// Validate checks the shape of a complete token tree in JSON form. Missing,
// unknown, and mistyped fields are all reported; nothing is coerced.
func Validate(data []byte) (Issues, error) {
	v, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return validateValue(v, modeFull), nil
}

// ValidateJSON runs the structural check and, when the shape is sound, the
// value rules (weights, enums, scale ordering, contrast) on the decoded tree.
// It returns the decoded tree only when no issue was found.
func ValidateJSON(data []byte) (*tokens.Tree, Issues, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, nil, err
	}
	if len(issues) > 0 {
		return nil, issues, nil
	}

	var tree tokens.Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, Issues{{Message: err.Error()}}, nil
	}
	if issues := Check(&tree); len(issues) > 0 {
		return nil, issues, nil
	}
	return &tree, nil, nil
}

// ValidateTree validates an in-memory tree exactly as it would be validated
// after a JSON round-trip through storage.
func ValidateTree(tree *tokens.Tree) Issues {
	if tree == nil {
		return Issues{{Message: "tree is required"}}
	}
	data, err := json.Marshal(tree)
	if err != nil {
		return Issues{{Message: fmt.Sprintf("encode tree: %v", err)}}
	}
	_, issues, err := ValidateJSON(data)
	if err != nil {
		return Issues{{Message: err.Error()}}
	}
	return issues
}

// DecodePatch decodes a possibly partial fragment, such as AI output, into a
// typed patch. Unknown and mistyped fields, map entries and array elements
// are removed before decoding and each one is reported, so no zero value
// stands in for a rejected one. Value rules are not applied: the result of
// merging the patch is validated when it is persisted.
func DecodePatch(data []byte) (tokens.Patch, Issues, error) {
	v, err := decode(data)
	if err != nil {
		return tokens.Patch{}, nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	w := &walker{mode: modePartial}
	clean, ok := w.walk(treeNode, v, "")
	if !ok {
		return tokens.Patch{}, w.issues, nil
	}

	cleaned, err := json.Marshal(clean)
	if err != nil {
		return tokens.Patch{}, w.issues, fmt.Errorf("encode patch: %w", err)
	}
	var patch tokens.Patch
	if err := json.Unmarshal(cleaned, &patch); err != nil {
		return tokens.Patch{}, w.issues, fmt.Errorf("decode patch: %w", err)
	}
	return patch, w.issues, nil
}

func validateValue(v any, m mode) Issues {
	w := &walker{mode: m}
	_, _ = w.walk(treeNode, v, "")
	return w.issues
}
