package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/brandkit/internal/tokens"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

// mutate round-trips the default tree through a generic map so tests can
// break it in ways the typed tree cannot express.
func mutate(t *testing.T, fn func(m map[string]any)) []byte {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(mustJSON(t, tokens.Default()), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	fn(m)
	return mustJSON(t, m)
}

func sub(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		m = m[k].(map[string]any)
	}
	return m
}

func paths(issues Issues) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Path
	}
	return out
}

func TestDefaultTreeIsValid(t *testing.T) {
	issues := ValidateTree(tokens.Default())
	require.Empty(t, issues, "default tree issues: %v", issues)
}

func TestValidateReportsMissingFields(t *testing.T) {
	data := mutate(t, func(m map[string]any) {
		delete(sub(m, "colors", "semantic", "text"), "onPrimary")
		delete(m, "shadows")
	})

	issues, err := Validate(data)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"colors.semantic.text.onPrimary", "shadows"}, paths(issues))
	for _, issue := range issues {
		require.Equal(t, "is required", issue.Message)
	}
}

func TestValidateReportsUnknownFields(t *testing.T) {
	data := mutate(t, func(m map[string]any) {
		sub(m, "typography", "fonts")["display"] = "Playfair"
		m["gradients"] = map[string]any{}
	})

	issues, err := Validate(data)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"typography.fonts.display", "gradients"}, paths(issues))
}

func TestValidateNeverCoercesTypes(t *testing.T) {
	data := mutate(t, func(m map[string]any) {
		sub(m, "typography", "fontWeights")["bold"] = "700"
		sub(m, "typography")["headingUppercase"] = "true"
		sub(m, "voice")["tone"] = []any{"warm", 3}
		sub(m, "typography", "fontWeights")["normal"] = 400.5
	})

	issues, err := Validate(data)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"typography.fontWeights.bold",
		"typography.fontWeights.normal",
		"typography.headingUppercase",
		"voice.tone[1]",
	}, paths(issues))
}

func TestValidateVersionLiteral(t *testing.T) {
	data := mutate(t, func(m map[string]any) { m["version"] = 2 })

	issues, err := Validate(data)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "version", issues[0].Path)
	require.Equal(t, "must equal 1, got 2", issues[0].Message)
}

func TestValidateEnums(t *testing.T) {
	data := mutate(t, func(m map[string]any) {
		sub(m, "voice")["formality"] = "shouty"
		sub(m, "components", "button", "outline")["textTransform"] = "small-caps"
	})

	issues, err := Validate(data)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"voice.formality", "components.button.outline.textTransform"}, paths(issues))
}

func TestValidateMalformedJSON(t *testing.T) {
	_, err := Validate([]byte(`{"version":`))
	require.True(t, errors.Is(err, ErrMalformedJSON))

	issues, err := Validate([]byte(`[]`))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "", issues[0].Path)
}

func TestValidateJSONValueRules(t *testing.T) {
	tree := tokens.Default()
	tree.Typography.FontWeights.Bold = 950
	tree.Typography.Scale.LG = "12.0px"
	tree.Spacing.Base = 0
	tree.Colors.Semantic.Text.OnPrimary = tree.Colors.Semantic.Primary

	_, issues, err := ValidateJSON(mustJSON(t, tree))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		"typography.fontWeights.bold",
		"typography.scale.lg",
		"spacing.base",
		"colors.semantic.text.onPrimary",
	}, paths(issues))
}

func TestValidateJSONReturnsTree(t *testing.T) {
	tree, issues, err := ValidateJSON(mustJSON(t, tokens.Default()))
	require.NoError(t, err)
	require.Empty(t, issues)
	require.True(t, tokens.Equal(tokens.Default(), tree))
}

func TestIssuesError(t *testing.T) {
	var none Issues
	require.NoError(t, none.Err())

	issues := Issues{{Path: "version", Message: "must equal 1, got 2"}}
	err := issues.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "version: must equal 1, got 2")
}

func TestDecodePatchKeepsKnownFields(t *testing.T) {
	patch, issues, err := DecodePatch([]byte(`{
		"colors": {"semantic": {"primary": "#ff0000"}, "palette": {"brand": "#00ff00"}},
		"voice": {"formality": "casual", "tone": ["bold"]}
	}`))
	require.NoError(t, err)
	require.Empty(t, issues)

	merged := tokens.Merge(tokens.Default(), patch)
	require.Equal(t, "#ff0000", merged.Colors.Semantic.Primary)
	require.Equal(t, "#00ff00", merged.Colors.Palette["brand"])
	require.Equal(t, []string{"bold"}, merged.Voice.Tone)
}

func TestDecodePatchReportsDroppedFields(t *testing.T) {
	patch, issues, err := DecodePatch([]byte(`{
		"colors": {"semantic": {"primary": "#ff0000", "glow": "#fff"}},
		"typography": {"fontWeights": {"bold": "heavy"}},
		"mood": "sunny"
	}`))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"colors.semantic.glow", "typography.fontWeights.bold", "mood"}, paths(issues))

	merged := tokens.Merge(tokens.Default(), patch)
	require.Equal(t, "#ff0000", merged.Colors.Semantic.Primary)
	require.Equal(t, tokens.Default().Typography.FontWeights.Bold, merged.Typography.FontWeights.Bold)
}

func TestDecodePatchRemovesMistypedElements(t *testing.T) {
	patch, issues, err := DecodePatch([]byte(`{
		"colors": {"palette": {"brand": "#ffffff", "bad": 7}},
		"voice": {"tone": ["bold", 3, "calm"], "dos": null}
	}`))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"colors.palette.bad", "voice.tone[1]", "voice.dos"}, paths(issues))

	merged := tokens.Merge(tokens.Default(), patch)
	require.Equal(t, []string{"bold", "calm"}, merged.Voice.Tone)
	require.Equal(t, "#ffffff", merged.Colors.Palette["brand"])
	_, present := merged.Colors.Palette["bad"]
	require.False(t, present, "rejected palette entry must not merge as an empty string")
	require.Equal(t, tokens.Default().Voice.Dos, merged.Voice.Dos)
}

func TestDecodePatchRejectsNonObjectRoot(t *testing.T) {
	patch, issues, err := DecodePatch([]byte(`["colors"]`))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.True(t, tokens.Equal(tokens.Default(), tokens.Merge(tokens.Default(), patch)))
}

func TestDecodePatchSkipsValueRules(t *testing.T) {
	patch, issues, err := DecodePatch([]byte(`{"version": 3, "voice": {"formality": "shouty"}}`))
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Equal(t, 3, *patch.Version)
}

func TestDecodePatchMalformed(t *testing.T) {
	_, _, err := DecodePatch([]byte(`{"colors":`))
	require.ErrorIs(t, err, ErrMalformedJSON)
}
