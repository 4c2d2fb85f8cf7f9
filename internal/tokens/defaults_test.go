package tokens

import (
	"testing"

	"github.com/opencode-ai/brandkit/internal/color"
)

func TestDefaultTree(t *testing.T) {
	tree := Default()

	if tree.Version != CurrentVersion {
		t.Fatalf("expected version %d, got %d", CurrentVersion, tree.Version)
	}
	if tree.Colors.Palette["primary"] != DefaultPrimary {
		t.Fatalf("unexpected palette primary: %q", tree.Colors.Palette["primary"])
	}
	if got := tree.Colors.Semantic.Text.OnPrimary; got != color.GetContrastColor(DefaultPrimary) {
		t.Fatalf("onPrimary %q does not contrast primary", got)
	}
	if tree.Typography.Scale.TypeScale.Base != "16.0px" {
		t.Fatalf("unexpected base step: %q", tree.Typography.Scale.TypeScale.Base)
	}
	if tree.Spacing.Scale.MD != "16px" {
		t.Fatalf("unexpected spacing md: %q", tree.Spacing.Scale.MD)
	}
	for _, b := range tree.buttons() {
		if b.Radius != DefaultRadius {
			t.Fatalf("button radius not applied: %+v", b)
		}
	}
}

func TestDefaultReturnsFreshTrees(t *testing.T) {
	a := Default()
	b := Default()
	a.Colors.Palette["primary"] = "#000000"
	if b.Colors.Palette["primary"] == "#000000" {
		t.Fatal("default trees share state")
	}
}
