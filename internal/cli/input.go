package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/opencode-ai/brandkit/internal/db"
	"github.com/opencode-ai/brandkit/internal/migrate"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/presets"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// errInvalidTree is returned after the issues have been printed.
var errInvalidTree = errors.New("token tree is invalid")

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// loadTreeFile reads and validates a complete token tree.
func loadTreeFile(path string) (*tokens.Tree, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	tree, issues, err := schema.ValidateJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("%s: %w", path, issues)
	}
	return tree, nil
}

// loadLegacyFile reads a legacy flat profile.
func loadLegacyFile(path string) (*models.LegacyProfile, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	var legacy models.LegacyProfile
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse legacy profile %s: %w", path, err)
	}
	return &legacy, nil
}

// treeSource selects where a command takes its tree from. At most one
// field may be set; none means the default tree.
type treeSource struct {
	TokensPath string
	Preset     string
	Profile    string
}

func (s treeSource) count() int {
	n := 0
	for _, v := range []string{s.TokensPath, s.Preset, s.Profile} {
		if v != "" {
			n++
		}
	}
	return n
}

// loadTree resolves a source into a tree and a label describing it.
func loadTree(ctx context.Context, src treeSource) (*tokens.Tree, string, error) {
	if src.count() > 1 {
		return nil, "", fmt.Errorf("use only one of --tokens, --preset, --profile")
	}

	switch {
	case src.TokensPath != "":
		tree, err := loadTreeFile(src.TokensPath)
		return tree, src.TokensPath, err
	case src.Preset != "":
		preset, err := presets.Find(GetConfig().Presets.ProjectDir, src.Preset)
		if err != nil {
			return nil, "", fmt.Errorf("preset %q: %w", src.Preset, err)
		}
		return preset.Tree(), "preset " + preset.Name, nil
	case src.Profile != "":
		database, err := openDatabase(ctx)
		if err != nil {
			return nil, "", err
		}
		defer database.Close()

		p, err := db.NewProfileRepository(database).Resolve(ctx, src.Profile)
		if err != nil {
			return nil, "", fmt.Errorf("profile %q: %w", src.Profile, err)
		}
		if p.Tokens != nil {
			return p.Tokens, "profile " + p.Name, nil
		}
		return migrate.FromLegacy(p.Legacy), "profile " + p.Name + " (migrated)", nil
	default:
		return tokens.Default(), "default", nil
	}
}

func writeIssues(out io.Writer, issues schema.Issues) error {
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		path := issue.Path
		if path == "" {
			path = "(root)"
		}
		rows = append(rows, []string{path, issue.Message})
	}
	return writeTable(out, []string{"PATH", "ISSUE"}, rows)
}
