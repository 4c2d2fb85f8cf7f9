package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/brandkit/internal/config"
	"github.com/opencode-ai/brandkit/internal/db"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/tokens"
)

// withTestConfig points the CLI at a temporary database and preset dir.
func withTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "brandkit.db")
	cfg.Presets.ProjectDir = dir

	original := appConfig
	originalProgress := noProgress
	appConfig = cfg
	noProgress = true
	t.Cleanup(func() {
		appConfig = original
		noProgress = originalProgress
	})
	return cfg
}

func TestWriteOutputJSONL(t *testing.T) {
	original := jsonlOutput
	jsonlOutput = true
	defer func() { jsonlOutput = original }()

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, []ProfileSummary{{ID: "a", Name: "one"}, {ID: "b", Name: "two"}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first ProfileSummary
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "one", first.Name)
}

func TestWriteOutputIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, map[string]int{"a": 1}))
	require.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestLoadTreeRejectsMultipleSources(t *testing.T) {
	withTestConfig(t)

	_, _, err := loadTree(context.Background(), treeSource{Preset: "ocean", Profile: "acme"})
	require.Error(t, err)
}

func TestLoadTreeDefaultAndPreset(t *testing.T) {
	withTestConfig(t)
	ctx := context.Background()

	tree, label, err := loadTree(ctx, treeSource{})
	require.NoError(t, err)
	require.Equal(t, "default", label)
	require.True(t, tokens.Equal(tokens.Default(), tree))

	tree, label, err = loadTree(ctx, treeSource{Preset: "ocean"})
	require.NoError(t, err)
	require.Equal(t, "preset ocean", label)
	require.Equal(t, "#0b3954", tree.Colors.Semantic.Primary)

	_, _, err = loadTree(ctx, treeSource{Preset: "missing"})
	require.Error(t, err)
}

func TestLoadTreeFileValidates(t *testing.T) {
	dir := t.TempDir()

	tree := tokens.Default()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, data, 0o644))

	loaded, err := loadTreeFile(good)
	require.NoError(t, err)
	require.True(t, tokens.Equal(tree, loaded))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":1}`), 0o644))
	_, err = loadTreeFile(bad)
	require.Error(t, err)

	_, err = readInput("")
	require.Error(t, err)
}

func TestPersistPatchedProfile(t *testing.T) {
	withTestConfig(t)

	ctx := context.Background()
	database, err := openDatabase(ctx)
	require.NoError(t, err)
	repo := db.NewProfileRepository(database)
	p := &models.Profile{
		Name:   "acme",
		Legacy: &models.LegacyProfile{Colors: &models.LegacyColors{Dark: "#0b3954"}},
	}
	require.NoError(t, repo.Create(ctx, p))
	database.Close()

	err = withProfile("acme", func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
		s := newStore()
		s.LoadFromProfile(p)
		dropped, err := s.UpdateFromJSON([]byte(`{"typography":{"fonts":{"heading":"Poppins"}},"mood":"sunny"}`))
		require.NoError(t, err)
		require.Len(t, dropped, 1)

		if err := persist(ctx, repo, s); err != nil {
			return err
		}
		require.False(t, s.IsDirty())
		return nil
	})
	require.NoError(t, err)

	tree, label, err := loadTree(ctx, treeSource{Profile: "acme"})
	require.NoError(t, err)
	require.Equal(t, "profile acme", label)
	require.Equal(t, "Poppins", tree.Typography.Fonts.Heading)
	require.Equal(t, "#0b3954", tree.Colors.Semantic.Primary)
}

func TestPersistRefusedTreeStaysDirty(t *testing.T) {
	withTestConfig(t)

	ctx := context.Background()
	database, err := openDatabase(ctx)
	require.NoError(t, err)
	require.NoError(t, db.NewProfileRepository(database).Create(ctx, &models.Profile{Name: "acme"}))
	database.Close()

	err = withProfile("acme", func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
		s := newStore()
		s.LoadFromProfile(p)
		tree := s.Tokens()
		tree.Typography.FontWeights.Bold = 950
		s.SetTokens(tree)

		err := persist(ctx, repo, s)
		require.True(t, s.IsDirty(), "a refused save leaves the store dirty")
		require.False(t, s.IsSaving())
		return err
	})
	require.ErrorIs(t, err, db.ErrInvalidTokens)
}

func TestSurfaceSizeDefaults(t *testing.T) {
	withTestConfig(t)

	w, h := surfaceSize(0, 0)
	require.Equal(t, 300.0, w)
	require.Equal(t, 250.0, h)

	w, h = surfaceSize(728, 0)
	require.Equal(t, 728.0, w)
	require.Equal(t, 250.0, h)
}

func TestShortHash(t *testing.T) {
	require.Equal(t, "-", shortHash(""))
	require.Equal(t, "abc", shortHash("abc"))
	require.Equal(t, "0123456789ab", shortHash("0123456789abcdef"))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"NAME", "ID"}, [][]string{{"acme", "1"}}))
	require.Equal(t, "NAME  ID\nacme  1\n", buf.String())
}
