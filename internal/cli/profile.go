package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/db"
	"github.com/opencode-ai/brandkit/internal/events"
	"github.com/opencode-ai/brandkit/internal/models"
	"github.com/opencode-ai/brandkit/internal/presets"
	"github.com/opencode-ai/brandkit/internal/schema"
	"github.com/opencode-ai/brandkit/internal/store"
)

var (
	profileCreateLegacy string
	profileCreatePreset string
	profileSaveTokens   string
	profileShowTokens   bool
	profileDeleteForce  bool
)

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profilePatchCmd)
	profileCmd.AddCommand(profileMigrateCmd)
	profileCmd.AddCommand(profileResetCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileCreateCmd.Flags().StringVar(&profileCreateLegacy, "legacy", "", "legacy profile JSON file")
	profileCreateCmd.Flags().StringVar(&profileCreatePreset, "preset", "", "seed from a preset")
	profileShowCmd.Flags().BoolVar(&profileShowTokens, "tokens", false, "print only the effective token tree")
	profileSaveCmd.Flags().StringVar(&profileSaveTokens, "tokens", "", "token tree JSON file (required)")
	_ = profileSaveCmd.MarkFlagRequired("tokens")
	profileDeleteCmd.Flags().BoolVarP(&profileDeleteForce, "force", "f", false, "skip confirmation")
}

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"profiles"},
	Short:   "Manage stored brand profiles",
}

// ProfileSummary is the list view of a profile.
type ProfileSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HasTokens   bool   `json:"has_tokens"`
	HasLegacy   bool   `json:"has_legacy"`
	ContentHash string `json:"content_hash,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile from legacy fields or a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if profileCreateLegacy != "" && profileCreatePreset != "" {
			return fmt.Errorf("use only one of --legacy, --preset")
		}

		p := &models.Profile{Name: args[0]}
		switch {
		case profileCreateLegacy != "":
			legacy, err := loadLegacyFile(profileCreateLegacy)
			if err != nil {
				return err
			}
			p.Legacy = legacy
		case profileCreatePreset != "":
			preset, err := presets.Find(GetConfig().Presets.ProjectDir, profileCreatePreset)
			if err != nil {
				return fmt.Errorf("preset %q: %w", profileCreatePreset, err)
			}
			p.Legacy = preset.Legacy()
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.NewProfileRepository(database).Create(ctx, p); err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, p)
		}
		fmt.Fprintf(os.Stdout, "Created profile %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		profiles, err := db.NewProfileRepository(database).List(ctx)
		if err != nil {
			return err
		}

		summaries := make([]ProfileSummary, 0, len(profiles))
		for _, p := range profiles {
			summaries = append(summaries, ProfileSummary{
				ID:          p.ID,
				Name:        p.Name,
				HasTokens:   p.Tokens != nil,
				HasLegacy:   p.Legacy != nil,
				ContentHash: p.ContentHash,
				UpdatedAt:   p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			})
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, summaries)
		}
		if len(profiles) == 0 {
			fmt.Fprintln(os.Stdout, "No profiles found")
			return nil
		}

		rows := make([][]string, 0, len(profiles))
		for _, p := range profiles {
			rows = append(rows, []string{
				p.Name,
				p.ID,
				formatYesNo(p.Tokens != nil),
				shortHash(p.ContentHash),
				formatTimestamp(p.UpdatedAt),
			})
		}
		return writeTable(os.Stdout, []string{"NAME", "ID", "TOKENS", "HASH", "UPDATED"}, rows)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <id-or-name>",
	Short: "Show a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			if profileShowTokens {
				s := newStore()
				s.LoadFromProfile(p)
				return WriteOutput(os.Stdout, s.Tokens())
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(os.Stdout, p)
			}

			source := "persisted"
			if p.Tokens == nil {
				source = "migrated on load"
			}
			rows := [][]string{
				{"name", p.Name},
				{"id", p.ID},
				{"tokens", source},
				{"hash", shortHash(p.ContentHash)},
				{"created", formatTimestamp(p.CreatedAt)},
				{"updated", formatTimestamp(p.UpdatedAt)},
			}
			return writeTable(os.Stdout, nil, rows)
		})
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <id-or-name>",
	Short: "Replace a profile's token tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := loadTreeFile(profileSaveTokens)
		if err != nil {
			return err
		}
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			s := newStore()
			s.LoadFromProfile(p)
			s.SetTokens(tree)
			return persist(ctx, repo, s)
		})
	},
}

var profilePatchCmd = &cobra.Command{
	Use:   "patch <id-or-name> <fragment.json|->",
	Short: "Merge a partial token tree into a profile",
	Long: `Merge a partial token tree, such as AI-suggested changes, into a profile.
Unknown or mistyped fields are dropped and reported. The merged tree is
validated as a whole before it is saved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[1])
		if err != nil {
			return err
		}
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			s := newStore()
			s.LoadFromProfile(p)

			dropped, err := s.UpdateFromJSON(data)
			if err != nil {
				return err
			}
			if len(dropped) > 0 && !IsJSONOutput() && !IsJSONLOutput() {
				fmt.Fprintf(os.Stderr, "Dropped %d field(s):\n", len(dropped))
				if err := writeIssues(os.Stderr, dropped); err != nil {
					return err
				}
			}
			return persist(ctx, repo, s)
		})
	},
}

var profileMigrateCmd = &cobra.Command{
	Use:   "migrate <id-or-name>",
	Short: "Persist the tree migrated from a profile's legacy fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			if p.Tokens != nil {
				return fmt.Errorf("profile %s already has a token tree", p.Name)
			}
			s := newStore()
			s.LoadFromProfile(p)
			s.SetTokens(s.Tokens())
			if err := persist(ctx, repo, s); err != nil {
				return err
			}
			return events.LogTokensMigrated(ctx, repo.Events(), p.ID, p.Name, p.Legacy != nil)
		})
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset <id-or-name>",
	Short: "Reset a profile to the default token tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			s := newStore()
			s.LoadFromProfile(p)
			s.ResetToDefaults()
			if err := persist(ctx, repo, s); err != nil {
				return err
			}
			return events.LogTokensReset(ctx, repo.Events(), p.ID)
		})
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProfile(args[0], func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error {
			if !profileDeleteForce {
				if IsNonInteractive() {
					return fmt.Errorf("--force is required in non-interactive mode")
				}
				if !confirm(fmt.Sprintf("Delete profile %q?", p.Name)) {
					return fmt.Errorf("aborted")
				}
			}
			if err := repo.Delete(ctx, p.ID); err != nil {
				return err
			}
			if !IsJSONOutput() && !IsJSONLOutput() {
				fmt.Fprintf(os.Stdout, "Deleted profile %s\n", p.Name)
			}
			return nil
		})
	},
}

func newStore() *store.Store {
	return store.New(store.WithHistoryDepth(GetConfig().History.Depth))
}

func withProfile(idOrName string, fn func(ctx context.Context, repo *db.ProfileRepository, p *models.Profile) error) error {
	ctx := context.Background()

	database, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	repo := db.NewProfileRepository(database)
	p, err := repo.Resolve(ctx, idOrName)
	if err != nil {
		return fmt.Errorf("profile %q: %w", idOrName, err)
	}
	return fn(ctx, repo, p)
}

// persist writes the store's tree through the repository. The store is
// marked saved only after the write is confirmed.
func persist(ctx context.Context, repo *db.ProfileRepository, s *store.Store) error {
	id, name := s.Profile()
	if !s.IsDirty() {
		if !IsJSONOutput() && !IsJSONLOutput() {
			fmt.Fprintf(os.Stdout, "Profile %s unchanged\n", name)
		}
		return nil
	}

	step := startProgress(os.Stderr, "Saving "+name)
	s.SetSaving(true)
	saved, err := repo.SaveTokens(ctx, id, s.Tokens())
	if err != nil {
		s.SetSaving(false)
		step.Fail(err)
		var issues schema.Issues
		if errors.As(err, &issues) {
			_ = writeIssues(os.Stderr, issues)
		}
		return err
	}
	s.MarkSaved()
	step.Done()

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(os.Stdout, saved)
	}
	fmt.Fprintf(os.Stdout, "Saved profile %s (%s)\n", saved.Name, shortHash(saved.ContentHash))
	return nil
}
