package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/migrate"
	"github.com/opencode-ai/brandkit/internal/schema"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <legacy.json|->",
	Short: "Build a token tree from a legacy profile",
	Long: `Build a complete token tree from a legacy flat profile (colors.dark,
colors.light, colors.accent, fonts, layout, logo). Missing sections fall back
to the defaults. The result is validated before it is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		legacy, err := loadLegacyFile(args[0])
		if err != nil {
			return err
		}

		tree := migrate.FromLegacy(legacy)
		if issues := schema.ValidateTree(tree); len(issues) > 0 {
			if err := writeIssues(os.Stderr, issues); err != nil {
				return err
			}
			return fmt.Errorf("migrated tree failed validation: %w", issues)
		}

		return WriteOutput(os.Stdout, tree)
	},
}
