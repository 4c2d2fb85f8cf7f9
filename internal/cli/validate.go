package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/schema"
)

var validatePartial bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validatePartial, "partial", false, "treat input as a fragment: only report unknown or mistyped fields")
}

// ValidateResult is the payload returned by `brandkit validate --json`.
type ValidateResult struct {
	Valid  bool          `json:"valid"`
	Issues schema.Issues `json:"issues"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <tokens.json|->",
	Short: "Validate a token tree",
	Long: `Validate a token tree against the schema. Every missing, unknown or
mistyped field and every value rule violation is reported with its path.
With --partial the input is treated as an AI-style fragment and only fields
that cannot be merged are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args[0])
		if err != nil {
			return err
		}

		var issues schema.Issues
		if validatePartial {
			_, issues, err = schema.DecodePatch(data)
		} else {
			_, issues, err = schema.ValidateJSON(data)
		}
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(os.Stdout, ValidateResult{Valid: len(issues) == 0, Issues: issues}); err != nil {
				return err
			}
		} else if len(issues) == 0 {
			fmt.Fprintln(os.Stdout, "valid")
		} else if err := writeIssues(os.Stdout, issues); err != nil {
			return err
		}

		if len(issues) > 0 {
			return fmt.Errorf("%w: %d issue(s)", errInvalidTree, len(issues))
		}
		return nil
	},
}
