package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/presets"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
}

type presetSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Primary     string   `json:"primary"`
	Source      string   `json:"source"`
	Shadows     []string `json:"shadows,omitempty"`
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and inspect brand presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := presets.Load(GetConfig().Presets.ProjectDir)
		if err != nil {
			return err
		}
		list := catalog.List()

		if IsJSONOutput() || IsJSONLOutput() {
			out := make([]presetSummary, 0, len(list))
			for _, p := range list {
				out = append(out, presetSummary{
					Name:        p.Name,
					Description: p.Description,
					Primary:     p.Colors.Dark,
					Source:      p.Source,
					Shadows:     catalog.Shadowed(p.Name),
				})
			}
			return WriteOutput(os.Stdout, out)
		}
		if len(list) == 0 {
			fmt.Fprintln(os.Stdout, "No presets found")
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, p := range list {
			source := p.Source
			if n := len(catalog.Shadowed(p.Name)); n > 0 {
				source = fmt.Sprintf("%s (+%d shadowed)", source, n)
			}
			rows = append(rows, []string{p.Name, p.Colors.Dark, source, p.Description})
		}
		return writeTable(os.Stdout, []string{"NAME", "PRIMARY", "SOURCE", "DESCRIPTION"}, rows)
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the token tree built from a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := presets.Find(GetConfig().Presets.ProjectDir, args[0])
		if err != nil {
			return fmt.Errorf("preset %q: %w", args[0], err)
		}
		return WriteOutput(os.Stdout, preset.Tree())
	},
}
