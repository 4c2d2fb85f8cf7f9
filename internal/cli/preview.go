package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/bridge"
	"github.com/opencode-ai/brandkit/internal/preview"
)

var (
	previewSource treeSource
	previewWidth  int
)

func init() {
	rootCmd.AddCommand(previewCmd)

	addTreeSourceFlags(previewCmd, &previewSource)
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "render width in columns (default: terminal width)")
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a token tree in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tree, label, err := loadTree(ctx, previewSource)
		if err != nil {
			return err
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, tree)
		}

		width := previewWidth
		if width <= 0 {
			width = terminalWidth(preview.DefaultWidth)
		}
		fmt.Fprintln(os.Stdout, preview.Render(tree, preview.Options{Name: label, Width: width}))

		w, h := surfaceSize(0, 0)
		r := bridge.Resolve(w, h, bridge.Overrides{}, tree)
		fmt.Fprintf(os.Stdout, "\n%gx%g: headline %dpx, subline %dpx, cta %dpx, padding %dpx\n",
			w, h, r.FontSize.Headline, r.FontSize.Subline, r.FontSize.CTA, r.Spacing.Padding)
		return nil
	},
}
