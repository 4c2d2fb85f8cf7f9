package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/brandkit/internal/bridge"
)

var (
	resolveWidth  float64
	resolveHeight float64
	resolveAll    bool
	resolveSource treeSource
	resolveOver   bridge.Overrides
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().Float64Var(&resolveWidth, "width", 0, "surface width in px (default from config)")
	resolveCmd.Flags().Float64Var(&resolveHeight, "height", 0, "surface height in px (default from config)")
	resolveCmd.Flags().BoolVar(&resolveAll, "all", false, "resolve every standard ad size")
	addTreeSourceFlags(resolveCmd, &resolveSource)
	addOverrideFlags(resolveCmd, &resolveOver)
}

func addTreeSourceFlags(cmd *cobra.Command, src *treeSource) {
	cmd.Flags().StringVar(&src.TokensPath, "tokens", "", "token tree JSON file")
	cmd.Flags().StringVar(&src.Preset, "preset", "", "preset name")
	cmd.Flags().StringVar(&src.Profile, "profile", "", "stored profile id or name")
}

func addOverrideFlags(cmd *cobra.Command, o *bridge.Overrides) {
	cmd.Flags().StringVar(&o.TextColor, "text-color", "", "force the text color")
	cmd.Flags().StringVar(&o.GradientFrom, "gradient-from", "", "gradient start color")
	cmd.Flags().StringVar(&o.GradientTo, "gradient-to", "", "gradient end color")
	cmd.Flags().StringVar(&o.Accent, "accent", "", "call-to-action color when the tree has no button tokens")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve tokens for a fixed-size surface",
	Long: `Resolve a token tree into integer font sizes, spacing, colors and layout
flags for a fixed-pixel surface. Sizes scale with the square root of the
surface area relative to a 300x250 reference and are clamped to legible
bounds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tree, label, err := loadTree(ctx, resolveSource)
		if err != nil {
			return err
		}

		if resolveAll {
			results, err := bridge.ResolveBatch(ctx, bridge.StandardSurfaces, resolveOver, tree)
			if err != nil {
				return err
			}
			if IsJSONOutput() || IsJSONLOutput() {
				return WriteOutput(os.Stdout, results)
			}
			fmt.Fprintf(os.Stdout, "Tokens: %s\n\n", label)
			return writeResolvedTable(results)
		}

		width, height := surfaceSize(resolveWidth, resolveHeight)
		resolved := bridge.Resolve(width, height, resolveOver, tree)
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(os.Stdout, resolved)
		}
		fmt.Fprintf(os.Stdout, "Tokens: %s\n\n", label)
		return writeResolvedDetail(resolved)
	},
}

func surfaceSize(width, height float64) (float64, float64) {
	cfg := GetConfig()
	if width <= 0 {
		width = float64(cfg.Preview.Width)
	}
	if height <= 0 {
		height = float64(cfg.Preview.Height)
	}
	return width, height
}

func writeResolvedTable(results []bridge.SurfaceResult) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		res := r.Resolved
		rows = append(rows, []string{
			r.Surface.Name,
			fmt.Sprintf("%gx%g", r.Surface.Width, r.Surface.Height),
			strconv.FormatFloat(res.ScaleFactor, 'f', 2, 64),
			strconv.Itoa(res.FontSize.Headline),
			strconv.Itoa(res.FontSize.Subline),
			strconv.Itoa(res.FontSize.CTA),
			strconv.Itoa(res.FontSize.Logo),
			strconv.Itoa(res.Spacing.Padding),
			formatYesNo(res.Flags.HideSubline),
			formatYesNo(res.Flags.HideLogo),
		})
	}
	return writeTable(os.Stdout, []string{"SURFACE", "SIZE", "SCALE", "HEADLINE", "SUBLINE", "CTA", "LOGO", "PADDING", "NO SUBLINE", "NO LOGO"}, rows)
}

func writeResolvedDetail(r bridge.Resolved) error {
	rows := [][]string{
		{"size", fmt.Sprintf("%gx%g", r.Width, r.Height)},
		{"scale factor", strconv.FormatFloat(r.ScaleFactor, 'f', 3, 64)},
		{"headline", fmt.Sprintf("%dpx", r.FontSize.Headline)},
		{"subline", fmt.Sprintf("%dpx", r.FontSize.Subline)},
		{"cta", fmt.Sprintf("%dpx", r.FontSize.CTA)},
		{"logo", fmt.Sprintf("%dpx", r.FontSize.Logo)},
		{"padding", fmt.Sprintf("%dpx", r.Spacing.Padding)},
		{"gap", fmt.Sprintf("%dpx", r.Spacing.Gap)},
		{"cta margin", fmt.Sprintf("%dpx", r.Spacing.CTAMarginTop)},
		{"text", r.Colors.Text},
		{"text muted", fmt.Sprintf("%s @ %.2f", r.Colors.TextMuted, r.Colors.MutedOpacity)},
		{"gradient", r.Colors.GradientFrom + " -> " + r.Colors.GradientTo},
		{"cta colors", r.Colors.CTABackground + " / " + r.Colors.CTAForeground},
		{"fonts", r.Fonts.Heading + " / " + r.Fonts.Body},
		{"tiny", formatYesNo(r.Flags.IsTiny)},
		{"small", formatYesNo(r.Flags.IsSmall)},
		{"horizontal", formatYesNo(r.Flags.IsHorizontal)},
		{"vertical", formatYesNo(r.Flags.IsVertical)},
		{"hide subline", formatYesNo(r.Flags.HideSubline)},
		{"hide logo", formatYesNo(r.Flags.HideLogo)},
	}
	return writeTable(os.Stdout, nil, rows)
}
