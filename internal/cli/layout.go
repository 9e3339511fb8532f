package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/themancalledzac/photogrid/pkg/pipeline"
)

// layoutCommand creates the layout command for packing a gallery into rows.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [gallery.toml]",
		Short: "Pack a gallery manifest into balanced rows",
		Long: `Pack a gallery manifest into balanced rows.

The layout command reads a manifest file (TOML or JSON) listing photos with
their dimensions and ratings, packs them into rows with the constraint
engine, and writes a layout.json file describing each row's items and
render tree. The output can be rendered to SVG with the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Manifest = args[0]
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().IntVarP(&opts.RowWidth, "row-width", "w", 0, "row width budget (default: manifest value or 5)")

	return cmd
}

// runLayout loads the manifest, computes the rows, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.apply(&opts)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	opts.Formats = []string{pipeline.FormatJSON}

	spinner := newSpinnerWithContext(ctx, "Packing rows...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.Manifest, filepath.Ext(opts.Manifest))
		outputPath = base + ".layout.json"
	}

	if err := os.WriteFile(outputPath, result.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.ItemCount, result.Stats.RowCount, result.CacheInfo.LayoutHit)
	printNewline()
	printNextStep("Render", "photogrid render "+outputPath)

	return nil
}
