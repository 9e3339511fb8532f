package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/themancalledzac/photogrid/pkg/pipeline"
	"github.com/themancalledzac/photogrid/pkg/sink"
)

// renderCommand creates the render command for generating gallery output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [gallery.toml|layout.json]",
		Short: "Render a gallery as JSON, SVG, or a terminal preview",
		Long: `Render a gallery as JSON, SVG, or a terminal preview.

The input is either a manifest file (the full pipeline runs: load, layout,
render) or a layout.json produced by 'layout' (only the render stage runs).

Formats:
  json     layout document with row trees (re-renderable)
  svg      placeholder boxes sized by the pixel solver
  preview  lipgloss-styled row strips, printed to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts, formatsStr, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, preview (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().IntVarP(&opts.RowWidth, "row-width", "w", 0, "row width budget (default: manifest value or 5)")
	cmd.Flags().Float64Var(&opts.PixelWidth, "pixel-width", 0, "pixel row width for svg output (default: 1200)")
	cmd.Flags().IntVar(&opts.PreviewWidth, "preview-width", 0, "terminal column budget for previews (default: 80)")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "overlay item IDs and ratings in svg output")

	return cmd
}

// runRender renders the input and writes one file per requested format.
// Preview output goes to stdout instead of a file.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, formatsStr, output string, noCache bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if formatsStr == "" {
		formatsStr = cfg.Format
	}
	opts.Formats = parseFormats(formatsStr)
	cfg.apply(&opts)

	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = loggerFromContext(ctx)

	var (
		artifacts map[string][]byte
		itemCount int
		rowCount  int
		cached    bool
	)

	if isLayoutFile(input) {
		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("load layout %s: %w", input, err)
		}
		rows, budget, err := sink.ParseJSON(data)
		if err != nil {
			return fmt.Errorf("parse layout %s: %w", input, err)
		}
		if opts.RowWidth == 0 {
			opts.RowWidth = budget
		}

		prog := newProgress(c.Logger)
		artifacts, cached, err = runner.RenderWithCacheInfo(ctx, rows, "", opts)
		if err != nil {
			return err
		}
		rowCount = len(rows)
		for _, row := range rows {
			itemCount += len(row.Components)
		}
		prog.done(fmt.Sprintf("Rendered %d rows", rowCount))
	} else {
		opts.Manifest = input

		spinner := newSpinnerWithContext(ctx, "Rendering gallery...")
		spinner.Start()
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		spinner.Stop()

		artifacts = result.Artifacts
		itemCount = result.Stats.ItemCount
		rowCount = result.Stats.RowCount
		cached = result.CacheInfo.RenderHit
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		data := artifacts[format]
		if format == pipeline.FormatPreview {
			printNewline()
			fmt.Println(string(data))
			continue
		}
		outputPath := outputPathFor(input, output, format, len(opts.Formats))
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}
	printStats(itemCount, rowCount, cached)

	return nil
}

// isLayoutFile reports whether the input is a layout document rather than a
// manifest. Layout files use the .layout.json suffix written by 'layout'.
func isLayoutFile(path string) bool {
	return strings.HasSuffix(path, ".layout.json")
}

// outputPathFor derives the output filename for one format.
func outputPathFor(input, output, format string, formatCount int) string {
	ext := "." + format
	if format == pipeline.FormatJSON {
		ext = ".layout.json"
	}

	if output != "" {
		if formatCount == 1 {
			return output
		}
		return strings.TrimSuffix(output, filepath.Ext(output)) + ext
	}

	base := strings.TrimSuffix(input, ".layout.json")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ext
}
