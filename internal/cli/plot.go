package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labelplot/labelplot/pkg/pipeline"
)

// plotCommand creates the plot command, the full load → layout → render
// pipeline in one step.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "plot [input]",
		Short: "Plot labeled points from a JSON or CSV table",
		Long: `Plot labeled points from a JSON or CSV table.

The plot command reads tabular point data, lays the chart out with
non-overlapping labels, and renders it. Input comes from a file argument or
stdin; a single-format plot with no --output streams to stdout.

CSV columns are mapped by name heuristics (label/name, x/speed/time,
y/quality/tier) and can be pinned with --label-column, --x-column and
--y-column. Results are cached locally for faster subsequent runs.

Examples:
  labelplot plot models.csv -o models.svg
  labelplot plot models.json -f svg,png -o out/models
  cat models.csv | labelplot plot --style dark > models.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = inputArg(args)
			opts.Formats = parseFormats(formatsStr)
			if len(opts.Formats) == 0 {
				if f := formatFromOutput(output); f != "" {
					opts.Formats = []string{f}
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.apply(&opts)

			if len(opts.Formats) > 0 {
				if err := pipeline.ValidateFormats(opts.Formats); err != nil {
					return err
				}
			}
			if opts.Style != "" {
				if err := pipeline.ValidateStyle(opts.Style); err != nil {
					return err
				}
			}
			return c.runPlot(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache")

	// Input flags
	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "", "input format: json or csv (default: auto-detect)")
	cmd.Flags().StringVar(&opts.LabelColumn, "label-column", "", "CSV column holding labels")
	cmd.Flags().StringVar(&opts.XColumn, "x-column", "", "CSV column holding x values")
	cmd.Flags().StringVar(&opts.YColumn, "y-column", "", "CSV column holding y values")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (overrides input)")
	cmd.Flags().StringVar(&opts.XLabel, "xlabel", "", "x axis label (overrides input)")
	cmd.Flags().StringVar(&opts.YLabel, "ylabel", "", "y axis label (overrides input)")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels (default 1200)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels (default 800)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iter", 0, "label relaxation iteration budget (default 500)")
	cmd.Flags().Float64Var(&opts.ForceText, "force-text", 0, "label-label repulsion strength (default 0.5)")
	cmd.Flags().Float64Var(&opts.ForcePoints, "force-points", 0, "label-point repulsion strength (default 0.5)")
	cmd.Flags().Float64Var(&opts.ExpandText, "expand-text", 0, "label inflation factor (default 1.2)")
	cmd.Flags().Float64Var(&opts.ExpandPoints, "expand-points", 0, "point exclusion zone factor (default 1.5)")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: default, dark")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG resolution multiplier (default 2.0)")

	return cmd
}

// runPlot executes the full pipeline and writes the artifacts.
func (c *CLI) runPlot(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	// When streaming the artifact to stdout, keep stdout clean.
	opts.SetRenderDefaults()
	toStdout := output == "" && len(opts.Formats) == 1

	spinner := newSpinnerWithContext(ctx, "Plotting...")
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Plot failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: res.Artifacts,
		formats:   opts.Formats,
		input:     opts.Input,
		output:    output,
		cacheHit:  res.CacheInfo.RenderHit,
		quiet:     toStdout,
	}); err != nil {
		return err
	}

	if !toStdout {
		printStats(res.Stats.PointCount, res.CacheInfo.RenderHit)
		if !res.Stats.Converged {
			printWarning("Label layout hit the iteration budget (%d); labels may still overlap", res.Stats.Iterations)
		}
	}
	return nil
}
