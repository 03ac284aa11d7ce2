package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labelplot/labelplot/pkg/pipeline"
)

// layoutCommand creates the layout command, which stops the pipeline after
// label placement and emits the layout document.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [input]",
		Short: "Compute a chart layout and emit it as JSON",
		Long: `Compute a chart layout and emit it as JSON.

The layout document contains everything needed to draw the chart: pixel
positions for markers, solved label boxes, connectors, ticks and titles.
Feed it to 'render' to produce SVG, PNG or PDF output without recomputing
the label placement.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = inputArg(args)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.apply(&opts)
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache")

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "", "input format: json or csv (default: auto-detect)")
	cmd.Flags().StringVar(&opts.LabelColumn, "label-column", "", "CSV column holding labels")
	cmd.Flags().StringVar(&opts.XColumn, "x-column", "", "CSV column holding x values")
	cmd.Flags().StringVar(&opts.YColumn, "y-column", "", "CSV column holding y values")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (overrides input)")
	cmd.Flags().StringVar(&opts.XLabel, "xlabel", "", "x axis label (overrides input)")
	cmd.Flags().StringVar(&opts.YLabel, "ylabel", "", "y axis label (overrides input)")

	cmd.Flags().Float64Var(&opts.Width, "width", 0, "canvas width in pixels (default 1200)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "canvas height in pixels (default 800)")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iter", 0, "label relaxation iteration budget (default 500)")
	cmd.Flags().Float64Var(&opts.ForceText, "force-text", 0, "label-label repulsion strength (default 0.5)")
	cmd.Flags().Float64Var(&opts.ForcePoints, "force-points", 0, "label-point repulsion strength (default 0.5)")
	cmd.Flags().Float64Var(&opts.ExpandText, "expand-text", 0, "label inflation factor (default 1.2)")
	cmd.Flags().Float64Var(&opts.ExpandPoints, "expand-points", 0, "point exclusion zone factor (default 1.5)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "style recorded in the layout: default, dark")

	return cmd
}

// runLayout loads the input, computes the layout, and writes the document.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	ds, sourceHash, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	layout, err := runner.ComputeLayout(ctx, ds, sourceHash, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Placed %d labels in %d iterations", len(layout.Labels), layout.Iterations))

	data, err := layout.Marshal()
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if output != "" {
		printFile(output)
		printNextStep("Render it", fmt.Sprintf("labelplot render %s -f svg", output))
	}
	return nil
}
