package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/pipeline"
)

// renderCommand creates the render command for rendering from a saved layout.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render <layout.json>",
		Short: "Render a computed layout to SVG, PNG, PDF or JSON",
		Long: `Render a computed layout to SVG, PNG, PDF or JSON.

The render command takes a layout.json file (produced by 'layout') and draws
it. The layout already contains all positioning, so this step is purely
about output. Use 'plot' to go directly from data to image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: default, dark (default: style recorded in the layout)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG resolution multiplier (default 2.0)")

	return cmd
}

// runRender loads the layout file and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	layout, err := chart.UnmarshalLayout(data)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	if opts.Style == "" && layout.Style != "" {
		opts.Style = layout.Style
	}
	opts.SetRenderDefaults()
	toStdout := output == "" && len(opts.Formats) == 1

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  cacheHit,
		quiet:     toStdout,
	})
}
