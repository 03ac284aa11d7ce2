package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/labelplot/labelplot/pkg/dataset"
)

// inspectCommand creates the inspect command for examining input data
// without rendering anything.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		inputFormat string
		interactive bool
	)
	var ov dataset.Overrides

	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Summarize a dataset and its detected column mapping",
		Long: `Summarize a dataset and its detected column mapping.

The inspect command parses the input the same way plot does and reports what
it found: point count, value ranges, and for CSV input the columns the name
heuristics picked. Use --interactive to remap columns with a picker when the
heuristics guess wrong.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(inputArg(args), inputFormat, ov, interactive)
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "input format: json or csv (default: auto-detect)")
	cmd.Flags().StringVar(&ov.Label, "label-column", "", "CSV column holding labels")
	cmd.Flags().StringVar(&ov.X, "x-column", "", "CSV column holding x values")
	cmd.Flags().StringVar(&ov.Y, "y-column", "", "CSV column holding y values")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick CSV columns interactively")

	return cmd
}

// runInspect parses the input and prints a dataset summary.
func (c *CLI) runInspect(input, inputFormat string, ov dataset.Overrides, interactive bool) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}

	format, err := dataset.ParseFormat(inputFormat)
	if err != nil {
		return err
	}
	if format == "" {
		format = dataset.DetectFormat(input, data)
	}

	var cols *dataset.Columns
	if format == dataset.FormatCSV {
		header, ok := csvHeader(data)
		if ok {
			if interactive {
				detected := dataset.DetectColumns(header)
				picked, done, err := pickColumns(header, detected)
				if err != nil {
					return err
				}
				if !done {
					printInfo("Cancelled")
					return nil
				}
				ov = picked
			}
			resolved, err := dataset.ResolveColumns(header, ov)
			if err != nil {
				return err
			}
			cols = &resolved
		} else if interactive {
			return fmt.Errorf("interactive column picking needs a CSV header row")
		}
	}

	ds, err := dataset.Parse(data, format, ov)
	if err != nil {
		return err
	}

	printSummary(ds, format, cols)
	if cols != nil && ov != (dataset.Overrides{}) {
		printNextStep("Plot with this mapping", plotCommandFor(input, ov))
	}
	return nil
}

// readInput returns the raw bytes of a file or stdin ("-").
func readInput(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(input)
}

// csvHeader extracts the header row from CSV data. It reports false for
// headerless input, where the first row's x and y cells already parse as
// numbers.
func csvHeader(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil || len(header) < 3 {
		return nil, false
	}
	if parsesAsFloat(header[1]) && parsesAsFloat(header[2]) {
		return nil, false
	}
	return header, true
}

func parsesAsFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// printSummary prints the dataset overview.
func printSummary(ds *dataset.Dataset, format dataset.Format, cols *dataset.Columns) {
	fmt.Println(StyleTitle.Render(ds.Title))
	printKeyValue("Format", strings.ToUpper(string(format)))
	printKeyValue("Points", fmt.Sprintf("%d", len(ds.Points)))

	xLo, xHi := ds.XRange()
	yLo, yHi := ds.YRange()
	printKeyValue("X", fmt.Sprintf("%s  [%g .. %g]", ds.XLabel, xLo, xHi))
	printKeyValue("Y", fmt.Sprintf("%s  [%g .. %g]", ds.YLabel, yLo, yHi))

	if tiers := ds.DiscreteTiers(10); tiers != nil {
		printKeyValue("Tiers", fmt.Sprintf("%d discrete (%g .. %g)", len(tiers), tiers[0], tiers[len(tiers)-1]))
	}

	if cols != nil {
		printKeyValue("Columns", fmt.Sprintf("label=%s x=%s y=%s",
			columnName(cols.LabelName, cols.Label),
			columnName(cols.XName, cols.X),
			columnName(cols.YName, cols.Y)))
	}
}

func columnName(name string, idx int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", idx)
}

// plotCommandFor builds the plot invocation matching the picked columns.
func plotCommandFor(input string, ov dataset.Overrides) string {
	parts := []string{"labelplot plot", input}
	if ov.Label != "" {
		parts = append(parts, "--label-column "+ov.Label)
	}
	if ov.X != "" {
		parts = append(parts, "--x-column "+ov.X)
	}
	if ov.Y != "" {
		parts = append(parts, "--y-column "+ov.Y)
	}
	return strings.Join(parts, " ")
}
