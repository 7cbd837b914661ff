package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/handoff/pkg/config"
	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/pipeline"
)

// measureOpts holds the command-line flags for the measure command.
type measureOpts struct {
	selected string // selector of the selected rectangle: node id or #index
	target   string // selector of the target rectangle
	page     string // fallback page size, "WxH"; empty uses config
	format   string // output format: "table", "json" or "yaml"; empty uses config
}

// measureCommand composes the marks between two rectangles of a document.
func (c *CLI) measureCommand() *cobra.Command {
	var opts measureOpts

	cmd := &cobra.Command{
		Use:   "measure <document.json> --selected <id|#index> --target <id|#index>",
		Short: "Measure the spacing between two rectangles",
		Long: `Measure the spacing between a selected and a target rectangle.

Rectangles are named by node id or by extraction index ("#3"); run "rects"
to list both. Positions and lengths are fractions of the page. The page comes
from the document when it has one, otherwise from --page or the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.selected == "" || opts.target == "" {
				return errors.New(errors.ErrCodeInvalidInput, "both --selected and --target are required")
			}
			format, err := c.outputFormat(opts.format)
			if err != nil {
				return err
			}
			return c.runMeasure(cmd, args[0], format, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.selected, "selected", "s", "", "selected rectangle (node id or #index)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target rectangle (node id or #index)")
	cmd.Flags().StringVar(&opts.page, "page", "", "page size used when the document has none, e.g. 1440x1024")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: table, json, yaml")

	return cmd
}

func (c *CLI) runMeasure(cmd *cobra.Command, path, format string, opts *measureOpts) error {
	page, err := c.fallbackPage(opts.page)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())
	doc, err := readDocument(logger, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := c.newRunner().Execute(cmd.Context(), pipeline.Options{
		Document: doc,
		Selected: pipeline.ParseSelector(opts.selected),
		Target:   pipeline.ParseSelector(opts.target),
		Page:     page,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Measured %s %s %s", opts.selected, iconArrow, opts.target))

	out := cmd.OutOrStdout()
	if format != config.FormatTable {
		return writeEncoded(out, format, res.Marks)
	}
	writeMeasureTable(out, res, opts)
	return nil
}

func writeMeasureTable(w io.Writer, res *pipeline.Result, opts *measureOpts) {
	printKeyValue(w, "Selected", fmt.Sprintf("%s  %s", opts.selected, StyleDim.Render(res.Selected.Title)))
	printKeyValue(w, "Target", fmt.Sprintf("%s  %s", opts.target, StyleDim.Render(res.Target.Title)))
	printKeyValue(w, "Relation", res.Relation)
	printKeyValue(w, "Page", fmt.Sprintf("%s × %s", formatPx(res.Page.Width), formatPx(res.Page.Height)))
	fmt.Fprintln(w)

	if res.Marks.IsEmpty() {
		printWarning(w, "Nothing to measure between %s and %s", opts.selected, opts.target)
		return
	}
	fmt.Fprintln(w, markTable(res.Marks))
	printSuccess(w, "%s distance labels, %s ruler guides",
		StyleNumber.Render(fmt.Sprint(len(res.Marks.DistanceLabels))),
		StyleNumber.Render(fmt.Sprint(len(res.Marks.RulerGuides))))
}
