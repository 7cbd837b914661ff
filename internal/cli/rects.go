package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/handoff/pkg/config"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/scene"
)

// rectsOpts holds the command-line flags for the rects command.
type rectsOpts struct {
	format string // output format: "table", "json" or "yaml"; empty uses config
}

// rectsCommand lists the rectangles extracted from a document.
func (c *CLI) rectsCommand() *cobra.Command {
	var opts rectsOpts

	cmd := &cobra.Command{
		Use:   "rects <document.json>",
		Short: "List the rectangles of a design document",
		Long: `List every visible rectangle of a design document in extraction order.

Each row shows the selector keys accepted by "measure": the node id, or
"#<index>" for nodes without a unique id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.outputFormat(opts.format)
			if err != nil {
				return err
			}
			return c.runRects(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: table, json, yaml")

	return cmd
}

func (c *CLI) runRects(cmd *cobra.Command, path, format string) error {
	logger := loggerFromContext(cmd.Context())
	doc, err := readDocument(logger, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	idx, err := c.newRunner().Extract(cmd.Context(), doc)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Extracted %d rectangles", idx.Len()))

	out := cmd.OutOrStdout()
	if format != config.FormatTable {
		return writeRectsEncoded(out, format, idx)
	}
	writeRectsTable(out, idx, path)
	return nil
}

// rectEntry pairs a rectangle with its selector key in encoded output.
type rectEntry struct {
	ID        string `json:"id" yaml:"id"`
	geom.Rect `yaml:",inline"`
}

func writeRectsEncoded(w io.Writer, format string, idx *scene.Index) error {
	entries := make([]rectEntry, 0, idx.Len())
	idx.Each(func(id string, r geom.Rect) bool {
		entries = append(entries, rectEntry{ID: id, Rect: r})
		return true
	})
	return writeEncoded(w, format, struct {
		Rects []rectEntry `json:"rects" yaml:"rects"`
	}{entries})
}

func writeRectsTable(w io.Writer, idx *scene.Index, path string) {
	if idx.Len() == 0 {
		printWarning(w, "No visible rectangles in %s", path)
		return
	}

	ids := make([]string, idx.Len())
	for i := range ids {
		ids[i] = idx.ID(i)
	}
	fmt.Fprintln(w, rectTable(ids, idx.Rects(), -1))
	printSuccess(w, "%s rectangles", StyleNumber.Render(fmt.Sprint(idx.Len())))
	if idx.Len() > 1 {
		printNextStep(w, "Measure a pair", fmt.Sprintf("%s measure %s --selected %s --target %s", appName, path, ids[0], ids[1]))
	}
}
