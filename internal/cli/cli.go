// Package cli implements the handoff command-line interface.
//
// Commands read a design document from a JSON file, extract its rectangles
// and print them, measure a selected/target pair, browse the document
// interactively or serve the same operations over HTTP.
//
// # Commands
//
//   - rects: list the rectangles of a document
//   - measure: compose distance labels and ruler guides for two rectangles
//   - inspect: pick rectangles in a terminal UI and watch the marks update
//   - serve: start the HTTP API
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/handoff/config.toml, or the file
// named by --config. Flags override file values.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried on the CLI and attached to each command's context.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/handoff/pkg/buildinfo"
	"github.com/matzehuels/handoff/pkg/config"
	"github.com/matzehuels/handoff/pkg/errors"
	"github.com/matzehuels/handoff/pkg/geom"
	"github.com/matzehuels/handoff/pkg/numeric"
	"github.com/matzehuels/handoff/pkg/pipeline"
	"github.com/matzehuels/handoff/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "handoff"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Options
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The configuration file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Handoff measures the spacing between design elements",
		Long:          `Handoff reads a design document's node tree and annotates the spacing between two of its elements with distance labels and ruler guides, ready for a developer handoff view.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/handoff/config.toml)")

	root.AddCommand(c.rectsCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file into c.config.
func (c *CLI) loadConfig() error {
	opts, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = opts
	c.Logger.Debug("loaded config", "path", c.configPath, "page", fmt.Sprintf("%gx%g", opts.Page.Width, opts.Page.Height))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// outputFormat returns the flag value when set, else the configured format.
func (c *CLI) outputFormat(flag string) (string, error) {
	format := c.config.Output.Format
	if flag != "" {
		format = flag
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// fallbackPage returns the --page flag value when set, else the configured
// page. The document's own page still takes precedence over both.
func (c *CLI) fallbackPage(flag string) (geom.Page, error) {
	if flag == "" {
		return c.config.Page, nil
	}
	return parsePageSize(flag)
}

// parsePageSize reads "WxH" with optional px units, e.g. "1440x1024" or
// "1440px x 1024px".
func parsePageSize(s string) (geom.Page, error) {
	norm := strings.ReplaceAll(strings.ToLower(s), "px", "")
	ws, hs, ok := strings.Cut(norm, "x")
	if !ok {
		return geom.Page{}, errors.New(errors.ErrCodeInvalidInput, "invalid page size %q (want WIDTHxHEIGHT)", s)
	}
	w, err := numeric.PxToNumber(ws)
	if err != nil {
		return geom.Page{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid page width in %q", s)
	}
	h, err := numeric.PxToNumber(hs)
	if err != nil {
		return geom.Page{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid page height in %q", s)
	}
	page := geom.Page{Width: w, Height: h}
	if err := page.Validate(); err != nil {
		return geom.Page{}, err
	}
	return page, nil
}

// readDocument loads the document at path, logging how long it took.
func readDocument(logger *log.Logger, path string) (*scene.Document, error) {
	prog := newProgress(logger)
	doc, err := scene.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	prog.debug(fmt.Sprintf("Read %s", path))
	return doc, nil
}
