package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/handoff/pkg/server"
)

// serveCommand starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction and measurement over HTTP",
		Long: `Start the HTTP API.

Routes:
  GET  /healthz
  POST /v1/rects     body: document
  POST /v1/measure   body: {"document": ..., "selected": {"id": ...}, "target": {"index": ...}}

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.config
			if addr != "" {
				opts.Server.Addr = addr
			}
			return server.New(opts, c.Logger).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
