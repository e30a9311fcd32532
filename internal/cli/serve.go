package cli

import (
	"github.com/spf13/cobra"

	"slidebuilder/internal/config"
	"slidebuilder/internal/service"
)

// serveCommand runs the MCP server on stdin/stdout until the client
// disconnects. The config file is watched and reloaded while serving.
func (c *CLI) serveCommand(version string) *cobra.Command {
	var noWatch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the builder over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			a, err := c.open(service.LogEmitter{Logger: logger})
			if err != nil {
				return err
			}
			defer a.Close()

			srv := a.MCPServer(version)
			if !noWatch && c.configPath != "" {
				if err := config.Watch(ctx, c.configPath, logger, a.ApplyConfig); err != nil {
					logger.Warn("config watch disabled", "err", err)
				}
			}

			return srv.ServeStdio()
		},
	}
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file on change")
	return cmd
}
