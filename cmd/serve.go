package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heathj/htmlast/internal/server"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP and WebSocket",
		Long: `Serve the parser.

  POST /parse?format=json   parse the request body
  GET  /ws                  parse each text message, reply with JSON
  GET  /healthz             liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.cfg.Server, a.newParser(), a.log).ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("addr", "0.0.0.0:8002", "listen address")
	bindFlag(a.v, "server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}
