package cli

import (
	"context"
	"restate-gateway/internal"

	"github.com/spf13/cobra"
)

func ServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the gateway as a local REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionMemory, func(ctx context.Context, rt Runtime) error {
				return rt.Serve(ctx)
			})
		},
	}
}
