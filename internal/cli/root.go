package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"restate-gateway/internal"
	"restate-gateway/internal/core/port/usecases_port"

	"github.com/spf13/cobra"
)

// Runtime - собранное приложение, с которым работают команды.
type Runtime interface {
	Gateway() usecases_port.PropertyDataGateway
	Context(ctx context.Context) context.Context
	Serve(ctx context.Context) error
	Close() error
}

// Factory создает Runtime по пути к .env.
type Factory func(envPath string, mode internal.SessionMode) (Runtime, error)

// DefaultFactory собирает настоящее приложение.
func DefaultFactory(envPath string, mode internal.SessionMode) (Runtime, error) {
	return internal.NewApp(envPath, mode)
}

type options struct {
	envPath string
	factory Factory
}

func NewRootCmd(factory Factory) *cobra.Command {
	opts := &options{factory: factory}

	rootCmd := &cobra.Command{
		Use:           "restate-gateway",
		Short:         "Property listings and account access for the Restate backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.envPath, "env", "", "path to .env file (default: ./.env if present)")

	rootCmd.AddCommand(
		LoginCmd(opts),
		LogoutCmd(opts),
		StatusCmd(opts),
		WhoamiCmd(opts),
		PropertiesCmd(opts),
		ServeCmd(opts),
	)
	return rootCmd
}

// withGateway создает Runtime, выполняет fn и закрывает Runtime.
func (o *options) withGateway(cmd *cobra.Command, mode internal.SessionMode, fn func(ctx context.Context, rt Runtime) error) error {
	rt, err := o.factory(o.envPath, mode)
	if err != nil {
		return err
	}
	defer rt.Close()

	return fn(rt.Context(cmd.Context()), rt)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
