package cli

import (
	"context"
	"fmt"
	"restate-gateway/internal"
	"restate-gateway/internal/core/domain"

	"github.com/spf13/cobra"
)

func PropertiesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"props"},
		Short:   "Browse property listings",
	}
	cmd.AddCommand(
		latestPropertiesCmd(opts),
		listPropertiesCmd(opts),
		getPropertyCmd(opts),
	)
	return cmd
}

func latestPropertiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recently added listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				return printJSON(cmd.OutOrStdout(), nonNil(rt.Gateway().GetLatestProperties(ctx)))
			})
		},
	}
}

func listPropertiesCmd(opts *options) *cobra.Command {
	var spec domain.QuerySpec

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings, optionally filtered by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if spec.Limit < 0 {
				return fmt.Errorf("--limit must be non-negative, got %d", spec.Limit)
			}
			spec.Filter = domain.NormalizeFilter(spec.Filter)
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				return printJSON(cmd.OutOrStdout(), nonNil(rt.Gateway().GetProperties(ctx, spec)))
			})
		},
	}

	cmd.Flags().StringVar(&spec.Filter, "filter", domain.FilterAll, "property type (House, Villa, Apartment, ...) or All")
	cmd.Flags().StringVar(&spec.Query, "query", "", "free-text query (accepted, not applied yet)")
	cmd.Flags().IntVar(&spec.Limit, "limit", 0, "maximum number of results, 0 for no limit")
	return cmd
}

func getPropertyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				property := rt.Gateway().GetPropertyByID(ctx, args[0])
				if property == nil {
					return fmt.Errorf("property %q not found", args[0])
				}
				return printJSON(cmd.OutOrStdout(), property)
			})
		},
	}
}

func nonNil(props []domain.Property) []domain.Property {
	if props == nil {
		return []domain.Property{}
	}
	return props
}
