package cli

import (
	"context"
	"errors"
	"restate-gateway/internal"

	"github.com/spf13/cobra"
)

var (
	errLoginFailed  = errors.New("login failed")
	errLogoutFailed = errors.New("logout failed")
	errNotLoggedIn  = errors.New("not logged in")
)

type statusOutput struct {
	Authenticated bool `json:"authenticated"`
}

func LoginCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in with Google in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				if !rt.Gateway().Login(ctx) {
					return errLoginFailed
				}
				cmd.Println("Logged in.")
				return nil
			})
		},
	}
}

func LogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				if !rt.Gateway().Logout(ctx) {
					return errLogoutFailed
				}
				cmd.Println("Logged out.")
				return nil
			})
		},
	}
}

func StatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether a session is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				return printJSON(cmd.OutOrStdout(), statusOutput{Authenticated: rt.Gateway().CheckAuthStatus(ctx)})
			})
		},
	}
}

func WhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withGateway(cmd, internal.SessionFile, func(ctx context.Context, rt Runtime) error {
				user := rt.Gateway().GetCurrentUser(ctx)
				if user == nil {
					return errNotLoggedIn
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
}
