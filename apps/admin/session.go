package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (cli *commandLine) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in; the API restores this session on its next start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Enter password:")
			pwd, err := readPasswordFunc()
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return errors.Wrap(err, "reading password")
			}

			p, err := cli.session.Login(cmd.Context(), email, string(pwd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s> (%s)\n", p.Name, p.Email, p.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "The profile's email. The password will be prompted next.")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (cli *commandLine) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := cli.session.Resolve(ctx); err != nil {
				return err
			}
			p, ok := cli.session.Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			if err := cli.session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged out %s\n", p.Email)
			return nil
		},
	}
}
