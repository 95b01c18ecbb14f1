package main

import (
	"github.com/spf13/cobra"

	client "github.com/hsn0918/crocodoc-client"
)

type sessionOptions struct {
	session client.SessionOptions
	view    bool
}

func newSessionCmd(opts *cliOptions) *cobra.Command {
	so := &sessionOptions{}

	cmd := &cobra.Command{
		Use:   "session <uuid>",
		Short: "Create a viewer session for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "session", args[0], err)
			}

			resp, err := cli.CreateSession(cmd.Context(), args[0], so.session.Params())
			if err != nil {
				return recordFailure(opts, "session", args[0], err)
			}

			if so.view {
				return printOut(cmd, "%s\n", cli.ViewURL(resp.Session))
			}
			return printJSON(cmd, resp)
		},
	}

	cmd.Flags().BoolVar(&so.session.Editable, "editable", false, "Allow annotations and comments")
	cmd.Flags().StringVar(&so.session.User, "user", "", "User id and name joined with a comma, e.g. 1337,Peter")
	cmd.Flags().StringVar(&so.session.Filter, "filter", "", "Whose annotations to show: all, none, or comma separated user ids")
	cmd.Flags().BoolVar(&so.session.Admin, "admin", false, "Allow modifying or deleting any annotation")
	cmd.Flags().BoolVar(&so.session.Downloadable, "downloadable", false, "Allow downloading the original document")
	cmd.Flags().BoolVar(&so.session.CopyProtected, "copyprotected", false, "Prevent text selection")
	cmd.Flags().BoolVar(&so.session.Demo, "demo", false, "Do not persist annotation changes")
	cmd.Flags().BoolVar(&so.view, "view", false, "Print the viewer url instead of the session id")

	return cmd
}

func newViewCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view <session>",
		Short: "Print the viewer url for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, false)
			if err != nil {
				return err
			}
			return printOut(cmd, "%s\n", cli.ViewURL(args[0]))
		},
	}
}
