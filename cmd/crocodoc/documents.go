package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <uuid> [uuid...]",
		Short: "Show conversion status of one or more documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "status", "", err)
			}

			if len(args) == 1 {
				status, err := cli.StatusOne(cmd.Context(), args[0])
				if err != nil {
					return recordFailure(opts, "status", args[0], err)
				}
				return printJSON(cmd, status)
			}

			statuses, err := cli.StatusMany(cmd.Context(), args)
			if err != nil {
				return recordFailure(opts, "status", "batch", err)
			}
			return printJSON(cmd, statuses)
		},
	}
}

func newDeleteCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uuid>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := buildClient(cmd, opts, true)
			if err != nil {
				return recordFailure(opts, "delete", args[0], err)
			}

			deleted, err := cli.Delete(cmd.Context(), args[0])
			if err != nil {
				return recordFailure(opts, "delete", args[0], err)
			}
			return printOut(cmd, "deleted=%t uuid=%s\n", deleted, args[0])
		},
	}
}
