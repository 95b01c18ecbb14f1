package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hsn0918/crocodoc-client/internal/generator"
)

func newInstallCmd(cliOpts *cliOptions) *cobra.Command {
	var opts generator.Options

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Copy the crocodoc configuration file and initializer into a project",
		Long: `Writes config/crocodoc.yml and config/initializers/crocodoc.go
under --dir, filled in with the given api token.`,
		Args:              cobra.NoArgs,
		ValidArgsFunction: positionalAlwaysFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Token == "" {
				return errors.New("flag --api-token is required")
			}
			opts.ParamName = cliOpts.paramName
			opts.Logger = newLogger(cmd.OutOrStdout(), zerolog.InfoLevel)
			_, err := generator.Install(opts)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Token, "api-token", "", "Your Crocodoc API token")
	cmd.Flags().StringVar(&opts.Root, "dir", ".", "Project root to write into")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing files")

	return cmd
}
