package main

import (
	"time"

	"github.com/spf13/cobra"

	client "github.com/hsn0918/crocodoc-client"
)

type cliOptions struct {
	token       string
	paramName   string
	baseURL     string
	configPath  string
	timeout     time.Duration
	debug       bool
	failLogPath string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "crocodoc",
		Short:         "Crocodoc API v2 CLI helper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.token, "token", "", "Crocodoc API token (or set CROCODOC_TOKEN)")
	cmd.PersistentFlags().StringVar(&opts.paramName, "param-name", "", "Request parameter carrying the token (default \"token\")")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Base URL for the Crocodoc API (default "+client.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a crocodoc.yml file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for API requests (default 60s)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Log every request and response")
	cmd.PersistentFlags().StringVar(&opts.failLogPath, "fail-log", "", "Path to append failed calls to")

	cmd.AddCommand(newUploadCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newSessionCmd(opts))
	cmd.AddCommand(newViewCmd(opts))
	cmd.AddCommand(newDownloadCmd(opts))
	cmd.AddCommand(newThumbnailCmd(opts))
	cmd.AddCommand(newTextCmd(opts))
	cmd.AddCommand(newInstallCmd(opts))
	cmd.AddCommand(newCompletionCmd())

	return cmd
}
