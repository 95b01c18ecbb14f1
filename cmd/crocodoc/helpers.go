package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	client "github.com/hsn0918/crocodoc-client"
)

// resolveConfig layers flags over the --config file, or over CROCODOC_*
// environment variables when no file is given.
func resolveConfig(opts *cliOptions, requireToken bool) (client.Config, error) {
	var (
		cfg client.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = client.LoadConfigFile(opts.configPath)
	} else {
		cfg, err = client.LoadConfig()
	}
	if err != nil {
		return client.Config{}, err
	}

	if opts.token != "" {
		cfg.Token = opts.token
	}
	if opts.paramName != "" {
		cfg.ParamName = opts.paramName
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	if opts.debug {
		cfg.Debug = true
	}

	if requireToken {
		if err := cfg.Validate(); err != nil {
			return client.Config{}, fmt.Errorf("%w (flag --token, --config or CROCODOC_TOKEN)", err)
		}
	}
	return cfg, nil
}

func buildClient(cmd *cobra.Command, opts *cliOptions, requireToken bool) (client.Client, error) {
	cfg, err := resolveConfig(opts, requireToken)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	return client.NewClient(cfg, client.WithLogger(logger)), nil
}

func printJSON(cmd *cobra.Command, data any) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(content))
	return err
}

func printOut(cmd *cobra.Command, format string, args ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return err
}

// writeToFile creates targetPath and hands it to write. A failed close is
// reported when write itself succeeded.
func writeToFile(targetPath string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(targetPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", targetPath, closeErr)
		}
	}()

	return write(file)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(level)
}
