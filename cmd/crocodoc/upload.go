package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	client "github.com/hsn0918/crocodoc-client"
)

type uploadOptions struct {
	filePath    string
	wait        bool
	interval    time.Duration
	concurrency int
	opts        *cliOptions
}

type uploadResult struct {
	URL    string                 `json:"url"`
	UUID   string                 `json:"uuid,omitempty"`
	Error  string                 `json:"error,omitempty"`
	Status *client.DocumentStatus `json:"status,omitempty"`
}

func newUploadCmd(opts *cliOptions) *cobra.Command {
	uo := &uploadOptions{opts: opts}

	cmd := &cobra.Command{
		Use:   "upload [url...]",
		Short: "Upload documents by url",
		RunE: func(cmd *cobra.Command, args []string) error {
			return uo.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&uo.filePath, "file", "f", "", "Local file to upload (not supported by the API client)")
	cmd.Flags().BoolVar(&uo.wait, "wait", false, "Wait until each document is DONE or ERROR")
	cmd.Flags().DurationVar(&uo.interval, "interval", client.DefaultPollEvery, "Polling interval for --wait")
	cmd.Flags().IntVar(&uo.concurrency, "concurrency", 3, "Number of concurrent uploads when several urls are given")

	return cmd
}

func (o *uploadOptions) run(cmd *cobra.Command, urls []string) error {
	cli, err := buildClient(cmd, o.opts, true)
	if err != nil {
		return recordFailure(o.opts, "upload", "", err)
	}

	if o.filePath != "" {
		return recordFailure(o.opts, "upload", o.filePath, o.uploadFile(cmd.Context(), cli))
	}

	if len(urls) == 0 {
		return errors.New("at least one url or --file is required")
	}

	if o.concurrency <= 0 {
		o.concurrency = 3
	}

	results, err := o.uploadAll(cmd.Context(), cli, urls)
	if printErr := printJSON(cmd, results); printErr != nil {
		return printErr
	}
	return err
}

func (o *uploadOptions) uploadFile(ctx context.Context, cli client.Client) error {
	f, err := os.Open(o.filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	_, err = cli.UploadFile(ctx, f)
	return err
}

func (o *uploadOptions) uploadAll(ctx context.Context, cli client.Client, urls []string) ([]uploadResult, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)

	var (
		results = make([]uploadResult, len(urls))
		errs    []error
		mu      sync.Mutex
	)

	for i, u := range urls {
		i, u := i, u
		eg.Go(func() error {
			res, err := o.uploadOne(ctx, cli, u)
			results[i] = res
			if err != nil {
				mu.Lock()
				errs = append(errs, recordFailure(o.opts, "upload", u, err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return results, err
	}

	if len(errs) > 0 {
		return results, fmt.Errorf("upload completed with %d errors, first: %w", len(errs), errs[0])
	}
	return results, nil
}

func (o *uploadOptions) uploadOne(ctx context.Context, cli client.Client, u string) (uploadResult, error) {
	res := uploadResult{URL: u}

	resp, err := cli.Upload(ctx, u)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.UUID = resp.UUID
	res.Error = resp.Error

	if !o.wait || resp.UUID == "" {
		return res, nil
	}

	status, err := cli.WaitForDocument(ctx, resp.UUID, o.interval)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.Status = status
	return res, nil
}
