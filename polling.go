package client

import (
	"context"
	"fmt"
	"time"
)

// WaitForDocument polls StatusOne until the document reaches DONE or ERROR,
// the context is cancelled, or the processing timeout elapses. A failed poll
// is returned as is; nothing is retried.
func (c *client) WaitForDocument(ctx context.Context, uuid string, pollInterval time.Duration) (*DocumentStatus, error) {
	return waitWithPolling(ctx, uuid, pollInterval, OperationWaitDocument, c.processingTimeout, c.StatusOne, func(status *DocumentStatus) (bool, error) {
		if status.Error != "" && status.Status == "" {
			return false, fmt.Errorf("document %s: %s", uuid, status.Error)
		}
		return status.Status.Finished(), nil
	})
}

// withProcessingTimeout wraps the context with the provided timeout if it lacks a deadline.
func withProcessingTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	if timeout <= 0 {
		timeout = ProcessingTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// waitWithPolling repeatedly fetches task status until completion, failure, or timeout.
func waitWithPolling[T any](ctx context.Context, id string, pollInterval time.Duration, operation Operation,
	timeout time.Duration,
	fetch func(context.Context, string) (*T, error),
	evaluate func(*T) (bool, error),
) (*T, error) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollEvery
	}

	ctx, cancel := withProcessingTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		result, err := fetch(ctx, id)
		if err != nil {
			return nil, err
		}

		done, evalErr := evaluate(result)
		if evalErr != nil {
			return nil, evalErr
		}
		if done {
			return result, nil
		}

		if err := waitForNextPoll(ctx, ticker, operation); err != nil {
			return nil, err
		}
	}
}

// waitForNextPoll blocks until the next ticker pulse or context cancellation.
func waitForNextPoll(ctx context.Context, ticker *time.Ticker, operation Operation) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s cancelled: %w", operation, ctx.Err())
	case <-ticker.C:
		return nil
	}
}
