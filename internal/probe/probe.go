// Package probe implements the startup readiness check that container
// orchestration runs against the health endpoint. It lives outside the
// request core and is the only place a timeout and bounded-retry policy
// exists.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Options configures a probe run
type Options struct {
	// URL is the health endpoint to poll
	URL string
	// Attempts is the number of polls before giving up
	Attempts int
	// Interval is the pause between attempts
	Interval time.Duration
	// Timeout bounds each individual attempt
	Timeout time.Duration
	// Logf receives attempt failures; nil silences them
	Logf func(format string, args ...any)
}

// DefaultOptions returns the shipped probe policy: 5 attempts, 5 seconds
// apart, 5 seconds per attempt.
func DefaultOptions(url string) Options {
	return Options{
		URL:      url,
		Attempts: 5,
		Interval: 5 * time.Second,
		Timeout:  5 * time.Second,
	}
}

// Run polls the health endpoint until one attempt answers HTTP 200 or the
// attempts are exhausted.
func Run(ctx context.Context, opts Options) error {
	client := &http.Client{Timeout: opts.Timeout}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		if err := poll(ctx, client, opts.URL); err != nil {
			logf("Attempt %d: Health check failed: %v", attempt, err)
		} else {
			return nil
		}

		if attempt < opts.Attempts {
			select {
			case <-time.After(opts.Interval):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return fmt.Errorf("health check failed after %d attempts", opts.Attempts)
}

func poll(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}
