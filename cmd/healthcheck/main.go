// Command healthcheck gates container readiness: it exits 0 as soon as one
// poll of the health endpoint answers HTTP 200, and 1 once all attempts are
// exhausted.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/catalogd/catalogd/internal/probe"
)

func main() {
	url := os.Getenv("HEALTHCHECK_URL")
	if url == "" {
		url = "http://localhost:5000/health"
	}

	opts := probe.DefaultOptions(url)
	opts.Logf = func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}

	if err := probe.Run(context.Background(), opts); err != nil {
		os.Exit(1)
	}
}
