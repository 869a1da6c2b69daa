package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Per-entity failures are reported in the summary and do not change the
	// exit status; only setup errors do.
	if err := newRootCmd(os.Stdout, nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
