package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fernandezvara/pwcheck/internal/logging"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

func main() {
	logging.SetDefaultCLILogger("info")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}
