package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/todolist/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Flags, config and the interactive session are handled by the runner.
	code := cli.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
