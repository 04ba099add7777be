package main

import (
	"context"
	"os"
	"os/signal"

	"notecraft-be/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewCmdRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
