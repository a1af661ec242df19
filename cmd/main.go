package main

import (
	"context"
	"os/signal"
	"syscall"

	"qform.io/cli/internal/interfaces/cli"
	"qform.io/cli/internal/interfaces/di"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := di.NewContainer()
	cli.Execute(ctx, container.GetCLIContainer())
}
