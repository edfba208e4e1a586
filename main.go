package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frisbii-transform-mcp/cmd"
)

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.SetVersion(version)
	cmd.ExecuteContext(ctx)
}
