// Command landing serves or exports the Flet landing page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"impractical.co/landing/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand(version).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
