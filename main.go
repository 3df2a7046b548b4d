// Copyright
// SPDX-License-Identifier: MIT
// modebar: terminal map editor whose toolbar tracks the editing mode, the
// notes layer and the user's favorite presets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"modebar/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
