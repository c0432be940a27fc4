// Package main implements a converter between Intel HEX files and flat binary images
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/ihexconv/internal/cli"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	if err := cli.Execute(ctx, version, commit, date); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "*** ERROR: %s\n", err)
		os.Exit(1)
	}
}
