// Package main implements the main entry point for the F-Zero cartridge data decoder
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/fzerodec/internal/cli"
	"github.com/retroenv/fzerodec/internal/config"
	"github.com/retroenv/fzerodec/internal/fileprocessor"
	"github.com/retroenv/fzerodec/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// errProcessing marks errors that were already logged by the run function.
var errProcessing = errors.New("processing failed")

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()
	versionString := buildinfo.Version(version, commit, date)

	cmd := cli.NewCommand(versionString, func(ctx context.Context, opts options.Program) error {
		logger := config.CreateLogger(opts)
		fileprocessor.PrintBanner(logger, opts, versionString)

		if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
			// Handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return nil
			}
			logger.Error("Decoding failed", log.Err(err))
			return fmt.Errorf("%w: %w", errProcessing, err)
		}
		return nil
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errProcessing) {
			fmt.Fprintln(os.Stderr, err)
			_ = cmd.Usage()
		}
		os.Exit(1)
	}
}
