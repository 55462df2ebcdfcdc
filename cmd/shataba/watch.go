package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MAEASaM/shataba/watch"
	"github.com/spf13/cobra"
)

// watchCmd re-runs the full validation pipeline whenever an input or
// reference file changes. Every run re-reads all sources from scratch;
// nothing is updated incrementally.
func watchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-run validation when input or reference files change",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			return runWatch(app, opts.input)
		},
	}
}

func runWatch(app *App, inputPattern string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	inputs, err := resolveInputs(inputPattern)
	if err != nil {
		return err
	}
	files := append(inputs, app.referencePaths()...)

	w, err := watch.New(files, 0, app.logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	// Initial pass before waiting for changes. A failed run is logged
	// rather than fatal so an edit to a broken reference file can fix it
	// without restarting the watcher.
	if err := app.Run(ctx, inputPattern); err != nil {
		app.logger.Error("Validation run failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("Shutting down watcher")
			return nil
		case _, ok := <-w.Triggers():
			if !ok {
				return nil
			}
			if err := app.Run(ctx, inputPattern); err != nil {
				app.logger.Error("Validation run failed", "error", err)
			}
		}
	}
}
