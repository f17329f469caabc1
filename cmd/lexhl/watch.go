package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/lexhl/internal/document"
	"github.com/dshills/lexhl/internal/watch"
)

func newWatchCmd(start startFunc) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-highlight a file incrementally as it changes",
		Long: `Watch FILE and re-highlight it incrementally on every change. Each
change is applied as line edits, and a summary of the lines touched is
printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			text, err := readSource(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			doc := document.New(s.engine, text, document.WithLogger(s.logger))

			out := cmd.OutOrStdout()
			cfg := watch.DefaultConfig(path)
			if debounce > 0 {
				cfg.Debounce = debounce
			}
			w, err := watch.New(cfg, doc,
				watch.WithLogger(s.logger),
				watch.OnUpdate(func(u watch.Update) {
					fmt.Fprintf(out, "%s: +%d -%d lines, %d rehighlighted, %d total\n",
						path, u.Inserted, u.Deleted, u.Rehighlighted, doc.Len())
				}),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s.logger.Info("watching %s (%d lines, doc %s)", path, doc.Len(), doc.ID())
			return w.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 0, "delay before reloading after a change")
	return cmd
}
