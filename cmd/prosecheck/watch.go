package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/logger"
	"github.com/dshills/prosecheck/internal/schema"
	"github.com/dshills/prosecheck/internal/textio"
	"github.com/dshills/prosecheck/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <pattern ...>",
		Short: "Re-analyze matching files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := watch.New(args, a.cfg.Watch.Debounce)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logger.ForComponent("watch")
			log.Info("watching", "patterns", args, "debounce", a.cfg.Watch.Debounce)

			out := cmd.OutOrStdout()
			return w.Run(ctx, func(path string) {
				text, err := textio.ReadFile(path)
				if err != nil {
					log.Warn("read failed", "path", path, "error", err)
					return
				}
				r := a.eng.Report(path, inputFormat(path), text)
				if err := writeReports(out, a.cfg.Format, []*schema.Report{r}); err != nil {
					log.Error("write report", "error", err)
				}
			})
		},
	}
}
