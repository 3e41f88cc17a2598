package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlast/internal/watch"
)

func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch path...",
		Short: "Reparse HTML files whenever they change",
		Long: `Watch files or directories and reparse changed HTML files, printing the
tree in the configured format or the parse error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w, err := watch.New(a.cfg.Watch.Debounce, func(path string) {
				_, nodes, err := a.parseFile(cmd, path)
				if err != nil {
					a.log.WithError(err).WithField("file", path).Warn("parse failed")
					return
				}
				b, err := a.format(nodes, a.cfg.Parse.Format, a.cfg.Parse.Minify)
				if err != nil {
					a.log.WithError(err).Error("formatting")
					return
				}
				fmt.Fprintf(out, "== %s\n%s\n", path, b)
			}, a.log)
			if err != nil {
				return err
			}
			for _, p := range args {
				if err := w.Add(p); err != nil {
					return err
				}
			}
			a.log.WithFields(logrus.Fields{"paths": args, "debounce": a.cfg.Watch.Debounce}).Info("watching")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
	cmd.Flags().Duration("debounce", 100*time.Millisecond, "quiet period before reparsing a file")
	bindFlag(a.v, "watch.debounce", cmd.Flags().Lookup("debounce"))
	return cmd
}
