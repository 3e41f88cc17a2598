package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlast/internal/crosscheck"
)

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Compare parsed elements with golang.org/x/net/html",
		Long: `Parse each file and compare the sequence of element names and ids with what the
golang.org/x/net/html tokenizer finds. Files that fail to parse or disagree
are reported and make the command fail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				b, nodes, err := a.parseFile(cmd, name)
				if err != nil {
					a.log.WithError(err).WithField("file", name).Error("parse failed")
					failed++
					continue
				}
				r, err := crosscheck.Compare(b, nodes)
				if err != nil {
					return err
				}
				if r.OK() {
					fmt.Fprintf(cmd.OutOrStdout(), "ok %s (%d elements)\n", name, len(r.Ours))
					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "mismatch %s at element %d: %s != %s\n",
					name, r.Mismatch, at(r.Ours, r.Mismatch), at(r.Theirs, r.Mismatch))
				a.log.WithFields(logrus.Fields{"file": name, "ours": r.Ours, "theirs": r.Theirs}).Debug("mismatch")
			}
			if failed > 0 {
				return errors.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func at(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return "(end)"
}
