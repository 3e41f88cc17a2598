package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlast/internal/compact"
	"github.com/heathj/htmlast/parser/ast"
)

func (a *app) newParseCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print its tree",
		Long: `Parse a document, read from a file or stdin, and print the tree.

Formats:
  dump   indented tree, one node per line (default)
  json   tagged node objects
  yaml   tagged node objects
  html   the tree rendered back to markup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, nodes, err := a.parseFile(cmd, argOrStdin(args))
			if err != nil {
				return err
			}
			b, err := a.format(nodes, a.cfg.Parse.Format, a.cfg.Parse.Minify)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, b)
		},
	}
	cmd.Flags().StringP("format", "f", "dump", "output format ("+strings.Join(ast.Formats, ", ")+")")
	cmd.Flags().String("charset", "", "input character encoding (default utf-8)")
	cmd.Flags().Bool("minify", false, "minify html output")
	cmd.Flags().Int64("max-bytes", 0, "reject inputs larger than this (0 for no limit)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	bindFlag(a.v, "parse.format", cmd.Flags().Lookup("format"))
	bindFlag(a.v, "parse.charset", cmd.Flags().Lookup("charset"))
	bindFlag(a.v, "parse.minify", cmd.Flags().Lookup("minify"))
	bindFlag(a.v, "parse.max_bytes", cmd.Flags().Lookup("max-bytes"))
	return cmd
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		out    string
		minify bool
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Parse a document and render it back to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, nodes, err := a.parseFile(cmd, argOrStdin(args))
			if err != nil {
				return err
			}
			b, err := a.format(nodes, "html", minify || a.cfg.Parse.Minify)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, append(b, '\n'))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&minify, "minify", false, "minify the output")
	return cmd
}

// format encodes nodes. Only html output is minified, and only when the
// minified markup still parses to the same tree.
func (a *app) format(nodes []ast.Node, format string, minify bool) ([]byte, error) {
	if format == "html" && minify {
		b, minified, err := compact.Nodes(nodes)
		if err != nil {
			return nil, err
		}
		if !minified {
			a.log.Warn("minified html changes the tree, writing it unminified")
		}
		return b, nil
	}
	return ast.Format(nodes, format)
}

func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(b)
		return errors.Wrap(err, "writing output")
	}
	return errors.Wrapf(os.WriteFile(path, b, 0o644), "writing %s", path)
}
