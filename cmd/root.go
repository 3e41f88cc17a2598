// Package cmd is the htmlast command line.
//
// Settings come from, in increasing order of precedence: built-in defaults,
// .htmlast.yml (or the file named by --config), HTMLAST_<SECTION>_<KEY>
// environment variables and command flags.
package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/heathj/htmlast/internal/config"
	"github.com/heathj/htmlast/internal/logging"
	"github.com/heathj/htmlast/internal/transcode"
	"github.com/heathj/htmlast/parser"
	"github.com/heathj/htmlast/parser/ast"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logrus.Logger
}

// Execute runs the command line against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "htmlast",
		Short: "Parse a strict HTML dialect into a typed tree",
		Long: `htmlast parses well-formed HTML with components into a typed tree and
prints it as a dump, JSON, YAML or re-rendered HTML.

  htmlast parse page.html             Print the tree
  htmlast parse -f json page.html     Print the tree as JSON
  htmlast render --minify page.html   Normalize and minify markup
  htmlast check pages/*.html          Compare against golang.org/x/net/html
  htmlast serve                       Parse over HTTP and WebSocket
  htmlast watch pages/                Reparse files as they change`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .htmlast.yml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")
	bindFlag(a.v, "log.level", root.PersistentFlags().Lookup("log-level"))
	bindFlag(a.v, "log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(
		a.newParseCmd(),
		a.newRenderCmd(),
		a.newCheckCmd(),
		a.newBenchCmd(),
		a.newServeCmd(),
		a.newWatchCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	if f := a.v.ConfigFileUsed(); f != "" {
		log.WithField("file", f).Debug("using config file")
	}
	return nil
}

func (a *app) newParser() *parser.Parser {
	return parser.NewParser(
		parser.WithLogger(a.log),
		parser.WithMaxBytes(a.cfg.Parse.MaxBytes),
	)
}

// readInput reads the named file, or stdin for "" and "-", decoding it from
// the configured charset.
func (a *app) readInput(cmd *cobra.Command, name string) ([]byte, error) {
	var r io.Reader
	if name == "" || name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	r, err := transcode.Reader(r, a.cfg.Parse.Charset)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", displayName(name))
	}
	return b, nil
}

// parseFile reads and parses one input.
func (a *app) parseFile(cmd *cobra.Command, name string) ([]byte, []ast.Node, error) {
	b, err := a.readInput(cmd, name)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := a.newParser().Parse(bytes.NewReader(b))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parsing %s", displayName(name))
	}
	return b, nodes, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

func bindFlag(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
