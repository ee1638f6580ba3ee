package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/prosecheck/internal/config"
	"github.com/dshills/prosecheck/internal/engine"
	"github.com/dshills/prosecheck/internal/logger"
)

// exitError carries a process exit code other than the default 1.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// app holds state shared by subcommands once flags and config are resolved.
type app struct {
	configPath string
	format     string
	logLevel   string

	cfg *config.Config
	eng *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "prosecheck",
		Short:         "Writing-quality analysis and rewriting for plain text and Markdown",
		Version:       engine.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.format, "format", "", "output format: json or markdown")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newAnalyzeCmd(a),
		newTransformCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newTonesCmd(a),
	)
	return root
}

// setup loads config, applies flag overrides, initialises logging and builds
// the engine.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Format = strings.ToLower(cfg.Format)

	logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})

	a.cfg = cfg
	a.eng = engine.New(cfg.BuildLexicon())
	return nil
}
