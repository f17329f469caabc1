package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/lexhl/internal/config"
	"github.com/dshills/lexhl/internal/highlight"
	"github.com/dshills/lexhl/internal/loader"
	"github.com/dshills/lexhl/internal/logging"
)

type rootOptions struct {
	configFile string
}

// session is the state every command starts from.
type session struct {
	cfg    config.Config
	logger *logging.Logger
	engine *highlight.Engine
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lexhl",
		Short: "Incremental lexical highlighter",
		Long: `lexhl highlights Python-like source line by line, carrying multi-line
string state from one line to the next so edits only re-highlight the
lines they affect.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: ~/.config/lexhl/config.{toml,yaml})")
	flags.StringP("style", "s", "", "style to highlight with")
	flags.StringP("output", "o", "", "output format: ansi, json or plain")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.StringSlice("style-file", nil, "extra style file (TOML, YAML or JSON); repeatable")

	_ = v.BindPFlag("style", flags.Lookup("style"))
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("style_files", flags.Lookup("style-file"))

	start := func(cmd *cobra.Command) (*session, error) {
		return newSession(v, opts, cmd.ErrOrStderr())
	}

	cmd.AddCommand(
		newStylesCmd(start),
		newCatCmd(start),
		newWatchCmd(start),
		newViewCmd(start),
	)
	return cmd
}

type startFunc func(cmd *cobra.Command) (*session, error)

func newSession(v *viper.Viper, opts *rootOptions, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger(logOut)

	reg := highlight.DefaultRegistry(
		highlight.WithMatchTimeout(cfg.MatchTimeout),
		highlight.WithRegistryLogger(logger),
	)
	if len(cfg.StyleFiles) > 0 {
		styles, err := loader.New().LoadAll(cfg.StyleFiles)
		if err != nil {
			return nil, fmt.Errorf("loading styles: %w", err)
		}
		for _, raw := range styles {
			reg.Register(raw)
			logger.Debug("registered style %q", raw.Name)
		}
	}

	engine, err := highlight.NewEngine(reg,
		highlight.WithStyle(cfg.Style),
		highlight.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("selecting style: %w", err)
	}

	return &session{cfg: cfg, logger: logger, engine: engine}, nil
}
