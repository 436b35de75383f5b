package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"workplay/internal/config"
	"workplay/internal/core/timekeeper"
	"workplay/internal/i18n"
	"workplay/internal/platform"
)

const (
	appName  = "workplay"
	appTitle = "Work & Play"
	appID    = "io.workplay.timer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	work       int
	play       int
	mode       string
	tick       time.Duration
	logLevel   string
	logFile    string
	lang       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Work/play interval timer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := openSession(cmd, opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer session.Close()
			return runGUI(cmd.Context(), session)
		},
	}

	opts.bind(root)
	root.AddCommand(newTUICmd(opts))
	return root
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stderr belongs to the terminal program, so logs are dropped
			// unless --log-file is given.
			session, err := openSession(cmd, opts, io.Discard)
			if err != nil {
				return err
			}
			defer session.Close()
			return runTUI(cmd.Context(), session)
		},
	}
}

func (opts *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/workplay/config.yaml)")
	flags.IntVar(&opts.work, "work", 0, "work phase length in minutes")
	flags.IntVar(&opts.play, "play", 0, "play phase length in minutes")
	flags.StringVar(&opts.mode, "mode", "", "runner mode: polling|worker")
	flags.DurationVar(&opts.tick, "tick", 0, "tick interval, e.g. 100ms")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")
	flags.StringVar(&opts.lang, "lang", "", "UI language: en|pt|es|ru (overrides "+i18n.EnvLanguage+")")
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg config.Config, opts *options) config.Config {
	flags := cmd.Flags()
	if flags.Changed("work") {
		cfg.WorkMinutes = opts.work
	}
	if flags.Changed("play") {
		cfg.PlayMinutes = opts.play
	}
	if flags.Changed("mode") {
		cfg.Mode = timekeeper.Mode(opts.mode)
	}
	if flags.Changed("tick") {
		cfg.TickInterval = opts.tick
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("lang") {
		cfg.Language = opts.lang
	}
	return cfg
}

func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath(appName)
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg = applyFlags(cmd, cfg, opts)
	if mode, ok := timekeeper.ParseMode(string(cfg.Mode)); ok {
		cfg.Mode = mode
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// session is everything both front ends share.
type session struct {
	config  config.Config
	logger  hclog.Logger
	guard   *platform.InstanceGuard
	keeper  *timekeeper.TimeKeeper
	logFile *os.File
}

func openSession(cmd *cobra.Command, opts *options, logOutput io.Writer) (*session, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	current := &session{config: cfg}
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		current.logFile = file
		logOutput = file
	}
	current.logger = hclog.New(&hclog.LoggerOptions{
		Name:   appName,
		Level:  cfg.Level(),
		Output: logOutput,
		Color:  hclog.AutoColor,
	})

	i18n.Init(cfg.Language, current.logger.Named("i18n"))

	current.guard, err = platform.AcquireSingleInstance(appName)
	if err != nil {
		current.Close()
		return nil, err
	}

	current.keeper, err = timekeeper.New(cfg.Durations(), cfg.TimeKeeperConfig(), current.logger.Named("timekeeper"))
	if err != nil {
		current.Close()
		return nil, err
	}
	current.logger.Info("timer ready",
		"mode", current.keeper.Mode(),
		"tick", current.keeper.TickInterval(),
		"work_minutes", cfg.WorkMinutes,
		"play_minutes", cfg.PlayMinutes)
	return current, nil
}

func (current *session) Close() {
	if current.keeper != nil {
		current.keeper.Close()
	}
	if err := current.guard.Release(); err != nil {
		current.logger.Warn("release single instance guard", "error", err)
	}
	if current.logFile != nil {
		_ = current.logFile.Close()
	}
}
