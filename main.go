package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/internal/config"
	"snake-classic/internal/logging"
)

type options struct {
	configPath string
	envFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logging.NewLogger(os.Stderr, logging.LevelInfo).Error("snake failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "snake",
		Short:         "Classic snake on a 32x32 wraparound board",
		Long:          "Arrow keys steer, space starts, pauses and resumes. The board wraps at every edge and the snake speeds up with each food eaten.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "Path to a .env file (skipped when missing)")
	config.RegisterFlags(flags)

	return cmd
}

// loadConfig layers explicitly set flags over the config file and environment,
// then validates the merged result.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:     opts.configPath,
		EnvFiles: []string{opts.envFile},
	})
	if err != nil {
		return config.Config{}, err
	}

	if err := config.ApplyFlags(&cfg, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gameOpts := []game.Option{game.WithLogger(logger)}
	if cfg.Seed != 0 {
		gameOpts = append(gameOpts, game.WithSeed(cfg.Seed))
	}
	g := game.NewGame(types.DefaultGrid(), gameOpts...)

	logger.Debug("starting", "backend", cfg.Backend, "scale", cfg.Scale, "fps", cfg.TargetFPS)

	switch cfg.Backend {
	case config.BackendTerminal:
		return runTerminal(ctx, g, cfg, logger)
	case config.BackendWindow:
		return runWindow(ctx, g, cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// newLogger writes to the log file when one is set. Without one the terminal
// backend logs nowhere, since stderr shares the screen.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.LogLevel)

	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		return logging.NewLogger(f, level), func() { _ = f.Close() }, nil
	}

	var w io.Writer = os.Stderr
	if cfg.Backend == config.BackendTerminal {
		w = io.Discard
	}
	return logging.NewLogger(w, level), func() {}, nil
}
