package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rustyeddy/sectorsim/config"
	"github.com/rustyeddy/sectorsim/game"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sectorsim",
	Short: "A turn-based sector market game",
	Long: `Sectorsim is a turn-based stock market game played over industry sectors.

Each turn the market may be hit by a crisis or a piece of news, every sector's
quote moves within its volatility band, and short and long moving averages
call the trend. You start with cash and buy or sell sector shares between turns.

It provides tools for:
  - Playing interactively in the terminal
  - Running unattended sessions, optionally on a cron schedule
  - Recording turns and trades to CSV or SQLite
  - Querying recorded sessions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return nil
	},
}

var logLevel string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// loadConfig reads path, or returns the built-in configuration when path is
// empty. A non-zero seed overrides the file's.
func loadConfig(path string, seed int64) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	return cfg, nil
}

// newGame builds a session from cfg with its configured journal attached.
func newGame(cfg *config.Config) (*game.Game, error) {
	logger := slog.Default()

	engine, err := cfg.Engine(logger)
	if err != nil {
		return nil, err
	}
	j, err := cfg.OpenJournal()
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}
	return game.New(engine,
		game.WithRand(cfg.Rand()),
		game.WithCash(cfg.StartingCash()),
		game.WithJournal(j),
		game.WithLogger(logger),
	), nil
}
