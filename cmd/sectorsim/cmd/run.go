package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/rustyeddy/sectorsim/game"
	"github.com/rustyeddy/sectorsim/scheduler"
	"github.com/rustyeddy/sectorsim/sim"
	"github.com/rustyeddy/sectorsim/strategies"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an unattended session",
	Long: `Advance a session for a number of turns without player input, then print
the final market board and event log.

With --schedule (or autoplay.schedule in the config) turns are played on a
cron schedule instead of back to back. Interrupt to stop early.

With --strategy an autopilot trades after every turn:
  noop       never trades
  ema-cross  buys on a 3/7 turn EMA upward cross, sells on the downward cross
  dip        buys sectors hit by a crisis, sells them on good news

Examples:
  sectorsim run --turns 20 --seed 7
  sectorsim run -f game.yaml --schedule "@every 2s" --turns 10
  sectorsim run --turns 50 --strategy ema-cross --lot 2`,
	RunE: runRun,
}

const defaultRunTurns = 10

var (
	runConfigPath string
	runTurns      int
	runSeed       int64
	runSchedule   string
	runStrategy   string
	runLot        int
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "file", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().IntVarP(&runTurns, "turns", "n", 0, "turns to play (default autoplay.turns or 10)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 = config or time based)")
	runCmd.Flags().StringVar(&runSchedule, "schedule", "", `cron schedule, e.g. "@every 1s"`)
	runCmd.Flags().StringVar(&runStrategy, "strategy", "", "autopilot strategy: noop, ema-cross or dip (default autoplay.strategy)")
	runCmd.Flags().IntVar(&runLot, "lot", 0, "shares bought per strategy entry (default autoplay.lot or 1)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigPath, runSeed)
	if err != nil {
		return err
	}
	turns := runTurns
	if turns <= 0 {
		turns = cfg.Autoplay.Turns
	}
	if turns <= 0 {
		turns = defaultRunTurns
	}
	schedule := runSchedule
	if schedule == "" {
		schedule = cfg.Autoplay.Schedule
	}

	name, lot := cfg.Autoplay.Strategy, cfg.Autoplay.Lot
	if runStrategy != "" {
		name = runStrategy
	}
	if runLot > 0 {
		lot = runLot
	}
	strat, err := strategies.StrategyByName(name, lot)
	if err != nil {
		return err
	}

	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s: %d turns\n", g.ID(), turns)

	after := func(r sim.Report) error {
		fmt.Fprintf(out, "Turn %d: %s\n", r.Turn, r.Entry)
		return strat.OnTurn(ctx, g, r)
	}
	if schedule == "" {
		err = playTurns(ctx, g, turns, after)
	} else {
		err = playScheduled(ctx, g, schedule, turns, after)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	printBoard(out, g)
	fmt.Fprintln(out, "\nRecent events:")
	printLog(out, g, game.DefaultLogView)

	switch cfg.Journal.Type {
	case "csv":
		fmt.Fprintf(out, "\nResults saved to:\n  - %s\n  - %s\n", cfg.Journal.TurnsFile, cfg.Journal.TradesFile)
	case "sqlite":
		fmt.Fprintf(out, "\nResults saved to: %s (session %s)\n", cfg.Journal.DBPath, g.ID())
	}
	return nil
}

func playTurns(ctx context.Context, g *game.Game, turns int, after func(sim.Report) error) error {
	for i := 0; i < turns; i++ {
		rep, err := g.NextTurn(ctx)
		if err != nil {
			return err
		}
		if err := after(rep); err != nil {
			return fmt.Errorf("turn %d: %w", rep.Turn, err)
		}
	}
	return nil
}

// playScheduled hands turns to the cron scheduler. Strategy errors are
// logged and play continues.
func playScheduled(ctx context.Context, g *game.Game, spec string, turns int, after func(sim.Report) error) error {
	a, err := scheduler.New(g, spec, turns, nil)
	if err != nil {
		return err
	}
	a.OnTurn = func(r sim.Report) {
		if err := after(r); err != nil {
			slog.Error("strategy", "turn", r.Turn, "err", err)
		}
	}
	a.Start(ctx)
	<-a.Done()
	a.Stop()

	if err := a.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
