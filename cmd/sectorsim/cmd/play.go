package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rustyeddy/sectorsim/game"
	"github.com/rustyeddy/sectorsim/market"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive session",
	Long: `Start a session and read commands from standard input.

Commands:
  next [n]              advance one or n turns
  buy <sector> [qty]    buy shares at the current quote
  sell <sector> [qty]   sell shares at the current quote
  status                show the market board and your account
  log [n]               show the n most recent events (default 5)
  help                  list commands
  quit                  end the session

Example:
  sectorsim play -f game.yaml --seed 42`,
	RunE: runPlay,
}

var (
	playConfigPath string
	playSeed       int64
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playConfigPath, "file", "f", "", "path to config file (default built-in)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = config or time based)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(playConfigPath, playSeed)
	if err != nil {
		return err
	}
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s\n\n", g.ID())
	printBoard(out, g)
	fmt.Fprintln(out, "\nType 'help' for commands.")

	return repl(cmd.Context(), g, cmd.InOrStdin(), out)
}

var errQuit = errors.New("quit")

func repl(ctx context.Context, g *game.Game, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		err := execLine(ctx, g, sc.Text(), out)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// execLine runs one REPL command against g.
func execLine(ctx context.Context, g *game.Game, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "next", "n":
		turns := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("next: %q is not a positive number", args[0])
			}
			turns = n
		}
		for i := 0; i < turns; i++ {
			rep, err := g.NextTurn(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Turn %d: %s\n", rep.Turn, rep.Entry)
		}
		fmt.Fprintln(out)
		printBoard(out, g)
	case "buy", "sell":
		name, qty, err := parseTrade(args)
		if err != nil {
			return fmt.Errorf("%s: %w", verb, err)
		}
		sector, ok := resolveSector(g, name)
		if !ok {
			return fmt.Errorf("%w: %q", game.ErrUnknownSector, name)
		}
		trade := g.Buy
		if verb == "sell" {
			trade = g.Sell
		}
		rec, err := trade(ctx, sector, qty)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %d %s @ %d, cash $%s\n", rec.Side, rec.Quantity, rec.Sector, rec.Price, rec.CashAfter.StringFixed(2))
	case "status", "s":
		printBoard(out, g)
	case "log", "l":
		n := game.DefaultLogView
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("log: %q is not a number", args[0])
			}
			n = v
		}
		printLog(out, g, n)
	case "help", "h", "?":
		fmt.Fprintln(out, "next [n] | buy <sector> [qty] | sell <sector> [qty] | status | log [n] | help | quit")
	case "quit", "q", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try 'help')", verb)
	}
	return nil
}

// parseTrade splits "Real Estate 3" into a sector name and a quantity. A
// missing quantity means one share.
func parseTrade(args []string) (string, int, error) {
	if len(args) == 0 {
		return "", 0, errors.New("missing sector")
	}
	qty := 1
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil {
		if len(args) == 1 {
			return "", 0, errors.New("missing sector")
		}
		qty = n
		args = args[:len(args)-1]
	}
	return strings.Join(args, " "), qty, nil
}

// resolveSector matches name against the roster ignoring case.
func resolveSector(g *game.Game, name string) (string, bool) {
	for _, s := range market.Names(g.Snapshot().Sectors) {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}
