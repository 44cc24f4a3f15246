package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rustyeddy/sectorsim/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query a recorded session",
	Long: `Query turns and trades recorded in a SQLite journal.

Subcommands:
  sessions  - List recorded session IDs
  turns     - Show every turn of a session
  trades    - Show every trade of a session
  prices    - Show one sector's price series

Examples:
  sectorsim journal sessions --db game.db
  sectorsim journal trades --db game.db --session 01J0...
  sectorsim journal prices --db game.db --session 01J0... --sector Tech`,
}

var journalSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded session IDs",
	Args:  cobra.NoArgs,
	RunE:  runJournalSessions,
}

var journalTurnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Show every turn of a session",
	Args:  cobra.NoArgs,
	RunE:  runJournalTurns,
}

var journalTradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Show every trade of a session",
	Args:  cobra.NoArgs,
	RunE:  runJournalTrades,
}

var journalPricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show one sector's price series",
	Args:  cobra.NoArgs,
	RunE:  runJournalPrices,
}

var (
	journalDBPath  string
	journalSession string
	journalSector  string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalSessionsCmd)
	journalCmd.AddCommand(journalTurnsCmd)
	journalCmd.AddCommand(journalTradesCmd)
	journalCmd.AddCommand(journalPricesCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./sectorsim.sqlite", "path to SQLite journal DB")
	for _, c := range []*cobra.Command{journalTurnsCmd, journalTradesCmd, journalPricesCmd} {
		c.Flags().StringVarP(&journalSession, "session", "s", "", "session ID (required)")
		c.MarkFlagRequired("session")
	}
	journalPricesCmd.Flags().StringVar(&journalSector, "sector", "", "sector name (required)")
	journalPricesCmd.MarkFlagRequired("sector")
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalSessions(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	ids, err := j.Sessions()
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func runJournalTurns(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	turns, err := j.ListTurns(journalSession)
	if err != nil {
		return fmt.Errorf("query turns: %w", err)
	}
	for _, t := range turns {
		fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTurnOrg(t))
	}
	return nil
}

func runJournalTrades(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades(journalSession)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradesOrg(recs))
	return nil
}

func runJournalPrices(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	series, err := j.PriceSeries(journalSession, journalSector)
	if err != nil {
		return fmt.Errorf("query prices: %w", err)
	}
	if len(series) == 0 {
		return fmt.Errorf("no prices for %q in session %s", journalSector, journalSession)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TURN\tPRICE")
	for _, p := range series {
		fmt.Fprintf(tw, "%d\t%d\n", p.Turn, p.Price)
	}
	return tw.Flush()
}
