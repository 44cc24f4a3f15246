package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/sectorsim/config"
	"github.com/rustyeddy/sectorsim/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrade(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		sector  string
		qty     int
		wantErr bool
	}{
		{"single word default qty", []string{"Tech"}, "Tech", 1, false},
		{"multi word with qty", []string{"Real", "Estate", "3"}, "Real Estate", 3, false},
		{"multi word no qty", []string{"Real", "Estate"}, "Real Estate", 1, false},
		{"no args", nil, "", 0, true},
		{"qty only", []string{"4"}, "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sector, qty, err := parseTrade(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sector, sector)
			assert.Equal(t, tt.qty, qty)
		})
	}
}

func testGame(t *testing.T) *game.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 11
	g, err := newGame(cfg)
	require.NoError(t, err)
	return g
}

func TestExecLine(t *testing.T) {
	g := testGame(t)
	ctx := context.Background()
	var out bytes.Buffer

	sector := g.Snapshot().Sectors[0].Name

	require.NoError(t, execLine(ctx, g, "next 2", &out))
	assert.Equal(t, 2, g.Turn())
	assert.Contains(t, out.String(), "Turn 2: ")
	assert.Contains(t, out.String(), "Net worth: $1000.00")

	out.Reset()
	require.NoError(t, execLine(ctx, g, "buy "+strings.ToLower(sector)+" 2", &out))
	assert.Contains(t, out.String(), "BUY 2 "+sector)
	assert.Equal(t, 2, g.Portfolio().Shares(sector))

	out.Reset()
	require.NoError(t, execLine(ctx, g, "sell "+sector, &out))
	assert.Equal(t, 1, g.Portfolio().Shares(sector))

	out.Reset()
	require.NoError(t, execLine(ctx, g, "log 1", &out))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))

	out.Reset()
	require.NoError(t, execLine(ctx, g, "status", &out))
	assert.Contains(t, out.String(), "SECTOR")
	assert.Contains(t, out.String(), sector)

	assert.ErrorIs(t, execLine(ctx, g, "buy Atlantis", &out), game.ErrUnknownSector)
	assert.ErrorContains(t, execLine(ctx, g, "next zero", &out), "not a positive number")
	assert.ErrorContains(t, execLine(ctx, g, "dance", &out), "unknown command")
	assert.ErrorIs(t, execLine(ctx, g, "quit", &out), errQuit)
	assert.NoError(t, execLine(ctx, g, "   ", &out))
}

func TestREPL(t *testing.T) {
	g := testGame(t)
	in := strings.NewReader("next\nbogus\nlog\nquit\nnext\n")
	var out bytes.Buffer

	require.NoError(t, repl(context.Background(), g, in, &out))
	assert.Equal(t, 1, g.Turn(), "commands after quit are ignored")
	assert.Contains(t, out.String(), `error: unknown command "bogus"`)
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestConfigRunAndJournalCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "game.yaml")
	dbPath := filepath.Join(dir, "game.db")

	out := execute(t, "config", "init", "-o", cfgPath)
	assert.Contains(t, out, "Created default configuration")

	cfg, err := config.LoadFromFile(cfgPath)
	require.NoError(t, err)
	cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: dbPath}
	require.NoError(t, cfg.SaveToFile(cfgPath))

	out = execute(t, "config", "validate", "-f", cfgPath)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "Journal: sqlite")

	out = execute(t, "run", "-f", cfgPath, "--turns", "3", "--seed", "9", "--log-level", "error")
	assert.Contains(t, out, "Turn 3: ")
	assert.Contains(t, out, "Recent events:")
	assert.Contains(t, out, "Results saved to: "+dbPath)

	out = execute(t, "journal", "sessions", "--db", dbPath)
	ids := strings.Fields(out)
	require.Len(t, ids, 1)

	out = execute(t, "journal", "turns", "--db", dbPath, "--session", ids[0])
	assert.Contains(t, out, "** Turn 3: ")

	out = execute(t, "journal", "trades", "--db", dbPath, "--session", ids[0])
	assert.NotContains(t, out, ":PROPERTIES:")
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, "sectorsim version "+version)
}

func TestRunWithStrategy(t *testing.T) {
	out := execute(t, "run", "-f", "", "--turns", "15", "--seed", "4", "--strategy", "dip", "--lot", "2", "--log-level", "error")
	assert.Contains(t, out, "Turn 15: ")
	assert.Contains(t, out, "Net worth: $")

	rootCmd.SetArgs([]string{"run", "-f", "", "--strategy", "martingale"})
	assert.ErrorContains(t, rootCmd.Execute(), "unknown strategy")
	runStrategy = ""
}
