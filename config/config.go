package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"github.com/rustyeddy/sectorsim/events"
	"github.com/rustyeddy/sectorsim/influence"
	"github.com/rustyeddy/sectorsim/journal"
	"github.com/rustyeddy/sectorsim/market"
	"github.com/rustyeddy/sectorsim/sim"
	"github.com/rustyeddy/sectorsim/strategies"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the complete game configuration
type Config struct {
	Game       GameConfig                    `json:"game" yaml:"game"`
	Volatility map[string][]float64          `json:"volatility" yaml:"volatility"`
	Sectors    []SectorConfig                `json:"sectors" yaml:"sectors"`
	Influence  map[string]map[string]float64 `json:"influence,omitempty" yaml:"influence,omitempty"`
	Crises     []EventConfig                 `json:"crises" yaml:"crises"`
	News       []EventConfig                 `json:"news" yaml:"news"`
	Journal    JournalConfig                 `json:"journal" yaml:"journal"`
	Autoplay   AutoplayConfig                `json:"autoplay" yaml:"autoplay"`
}

// GameConfig contains session parameters
type GameConfig struct {
	SampleSize     int     `json:"sample_size" yaml:"sample_size"`
	StartingCash   float64 `json:"starting_cash" yaml:"starting_cash"`
	HistoryLen     int     `json:"history_len" yaml:"history_len"`
	Seed           int64   `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 = time based
	ApplyInfluence bool    `json:"apply_influence" yaml:"apply_influence"`
}

type SectorConfig struct {
	Name       string `json:"name" yaml:"name"`
	Volatility string `json:"volatility" yaml:"volatility"` // low, medium or high
}

type EventConfig struct {
	Name    string   `json:"name" yaml:"name"`
	Affects []string `json:"affects" yaml:"affects"`
	Impact  float64  `json:"impact" yaml:"impact"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TurnsFile  string `json:"turns_file,omitempty" yaml:"turns_file,omitempty"`
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// AutoplayConfig drives unattended runs
type AutoplayConfig struct {
	Schedule string `json:"schedule,omitempty" yaml:"schedule,omitempty"` // cron spec, e.g. "@every 2s"
	Turns    int    `json:"turns,omitempty" yaml:"turns,omitempty"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"` // noop, ema-cross or dip
	Lot      int    `json:"lot,omitempty" yaml:"lot,omitempty"`           // shares per entry
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML or JSON based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid. Failures wrap sim.ErrConfig.
func (c *Config) Validate() error {
	if c.Game.StartingCash <= 0 {
		return fmt.Errorf("%w: game.starting_cash must be positive", sim.ErrConfig)
	}
	if c.Game.HistoryLen < 0 {
		return fmt.Errorf("%w: game.history_len must not be negative", sim.ErrConfig)
	}

	sc, err := c.sim()
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TurnsFile == "" || c.Journal.TradesFile == "" {
			return fmt.Errorf("%w: journal turns_file and trades_file required for CSV type", sim.ErrConfig)
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("%w: journal db_path required for SQLite type", sim.ErrConfig)
		}
	default:
		return fmt.Errorf("%w: journal.type must be 'none', 'csv' or 'sqlite'", sim.ErrConfig)
	}

	if c.Autoplay.Schedule != "" {
		if _, err := cron.ParseStandard(c.Autoplay.Schedule); err != nil {
			return fmt.Errorf("%w: autoplay.schedule: %v", sim.ErrConfig, err)
		}
	}
	if c.Autoplay.Turns < 0 {
		return fmt.Errorf("%w: autoplay.turns must not be negative", sim.ErrConfig)
	}
	if _, err := strategies.StrategyByName(c.Autoplay.Strategy, c.Autoplay.Lot); err != nil {
		return fmt.Errorf("%w: autoplay.strategy: %v", sim.ErrConfig, err)
	}
	return nil
}

// sim converts the file layout into engine types. Only shape errors are
// reported here; sim.Config.Validate owns the rest.
func (c *Config) sim() (sim.Config, error) {
	vol := market.VolatilityProfile{}
	for class, band := range c.Volatility {
		if len(band) != 2 {
			return sim.Config{}, fmt.Errorf("%w: volatility.%s must be [min, max]", sim.ErrConfig, class)
		}
		vol[market.VolatilityClass(class)] = market.Range{Min: band[0], Max: band[1]}
	}

	catalog := make([]market.Listing, 0, len(c.Sectors))
	for _, s := range c.Sectors {
		catalog = append(catalog, market.Listing{Name: s.Name, Volatility: market.VolatilityClass(s.Volatility)})
	}

	ev, err := events.NewCatalog(toEvents(c.Crises), toEvents(c.News))
	if err != nil {
		return sim.Config{}, fmt.Errorf("%w: %v", sim.ErrConfig, err)
	}

	return sim.Config{
		Catalog:        catalog,
		SampleSize:     c.Game.SampleSize,
		Volatility:     vol,
		Influence:      influence.Graph(c.Influence),
		Events:         ev,
		HistoryLen:     c.Game.HistoryLen,
		ApplyInfluence: c.Game.ApplyInfluence,
	}, nil
}

// Engine builds a validated simulation engine from the configuration.
func (c *Config) Engine(logger *slog.Logger) (*sim.Engine, error) {
	sc, err := c.sim()
	if err != nil {
		return nil, err
	}
	sc.Logger = logger
	return sim.New(sc)
}

// Rand returns the session's random source, seeded from game.seed.
func (c *Config) Rand() sim.Rand { return sim.NewRand(c.Game.Seed) }

func (c *Config) StartingCash() decimal.Decimal {
	return decimal.NewFromFloat(c.Game.StartingCash)
}

// OpenJournal opens the configured journal. Type "none" or empty discards.
func (c *Config) OpenJournal() (journal.Journal, error) {
	switch c.Journal.Type {
	case "csv":
		return journal.NewCSV(c.Journal.TurnsFile, c.Journal.TradesFile)
	case "sqlite":
		return journal.NewSQLite(c.Journal.DBPath)
	case "", "none":
		return journal.Nop{}, nil
	}
	return nil, fmt.Errorf("unknown journal type %q", c.Journal.Type)
}

// Default returns a configuration with the built-in catalogs
func Default() *Config {
	cfg := &Config{
		Game: GameConfig{
			SampleSize:   market.DefaultSampleSize,
			StartingCash: 1000,
			HistoryLen:   market.DefaultHistoryLen,
		},
		Volatility: map[string][]float64{},
		Influence:  influence.Default(),
		Journal:    JournalConfig{Type: "none"},
	}
	for class, r := range market.DefaultVolatility() {
		cfg.Volatility[string(class)] = []float64{r.Min, r.Max}
	}
	for _, l := range market.DefaultCatalog() {
		cfg.Sectors = append(cfg.Sectors, SectorConfig{Name: l.Name, Volatility: string(l.Volatility)})
	}
	ev := events.Default()
	cfg.Crises = fromEvents(ev.Crises())
	cfg.News = fromEvents(ev.News())
	return cfg
}

func toEvents(in []EventConfig) []market.Event {
	out := make([]market.Event, 0, len(in))
	for _, e := range in {
		out = append(out, market.Event{Name: e.Name, Affects: e.Affects, Impact: e.Impact})
	}
	return out
}

func fromEvents(in []market.Event) []EventConfig {
	out := make([]EventConfig, 0, len(in))
	for _, e := range in {
		out = append(out, EventConfig{Name: e.Name, Affects: e.Affects, Impact: e.Impact})
	}
	return out
}
