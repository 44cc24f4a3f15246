package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rustyeddy/sectorsim/events"
	"github.com/rustyeddy/sectorsim/influence"
	"github.com/rustyeddy/sectorsim/market"
)

// ErrConfig marks a configuration the simulation refuses to start with.
var ErrConfig = errors.New("configuration error")

// Rand is the injectable randomness for a session. *math/rand.Rand
// satisfies it.
type Rand interface {
	events.Rand
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source. Seed 0 derives one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Config is everything the engine needs to run a session.
type Config struct {
	Catalog    []market.Listing
	SampleSize int
	Volatility market.VolatilityProfile
	Influence  influence.Graph
	Events     events.Catalog

	// HistoryLen bounds each sector's price history. 0 means
	// market.DefaultHistoryLen.
	HistoryLen int

	// ApplyInfluence adds the influence score to each sector's delta. Off by
	// default: the score is computed and reported but does not move prices.
	ApplyInfluence bool

	Logger *slog.Logger
}

// DefaultConfig returns the stock catalogs and tables.
func DefaultConfig() Config {
	return Config{
		Catalog:    market.DefaultCatalog(),
		SampleSize: market.DefaultSampleSize,
		Volatility: market.DefaultVolatility(),
		Influence:  influence.Default(),
		Events:     events.Default(),
		HistoryLen: market.DefaultHistoryLen,
	}
}

// Validate reports the first problem found, wrapped with ErrConfig.
func (c Config) Validate() error {
	if err := market.ValidateCatalog(c.Catalog); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.SampleSize < 1 || c.SampleSize > len(c.Catalog) {
		return fmt.Errorf("%w: sample size %d must be between 1 and %d", ErrConfig, c.SampleSize, len(c.Catalog))
	}
	if err := c.Volatility.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := c.Influence.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if len(c.Events.Crises()) == 0 || len(c.Events.News()) == 0 {
		return fmt.Errorf("%w: event catalogs must not be empty", ErrConfig)
	}
	if c.HistoryLen < 0 {
		return fmt.Errorf("%w: history length %d is negative", ErrConfig, c.HistoryLen)
	}
	return nil
}
