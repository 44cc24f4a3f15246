// Package market holds the value types shared by the simulation: sectors,
// volatility classes, quotes, their bounded history and scripted events.
package market

import (
	"fmt"
	"sort"
)

// VolatilityClass buckets how far a sector's quote can swing in one turn.
type VolatilityClass string

const (
	Low    VolatilityClass = "low"
	Medium VolatilityClass = "medium"
	High   VolatilityClass = "high"
)

func (v VolatilityClass) Valid() bool {
	switch v {
	case Low, Medium, High:
		return true
	}
	return false
}

// Range is an inclusive percentage band, e.g. {5, 15} for 5%..15%.
type Range struct {
	Min float64
	Max float64
}

// VolatilityProfile maps each class to its fluctuation band.
type VolatilityProfile map[VolatilityClass]Range

// DefaultVolatility returns the stock low/medium/high bands.
func DefaultVolatility() VolatilityProfile {
	return VolatilityProfile{
		Low:    {Min: 2, Max: 5},
		Medium: {Min: 5, Max: 15},
		High:   {Min: 10, Max: 25},
	}
}

// Validate checks every class is present with a sane band.
func (p VolatilityProfile) Validate() error {
	for c := range p {
		if !c.Valid() {
			return fmt.Errorf("unknown volatility class %q", c)
		}
	}
	for _, c := range []VolatilityClass{Low, Medium, High} {
		r, ok := p[c]
		if !ok {
			return fmt.Errorf("volatility class %q has no range", c)
		}
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("volatility class %q: invalid range [%g, %g]", c, r.Min, r.Max)
		}
	}
	return nil
}

// Momentum is the display label derived from the short/long trend comparison.
type Momentum string

const (
	Bullish Momentum = "Bullish"
	Bearish Momentum = "Bearish"
)

// Listing is a catalog entry a session samples its sectors from.
type Listing struct {
	Name       string
	Volatility VolatilityClass
}

// Sector is one live market in a session.
type Sector struct {
	Name       string
	Volatility VolatilityClass
	Price      Price

	ShortEMA float64
	LongEMA  float64
	Momentum Momentum

	// Influence is the cross-sector score computed for the turn.
	Influence float64
}

// EMAText returns the trend values formatted for display.
func (s Sector) EMAText() (short, long string) {
	return fmt.Sprintf("%.2f", s.ShortEMA), fmt.Sprintf("%.2f", s.LongEMA)
}

// PriceIndex maps sector names to their quotes.
func PriceIndex(sectors []Sector) map[string]Price {
	idx := make(map[string]Price, len(sectors))
	for _, s := range sectors {
		idx[s.Name] = s.Price
	}
	return idx
}

// Names returns the sector names in roster order.
func Names(sectors []Sector) []string {
	out := make([]string, len(sectors))
	for i, s := range sectors {
		out[i] = s.Name
	}
	return out
}

// ValidateCatalog rejects empty catalogs, blank or duplicate names and
// unknown volatility classes.
func ValidateCatalog(catalog []Listing) error {
	if len(catalog) == 0 {
		return fmt.Errorf("sector catalog is empty")
	}
	seen := make(map[string]struct{}, len(catalog))
	for _, l := range catalog {
		if l.Name == "" {
			return fmt.Errorf("sector catalog has an entry with no name")
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("duplicate sector %q", l.Name)
		}
		seen[l.Name] = struct{}{}
		if !l.Volatility.Valid() {
			return fmt.Errorf("sector %q: unknown volatility class %q", l.Name, l.Volatility)
		}
	}
	return nil
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
