package market

import "math"

// Price is a whole-unit sector quote.
type Price = int

const (
	// BaselinePrice is the starting quote for every sector.
	BaselinePrice Price = 100

	// PriceFloor is the lowest quote a sector can fall to.
	PriceFloor Price = 5
)

// ClampPrice rounds x to the nearest whole unit (halves round up) and
// applies the price floor.
func ClampPrice(x float64) Price {
	p := Price(math.Floor(x + 0.5))
	if p < PriceFloor {
		return PriceFloor
	}
	return p
}

// Arrow renders a quote change for display.
func Arrow(change Price) string {
	switch {
	case change > 0:
		return "▲"
	case change < 0:
		return "▼"
	}
	return "="
}
