package events

import "github.com/rustyeddy/sectorsim/market"

// DefaultCrises is the stock pool of systemic shocks.
func DefaultCrises() []market.Event {
	return []market.Event{
		{Name: "Global Pandemic", Affects: []string{"Tourism", "Aero", "Retail", "Luxury"}, Impact: -0.3},
		{Name: "Banking Collapse", Affects: []string{"Finance", "Real Estate", "Insurance"}, Impact: -0.35},
		{Name: "Oil Embargo", Affects: []string{"Energy", "Logistics", "Auto", "Aero"}, Impact: -0.25},
		{Name: "Chip Shortage", Affects: []string{"Tech", "Auto", "Telecom"}, Impact: -0.2},
		{Name: "Exchange Hack", Affects: []string{"Crypto", "Finance"}, Impact: -0.4},
		{Name: "Severe Drought", Affects: []string{"Agro", "Food"}, Impact: -0.25},
		{Name: "Housing Bubble Burst", Affects: []string{"Real Estate", "Construction", "Finance"}, Impact: -0.3},
		{Name: "Network Blackout", Affects: []string{"Telecom", "Media", "Tech"}, Impact: -0.2},
	}
}

// DefaultNews is the stock pool of sector-specific headlines.
func DefaultNews() []market.Event {
	return []market.Event{
		{Name: "AI Breakthrough", Affects: []string{"Tech"}, Impact: 0.15},
		{Name: "Vaccine Approved", Affects: []string{"Pharma", "Bio", "Healthcare"}, Impact: 0.12},
		{Name: "Record Travel Season", Affects: []string{"Tourism", "Aero"}, Impact: 0.1},
		{Name: "Crypto ETF Approved", Affects: []string{"Crypto"}, Impact: 0.2},
		{Name: "Interest Rate Hike", Affects: []string{"Real Estate", "Construction"}, Impact: -0.1},
		{Name: "Defense Budget Increase", Affects: []string{"Defense", "Aero"}, Impact: 0.1},
		{Name: "EV Subsidies", Affects: []string{"Auto", "Energy"}, Impact: 0.08},
		{Name: "Streaming Wars", Affects: []string{"Media", "Telecom"}, Impact: -0.06},
		{Name: "Bumper Harvest", Affects: []string{"Agro", "Food"}, Impact: 0.07},
		{Name: "Holiday Shopping Boom", Affects: []string{"Retail", "Logistics", "Luxury"}, Impact: 0.09},
		{Name: "Drug Price Caps", Affects: []string{"Pharma", "Insurance"}, Impact: -0.08},
	}
}

// Default returns the stock catalog.
func Default() Catalog {
	c, err := NewCatalog(DefaultCrises(), DefaultNews())
	if err != nil {
		panic(err)
	}
	return c
}
