package influence

// Default returns the stock relations between the catalog sectors.
func Default() Graph {
	return Graph{
		"Tech":         {"Telecom": 1, "Crypto": 1, "Energy": -1},
		"Crypto":       {"Tech": 1, "Finance": -1},
		"Pharma":       {"Bio": 1, "Healthcare": 1},
		"Bio":          {"Pharma": 1, "Healthcare": 1},
		"Healthcare":   {"Pharma": 1, "Insurance": -1},
		"Energy":       {"Auto": 1, "Logistics": 1},
		"Auto":         {"Energy": -1, "Finance": 1},
		"Aero":         {"Energy": -1, "Tourism": 1, "Defense": 1},
		"Tourism":      {"Aero": 1, "Luxury": 1, "Energy": -1},
		"Logistics":    {"Energy": -1, "Retail": 1},
		"Retail":       {"Logistics": 1, "Food": -1},
		"Food":         {"Agro": -1, "Retail": 1},
		"Agro":         {"Food": 1, "Energy": -1},
		"Finance":      {"Real Estate": 1, "Insurance": 1, "Crypto": -1},
		"Real Estate":  {"Finance": 1, "Construction": 1},
		"Construction": {"Real Estate": 1, "Energy": -1},
		"Insurance":    {"Finance": 1, "Real Estate": 1},
		"Luxury":       {"Finance": 1, "Tourism": 1},
		"Media":        {"Tech": 1, "Telecom": 1},
		"Telecom":      {"Tech": 1, "Media": 1},
		"Defense":      {"Aero": 1, "Tech": 1},
	}
}
