package market

// DefaultSampleSize is how many sectors a session trades.
const DefaultSampleSize = 8

// DefaultCatalog is the stock list of sectors a session samples from.
func DefaultCatalog() []Listing {
	return []Listing{
		{"Tech", High},
		{"Pharma", Medium},
		{"Energy", Medium},
		{"Retail", Low},
		{"Finance", Medium},
		{"Aero", High},
		{"Agro", Low},
		{"Crypto", High},
		{"Luxury", Low},
		{"Auto", Medium},
		{"Media", Medium},
		{"Bio", High},
		{"Real Estate", Medium},
		{"Logistics", Low},
		{"Defense", Medium},
		{"Food", Low},
		{"Telecom", Medium},
		{"Tourism", Medium},
		{"Healthcare", High},
		{"Construction", Medium},
		{"Insurance", Medium},
	}
}
