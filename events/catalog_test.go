package events

import (
	"math/rand"
	"testing"

	"github.com/rustyeddy/sectorsim/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed draws and fails the test when it runs dry.
type scripted struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "unexpected Float64 draw")
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected Intn draw")
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.Less(s.t, v, n)
	return v
}

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	c, err := NewCatalog(
		[]market.Event{
			{Name: "Crash", Affects: []string{"Tech", "Finance"}, Impact: -0.5},
			{Name: "Drought", Affects: []string{"Agro"}, Impact: -0.2},
		},
		[]market.Event{
			{Name: "Boom", Affects: []string{"Tech"}, Impact: 0.1},
			{Name: "Merger", Affects: []string{"Finance", "Media"}, Impact: 0.05},
		},
	)
	require.NoError(t, err)
	return c
}

func TestSelect(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name     string
		floats   []float64
		ints     []int
		wantKind market.EventKind
		wantName string
	}{
		{"news below threshold", []float64{0.39}, []int{1}, market.News, "Merger"},
		{"news threshold is exclusive", []float64{0.4, 0.9}, nil, market.NoEvent, ""},
		{"crisis on second draw", []float64{0.5, 0.1}, []int{0}, market.Crisis, "Crash"},
		{"crisis threshold is exclusive", []float64{0.5, 0.25}, nil, market.NoEvent, ""},
		{"quiet turn", []float64{0.99, 0.99}, nil, market.NoEvent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scripted{t: t, floats: tt.floats, ints: tt.ints}
			sel := c.Select(r)
			assert.Equal(t, tt.wantKind, sel.Kind)
			assert.Equal(t, tt.wantName, sel.Event.Name)
			assert.Empty(t, r.floats, "all float draws consumed")
			assert.Empty(t, r.ints, "all int draws consumed")
		})
	}
}

func TestSelectFrequencies(t *testing.T) {
	c := testCatalog(t)
	r := rand.New(rand.NewSource(42))

	const n = 20000
	counts := map[market.EventKind]int{}
	for i := 0; i < n; i++ {
		counts[c.Select(r).Kind]++
	}

	assert.InDelta(t, 0.40, float64(counts[market.News])/n, 0.02)
	assert.InDelta(t, 0.15, float64(counts[market.Crisis])/n, 0.02)
	assert.InDelta(t, 0.45, float64(counts[market.NoEvent])/n, 0.02)
}

func TestSelectionImpact(t *testing.T) {
	sel := Selection{Kind: market.Crisis, Event: market.Event{Name: "Crash", Affects: []string{"Tech"}, Impact: -0.5}}

	assert.True(t, sel.Active())
	assert.Equal(t, -0.5, sel.Impact("Tech"))
	assert.Equal(t, 0.0, sel.Impact("Agro"))
	assert.Equal(t, 0.0, Selection{}.Impact("Tech"))
}

func TestSelectionString(t *testing.T) {
	crisis := Selection{Kind: market.Crisis, Event: market.Event{Name: "Global Pandemic", Affects: []string{"Tourism", "Aero"}, Impact: -0.3}}
	news := Selection{Kind: market.News, Event: market.Event{Name: "AI Breakthrough", Affects: []string{"Tech"}, Impact: 0.15}}

	assert.Equal(t, "Crisis: Global Pandemic affects Tourism, Aero (-30%)", crisis.String())
	assert.Equal(t, "News: AI Breakthrough impacts Tech (15%)", news.String())
	assert.Equal(t, "General market fluctuation", Selection{}.String())
}

func TestNewCatalogRejectsEmptyPools(t *testing.T) {
	_, err := NewCatalog(nil, DefaultNews())
	assert.ErrorContains(t, err, "crisis catalog is empty")

	_, err = NewCatalog(DefaultCrises(), nil)
	assert.ErrorContains(t, err, "news catalog is empty")

	_, err = NewCatalog([]market.Event{{Name: "x"}}, DefaultNews())
	assert.ErrorContains(t, err, "affects no sectors")
}

func TestCatalogCopiesPools(t *testing.T) {
	crises := DefaultCrises()
	c, err := NewCatalog(crises, DefaultNews())
	require.NoError(t, err)

	crises[0].Affects[0] = "Mutated"
	assert.NotEqual(t, "Mutated", c.Crises()[0].Affects[0])
}

func TestZeroCatalogSelectsNothing(t *testing.T) {
	r := &scripted{t: t, floats: []float64{0.1}}
	assert.False(t, Catalog{}.Select(r).Active())
}

func TestDefaultCatalogReferencesKnownSectors(t *testing.T) {
	known := map[string]bool{}
	for _, l := range market.DefaultCatalog() {
		known[l.Name] = true
	}
	c := Default()
	for _, e := range append(c.Crises(), c.News()...) {
		for _, s := range e.Affects {
			assert.True(t, known[s], "event %q lists unknown sector %q", e.Name, s)
		}
	}
}
