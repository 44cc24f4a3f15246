package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA_WarmupAndReady(t *testing.T) {
	ema := NewEMA(3)

	require.False(t, ema.Ready())
	require.Equal(t, 3, ema.Warmup())
	require.Equal(t, "EMA(3)", ema.Name())

	ema.Update(1)
	require.False(t, ema.Ready())

	ema.Update(2)
	require.False(t, ema.Ready())

	ema.Update(3)
	require.True(t, ema.Ready())
}

func TestEMA_KnownSequence(t *testing.T) {
	// period = 3
	// alpha = 2/(3+1) = 0.5
	//
	// 1) seed = 10
	// 2) 0.5*11 + 0.5*10 = 10.5
	// 3) 0.5*12 + 0.5*10.5 = 11.25
	// 4) 0.5*13 + 0.5*11.25 = 12.125
	require.InDelta(t, 12.125, EMA([]int{10, 11, 12, 13}, 3), 1e-9)
	require.InDelta(t, 11.25, EMA([]float64{10, 11, 12}, 3), 1e-9)
}

func TestEMA_Reset(t *testing.T) {
	ema := NewEMA(3)

	ema.Update(10)
	ema.Update(11)
	ema.Reset()

	require.False(t, ema.Ready())
	require.Equal(t, 0.0, ema.Float64())

	ema.Update(20)
	require.Equal(t, 20.0, ema.Float64())
}

func TestEMA_ShortInputDegradesToLast(t *testing.T) {
	tests := []struct {
		name   string
		prices []int
		period int
		want   float64
	}{
		{"empty", nil, 3, 0},
		{"single", []int{100}, 3, 100},
		{"two of three", []int{100, 93}, 3, 93},
		{"six of seven", []int{100, 101, 102, 103, 104, 98}, 7, 98},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EMA(tt.prices, tt.period))
		})
	}
}

func TestEMA_ExactPeriod(t *testing.T) {
	// k = 2/8 = 0.25, seeded with 100
	prices := []int{100, 104, 108, 112, 116, 120, 124}
	want := 100.0
	for _, p := range prices[1:] {
		want = float64(p)*0.25 + want*0.75
	}
	assert.InDelta(t, want, EMA(prices, 7), 1e-9)
}

func TestTrendOf(t *testing.T) {
	t.Run("single value is flat", func(t *testing.T) {
		tr := TrendOf([]int{100})
		assert.Equal(t, 100.0, tr.Short)
		assert.Equal(t, 100.0, tr.Long)
		assert.False(t, tr.Up())
	})

	t.Run("uses independent tails", func(t *testing.T) {
		h := []int{90, 95, 100, 105, 110, 115, 120, 125, 130, 135}
		tr := TrendOf(h)
		assert.InDelta(t, EMA(h[7:], 3), tr.Short, 1e-9)
		assert.InDelta(t, EMA(h[3:], 7), tr.Long, 1e-9)
		assert.True(t, tr.Up())
	})

	t.Run("short history falls back to last price for the long window", func(t *testing.T) {
		// short: 3 values -> real EMA; long: fewer than 7 -> last price
		h := []int{100, 120, 80}
		tr := TrendOf(h)
		assert.InDelta(t, 95.0, tr.Short, 1e-9) // 100 -> 110 -> 95
		assert.Equal(t, 80.0, tr.Long)
		assert.True(t, tr.Up())
	})

	t.Run("falling prices trend down", func(t *testing.T) {
		h := []int{140, 135, 130, 125, 120, 115, 110, 105}
		assert.False(t, TrendOf(h).Up())
	})
}
