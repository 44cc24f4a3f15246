// Package indicators provides the trend signals the simulation reads from a
// sector's price history.
package indicators

import "fmt"

// Number is any quote type an average can be taken over.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// ExponentialMA is a streaming exponential moving average seeded with the
// first value it sees.
type ExponentialMA struct {
	n     int
	alpha float64

	seen  int
	value float64

	name string
}

func NewEMA(period int) *ExponentialMA {
	if period <= 0 {
		panic("EMA period must be > 0")
	}
	return &ExponentialMA{
		n:     period,
		alpha: 2.0 / float64(period+1),
		name:  fmt.Sprintf("EMA(%d)", period),
	}
}

func (e *ExponentialMA) Name() string     { return e.name }
func (e *ExponentialMA) Warmup() int      { return e.n }
func (e *ExponentialMA) Ready() bool      { return e.seen >= e.n }
func (e *ExponentialMA) Float64() float64 { return e.value }

func (e *ExponentialMA) Reset() {
	e.seen = 0
	e.value = 0
}

// Update folds x into the average: value = x*k + value*(1-k).
func (e *ExponentialMA) Update(x float64) {
	e.seen++
	if e.seen == 1 {
		e.value = x
		return
	}
	e.value = e.alpha*x + (1.0-e.alpha)*e.value
}

// EMA returns the exponential moving average of prices for period.
//
// With fewer than period values it degrades to the last value, or 0 for an
// empty slice. Otherwise the average is seeded with prices[0] and folded over
// the rest of the slice.
func EMA[T Number](prices []T, period int) float64 {
	if len(prices) < period || period <= 0 {
		if len(prices) == 0 {
			return 0
		}
		return float64(prices[len(prices)-1])
	}

	e := NewEMA(period)
	for _, p := range prices {
		e.Update(float64(p))
	}
	return e.Float64()
}
