package indicators

const (
	ShortPeriod = 3
	LongPeriod  = 7
)

// Trend pairs a short and a long EMA, each seeded independently over its own
// tail of the history.
type Trend struct {
	Short float64
	Long  float64
}

// TrendOf computes the 3/7 trend over the tail of history.
func TrendOf[T Number](history []T) Trend {
	return TrendWith(history, ShortPeriod, LongPeriod)
}

// TrendWith computes the trend with custom windows.
func TrendWith[T Number](history []T, short, long int) Trend {
	return Trend{
		Short: EMA(tail(history, short), short),
		Long:  EMA(tail(history, long), long),
	}
}

// Up reports whether the short average sits strictly above the long one.
func (t Trend) Up() bool { return t.Short > t.Long }

func tail[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
