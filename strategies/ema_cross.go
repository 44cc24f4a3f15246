package strategies

import (
	"context"
	"encoding/json"

	"github.com/rustyeddy/sectorsim/indicators"
	"github.com/rustyeddy/sectorsim/sim"
)

// EMACross trades every sector on a fast/slow EMA crossover.
// - Enters only on an upward cross, buying Lot shares
// - Exits the whole holding on a downward cross
// - Averages are fed one quote per turn, so they warm up over SlowPeriod turns
type EMACross struct {
	*EMACrossConfig

	sectors map[string]*crossState
}

type EMACrossConfig struct {
	FastPeriod int `json:"fast-period"` // 3
	SlowPeriod int `json:"slow-period"` // 7
	Lot        int `json:"lot"`
}

type crossState struct {
	fast *indicators.ExponentialMA
	slow *indicators.ExponentialMA

	lastDiff     float64
	haveLastDiff bool
}

func (e *EMACrossConfig) JSON() ([]byte, error) {
	return json.Marshal(e)
}

func EMACrossConfigDefaults(lot int) *EMACrossConfig {
	return &EMACrossConfig{
		FastPeriod: indicators.ShortPeriod,
		SlowPeriod: indicators.LongPeriod,
		Lot:        lot,
	}
}

func NewEMACross(cfg *EMACrossConfig) *EMACross {
	if cfg.Lot < 1 {
		cfg.Lot = 1
	}
	return &EMACross{
		EMACrossConfig: cfg,
		sectors:        make(map[string]*crossState),
	}
}

func (s *EMACross) OnTurn(ctx context.Context, t Trader, rep sim.Report) error {
	for _, sec := range t.Snapshot().Sectors {
		st, ok := s.sectors[sec.Name]
		if !ok {
			st = &crossState{
				fast: indicators.NewEMA(s.FastPeriod),
				slow: indicators.NewEMA(s.SlowPeriod),
			}
			s.sectors[sec.Name] = st
		}

		st.fast.Update(float64(sec.Price))
		st.slow.Update(float64(sec.Price))
		if !st.fast.Ready() || !st.slow.Ready() {
			continue
		}

		diff := st.fast.Float64() - st.slow.Float64()
		if !st.haveLastDiff {
			st.lastDiff = diff
			st.haveLastDiff = true
			continue
		}

		crossedUp := st.lastDiff <= 0 && diff > 0
		crossedDown := st.lastDiff >= 0 && diff < 0
		st.lastDiff = diff

		var err error
		switch {
		case crossedUp:
			err = buy(ctx, t, sec.Name, s.Lot)
		case crossedDown:
			err = sellAll(ctx, t, sec.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
