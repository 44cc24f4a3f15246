package strategies

import (
	"context"

	"github.com/rustyeddy/sectorsim/sim"
)

// NoopStrategy does nothing.
type NoopStrategy struct{}

func (NoopStrategy) OnTurn(ctx context.Context, t Trader, rep sim.Report) error {
	_ = ctx
	_ = t
	_ = rep
	return nil
}
