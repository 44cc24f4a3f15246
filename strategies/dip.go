package strategies

import (
	"context"

	"github.com/rustyeddy/sectorsim/market"
	"github.com/rustyeddy/sectorsim/sim"
)

// DipBuyer buys sectors a crisis just knocked down and sells whatever it
// holds in sectors that good news lifts.
type DipBuyer struct {
	Lot int
}

func (d *DipBuyer) OnTurn(ctx context.Context, t Trader, rep sim.Report) error {
	if !rep.Selection.Active() {
		return nil
	}
	for _, name := range rep.Hit {
		var err error
		switch {
		case rep.Selection.Kind == market.Crisis && rep.Selection.Event.Impact < 0:
			err = buy(ctx, t, name, d.Lot)
		case rep.Selection.Kind == market.News && rep.Selection.Event.Impact > 0:
			err = sellAll(ctx, t, name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
