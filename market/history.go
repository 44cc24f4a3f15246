package market

// DefaultHistoryLen is the number of quotes kept per sector.
const DefaultHistoryLen = 10

// History is a bounded, oldest-first record of a sector's quotes.
type History []Price

// Push returns a new history with p appended, keeping at most limit entries.
// The receiver is never modified.
func (h History) Push(p Price, limit int) History {
	if limit <= 0 {
		limit = DefaultHistoryLen
	}
	keep := h
	if len(keep) > limit-1 {
		keep = keep[len(keep)-(limit-1):]
	}
	out := make(History, 0, len(keep)+1)
	out = append(out, keep...)
	return append(out, p)
}

// Tail returns the most recent n entries (all of them if there are fewer).
func (h History) Tail(n int) History {
	if n <= 0 {
		return nil
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// Last returns the newest quote, or 0 for an empty history.
func (h History) Last() Price {
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1]
}

// Change is the difference between the two newest quotes.
func (h History) Change() Price {
	if len(h) < 2 {
		return 0
	}
	return h[len(h)-1] - h[len(h)-2]
}

func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	copy(out, h)
	return out
}
