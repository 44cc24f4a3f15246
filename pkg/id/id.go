// Package id hands out ULIDs for sessions and trades.
//
// ULIDs sort lexicographically by creation time, so journal rows keyed by
// them come back in the order they were written.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces monotonic ULIDs. Safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a generator reading time from now and randomness
// from entropy. IDs made within the same millisecond stay increasing.
func NewGenerator(now func() time.Time, entropy io.Reader) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, entropy: ulid.Monotonic(entropy, 0)}
}

// New returns the next ID as a string.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		// only when the clock goes backwards past the monotonic window or
		// entropy fails
		panic(err)
	}
	return id.String()
}

var std = NewGenerator(time.Now, rand.New(rand.NewSource(seed())))

func seed() int64 {
	var s int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &s)
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return s
}

// New returns a ULID string from the package generator.
func New() string { return std.New() }

// Time extracts the creation time encoded in an ID.
func Time(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
