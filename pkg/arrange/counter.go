package arrange

import (
	"fmt"

	"go.uber.org/zap"
)

// markerStates is the width of the marker dimension. Index 0 is never used;
// markers run from MarkerNone to MarkerMax.
const markerStates = int(MarkerMax) + 1

// cell is one memo entry. ok is false until the value has been computed.
type cell struct {
	value uint32
	ok    bool
}

// Stats reports how the memo table was used.
type Stats struct {
	Hits   int // lookups answered from the table
	Misses int // cells computed and stored
}

// Counter evaluates arrangement counts over a memo table it owns.
// A Counter is not safe for concurrent use.
type Counter struct {
	bound  int
	stride int
	table  []cell
	stats  Stats
	logger *zap.Logger
}

// Option configures a Counter.
type Option func(*Counter)

// WithBound sizes the table for colour totals up to n. Values outside
// [0, MaxBound] are clamped.
func WithBound(n int) Option {
	return func(c *Counter) {
		c.bound = min(max(n, 0), MaxBound)
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCounter allocates the memo table and marks every cell as absent.
// Without WithBound the table covers the full 18^5*7 state space.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{
		bound:  MaxBound,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.stride = c.bound + 1
	cells := c.stride * c.stride * c.stride * c.stride * c.stride * markerStates
	c.table = make([]cell, cells)
	c.Reset()

	c.logger.Debug("memo table allocated",
		zap.Int("bound", c.bound),
		zap.Int("cells", cells),
	)
	return c
}

// Bound returns the largest colour total the counter accepts.
func (c *Counter) Bound() int {
	return c.bound
}

// Reset marks every cell as absent and clears the stats.
func (c *Counter) Reset() {
	for i := range c.table {
		c.table[i] = cell{}
	}
	c.stats = Stats{}
}

// Stats returns the table usage since the last Reset.
func (c *Counter) Stats() Stats {
	return c.stats
}

// Count returns the number of ways to place every remaining unit described
// by counts, given the marker of the previously placed colour, modulo
// Modulus.
func (c *Counter) Count(counts Counts, last Marker) (uint32, error) {
	if err := counts.validate(c.bound); err != nil {
		return 0, err
	}
	if err := last.validate(); err != nil {
		return 0, err
	}
	return c.count(counts, last), nil
}

// Arrangements counts complete arrangements from a fresh start.
func (c *Counter) Arrangements(counts Counts) (uint32, error) {
	n, err := c.Count(counts, MarkerNone)
	if err != nil {
		return 0, fmt.Errorf("arrangements of %s: %w", counts, err)
	}
	c.logger.Debug("arrangements counted",
		zap.Stringer("counts", counts),
		zap.Uint32("result", n),
		zap.Int("hits", c.stats.Hits),
		zap.Int("misses", c.stats.Misses),
	)
	return n, nil
}

func (c *Counter) index(counts Counts, last Marker) int {
	i := 0
	for _, v := range counts {
		i = i*c.stride + v
	}
	return i*markerStates + int(last)
}

func (c *Counter) count(counts Counts, last Marker) uint32 {
	idx := c.index(counts, last)
	if e := c.table[idx]; e.ok {
		c.stats.Hits++
		return e.value
	}

	var sum uint64
	if counts.Total() == 0 {
		sum = 1
	} else {
		choices := Choices(counts, last)
		for i, v := range counts {
			if v == 0 {
				continue
			}
			rest, m := next(counts, i)
			sum = (sum + uint64(choices[i])*uint64(c.count(rest, m))) % Modulus
		}
	}

	c.table[idx] = cell{value: uint32(sum), ok: true}
	c.stats.Misses++
	return uint32(sum)
}
