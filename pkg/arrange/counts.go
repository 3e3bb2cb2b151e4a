package arrange

import (
	"errors"
	"fmt"
)

// Modulus is the prime every count is reduced by.
const Modulus = 1_000_000_007

// Slots is the number of colour slots (a through e).
const Slots = 5

// MaxBound is the largest per-slot value the counter can index. The initial
// colour total must not exceed it.
const MaxBound = 17

// Marker records the slot the previously used colour landed in. MarkerNone
// means nothing has been placed yet or the colour ran out.
type Marker int

// Marker values. Placing from slot i yields marker i+1, so MarkerNone is also
// what placing the last unit of a colour produces.
const (
	MarkerNone Marker = 1
	MarkerMax  Marker = 6
)

// Validation errors.
var (
	ErrCountOutOfRange  = errors.New("slot count out of range")
	ErrMarkerOutOfRange = errors.New("marker out of range")
)

// Counts holds the number of colours in each slot, a through e.
type Counts [Slots]int

// Total returns a+b+c+d+e, the number of colours that still have units left.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Items returns the number of units left across all colours.
func (c Counts) Items() int {
	n := 0
	for i, v := range c {
		n += (i + 1) * v
	}
	return n
}

// String formats the counts as (a,b,c,d,e).
func (c Counts) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d)", c[0], c[1], c[2], c[3], c[4])
}

// validate checks every slot is non-negative and the colour total fits bound.
func (c Counts) validate(bound int) error {
	for i, v := range c {
		if v < 0 {
			return fmt.Errorf("%w: slot %c is %d", ErrCountOutOfRange, 'a'+i, v)
		}
	}
	if t := c.Total(); t > bound {
		return fmt.Errorf("%w: %d colours exceed bound %d", ErrCountOutOfRange, t, bound)
	}
	return nil
}

// Valid reports whether m is in [MarkerNone, MarkerMax].
func (m Marker) Valid() bool {
	return m >= MarkerNone && m <= MarkerMax
}

func (m Marker) validate() error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrMarkerOutOfRange, int(m))
	}
	return nil
}

// suppressed returns 1 when the previous colour sits in slot i and so must
// not be picked again, 0 otherwise. Slot e never holds a just-used colour.
func (m Marker) suppressed(i int) int {
	if i < Slots-1 && int(m) == i+2 {
		return 1
	}
	return 0
}

// Choices returns, per slot, how many colours may be picked next given the
// previous marker. Empty slots contribute zero.
func Choices(c Counts, last Marker) [Slots]int {
	var out [Slots]int
	for i, v := range c {
		if v == 0 {
			continue
		}
		out[i] = v - last.suppressed(i)
	}
	return out
}

// next returns the state after using one unit of a colour from slot i: the
// colour leaves slot i and, unless it ran out, joins slot i-1.
func next(c Counts, i int) (Counts, Marker) {
	c[i]--
	if i > 0 {
		c[i-1]++
	}
	return c, Marker(i + 1)
}
