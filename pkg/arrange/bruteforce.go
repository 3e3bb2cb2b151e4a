package arrange

import (
	"errors"
	"fmt"
)

// MaxBruteForceItems caps the units BruteForce will enumerate.
const MaxBruteForceItems = 12

// ErrTooLarge is returned when an input is too big to enumerate.
var ErrTooLarge = errors.New("too many units to enumerate")

// BruteForce counts arrangements by walking every sequence of colours
// explicitly. A colour in slot i carries i+1 units. When last points at a
// non-empty slot, one colour of that slot is the previously placed one and
// may not go first. The result is reduced modulo Modulus.
func BruteForce(counts Counts, last Marker) (uint64, error) {
	if err := counts.validate(MaxBound); err != nil {
		return 0, err
	}
	if err := last.validate(); err != nil {
		return 0, err
	}
	if n := counts.Items(); n > MaxBruteForceItems {
		return 0, fmt.Errorf("%w: %d units, limit %d", ErrTooLarge, n, MaxBruteForceItems)
	}

	// One entry per colour holding its remaining units. Colours are laid
	// out slot by slot, so the first colour of slot i is at offset
	// counts[0]+...+counts[i-1].
	var units []int
	for i, v := range counts {
		for range v {
			units = append(units, i+1)
		}
	}

	prev := -1
	for i := range Slots {
		if last.suppressed(i) == 1 && counts[i] > 0 {
			prev = 0
			for j := range i {
				prev += counts[j]
			}
		}
	}

	return enumerate(units, prev, counts.Items()), nil
}

func enumerate(units []int, prev, left int) uint64 {
	if left == 0 {
		return 1
	}
	var n uint64
	for i, u := range units {
		if u == 0 || i == prev {
			continue
		}
		units[i]--
		n = (n + enumerate(units, i, left-1)) % Modulus
		units[i]++
	}
	return n
}

// Mismatch describes a state where the counter and brute force disagree.
type Mismatch struct {
	Counts  Counts
	Last    Marker
	Counter uint32
	Brute   uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s last=%d: counter=%d brute=%d", m.Counts, m.Last, m.Counter, m.Brute)
}

// Verify compares c against BruteForce for every state with at most
// maxItems units and every marker. Each disagreement is passed to report,
// which may be nil. It returns the number of states checked.
func Verify(c *Counter, maxItems int, report func(Mismatch)) (int, error) {
	if maxItems > MaxBruteForceItems {
		return 0, fmt.Errorf("%w: limit %d, max %d", ErrTooLarge, maxItems, MaxBruteForceItems)
	}

	checked := 0
	var walk func(counts Counts, slot, items int) error
	walk = func(counts Counts, slot, items int) error {
		if slot == Slots {
			if counts.Total() > c.Bound() {
				return nil
			}
			for last := MarkerNone; last <= MarkerMax; last++ {
				got, err := c.Count(counts, last)
				if err != nil {
					return err
				}
				want, err := BruteForce(counts, last)
				if err != nil {
					return err
				}
				checked++
				if uint64(got) != want && report != nil {
					report(Mismatch{Counts: counts, Last: last, Counter: got, Brute: want})
				}
			}
			return nil
		}
		weight := slot + 1
		for v := 0; items+v*weight <= maxItems; v++ {
			counts[slot] = v
			if err := walk(counts, slot+1, items+v*weight); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(Counts{}, 0, 0); err != nil {
		return checked, err
	}
	return checked, nil
}
