package arrange

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MaxItems is the largest item count the input may declare.
const MaxItems = 200

// Category codes accepted in the input. Code CodeMin maps to slot a.
const (
	CodeMin = 2
	CodeMax = CodeMin + Slots - 1
)

// Input errors.
var (
	ErrMissingCount       = errors.New("missing item count")
	ErrTooManyItems       = errors.New("item count out of range")
	ErrShortInput         = errors.New("fewer codes than declared")
	ErrBadToken           = errors.New("token is not an integer")
	ErrCategoryOutOfRange = errors.New("category code out of range")
)

// ParseInput reads an item count n followed by n category codes, separated
// by any whitespace. Tokens after the n-th code are ignored.
func ParseInput(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	readInt := func() (int, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q", ErrBadToken, sc.Text())
		}
		return v, true, nil
	}

	n, ok, err := readInt()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingCount
	}
	if n < 0 || n > MaxItems {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrTooManyItems, n, MaxItems)
	}

	codes := make([]int, 0, n)
	for len(codes) < n {
		v, ok, err := readInt()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, len(codes), n)
		}
		codes = append(codes, v)
	}
	return codes, nil
}

// Tally holds how many input items carry each category code.
type Tally struct {
	byCode [CodeMax + 1]int
}

// TallyCodes counts the codes. Every code must be in [CodeMin, CodeMax].
func TallyCodes(codes []int) (Tally, error) {
	var t Tally
	for i, code := range codes {
		if code < CodeMin || code > CodeMax {
			return Tally{}, fmt.Errorf("%w: item %d has code %d", ErrCategoryOutOfRange, i, code)
		}
		t.byCode[code]++
	}
	return t, nil
}

// Of returns how many items carry code. Unknown codes report zero.
func (t Tally) Of(code int) int {
	if code < 0 || code > CodeMax {
		return 0
	}
	return t.byCode[code]
}

// Counts maps codes CodeMin..CodeMax onto slots a..e.
func (t Tally) Counts() Counts {
	var c Counts
	for i := range c {
		c[i] = t.byCode[CodeMin+i]
	}
	return c
}
