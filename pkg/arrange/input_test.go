package arrange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{name: "empty list", input: "0\n", want: []int{}},
		{name: "single code", input: "1\n2\n", want: []int{2}},
		{name: "mixed whitespace", input: " 3\t2 4\n\n6 ", want: []int{2, 4, 6}},
		{name: "trailing tokens ignored", input: "1 5 9 9", want: []int{5}},
		{name: "no count", input: "   ", wantErr: ErrMissingCount},
		{name: "negative count", input: "-1", wantErr: ErrTooManyItems},
		{name: "count above limit", input: "201", wantErr: ErrTooManyItems},
		{name: "short input", input: "3 2 2", wantErr: ErrShortInput},
		{name: "bad count token", input: "three", wantErr: ErrBadToken},
		{name: "bad code token", input: "2 2 x", wantErr: ErrBadToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTallyCodes(t *testing.T) {
	tally, err := TallyCodes([]int{2, 3, 3, 6, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, tally.Of(2))
	assert.Equal(t, 2, tally.Of(3))
	assert.Equal(t, 0, tally.Of(4))
	assert.Equal(t, 1, tally.Of(6))
	assert.Equal(t, 0, tally.Of(42))
	assert.Equal(t, Counts{3, 2, 0, 0, 1}, tally.Counts())
}

func TestTallyCodesOutOfRange(t *testing.T) {
	for _, code := range []int{-1, 0, 1, 7, 100} {
		_, err := TallyCodes([]int{2, code})
		assert.ErrorIs(t, err, ErrCategoryOutOfRange, "code %d", code)
	}
}

func TestDriverExamples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  uint32
	}{
		{name: "no items", input: "0", want: 1},
		{name: "one item of the first category", input: "1 2", want: 1},
		{name: "one and two units", input: "2 2 3", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, err := ParseInput(strings.NewReader(tt.input))
			require.NoError(t, err)
			tally, err := TallyCodes(codes)
			require.NoError(t, err)

			c := NewCounter(WithBound(tally.Counts().Total()))
			got, err := c.Arrangements(tally.Counts())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
