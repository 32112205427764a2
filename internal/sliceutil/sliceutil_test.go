package sliceutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []int
		want []string
	}{
		{desc: "empty"},
		{
			desc: "non-empty",
			give: []int{1, 2, 3, 4},
			want: []string{"1", "2", "3", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Transform(tt.give, strconv.Itoa))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	type keepfn func(int) bool
	always := func(b bool) keepfn { return func(int) bool { return b } }
	even := func(i int) bool { return i%2 == 0 }

	tests := []struct {
		desc string
		give []int
		keep keepfn
		want []int
	}{
		{
			desc: "empty",
			keep: always(true),
		},
		{
			desc: "keep none",
			give: []int{1, 2, 3},
			keep: always(false),
			want: []int{},
		},
		{
			desc: "keep all",
			give: []int{1, 2, 3},
			keep: always(true),
			want: []int{1, 2, 3},
		},
		{
			desc: "keep some",
			give: []int{1, 2, 3, 4, 5, 6},
			keep: even,
			want: []int{2, 4, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Filter(tt.give, tt.keep))
		})
	}
}
