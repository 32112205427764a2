package flagvalue

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperValue records its value in upper case.
type upperValue string

var _ flag.Getter = (*upperValue)(nil)

func (uv *upperValue) Get() any       { return string(*uv) }
func (uv *upperValue) String() string { return string(*uv) }

func (uv *upperValue) Set(s string) error {
	if s == "fail" {
		return errtrace.Wrap(errors.New("great sadness"))
	}
	*uv = upperValue(strings.ToUpper(s))
	return nil
}

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc       string
		give       []string
		want       []upperValue
		wantString string
	}{
		{
			desc: "no arguments",
			give: []string{"-y"},
		},
		{
			desc:       "separate",
			give:       []string{"-x", "foo"},
			want:       []upperValue{"FOO"},
			wantString: "FOO",
		},
		{
			desc:       "joint",
			give:       []string{"-x=foo"},
			want:       []upperValue{"FOO"},
			wantString: "FOO",
		},
		{
			desc:       "multiple",
			give:       []string{"-x", "foo", "-x=bar"},
			want:       []upperValue{"FOO", "BAR"},
			wantString: "FOO, BAR",
		},
		{
			desc:       "interleaved",
			give:       []string{"-x", "foo", "-y", "-x=bar"},
			want:       []upperValue{"FOO", "BAR"},
			wantString: "FOO, BAR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

			var got []upperValue
			list := ListOf(&got)
			fset.Var(list, "x", "")
			_ = fset.Bool("y", false, "")
			require.NoError(t, fset.Parse(tt.give))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, list.Get(), "Get")
			assert.Equal(t, tt.wantString, list.String(), "String")
		})
	}
}

func TestList_error(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var got []upperValue
	fset.Var(ListOf(&got), "x", "")

	err := fset.Parse([]string{"-x=foo", "-x=fail", "-x", "bar"})
	assert.ErrorContains(t, err, "great sadness")
	assert.Equal(t, []upperValue{"FOO"}, got)
}

func TestList_nilString(t *testing.T) {
	t.Parallel()

	var list *List[upperValue, *upperValue]
	assert.Empty(t, list.String())
}
