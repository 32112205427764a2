package highlight

import (
	"sort"

	chroma "github.com/alecthomas/chroma/v2"
)

// TokenIndex is a searchable collection of tokens.
type TokenIndex struct {
	src    []byte
	tokens []chroma.Token
	starts []int // start offset in src of tokens[i]
	ends   []int // end offset in src of tokens[i]
}

// NewTokenIndex builds a token index given source code and its tokens.
// The tokens must cover src in order.
func NewTokenIndex(src []byte, tokens []chroma.Token) *TokenIndex {
	starts := make([]int, len(tokens))
	ends := make([]int, len(tokens))
	for i, t := range tokens {
		var start int
		if i > 0 {
			start = ends[i-1]
		}
		starts[i] = start
		ends[i] = start + len(t.Value)
	}

	return &TokenIndex{
		src:    src,
		tokens: tokens,
		starts: starts,
		ends:   ends,
	}
}

// Spans returns spans covering the range [start, end) of the source.
//
// Tokens that fit in the range entirely become a [TokenSpan].
// Parts of tokens cut by either end of the range
// become a [TextSpan].
func (ts *TokenIndex) Spans(start, end int) []Span {
	if end > len(ts.src) {
		end = len(ts.src)
	}
	if start >= end {
		return nil
	}

	// First token that starts at or after start.
	first := sort.SearchInts(ts.starts, start)
	if first >= len(ts.starts) || ts.starts[first] >= end {
		// The range is inside a single token.
		return []Span{&TextSpan{Text: ts.src[start:end]}}
	}

	var spans []Span
	if off := ts.starts[first]; start < off {
		spans = append(spans, &TextSpan{Text: ts.src[start:off]})
	}

	// Tokens in [first, last) end at or before end.
	last := first + sort.SearchInts(ts.ends[first:], end+1)
	if first < last {
		spans = append(spans, &TokenSpan{Tokens: ts.tokens[first:last]})
	}

	if last < len(ts.starts) && ts.starts[last] < end {
		spans = append(spans, &TextSpan{Text: ts.src[ts.starts[last]:end]})
	}
	return spans
}
