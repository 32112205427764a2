package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Code is a code block comprised of multiple spans.
type Code struct {
	Spans []Span
}

type (
	// Span is a part of a code block.
	Span interface{ span() }

	// TextSpan is a span rendered as-is.
	TextSpan struct {
		Text []byte
	}

	// TokenSpan is a span of code
	// that is highlighted with chroma.
	TokenSpan struct {
		Tokens []chroma.Token
	}

	// AnchorSpan renders its contents as an addressable anchor point.
	AnchorSpan struct {
		Spans []Span
		ID    string
	}

	// LinkSpan renders its contents as a link.
	LinkSpan struct {
		Spans []Span
		Dest  string
	}

	// ErrorSpan reports a failure to highlight code.
	// It renders visibly in HTML.
	ErrorSpan struct {
		Msg string
		Err error
	}
)

func (*TextSpan) span()   {}
func (*TokenSpan) span()  {}
func (*AnchorSpan) span() {}
func (*LinkSpan) span()   {}
func (*ErrorSpan) span()  {}

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// GoLexer is a [Lexer] that recognizes Go.
var GoLexer Lexer = &chromaLexer{l: chroma.Coalesce(lexers.Go)}

type chromaLexer struct{ l chroma.Lexer }

func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return chroma.Tokenise(cl.l, nil, string(src))
}

// Region is an interesting region of source code.
//
// A region with a Dest becomes a [LinkSpan],
// and one with an ID becomes an [AnchorSpan].
type Region struct {
	Offset, Length int

	ID   string
	Dest string
}

// Builder builds highlighted [Code] from source code.
type Builder struct {
	// Lexer used to tokenize source code.
	// Defaults to GoLexer.
	Lexer Lexer
}

// Build lexes src and builds a [Code] from it,
// wrapping the given regions in anchors and links.
//
// Regions must be sorted by offset and must not overlap.
// If src cannot be lexed, the Code holds an [ErrorSpan]
// followed by src as plain text.
func (b *Builder) Build(src []byte, regions []Region) *Code {
	lexer := b.Lexer
	if lexer == nil {
		lexer = GoLexer
	}

	tokens, err := lexer.Lex(src)
	if err != nil {
		return &Code{
			Spans: []Span{
				&ErrorSpan{Msg: "Unable to highlight code", Err: err},
				&TextSpan{Text: src},
			},
		}
	}

	tidx := NewTokenIndex(src, tokens)
	var (
		spans      []Span
		lastOffset int
	)
	for _, r := range regions {
		spans = append(spans, tidx.Spans(lastOffset, r.Offset)...)

		lastOffset = r.Offset + r.Length
		body := tidx.Spans(r.Offset, lastOffset)
		switch {
		case len(r.Dest) > 0:
			spans = append(spans, &LinkSpan{Spans: body, Dest: r.Dest})
		case len(r.ID) > 0:
			spans = append(spans, &AnchorSpan{Spans: body, ID: r.ID})
		default:
			spans = append(spans, body...)
		}
	}
	spans = append(spans, tidx.Spans(lastOffset, len(src))...)

	return &Code{Spans: spans}
}
