package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"go.abhg.dev/fielddoc/internal/must"
)

// Highlighter turns [Code] into HTML.
//
// Highlighting uses inline styles,
// so the output needs no style sheet.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	// Defaults to PlainStyle.
	Style *chroma.Style

	once      sync.Once
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(chromahtml.PreventSurroundingPre(true))
		h.style = h.Style
		if h.style == nil {
			h.style = PlainStyle
		}
	})
}

// Highlight renders the given code block into HTML.
func (h *Highlighter) Highlight(code *Code) template.HTML {
	h.init()

	if code == nil {
		return ""
	}

	r := codeRenderer{fmt: h.formatter, sty: h.style}
	style := chromahtml.StyleEntryToCSS(h.style.Get(chroma.PreWrapper))
	fmt.Fprintf(&r, "<pre style=%q>", style)
	r.RenderSpans(code.Spans)
	r.WriteString("</pre>")
	return template.HTML(r.String())
}

type codeRenderer struct {
	bytes.Buffer

	fmt chroma.Formatter
	sty *chroma.Style
}

func (r *codeRenderer) RenderSpans(spans []Span) {
	for _, span := range spans {
		r.RenderSpan(span)
	}
}

func (r *codeRenderer) RenderSpan(span Span) {
	switch s := span.(type) {
	case *TokenSpan:
		// Writes to a bytes.Buffer don't fail.
		err := r.fmt.Format(r, r.sty, chroma.Literator(s.Tokens...))
		must.NotErrorf(err, "format %d tokens", len(s.Tokens))
	case *TextSpan:
		template.HTMLEscape(r, s.Text)
	case *AnchorSpan:
		fmt.Fprintf(r, "<span id=%q>", template.HTMLEscapeString(s.ID))
		r.RenderSpans(s.Spans)
		r.WriteString("</span>")
	case *LinkSpan:
		fmt.Fprintf(r, "<a href=%q>", template.HTMLEscapeString(s.Dest))
		r.RenderSpans(s.Spans)
		r.WriteString("</a>")
	case *ErrorSpan:
		r.WriteString("<strong>")
		template.HTMLEscape(r, []byte(s.Msg))
		r.WriteString(": ")
		template.HTMLEscape(r, []byte(s.Err.Error()))
		r.WriteString("</strong> ")
	default:
		panic(fmt.Sprintf("unrecognized span type %T", s))
	}
}
