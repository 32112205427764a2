package render

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/funcdoc"
	"go.abhg.dev/fielddoc/internal/highlight"
	"go.abhg.dev/fielddoc/internal/ptr"
)

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	// Functions are bound to a nil renderer at parse time
	// so that the template is validated at init.
	// Render clones the template and binds them again.
	_packagesTmpl = template.Must(
		template.New("packages.html").
			Funcs((*htmlRender)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/packages.html"),
	)
)

// Highlighter renders code blocks into HTML.
type Highlighter interface {
	Highlight(*highlight.Code) template.HTML
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// HTML renders packages as an HTML fragment.
//
// Each package is a <section class="package">
// holding an <article class="function"> for each function.
type HTML struct {
	// Highlighter renders function signatures.
	// Defaults to a highlighter with the plain style.
	Highlighter Highlighter
}

// Render writes pkgs to w.
func (r *HTML) Render(w io.Writer, pkgs []*funcdoc.Package) error {
	h := r.Highlighter
	if h == nil {
		h = new(highlight.Highlighter)
	}

	render := htmlRender{Highlighter: h}
	return errtrace.Wrap(template.Must(_packagesTmpl.Clone()).
		Funcs(render.FuncMap()).
		Execute(w, pkgs))
}

type htmlRender struct {
	Highlighter Highlighter
	Builder     highlight.Builder
}

func (r *htmlRender) FuncMap() template.FuncMap {
	return template.FuncMap{
		"funcID":     funcID,
		"argLink":    argLink,
		"signature":  r.signature,
		"paragraphs": paragraphs,
		"lines":      lines,
		"deref":      deref,
	}
}

// signature renders the highlighted declaration of fn.
// The function name links to its article,
// and each parameter name is an anchor.
//
// It fails if fn.Decl is not a single function declaration.
func (r *htmlRender) signature(pkg *funcdoc.Package, fn *funcdoc.Function) (template.HTML, error) {
	id := funcID(pkg, fn)
	regions, err := declRegions(fn.Decl, id)
	if err != nil {
		return "", errtrace.Errorf("signature of %v: %w", id, err)
	}
	return r.Highlighter.Highlight(r.Builder.Build([]byte(fn.Decl), regions)), nil
}

// funcID is the HTML ID of a function's article.
func funcID(pkg *funcdoc.Package, fn *funcdoc.Function) string {
	return pkg.ImportPath + "." + fn.ID()
}

// argLink links to the anchor of a parameter
// in the signature of the function with the given ID.
func argLink(id string, arg *funcdoc.Argument) template.URL {
	return template.URL("#" + id + "." + arg.Name)
}

// paragraphs splits text into paragraphs separated by blank lines.
func paragraphs(s string) []string {
	var paras []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); len(p) > 0 {
			paras = append(paras, p)
		}
	}
	return paras
}

func lines(s string) []string {
	return strings.Split(s, "\n")
}

func deref(s *string) string {
	return ptr.ValueOr(s, "")
}
