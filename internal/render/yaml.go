package render

import (
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/errdefer"
	"go.abhg.dev/fielddoc/internal/funcdoc"
	"gopkg.in/yaml.v3"
)

// YAML renders packages as a YAML sequence.
type YAML struct {
	// Indent is the number of spaces used to indent nested values.
	// Defaults to 2.
	Indent int
}

// Render writes pkgs to w.
func (r *YAML) Render(w io.Writer, pkgs []*funcdoc.Package) (err error) {
	indent := r.Indent
	if indent <= 0 {
		indent = 2
	}

	if pkgs == nil {
		pkgs = []*funcdoc.Package{}
	}

	enc := yaml.NewEncoder(w)
	defer errdefer.Close(&err, enc)

	enc.SetIndent(indent)
	return errtrace.Wrap(enc.Encode(pkgs))
}
