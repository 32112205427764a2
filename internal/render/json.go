package render

import (
	"encoding/json"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/funcdoc"
)

// JSON renders packages as an indented JSON array.
type JSON struct {
	// Indent for nested values.
	// Defaults to two spaces.
	Indent string
}

// Render writes pkgs to w.
// An empty list renders as an empty array.
func (r *JSON) Render(w io.Writer, pkgs []*funcdoc.Package) error {
	indent := r.Indent
	if len(indent) == 0 {
		indent = "  "
	}

	if pkgs == nil {
		pkgs = []*funcdoc.Package{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return errtrace.Wrap(enc.Encode(pkgs))
}
