// Package render writes assembled function documentation
// as JSON, YAML, or HTML.
package render

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/funcdoc"
)

// Renderer writes the documentation of a list of packages.
type Renderer interface {
	Render(w io.Writer, pkgs []*funcdoc.Package) error
}

var (
	_ Renderer = (*JSON)(nil)
	_ Renderer = (*YAML)(nil)
	_ Renderer = (*HTML)(nil)
)

// Format is the name of an output format.
type Format string

// Supported output formats.
const (
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
	HTMLFormat Format = "html"
)

// Formats lists all supported output formats.
var Formats = []Format{JSONFormat, YAMLFormat, HTMLFormat}

// New builds a Renderer with default settings for the given format.
func New(f Format) (Renderer, error) {
	switch f {
	case JSONFormat:
		return new(JSON), nil
	case YAMLFormat:
		return new(YAML), nil
	case HTMLFormat:
		return new(HTML), nil
	default:
		return nil, errtrace.Wrap(fmt.Errorf("unknown format %q: valid values are %q", string(f), Formats))
	}
}
