package sphinx

import (
	"strings"
	"unicode"
)

// Docstring is the structured form of a documentation comment.
//
// The zero value is the result of parsing an absent comment.
type Docstring struct {
	// Short is the first line of the comment.
	Short string

	// Long is the text between the first line
	// and the first field, if any.
	Long string

	// Params maps parameter names to their documentation.
	//
	// Parameters that were not documented are absent.
	// Params is nil if no parameter or type fields were found.
	Params map[string]Param

	// Returns describes the return value.
	// Line breaks in the description are preserved.
	Returns string
}

// Param is the documentation of a single parameter.
type Param struct {
	// Doc describes the parameter on a single line.
	Doc string

	// Type is the declared type of the parameter,
	// or nil if no type was declared.
	//
	// A type declared as an empty string is distinct from nil.
	Type *string
}

// Parse parses a documentation comment.
//
// An empty string is treated as an absent comment
// and yields the zero Docstring.
//
// Parse is safe for concurrent use.
func Parse(text string) Docstring {
	var d Docstring
	if len(text) == 0 {
		return d
	}

	short, rest, ok := strings.Cut(Normalize(text), "\n")
	d.Short = short
	if !ok {
		return d
	}

	d.Long = strings.TrimSpace(rest)
	loc := _fieldsStart.FindStringIndex(d.Long)
	if loc == nil {
		return d
	}

	fields := strings.TrimSpace(d.Long[loc[0]:])
	d.Long = strings.TrimRightFunc(d.Long[:loc[0]], unicode.IsSpace)

	d.Params = scanParams(fields, d.Params)
	d.Returns = scanReturns(fields)
	// Types are applied last so that
	// explicit type fields win over inline types
	// regardless of where they appear.
	d.Params = scanTypes(fields, d.Params)
	return d
}
