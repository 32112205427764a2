package sphinx

import (
	"regexp"
	"strings"

	"go.abhg.dev/fielddoc/internal/ptr"
)

// Fields are sliced between marker offsets found with these patterns.
// RE2 matching is linear in the size of the input.
var (
	// _fieldsStart marks the start of the fields block.
	_fieldsStart = regexp.MustCompile(`:(?:param|returns?)`)

	// _fieldEnd matches any marker that ends the text of a field.
	_fieldEnd = regexp.MustCompile(`:(?:param|type|returns?|rtype|raises)`)

	// _returnsEnd matches markers that end the text of a ":returns" field.
	// Later ":return" markers are part of the text.
	_returnsEnd = regexp.MustCompile(`:(?:param|raises|rtype|type)`)

	// _paramName matches the name of a parameter in a ":param" field
	// along with the separator that follows it.
	_paramName = regexp.MustCompile(`[*_\pL\pN]+: `)

	_returnsField = regexp.MustCompile(`:returns?: `)
	_typeField    = regexp.MustCompile(`:type ([*_\pL\pN]+): `)
)

const (
	_paramPrefix = ":param "
	_nameSep     = ": "
)

// scanParams records all ":param [type] name: doc" fields in s.
//
// The type is everything between ":param " and the name,
// where the name is the first run of name characters followed by ": ".
func scanParams(s string, params map[string]Param) map[string]Param {
	for pos := 0; ; {
		idx := strings.Index(s[pos:], _paramPrefix)
		if idx < 0 {
			break
		}
		typeStart := pos + idx + len(_paramPrefix)

		loc := _paramName.FindStringIndex(s[typeStart:])
		if loc == nil {
			// No later field can have a name either.
			break
		}
		nameStart := typeStart + loc[0]
		docStart := typeStart + loc[1]
		docEnd := fieldEnd(s, docStart)

		p := Param{Doc: collapse(s[docStart:docEnd])}
		if typeStart < nameStart {
			p.Type = ptr.Of(strings.TrimSpace(s[typeStart:nameStart]))
		}

		if params == nil {
			params = make(map[string]Param)
		}
		params[s[nameStart:docStart-len(_nameSep)]] = p
		pos = docEnd
	}
	return params
}

// scanReturns returns the description in the first
// ":return:" or ":returns:" field of s.
func scanReturns(s string) string {
	loc := _returnsField.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return reindent(s[loc[1]:nextMarker(_returnsEnd, s, loc[1])])
}

// scanTypes applies all ":type name: type" fields in s to params.
// Parameters that were not yet documented are added with an empty Doc.
func scanTypes(s string, params map[string]Param) map[string]Param {
	for pos := 0; ; {
		m := _typeField.FindStringSubmatchIndex(s[pos:])
		if m == nil {
			break
		}
		name := s[pos+m[2] : pos+m[3]]
		typeStart := pos + m[1]
		typeEnd := fieldEnd(s, typeStart)

		if params == nil {
			params = make(map[string]Param)
		}
		p := params[name]
		p.Type = ptr.Of(strings.TrimSpace(s[typeStart:typeEnd]))
		params[name] = p
		pos = typeEnd
	}
	return params
}

// fieldEnd returns the offset of the next field marker in s
// at or after from, or len(s) if there isn't one.
func fieldEnd(s string, from int) int {
	return nextMarker(_fieldEnd, s, from)
}

// nextMarker returns the offset of the next match of marker in s
// at or after from, or len(s) if there isn't one.
func nextMarker(marker *regexp.Regexp, s string, from int) int {
	if loc := marker.FindStringIndex(s[from:]); loc != nil {
		return from + loc[0]
	}
	return len(s)
}

// collapse normalizes a field description
// and joins its lines with spaces.
func collapse(s string) string {
	s = strings.TrimSuffix(Normalize(s), "\n")
	return strings.ReplaceAll(s, "\n", " ")
}

// reindent strips every line of s.
func reindent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
