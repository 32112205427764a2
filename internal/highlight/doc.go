// Package highlight renders highlighted function signatures to HTML
// with the Chroma library.
//
// A signature is first built into [Code] by a [Builder].
// Code is a sequence of [Span]s:
// plain text, highlighted tokens,
// and regions that act as anchors or links.
// A [Highlighter] then turns Code into HTML.
package highlight
