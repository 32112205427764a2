package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for signatures.
// It leaves most text as-is, mutes keywords and comments,
// and emboldens function names.
var PlainStyle = chroma.MustNewStyle("fielddoc-plain", map[chroma.TokenType]string{
	chroma.Comment:      "#666666",
	chroma.Keyword:      "#555555",
	chroma.NameFunction: "bold",
	chroma.PreWrapper:   "bg:#f4f4f4",
	chroma.Background:   "bg:#f4f4f4",
})

func init() {
	styles.Register(PlainStyle)
}
