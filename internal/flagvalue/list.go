package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that accepts zero or more instances
// of the same flag, and records them in order.
//
// Each instance is parsed by the flag.Getter of T.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice to accept repeated instances of a flag.
//
//	flag.Var(flagvalue.ListOf(&funcs), "func", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns a comma separated list of the values.
func (lv *List[T, PT]) String() string {
	if lv == nil {
		return ""
	}

	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = fmt.Sprint(PT(&(*lv)[i]).Get())
	}
	return strings.Join(items, ", ")
}

// Set parses a single instance of the flag
// and appends it to the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
