// Package flagvalue holds flag.Value implementations
// for kinds of flags the flag package does not support.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}
