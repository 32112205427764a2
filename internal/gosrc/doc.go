// Package gosrc finds Go packages and loads their sources
// so that the documentation of their functions can be inspected.
//
// [Finder] resolves import path patterns into [PackageRef]s.
// PackageRefs only name the files of a package
// and are cheap to hold in memory.
// [Parser] loads the syntax trees for a PackageRef.
package gosrc
