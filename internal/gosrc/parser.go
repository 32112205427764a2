package gosrc

import (
	"go/ast"
	"go/parser"
	"go/token"

	"braces.dev/errtrace"
)

// Package is a package that has been loaded from disk.
type Package struct {
	// Name of the package.
	Name string

	// Import path of the package.
	ImportPath string

	// Parsed ASTs of all source files in the package,
	// in the same order as PackageRef.Files.
	Syntax []*ast.File

	// FileSet used to parse these files.
	Fset *token.FileSet
}

// Parser loads the contents of a package by parsing it from source.
//
// The zero value is ready to use.
type Parser struct{}

// ParsePackage parses all files in the referenced package,
// retaining comments, and fills a Package with the result.
func (*Parser) ParsePackage(ref *PackageRef) (*Package, error) {
	fset := token.NewFileSet()
	syntax := make([]*ast.File, len(ref.Files))
	for i, file := range ref.Files {
		f, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
		if err != nil {
			return nil, errtrace.Errorf("parse file %q: %w", file, err)
		}
		syntax[i] = f
	}

	return &Package{
		Name:       ref.Name,
		ImportPath: ref.ImportPath,
		Syntax:     syntax,
		Fset:       fset,
	}, nil
}
