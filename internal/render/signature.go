package render

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/highlight"
)

const _declPrefix = "package p\n"

// declRegions finds the function name and the parameter names
// in decl, a function signature on one line,
// and builds regions for them.
//
// The name links to id,
// and parameters are anchors named by appending their name to id.
func declRegions(decl, id string) ([]highlight.Region, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "decl.go", _declPrefix+decl, parser.SkipObjectResolution)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(f.Decls) != 1 {
		return nil, errtrace.Wrap(errors.New("expected a single declaration"))
	}
	fdecl, ok := f.Decls[0].(*ast.FuncDecl)
	if !ok {
		return nil, errtrace.Wrap(errors.New("not a function declaration"))
	}

	file := fset.File(f.Pos())
	offset := func(ident *ast.Ident) int {
		return file.Offset(ident.Pos()) - len(_declPrefix)
	}

	regions := []highlight.Region{
		{
			Offset: offset(fdecl.Name),
			Length: len(fdecl.Name.Name),
			Dest:   "#" + id,
		},
	}
	for _, field := range fdecl.Type.Params.List {
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			regions = append(regions, highlight.Region{
				Offset: offset(name),
				Length: len(name.Name),
				ID:     id + "." + name.Name,
			})
		}
	}
	return regions, nil
}
