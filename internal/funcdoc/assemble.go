// Package funcdoc composes documentation comments
// with the declarations of the functions they document.
//
// The [Assembler] reads a parsed Go package,
// parses the documentation of every function and method in it
// with package sphinx,
// and attaches the documented types and descriptions
// to the actual parameters of each function.
package funcdoc

import (
	"go/ast"
	"go/doc"
	"go/types"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/gosrc"
	"go.abhg.dev/fielddoc/internal/sliceutil"
	"go.abhg.dev/fielddoc/internal/sphinx"
)

// Assembler assembles a [Package] from a [gosrc.Package].
type Assembler struct {
	// Unexported includes unexported functions and methods.
	// By default, only exported ones are assembled.
	Unexported bool
}

// Assemble runs the assembler on the given package.
//
// Parameters missing from a function's documentation
// are reported as undocumented.
// Documented names that are not parameters of the function are ignored.
func (a *Assembler) Assemble(pkg *gosrc.Package) (*Package, error) {
	var mode doc.Mode
	if a.Unexported {
		mode |= doc.AllDecls
	}

	dpkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.ImportPath, mode)
	if err != nil {
		return nil, errtrace.Errorf("assemble documentation: %w", err)
	}

	funcs := sliceutil.Transform(dpkg.Funcs, fun)
	for _, typ := range dpkg.Types {
		funcs = append(funcs, sliceutil.Transform(typ.Funcs, fun)...)
		// Promoted methods are documented on their own type.
		methods := sliceutil.Filter(typ.Methods, func(m *doc.Func) bool {
			return m.Level == 0
		})
		funcs = append(funcs, sliceutil.Transform(methods, fun)...)
	}

	return &Package{
		Name:       dpkg.Name,
		ImportPath: dpkg.ImportPath,
		Synopsis:   dpkg.Synopsis(dpkg.Doc),
		Functions:  funcs,
	}, nil
}

func fun(dfun *doc.Func) *Function {
	docstring := sphinx.Parse(dfun.Doc)
	return &Function{
		Name:      dfun.Name,
		Recv:      dfun.Recv,
		Decl:      shortDecl(dfun.Decl),
		Short:     docstring.Short,
		Long:      docstring.Long,
		Returns:   docstring.Returns,
		Arguments: arguments(dfun.Decl.Type.Params, docstring.Params),
	}
}

func arguments(fields *ast.FieldList, params map[string]sphinx.Param) []*Argument {
	if fields == nil || len(fields.List) == 0 {
		return nil
	}

	var args []*Argument
	add := func(name string, field *ast.Field) {
		_, variadic := field.Type.(*ast.Ellipsis)
		arg := &Argument{
			Name:     name,
			Position: len(args),
			GoType:   types.ExprString(field.Type),
			Variadic: variadic,
		}
		if p, ok := lookupParam(params, name, variadic); ok {
			arg.Documented = true
			arg.Type = p.Type
			arg.Description = p.Doc
		}
		args = append(args, arg)
	}

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			add("", field)
			continue
		}
		for _, ident := range field.Names {
			add(ident.Name, field)
		}
	}
	return args
}

// lookupParam finds the documentation of a parameter.
// Variadic parameters may also be documented as "*name".
func lookupParam(params map[string]sphinx.Param, name string, variadic bool) (sphinx.Param, bool) {
	if len(name) == 0 || name == "_" {
		return sphinx.Param{}, false
	}
	if p, ok := params[name]; ok {
		return p, true
	}
	if variadic {
		p, ok := params["*"+name]
		return p, ok
	}
	return sphinx.Param{}, false
}

// shortDecl renders the signature of a function on a single line.
//
//	func (c *Client) Get(ctx context.Context, key string) ([]byte, error)
func shortDecl(decl *ast.FuncDecl) string {
	var sb strings.Builder
	sb.WriteString("func ")
	if decl.Recv != nil {
		sb.WriteString("(")
		writeFields(&sb, decl.Recv)
		sb.WriteString(") ")
	}
	sb.WriteString(decl.Name.Name)
	if tparams := decl.Type.TypeParams; tparams != nil {
		sb.WriteString("[")
		writeFields(&sb, tparams)
		sb.WriteString("]")
	}
	sb.WriteString("(")
	writeFields(&sb, decl.Type.Params)
	sb.WriteString(")")

	if results := decl.Type.Results; results != nil && len(results.List) > 0 {
		sb.WriteString(" ")
		if len(results.List) == 1 && len(results.List[0].Names) == 0 {
			sb.WriteString(types.ExprString(results.List[0].Type))
		} else {
			sb.WriteString("(")
			writeFields(&sb, results)
			sb.WriteString(")")
		}
	}
	return sb.String()
}

func writeFields(sb *strings.Builder, fields *ast.FieldList) {
	if fields == nil {
		return
	}
	for i, field := range fields.List {
		if i > 0 {
			sb.WriteString(", ")
		}
		for j, name := range field.Names {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name.Name)
		}
		if len(field.Names) > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(types.ExprString(field.Type))
	}
}
