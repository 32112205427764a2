package funcdoc

// Package holds the documented callables of a single Go package.
type Package struct {
	Name       string `json:"name" yaml:"name"`
	ImportPath string `json:"importPath" yaml:"importPath"`
	Synopsis   string `json:"synopsis,omitempty" yaml:"synopsis,omitempty"`

	// Top-level functions first, sorted by name,
	// followed by the functions and methods of each type.
	Functions []*Function `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// Function is a top-level function or a method.
type Function struct {
	Name string `json:"name" yaml:"name"`
	Recv string `json:"recv,omitempty" yaml:"recv,omitempty"` // only set for methods

	// Decl is the signature of the function on one line.
	Decl string `json:"decl" yaml:"decl"`

	Short   string `json:"short,omitempty" yaml:"short,omitempty"`
	Long    string `json:"long,omitempty" yaml:"long,omitempty"`
	Returns string `json:"returns,omitempty" yaml:"returns,omitempty"`

	// Arguments in the order they are declared.
	Arguments []*Argument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// ID is a name for the function that is unique within its package.
// Methods are qualified by their receiver's type name.
func (f *Function) ID() string {
	recv := recvTypeName(f.Recv)
	if len(recv) == 0 {
		return f.Name
	}
	return recv + "." + f.Name
}

// Argument is a single parameter of a function,
// combining its declaration with its documentation.
type Argument struct {
	// Name of the parameter.
	// Empty for unnamed parameters.
	Name string `json:"name" yaml:"name"`

	// Position of the parameter, starting at zero.
	Position int `json:"position" yaml:"position"`

	// GoType is the declared Go type of the parameter.
	// For variadic parameters, this includes the leading "...".
	GoType   string `json:"goType" yaml:"goType"`
	Variadic bool   `json:"variadic,omitempty" yaml:"variadic,omitempty"`

	// Documented reports whether the documentation comment
	// described this parameter.
	Documented bool `json:"documented" yaml:"documented"`

	// Type is the type named by the documentation,
	// or nil if it did not name one.
	Type *string `json:"type" yaml:"type"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// recvTypeName returns the name of the receiver type
// without any pointer or type parameters.
//
//	*Map[K, V] => Map
func recvTypeName(recv string) string {
	for len(recv) > 0 && recv[0] == '*' {
		recv = recv[1:]
	}
	for i, r := range recv {
		if r == '[' {
			return recv[:i]
		}
	}
	return recv
}
