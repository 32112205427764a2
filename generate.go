package main

import (
	"fmt"
	"io"
	"log"

	"go.abhg.dev/fielddoc/internal/funcdoc"
	"go.abhg.dev/fielddoc/internal/gosrc"
	"go.abhg.dev/fielddoc/internal/render"
	"go.abhg.dev/fielddoc/internal/sliceutil"
)

// Finder searches for packages on-disk based on the provided patterns.
type Finder interface {
	FindPackages(patterns ...string) ([]*gosrc.PackageRef, error)
}

var _ Finder = (*gosrc.Finder)(nil)

// Parser loads a package reference from disk
// and parses its contents.
type Parser interface {
	ParsePackage(*gosrc.PackageRef) (*gosrc.Package, error)
}

var _ Parser = (*gosrc.Parser)(nil)

// Assembler consumes a parsed Go source package,
// and builds the documentation of its functions.
type Assembler interface {
	Assemble(*gosrc.Package) (*funcdoc.Package, error)
}

var _ Assembler = (*funcdoc.Assembler)(nil)

// Renderer renders the documentation of packages.
type Renderer = render.Renderer

// Generator generates documentation for user-specified Go packages.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	// DebugLog receives progress messages.
	// Use nil to disable them.
	DebugLog *log.Logger

	Parser    Parser
	Assembler Assembler
	Renderer  Renderer

	// Filter reports whether a function should be included.
	// All functions are included if Filter is nil.
	Filter func(*funcdoc.Function) bool
}

// Generate documents the referenced packages, in order,
// and renders them to w together.
func (g *Generator) Generate(w io.Writer, refs []*gosrc.PackageRef) error {
	pkgs := make([]*funcdoc.Package, 0, len(refs))
	for _, ref := range refs {
		pkg, err := g.generatePackage(ref)
		if err != nil {
			return fmt.Errorf("%v: %w", ref.ImportPath, err)
		}
		pkgs = append(pkgs, pkg)
	}

	g.debugf("Rendering %d packages", len(pkgs))
	if err := g.Renderer.Render(w, pkgs); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (g *Generator) generatePackage(ref *gosrc.PackageRef) (*funcdoc.Package, error) {
	g.debugf("Parsing package %v", ref.ImportPath)
	bpkg, err := g.Parser.ParsePackage(ref)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	dpkg, err := g.Assembler.Assemble(bpkg)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	if g.Filter != nil {
		dpkg.Functions = sliceutil.Filter(dpkg.Functions, g.Filter)
		if len(dpkg.Functions) == 0 {
			dpkg.Functions = nil
		}
	}
	g.debugf("[%v] Found %d functions", ref.ImportPath, len(dpkg.Functions))
	return dpkg, nil
}

func (g *Generator) debugf(format string, args ...any) {
	if g.DebugLog != nil {
		g.DebugLog.Printf(format, args...)
	}
}
