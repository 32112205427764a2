// fielddoc extracts reStructuredText field documentation
// (:param:, :type:, :returns:) from the doc comments of Go functions
// and reports it alongside the functions' signatures.
//
// See 'fielddoc -h' for usage.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/errdefer"
	"go.abhg.dev/fielddoc/internal/funcdoc"
	"go.abhg.dev/fielddoc/internal/gosrc"
	"go.abhg.dev/fielddoc/internal/render"
	"golang.org/x/tools/go/packages"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger

	// Base configuration for go/packages.
	// Tests use this to point the finder at fixtures.
	packagesConfig *packages.Config
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("fielddoc: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, err := opts.Debug.Open(cmd.Stderr)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer errdefer.Close(&err, debugw)

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugw, "", 0)
	}

	renderer, err := render.New(opts.Format)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var tags []string
	if len(opts.Tags) > 0 {
		tags = strings.Split(opts.Tags, ",")
	}

	var finder Finder = &gosrc.Finder{
		PackagesConfig: cmd.packagesConfig,
		Tags:           tags,
		Log:            cmd.log,
		DebugLog:       debugLog,
	}
	refs, err := finder.FindPackages(opts.Patterns...)
	if err != nil {
		return fmt.Errorf("find packages: %w", err)
	}
	slices.SortFunc(refs, func(a, b *gosrc.PackageRef) int {
		return strings.Compare(a.ImportPath, b.ImportPath)
	})

	generator := Generator{
		DebugLog:  debugLog,
		Parser:    new(gosrc.Parser),
		Assembler: &funcdoc.Assembler{Unexported: opts.Unexported},
		Renderer:  renderer,
		Filter:    funcFilter(opts.Funcs),
	}

	return cmd.writeOutput(opts.OutputFile, func(w io.Writer) error {
		return generator.Generate(w, refs)
	})
}

// writeOutput generates the document in memory
// and writes it to the output at path only if generate succeeds.
// The output file is not created otherwise.
func (cmd *mainCmd) writeOutput(path string, generate func(io.Writer) error) (err error) {
	var buff bytes.Buffer
	if err := generate(&buff); err != nil {
		return err
	}

	out, err := cmd.createOutput(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer errdefer.Close(&err, out)

	if _, err := buff.WriteTo(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// createOutput opens the destination of the program's output.
// This is stdout unless a path is given.
func (cmd *mainCmd) createOutput(path string) (io.WriteCloser, error) {
	if len(path) == 0 {
		return nopWriteCloser{cmd.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
