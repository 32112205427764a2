package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/fielddoc/internal/flagvalue"
	"go.abhg.dev/fielddoc/internal/funcdoc"
	"go.abhg.dev/fielddoc/internal/render"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envVarPrefix is the prefix for environment variables
// that set flags: FIELDDOC_FORMAT for -format.
const _envVarPrefix = "FIELDDOC"

// params holds all arguments for fielddoc.
type params struct {
	version bool
	help    Help
	config  string

	Tags  string
	Debug flagvalue.FileSwitch

	Format     render.Format
	OutputFile string

	Unexported bool
	Funcs      []funcPattern

	Patterns []string
}

// cliParser parses the command line arguments for fielddoc.
//
// Flags may also be set from environment variables
// or from a configuration file.
// Flags on the command line take precedence over both.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("fielddoc", flag.ContinueOnError)
	// Parse reports errors with usage itself.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {}

	p := params{Format: render.JSONFormat}

	// Output:
	flag.Var((*formatValue)(&p.Format), "format", "")
	flag.StringVar(&p.OutputFile, "out", "", "")

	// Selection:
	flag.BoolVar(&p.Unexported, "unexported", false, "")
	flag.Var(flagvalue.ListOf(&p.Funcs), "func", "")

	// Go build system:
	flag.StringVar(&p.Tags, "tags", "", "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "fielddoc", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		if h := Help(args[0]); h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Patterns = args
	if len(p.Patterns) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one pattern.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// formatValue is the -format flag.
type formatValue render.Format

var _ flag.Getter = (*formatValue)(nil)

func (f *formatValue) Get() any { return render.Format(*f) }

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(s string) error {
	format := render.Format(strings.ToLower(strings.TrimSpace(s)))
	if _, err := render.New(format); err != nil {
		return err
	}
	*f = formatValue(format)
	return nil
}

// funcPattern selects functions by name
// and optionally by the name of their receiver type.
//
//	Get        # functions and methods named Get
//	Store.Get  # method Get of Store
type funcPattern struct {
	Recv string
	Name string
}

var _ flag.Getter = (*funcPattern)(nil)

func (fp *funcPattern) Get() any { return *fp }

func (fp *funcPattern) String() string {
	if len(fp.Recv) == 0 {
		return fp.Name
	}
	return fp.Recv + "." + fp.Name
}

func (fp *funcPattern) Set(s string) error {
	recv, name, ok := strings.Cut(s, ".")
	if !ok {
		recv, name = "", s
	}
	if len(name) == 0 || (ok && len(recv) == 0) || strings.Contains(name, ".") {
		return fmt.Errorf("expected form 'name' or 'recv.name', got %q", s)
	}

	fp.Recv = recv
	fp.Name = name
	return nil
}

// Match reports whether fn is selected by this pattern.
func (fp *funcPattern) Match(fn *funcdoc.Function) bool {
	if fn.Name != fp.Name {
		return false
	}
	return len(fp.Recv) == 0 || fn.ID() == fp.String()
}

// funcFilter builds a filter that keeps functions
// matching any of the given patterns.
// It returns nil if there are no patterns.
func funcFilter(patterns []funcPattern) func(*funcdoc.Function) bool {
	if len(patterns) == 0 {
		return nil
	}
	return func(fn *funcdoc.Function) bool {
		for _, p := range patterns {
			if p.Match(fn) {
				return true
			}
		}
		return false
	}
}
