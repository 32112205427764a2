package gosrc

import (
	"log"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/fielddoc/internal/sliceutil"
	"golang.org/x/tools/go/packages"
)

// PackageRef is a reference to a package.
//
// It holds information necessary to load a package,
// but doesn't yet load it.
type PackageRef struct {
	// Name of the package.
	Name string

	// Import path of the package.
	ImportPath string

	// List of non-test .go files in the package.
	Files []string
}

// Finder searches for and returns Go package references
// using the go/packages library.
type Finder struct {
	// PackagesConfig is the base configuration for go/packages.
	// Mode, Tests, and Logf are always overridden.
	PackagesConfig *packages.Config

	// Build tags to enable when searching for packages.
	Tags []string

	// Logger to write regular log messages to.
	Log *log.Logger

	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

const _finderLoadMode = packages.NeedName | packages.NeedFiles

// FindPackages searches for packages matching the given import path patterns,
// and returns references to them.
//
// Packages that fail to load are reported to the logger and skipped.
// It is an error if no packages remain.
func (f *Finder) FindPackages(patterns ...string) ([]*PackageRef, error) {
	var cfg packages.Config
	if f.PackagesConfig != nil {
		cfg = *f.PackagesConfig
	}
	cfg.Mode = _finderLoadMode
	cfg.Tests = false
	if ts := f.Tags; len(ts) > 0 {
		cfg.BuildFlags = append(cfg.BuildFlags, "-tags", strings.Join(ts, ","))
	}
	if f.DebugLog != nil {
		cfg.Logf = f.DebugLog.Printf
	}

	pkgs, err := packages.Load(&cfg, patterns...)
	if err != nil {
		return nil, errtrace.Errorf("load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, errtrace.Errorf("no packages found matching %q", patterns)
	}

	refs := make([]*PackageRef, 0, len(pkgs))
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			for _, err := range pkg.Errors {
				f.logf("[%v] %v", pkg.PkgPath, err)
			}
			continue
		}

		// GoFiles may include non-Go files for cgo packages.
		goFiles := sliceutil.Filter(pkg.GoFiles, func(path string) bool {
			return strings.HasSuffix(path, ".go")
		})
		if len(goFiles) == 0 {
			f.logf("[%v] No non-test Go files. Skipping.", pkg.PkgPath)
			continue
		}

		refs = append(refs, &PackageRef{
			Name:       pkg.Name,
			ImportPath: pkg.PkgPath,
			Files:      goFiles,
		})
	}

	if len(refs) == 0 {
		return nil, errtrace.Errorf("no usable packages found matching %q", patterns)
	}
	return refs, nil
}

func (f *Finder) logf(format string, args ...any) {
	if f.Log != nil {
		f.Log.Printf(format, args...)
	}
}
