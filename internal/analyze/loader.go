package analyze

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
// Type information is not requested: the target package usually does not
// compile until its generated methods exist.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// Analyzer loads Go packages and builds a catalog of type declarations.
type Analyzer struct {
	catalog *Catalog
	// Dir is the working directory for package patterns; empty means the
	// current directory.
	Dir string
	// BuildFlags are passed to the underlying build system, e.g. "-tags=x".
	BuildFlags []string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		catalog: NewCatalog(),
	}
}

// LoadPackages loads the specified packages and adds their declarations to the catalog.
// Patterns are standard Go package patterns (e.g., ".", "./examples/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*Catalog, error) {
	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        a.Dir,
		BuildFlags: a.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.catalog, nil
}

// processPackage describes every file of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if len(pkg.Syntax) == 0 {
		return fmt.Errorf("no syntax loaded")
	}

	ref := PackageRef{
		Path: pkg.PkgPath,
		Name: pkg.Name,
		Dir:  packageDir(pkg),
	}
	a.catalog.Packages[ref.Path] = ref

	for _, file := range pkg.Syntax {
		a.catalog.Add(DescribeFile(pkg.Fset, ref, file)...)
	}

	return nil
}

func packageDir(pkg *packages.Package) string {
	files := pkg.GoFiles
	if len(files) == 0 {
		files = pkg.CompiledGoFiles
	}

	if len(files) == 0 {
		return ""
	}

	return filepath.Dir(files[0])
}
