package analyze

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages with syntax and type information.
type Loader struct {
	// Dir is the working directory patterns are resolved against ("" = current).
	Dir string
	// Tests includes _test.go files (test variants of the packages).
	Tests bool
	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// NewLoader creates a Loader for dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load loads the packages matching patterns.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/app/dto").
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*packages.Package, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     l.Dir,
		Tests:   l.Tests,
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

	if l.Tests {
		pkgs = dropShadowedVariants(pkgs)
	}

	for _, pkg := range pkgs {
		log.Debug("loaded package",
			zap.String("id", pkg.ID),
			zap.Int("files", len(pkg.Syntax)))
	}

	return pkgs, nil
}

// dropShadowedVariants removes synthesized test mains and the plain variant
// of packages that also have a test variant, so every file is checked once.
func dropShadowedVariants(pkgs []*packages.Package) []*packages.Package {
	hasTestVariant := map[string]bool{}
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.ID, ".test]") && !strings.HasSuffix(pkg.PkgPath, "_test") {
			hasTestVariant[pkg.PkgPath] = true
		}
	}

	out := make([]*packages.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		if !strings.Contains(pkg.ID, "[") && hasTestVariant[pkg.PkgPath] {
			continue
		}

		out = append(out, pkg)
	}

	return out
}
