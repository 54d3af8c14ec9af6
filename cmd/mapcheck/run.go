package main

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"mapcheck/internal/analyze"
	"mapcheck/internal/completeness"
	"mapcheck/internal/config"
	"mapcheck/internal/diagnostic"
)

// pkgReport is the outcome of checking one package.
type pkgReport struct {
	pkg    *packages.Package
	report *completeness.Report
	err    error // per-function errors, combined
}

// checkPackages loads patterns and checks every package concurrently.
// Per-function errors stay in the package's slot; only load failures and
// cancellation abort the run.
func checkPackages(ctx context.Context, dir string, tests bool, cfg *config.Config, log *zap.Logger, pats []string) ([]pkgReport, error) {
	loader := analyze.NewLoader(dir)
	loader.Tests = tests
	loader.Logger = log

	pkgs, err := loader.Load(ctx, pats...)
	if err != nil {
		return nil, err
	}

	out := make([]pkgReport, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			checker := completeness.NewChecker(cfg, pkg.Fset, pkg.Types, pkg.TypesInfo).
				WithLogger(log.With(zap.String("package", pkg.PkgPath)))

			report, err := checker.Check(pkg.Syntax)
			out[i] = pkgReport{pkg: pkg, report: report, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// collect turns package reports into diagnostics. Per-function errors
// become error diagnostics.
func collect(reports []pkgReport) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, r := range reports {
		diags.Merge(r.report.Diagnostics(r.pkg.Fset))

		for _, err := range multierr.Errors(r.err) {
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticError,
				Code:     diagnostic.CodeInvalidExemption,
				Message:  err.Error(),
			})
		}
	}

	return diags
}

// summary counts the checked and skipped mapping functions.
func summary(reports []pkgReport) string {
	checked, skipped := 0, 0
	for _, r := range reports {
		checked += len(r.report.Checked)
		skipped += len(r.report.Skipped)
	}

	return fmt.Sprintf("checked %d mapping functions in %d packages, skipped %d without target", checked, len(reports), skipped)
}
