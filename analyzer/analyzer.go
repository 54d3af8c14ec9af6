// Package analyzer exposes the mapping completeness check as a
// golang.org/x/tools/go/analysis analyzer, usable with go vet -vettool,
// singlechecker and multichecker drivers, or gopls.
package analyzer

import (
	"fmt"
	"go/ast"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"mapcheck/internal/completeness"
	"mapcheck/internal/config"
	"mapcheck/internal/diagnostic"
)

// Doc is the analyzer documentation.
const Doc = `check that mapping functions assign every field of their target

A function annotated with //mapcheck:complete must assign, in top-level
statements of its body, every field of the last parameter whose type is
its result type. Field names listed in the directive are exempt:

	//mapcheck:complete("CreatedAt", "UpdatedAt")
	func ToDTO(src *Order, dst *OrderDTO) *OrderDTO`

// Category is the diagnostic category of every finding.
const Category = "mapping"

// Analyzer reads its configuration from the -config and -directive flags.
var Analyzer = newFlagged()

// New returns an analyzer using cfg. A nil cfg means config.Default().
func New(cfg *config.Config) *analysis.Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}

	r := &runner{fixed: cfg}

	return r.analyzer()
}

func newFlagged() *analysis.Analyzer {
	r := &runner{}
	a := r.analyzer()
	a.Flags.StringVar(&r.configPath, "config", "", "path to a "+config.FileName+" file")
	a.Flags.StringVar(&r.directive, "directive", "", "comment directive marking mapping functions (default mapcheck:complete)")

	return a
}

type runner struct {
	fixed      *config.Config
	configPath string
	directive  string

	once sync.Once
	cfg  *config.Config
	err  error
}

func (r *runner) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "mapcheck",
		Doc:      Doc,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
}

// config resolves the configuration once; flags are parsed by then.
func (r *runner) config() (*config.Config, error) {
	r.once.Do(func() {
		r.cfg, r.err = r.load()
	})

	return r.cfg, r.err
}

func (r *runner) load() (*config.Config, error) {
	cfg := r.fixed
	if cfg == nil {
		cfg = config.Default()
		if r.configPath != "" {
			loaded, err := config.LoadFile(r.configPath)
			if err != nil {
				return nil, err
			}

			cfg = loaded
		}
	}

	if r.directive != "" {
		c := *cfg
		c.Directive = strings.TrimPrefix(r.directive, "//")
		cfg = &c
	}

	if err := config.Validate(cfg).Error(); err != nil {
		return nil, fmt.Errorf("invalid mapcheck configuration: %w", err)
	}

	return cfg, nil
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	checker := completeness.NewChecker(cfg, pass.Fset, pass.Pkg, pass.TypesInfo)

	var errs error
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if !checker.IsCandidate(decl) {
			return
		}

		res, err := checker.CheckFunc(decl)
		if err != nil {
			errs = multierr.Append(errs, err)
			return
		}

		if res != nil {
			report(pass, res)
		}
	})

	return nil, errs
}

func report(pass *analysis.Pass, res *completeness.FuncResult) {
	pos := res.Decl.Name.Pos()

	if len(res.Missing) > 0 {
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: Category,
			Message:  diagnostic.MissingAssignments(res.Missing),
		})
	}

	for _, u := range res.Unknown {
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: Category,
			Message:  diagnostic.UnknownExemption(u.Name, res.TargetTypeName(), u.Suggestion),
		})
	}
}
