package completeness

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"mapcheck/internal/analyze"
	"mapcheck/internal/common"
	"mapcheck/internal/config"
	"mapcheck/internal/directive"
	"mapcheck/internal/match"
)

// Checker checks the mapping functions of one type-checked package.
// It only reads its inputs, so one Checker may be used from several
// goroutines; every Check call builds its own Report.
type Checker struct {
	cfg  *config.Config
	fset *token.FileSet
	pkg  *types.Package
	info *types.Info
	log  *zap.Logger
}

// NewChecker creates a Checker. A nil cfg means config.Default().
func NewChecker(cfg *config.Config, fset *token.FileSet, pkg *types.Package, info *types.Info) *Checker {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Checker{
		cfg:  cfg,
		fset: fset,
		pkg:  pkg,
		info: info,
		log:  zap.NewNop(),
	}
}

// WithLogger sets the logger receiving per-function debug output.
func (c *Checker) WithLogger(log *zap.Logger) *Checker {
	if log != nil {
		c.log = log
	}

	return c
}

// UnknownExemption is an exempted name that is not a field of the target.
type UnknownExemption struct {
	Name       string
	Suggestion string // closest field name, may be empty
}

// FuncResult is the outcome of checking one mapping function.
type FuncResult struct {
	Func       *types.Func
	Decl       *ast.FuncDecl
	Name       string // "Func" or "Recv.Method"
	Target     Target
	TargetType analyze.TypeID
	Exempt     []string // exempted by the directive
	Ignored    []string // exempted by the configuration
	Assigned   []string
	Missing    []string
	Unknown    []UnknownExemption
}

// Report holds the results of one Check call.
type Report struct {
	// Checked lists every mapping function that has a target, in source order.
	Checked []*FuncResult
	// Skipped lists the annotated functions without a target parameter.
	Skipped []*ast.FuncDecl

	missing []*FuncResult
	index   map[*types.Func]*FuncResult
}

func newReport() *Report {
	return &Report{index: make(map[*types.Func]*FuncResult)}
}

func (r *Report) add(res *FuncResult) {
	r.Checked = append(r.Checked, res)
	if len(res.Missing) == 0 {
		return
	}

	if _, ok := r.index[res.Func]; ok {
		return
	}

	r.index[res.Func] = res
	r.missing = append(r.missing, res)
}

// Missing returns the functions with unassigned fields, in source order.
func (r *Report) Missing() []*FuncResult {
	return r.missing
}

// MissingFor returns the unassigned fields of fn.
func (r *Report) MissingFor(fn *types.Func) ([]string, bool) {
	res, ok := r.index[fn]
	if !ok {
		return nil, false
	}

	return res.Missing, true
}

// IsCandidate reports whether decl carries the directive and has a body.
// It only looks at the comment text.
func (c *Checker) IsCandidate(decl *ast.FuncDecl) bool {
	return decl.Body != nil && directive.HasMarker(decl.Doc, c.cfg.Directive)
}

// Select returns the candidate function declarations of files in order.
func (c *Checker) Select(files []*ast.File) []*ast.FuncDecl {
	var out []*ast.FuncDecl
	for _, f := range files {
		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if ok && c.IsCandidate(fd) {
				out = append(out, fd)
			}
		}
	}

	return out
}

// Check checks every candidate in files. A function whose directive cannot
// be interpreted does not stop the others: the report covers all functions
// that could be checked and the error combines every failure.
func (c *Checker) Check(files []*ast.File) (*Report, error) {
	report := newReport()

	var errs error
	for _, decl := range c.Select(files) {
		res, err := c.CheckFunc(decl)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if res == nil {
			report.Skipped = append(report.Skipped, decl)
			continue
		}

		report.add(res)
	}

	return report, errs
}

// CheckFunc checks a single candidate. It returns nil without error when
// the function has no target parameter. Errors name the function and its
// position.
func (c *Checker) CheckFunc(decl *ast.FuncDecl) (*FuncResult, error) {
	name := common.FuncName(decl)

	fn, ok := c.info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil, nil
	}

	ann, err := directive.Parse(decl.Doc, c.cfg.Directive)
	if err != nil {
		return nil, c.funcError(decl, name, fmt.Errorf("%w: %w", ErrUnsupportedExemption, err))
	}

	exempt, err := Exemptions(ann)
	if err != nil {
		return nil, c.funcError(decl, name, err)
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil, nil
	}

	target, ok := ResolveTarget(sig)
	if !ok {
		c.log.Debug("skipping mapping function without target parameter", zap.String("func", name))
		return nil, nil
	}

	targetType := target.Var.Type()
	res := &FuncResult{
		Func:       fn,
		Decl:       decl,
		Name:       name,
		Target:     target,
		TargetType: analyze.TypeIDOf(targetType),
		Exempt:     exempt,
		Ignored:    c.cfg.IgnoredFields(analyze.TypeIDOf(targetType)),
	}

	members := analyze.Members(targetType)
	universe := analyze.Properties(members, c.pkg)
	assigned := ScanAssignments(decl.Body, target.Name)
	res.Assigned = assigned.Names()

	skip := toSet(exempt, res.Ignored)
	done := toSet(res.Assigned)

	var missing common.OrderedSet
	for i := range universe {
		m := &universe[i]
		if m.CoveredBy(skip) || m.CoveredBy(done) {
			continue
		}

		missing.Add(m.Name)
	}

	res.Missing = missing.Items()

	if c.cfg.ReportUnknownExemptions() && len(members) > 0 {
		res.Unknown = unknownExemptions(exempt, members)
	}

	c.log.Debug("checked mapping function",
		zap.String("func", name),
		zap.String("target", target.Name),
		zap.Stringer("type", res.TargetType),
		zap.Strings("exempt", exempt),
		zap.Strings("assigned", res.Assigned),
		zap.Strings("missing", res.Missing))

	return res, nil
}

func (c *Checker) funcError(decl *ast.FuncDecl, name string, err error) error {
	return fmt.Errorf("%s: %s: %w", c.fset.Position(decl.Name.Pos()), name, err)
}

// unknownExemptions returns the exempted names that match neither a field
// nor an embedded field on the way to one.
func unknownExemptions(exempt []string, members []analyze.Member) []UnknownExemption {
	if len(exempt) == 0 {
		return nil
	}

	var known common.OrderedSet
	for i := range members {
		m := &members[i]
		for _, p := range m.Path {
			known.Add(p)
		}

		if m.Name != "_" {
			known.Add(m.Name)
		}
	}

	candidates := known.Items()

	var seen common.OrderedSet
	var out []UnknownExemption
	for _, name := range exempt {
		if known.Has(name) || !seen.Add(name) {
			continue
		}

		suggestion, _ := match.Suggest(name, candidates)
		out = append(out, UnknownExemption{Name: name, Suggestion: suggestion})
	}

	return out
}

func toSet(lists ...[]string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, l := range lists {
		for _, s := range l {
			set[s] = struct{}{}
		}
	}

	return set
}
