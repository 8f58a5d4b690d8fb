package plan

import (
	"errors"
	"fmt"

	"component-derive/internal/analyze"
	"component-derive/internal/derive"
	"component-derive/internal/diagnostic"
)

// knownDirectives are the realm: directives this tool understands.
var knownDirectives = map[string]bool{
	analyze.DirectiveDerive:    true,
	analyze.DirectiveComponent: true,
}

// Selection lists declarations to generate in addition to the marked ones.
type Selection struct {
	Types []string
}

// PackagePlan holds the implementations derived for one package.
type PackagePlan struct {
	Package         analyze.PackageRef
	Implementations []*derive.Implementation
	// Failed is set when any selected declaration of the package failed;
	// Implementations is then empty.
	Failed bool
}

// Plan is the outcome of Build.
type Plan struct {
	Packages    []*PackagePlan
	Diagnostics diagnostic.Diagnostics
}

// HasErrors reports whether any declaration failed.
func (p *Plan) HasErrors() bool {
	return p.Diagnostics.HasErrors()
}

// Implementations returns the implementations of every package that did not fail.
func (p *Plan) Implementations() []*derive.Implementation {
	var out []*derive.Implementation
	for _, pp := range p.Packages {
		if !pp.Failed {
			out = append(out, pp.Implementations...)
		}
	}

	return out
}

// Build derives an implementation for every selected declaration in cat.
func Build(cat *analyze.Catalog, sel Selection, opts derive.Options) *Plan {
	p := &Plan{}
	byPath := make(map[string]*PackagePlan)

	packageFor := func(ref analyze.PackageRef) *PackagePlan {
		pp, ok := byPath[ref.Path]
		if !ok {
			pp = &PackagePlan{Package: ref}
			byPath[ref.Path] = pp
			p.Packages = append(p.Packages, pp)
		}

		return pp
	}

	wanted := make(map[string]bool, len(sel.Types))
	for _, name := range sel.Types {
		wanted[name] = true
	}

	found := make(map[string]bool)

	for _, desc := range cat.Structs {
		p.checkDirectiveNames(desc)

		if !desc.HasDirective(analyze.DirectiveDerive) && !wanted[desc.Name] {
			if desc.HasDirective(analyze.DirectiveComponent) {
				p.Diagnostics.Add(diagnostic.Diagnostic{
					Severity: diagnostic.SeverityWarning,
					Code:     diagnostic.CodeDirectiveUnused,
					Message:  "realm:component directive without realm:derive; nothing is generated",
					Struct:   desc.Name,
					Position: desc.Pos.String(),
				})
			}

			continue
		}

		found[desc.Name] = true
		pp := packageFor(desc.Package)

		impl, err := derive.Derive(desc, opts)
		if err != nil {
			p.addDeriveError(desc, err)
			pp.Failed = true

			continue
		}

		pp.Implementations = append(pp.Implementations, impl)
	}

	seen := make(map[string]bool)
	for _, name := range sel.Types {
		if found[name] || seen[name] {
			continue
		}

		seen[name] = true
		p.Diagnostics.AddError(diagnostic.CodeTypeNotFound,
			fmt.Sprintf("type %s is not declared in the loaded packages", name), name, "")
	}

	// An unresolved -type cannot be pinned to a package: nothing is generated.
	failAll := len(seen) > 0

	for _, pp := range p.Packages {
		if failAll {
			pp.Failed = true
		}

		if pp.Failed {
			pp.Implementations = nil
		}
	}

	return p
}

func (p *Plan) checkDirectiveNames(desc *analyze.StructDescriptor) {
	for _, d := range desc.Directives {
		if knownDirectives[d.Name] {
			continue
		}

		p.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.CodeDirectiveUnknown,
			Message:  fmt.Sprintf("unknown directive %s%s is ignored", analyze.DirectivePrefix, d.Name),
			Struct:   desc.Name,
			Position: d.Pos.String(),
		})
	}
}

func (p *Plan) addDeriveError(desc *analyze.StructDescriptor, err error) {
	var derr *derive.Error
	if !errors.As(err, &derr) {
		p.Diagnostics.Add(diagnostic.Diagnostic{
			Message:  err.Error(),
			Struct:   desc.Name,
			Position: desc.Pos.String(),
		})

		return
	}

	diag := diagnostic.Diagnostic{
		Code:        derr.Kind.Code(),
		Message:     derr.Message(),
		Struct:      derr.Struct,
		Field:       derr.Field,
		Suggestions: derr.Suggestions,
	}

	if derr.Pos.IsValid() {
		diag.Position = derr.Pos.String()
	}

	p.Diagnostics.Add(diag)
}
