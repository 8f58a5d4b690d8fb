package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
)

// ParseFile parses a single Go source file and describes its type declarations.
// src follows go/parser.ParseFile: nil reads filename from disk.
func ParseFile(filename string, src any) ([]*StructDescriptor, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	pkg := PackageRef{
		Path: file.Name.Name,
		Name: file.Name.Name,
		Dir:  filepath.Dir(filename),
	}

	return DescribeFile(fset, pkg, file), nil
}

// DescribeFile returns a descriptor for every type declaration in file.
// Generated files are skipped so previous output is never analysed again.
func DescribeFile(fset *token.FileSet, pkg PackageRef, file *ast.File) []*StructDescriptor {
	if ast.IsGenerated(file) {
		return nil
	}

	var out []*StructDescriptor

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// A lone "type X ..." carries its comment on the GenDecl.
			doc := ts.Doc
			if doc == nil && !gd.Lparen.IsValid() {
				doc = gd.Doc
			}

			out = append(out, describeTypeSpec(fset, pkg, ts, doc))
		}
	}

	return out
}

func describeTypeSpec(fset *token.FileSet, pkg PackageRef, ts *ast.TypeSpec, doc *ast.CommentGroup) *StructDescriptor {
	desc := &StructDescriptor{
		Name:       ts.Name.Name,
		Package:    pkg,
		TypeParams: typeParams(ts.TypeParams),
		Directives: parseDirectives(fset, doc),
		Pos:        fset.Position(ts.Pos()),
	}

	if ts.Assign.IsValid() {
		desc.Shape = ShapeAlias
		return desc
	}

	switch t := ts.Type.(type) {
	case *ast.StructType:
		desc.Fields = structFields(t)
		if len(desc.Fields) == 0 {
			desc.Shape = ShapeEmptyStruct
		} else {
			desc.Shape = ShapeStruct
		}

	case *ast.InterfaceType:
		desc.Shape = ShapeInterface

	default:
		desc.Shape = ShapeDefined
	}

	return desc
}

func typeParams(list *ast.FieldList) []TypeParam {
	if list == nil {
		return nil
	}

	var out []TypeParam

	for _, f := range list.List {
		constraint := types.ExprString(f.Type)
		for _, name := range f.Names {
			out = append(out, TypeParam{Name: name.Name, Constraint: constraint})
		}
	}

	return out
}

func structFields(st *ast.StructType) []Field {
	if st.Fields == nil {
		return nil
	}

	var out []Field

	for _, f := range st.Fields.List {
		typ := types.ExprString(f.Type)

		if len(f.Names) == 0 {
			out = append(out, Field{
				Name:     embeddedName(f.Type),
				Type:     typ,
				Embedded: true,
				Index:    len(out),
			})

			continue
		}

		for _, name := range f.Names {
			out = append(out, Field{
				Name:  name.Name,
				Type:  typ,
				Index: len(out),
			})
		}
	}

	return out
}

// embeddedName returns the implicit field name of an embedded type:
// the unqualified type name without pointer or type arguments.
func embeddedName(expr ast.Expr) string {
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return e.Sel.Name
		case *ast.Ident:
			return e.Name
		case *ast.ParenExpr:
			expr = e.X
		default:
			return types.ExprString(expr)
		}
	}
}

// parseDirectives collects //realm:<name> [payload] lines from a doc comment.
func parseDirectives(fset *token.FileSet, doc *ast.CommentGroup) []Directive {
	if doc == nil {
		return nil
	}

	var out []Directive

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//"+DirectivePrefix)
		if !ok {
			continue
		}

		name, payload := text, ""
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			name, payload = text[:i], text[i+1:]
		}

		out = append(out, Directive{
			Name:    name,
			Payload: strings.TrimSpace(payload),
			Pos:     fset.Position(c.Pos()),
		})
	}

	return out
}
