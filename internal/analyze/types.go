package analyze

import (
	"go/token"
	"strings"
)

// Directive names understood by component-derive. In source they are
// written as //realm:<name> with no space after the slashes.
const (
	DirectivePrefix    = "realm:"
	DirectiveDerive    = "derive"
	DirectiveComponent = "component"
)

//go:generate go tool stringer -type=Shape -linecomment

// Shape describes the form of a type declaration.
type Shape int

const (
	ShapeUnknown     Shape = iota // unknown
	ShapeStruct                   // struct
	ShapeEmptyStruct              // empty struct
	ShapeDefined                  // defined type
	ShapeAlias                    // alias
	ShapeInterface                // interface
)

// IsRecord reports whether the shape is a struct with named fields.
func (s Shape) IsRecord() bool {
	return s == ShapeStruct
}

// PackageRef identifies the package a type is declared in.
type PackageRef struct {
	Path string // Import path, e.g. "component-derive/examples/inputs"
	Name string // Package name
	Dir  string // Directory holding the package sources
}

// TypeParam is one generic type parameter of a declaration.
type TypeParam struct {
	Name       string
	Constraint string
}

// Field describes a struct field.
type Field struct {
	Name     string // Field name; for embedded fields the type name
	Type     string // Type expression as written in source
	Embedded bool   // Whether the field is embedded (anonymous)
	Index    int    // Position among the struct's fields
}

// Directive is a //realm: comment line attached to a type declaration.
type Directive struct {
	Name    string         // e.g. "component"
	Payload string         // Text after the name, trimmed
	Pos     token.Position // Location of the comment
}

// StructDescriptor describes a type declaration that may receive a
// generated MockComponent implementation.
type StructDescriptor struct {
	Name       string
	Package    PackageRef
	TypeParams []TypeParam
	Shape      Shape
	Fields     []Field
	Directives []Directive
	Pos        token.Position
}

// IsGeneric reports whether the declaration has type parameters.
func (d *StructDescriptor) IsGeneric() bool {
	return len(d.TypeParams) > 0
}

// TypeParamNames returns the type parameter names in declaration order.
func (d *StructDescriptor) TypeParamNames() []string {
	names := make([]string, 0, len(d.TypeParams))
	for _, tp := range d.TypeParams {
		names = append(names, tp.Name)
	}

	return names
}

// Field returns the field with the given name.
func (d *StructDescriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// FieldNames returns the field names in declaration order.
func (d *StructDescriptor) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}

	return names
}

// DirectivesNamed returns the directives with the given name.
func (d *StructDescriptor) DirectivesNamed(name string) []Directive {
	var out []Directive
	for _, dir := range d.Directives {
		if dir.Name == name {
			out = append(out, dir)
		}
	}

	return out
}

// HasDirective reports whether at least one directive with the given name is attached.
func (d *StructDescriptor) HasDirective(name string) bool {
	return len(d.DirectivesNamed(name)) > 0
}

// String returns the qualified declaration, e.g. "inputs.Box[T, U]".
func (d *StructDescriptor) String() string {
	var sb strings.Builder

	if d.Package.Name != "" {
		sb.WriteString(d.Package.Name)
		sb.WriteString(".")
	}

	sb.WriteString(d.Name)

	if d.IsGeneric() {
		sb.WriteString("[")
		sb.WriteString(strings.Join(d.TypeParamNames(), ", "))
		sb.WriteString("]")
	}

	return sb.String()
}

// Catalog holds every type declaration found by one analysis run.
type Catalog struct {
	// Structs lists descriptors in package load order, then source order.
	Structs []*StructDescriptor
	// Packages maps import paths to their package reference.
	Packages map[string]PackageRef
}

// NewCatalog creates a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Packages: make(map[string]PackageRef),
	}
}

// Add appends descriptors and records their package.
func (c *Catalog) Add(descs ...*StructDescriptor) {
	for _, d := range descs {
		c.Structs = append(c.Structs, d)
		if _, ok := c.Packages[d.Package.Path]; !ok {
			c.Packages[d.Package.Path] = d.Package
		}
	}
}

// Lookup returns every descriptor declared under name, across packages.
func (c *Catalog) Lookup(name string) []*StructDescriptor {
	var out []*StructDescriptor
	for _, d := range c.Structs {
		if d.Name == name {
			out = append(out, d)
		}
	}

	return out
}
