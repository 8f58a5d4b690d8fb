// Package analyze provides package loading and struct descriptor extraction.
//
// It uses golang.org/x/tools/go/packages and go/ast to find every type
// declaration in the loaded packages, together with the realm directives
// attached to its doc comment.
//
// Key types:
//   - StructDescriptor: name, generic parameters, shape, fields and directives
//   - Field: field name (embedded fields are named by their type) and type expression
//   - Directive: a //realm:<name> comment line and its raw payload
//   - Catalog: all descriptors of one analysis run, grouped by package
package analyze
