// Package gen renders derived MockComponent implementations as Go source.
//
// Generation uses text/template + go/format. Each struct gets its own file,
// named after the snake-cased type name plus a suffix, holding:
//   - the generated-code header and package clause
//   - the aliased framework import, local to this file
//   - a compile-time interface assertion (non-generic structs only)
//   - the five forwarding methods
package gen
