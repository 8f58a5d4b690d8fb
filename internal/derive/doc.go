// Package derive turns a struct descriptor into a forwarding implementation
// of realm.MockComponent.
//
// Derive resolves the delegate field (the //realm:component directive or the
// default name "component"), checks that the declaration is a struct with
// named fields and that the field exists, then describes the five methods
// View, Query, Attr, State and Perform. Each method body is a single call to
// the same method on the delegate field.
//
// Derive is pure: it neither reads files nor logs. Any failure is returned as
// an *Error and no implementation is produced.
package derive
