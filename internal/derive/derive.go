package derive

import (
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"component-derive/internal/analyze"
	"component-derive/internal/common"
	"component-derive/internal/match"
)

// DefaultField is the delegate field used when no directive names one.
const DefaultField = "component"

// DefaultFrameworkPath is the import path of the framework interface surface.
const DefaultFrameworkPath = "component-derive/realm"

// maxSuggestions bounds the "did you mean" list of a missing field.
const maxSuggestions = 2

// Framework identifies the package declaring MockComponent and its types.
type Framework struct {
	Path  string
	Alias string // Empty means the last element of Path
}

// Name returns the identifier generated code uses for the framework package.
func (f Framework) Name() string {
	if f.Alias != "" {
		return f.Alias
	}

	return common.PkgAlias(f.Path)
}

// Options controls how implementations are derived.
type Options struct {
	// DefaultField is the delegate field name when no directive is present.
	DefaultField string
	// Framework is the package generated code imports.
	Framework Framework
}

// DefaultOptions returns the built-in options.
func DefaultOptions() Options {
	return Options{
		DefaultField: DefaultField,
		Framework:    Framework{Path: DefaultFrameworkPath},
	}
}

// Delegate is the resolved forwarding target.
type Delegate struct {
	Field analyze.Field
	// FromDirective is true when a realm:component directive named the field.
	FromDirective bool
}

// Implementation describes the generated MockComponent methods of one struct.
type Implementation struct {
	Struct   *analyze.StructDescriptor
	Receiver string
	Delegate Delegate
	// Framework is the package to import; its Path is empty when the struct
	// lives in the framework package itself.
	Framework Framework
	// Qualifier prefixes framework type names; empty for the framework package.
	Qualifier string
	// TypeParamNames are the receiver's type parameter names. They follow the
	// declaration except where a name would shadow one the methods use.
	TypeParamNames []string
	Methods        []Method
}

// TypeParams returns the receiver's type parameter names, in order.
func (impl *Implementation) TypeParams() []string {
	return impl.TypeParamNames
}

// ReceiverType renders the receiver base type, e.g. "Boxed[C, M]".
func (impl *Implementation) ReceiverType() string {
	if !impl.Struct.IsGeneric() {
		return impl.Struct.Name
	}

	return impl.Struct.Name + "[" + strings.Join(impl.TypeParams(), ", ") + "]"
}

// Interface renders the implemented interface, qualified as in generated code.
func (impl *Implementation) Interface() string {
	return qualify(impl.Qualifier, InterfaceName)
}

// Derive builds the forwarding implementation for desc.
//
// The delegate field name comes from the single realm:component directive,
// or from opts.DefaultField when there is none. The declaration must be a
// struct with named fields and the field must exist. Every failure is an
// *Error; on failure no implementation is returned.
func Derive(desc *analyze.StructDescriptor, opts Options) (*Implementation, error) {
	defaultField := opts.DefaultField
	if defaultField == "" {
		defaultField = DefaultField
	}

	name, fromDirective, err := ResolveFieldName(desc, defaultField)
	if err != nil {
		return nil, err
	}

	if !desc.Shape.IsRecord() {
		return nil, &Error{
			Kind:   KindUnsupportedShape,
			Struct: desc.Name,
			Detail: fmt.Sprintf("expected a struct with named fields, got %s", desc.Shape),
			Pos:    desc.Pos,
		}
	}

	field, ok := desc.Field(name)
	if !ok {
		return nil, &Error{
			Kind:        KindFieldNotFound,
			Struct:      desc.Name,
			Field:       name,
			Suggestions: match.Suggest(name, desc.FieldNames(), maxSuggestions),
			Pos:         desc.Pos,
		}
	}

	impl := &Implementation{
		Struct:    desc,
		Delegate:  Delegate{Field: field, FromDirective: fromDirective},
		Framework: opts.Framework,
	}

	if desc.Package.Path == opts.Framework.Path {
		impl.Framework = Framework{}
	} else {
		impl.Qualifier = opts.Framework.Name()
	}

	reserved := signatureNames(impl.Qualifier)
	impl.TypeParamNames = receiverTypeParams(desc, reserved)
	impl.Receiver = receiverName(desc.Name, impl.TypeParamNames, reserved)

	target := impl.Receiver + "." + field.Name
	for _, op := range Operations {
		impl.Methods = append(impl.Methods, buildMethod(op, impl.Qualifier, target))
	}

	return impl, nil
}

// ResolveFieldName returns the delegate field name for desc and whether a
// directive supplied it.
func ResolveFieldName(desc *analyze.StructDescriptor, defaultField string) (string, bool, error) {
	for _, d := range desc.DirectivesNamed(analyze.DirectiveDerive) {
		if d.Payload != "" {
			return "", false, &Error{
				Kind:   KindDirectivePayload,
				Struct: desc.Name,
				Detail: "realm:derive takes no arguments, got " + d.Payload,
				Pos:    d.Pos,
			}
		}
	}

	dirs := desc.DirectivesNamed(analyze.DirectiveComponent)
	if common.IsEmpty(dirs) {
		return defaultField, false, nil
	}

	if common.IsMultiple(dirs) {
		return "", false, &Error{
			Kind:   KindDirectivePayload,
			Struct: desc.Name,
			Detail: fmt.Sprintf("realm:component given %d times, expected one", len(dirs)),
			Pos:    dirs[1].Pos,
		}
	}

	dir, _ := common.First(dirs)

	name, err := ParseFieldLiteral(dir.Payload)
	if err != nil {
		return "", false, &Error{
			Kind:   KindDirectivePayload,
			Struct: desc.Name,
			Detail: "realm:component: " + err.Error(),
			Pos:    dir.Pos,
		}
	}

	return name, true, nil
}

// ParseFieldLiteral parses a directive payload that must be exactly one Go
// string literal holding a field name, e.g. "inner" or `inner`.
func ParseFieldLiteral(payload string) (string, error) {
	if payload == "" {
		return "", errors.New("expected a string literal naming the delegate field, got nothing")
	}

	if payload[0] != '"' && payload[0] != '`' {
		return "", fmt.Errorf("expected a single string literal, got %s", payload)
	}

	name, err := strconv.Unquote(payload)
	if err != nil {
		return "", fmt.Errorf("expected a single string literal, got %s", payload)
	}

	if name == "_" || !token.IsIdentifier(name) {
		return "", fmt.Errorf("%q is not a usable field name", name)
	}

	return name, nil
}

// signatureNames returns the identifiers the generated method signatures
// refer to: parameter names, the framework qualifier and, when unqualified,
// the type names themselves (including predeclared ones such as bool).
func signatureNames(qualifier string) map[string]bool {
	names := paramNames()

	for _, op := range Operations {
		for _, p := range op.Params {
			names[typeHead(qualifier, p.Type)] = true
		}

		for _, r := range op.Results {
			names[typeHead(qualifier, r)] = true
		}
	}

	return names
}

// typeHead returns the identifier a signature type starts with: the
// qualifier, or the bare type name when unqualified.
func typeHead(qualifier, typeName string) string {
	head, _, _ := strings.Cut(qualify(qualifier, typeName), ".")
	return head
}

// receiverTypeParams returns the type parameter names for the receiver,
// renaming those in reserved to a fresh name such as T1.
func receiverTypeParams(desc *analyze.StructDescriptor, reserved map[string]bool) []string {
	names := desc.TypeParamNames()
	if len(names) == 0 {
		return nil
	}

	used := make(map[string]bool, len(names))
	for _, n := range names {
		used[n] = true
	}

	out := make([]string, len(names))
	for i, n := range names {
		if !reserved[n] {
			out[i] = n
			continue
		}

		fresh := n
		for k := 1; reserved[fresh] || used[fresh]; k++ {
			fresh = n + strconv.Itoa(k)
		}

		used[fresh] = true
		out[i] = fresh
	}

	return out
}

// receiverName picks the receiver identifier: the lower-cased first letter of
// the type name unless it clashes with a name the generated methods use.
func receiverName(typeName string, typeParams []string, reserved map[string]bool) string {
	taken := make(map[string]bool, len(reserved)+len(typeParams))
	for n := range reserved {
		taken[n] = true
	}

	for _, tp := range typeParams {
		taken[tp] = true
	}

	var candidates []string

	if r, _ := utf8.DecodeRuneInString(typeName); unicode.IsLetter(r) {
		candidates = append(candidates, string(unicode.ToLower(r)))
	}

	candidates = append(candidates, "recv", "this", "self")

	for _, c := range candidates {
		if !taken[c] {
			return c
		}
	}

	return "recv_"
}
