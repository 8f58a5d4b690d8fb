package derive

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"component-derive/internal/common"
)

// Sentinel errors matched with errors.Is against an *Error.
var (
	ErrDirectivePayload = errors.New("invalid directive payload")
	ErrUnsupportedShape = errors.New("unsupported declaration shape")
	ErrFieldNotFound    = errors.New("delegate field not found")
)

// Kind classifies a derive failure.
type Kind int

const (
	KindDirectivePayload Kind = iota + 1
	KindUnsupportedShape
	KindFieldNotFound
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDirectivePayload:
		return "directive payload"
	case KindUnsupportedShape:
		return "unsupported shape"
	case KindFieldNotFound:
		return "field not found"
	default:
		return common.UnknownStr
	}
}

// Code returns the diagnostic code for the Kind.
func (k Kind) Code() string {
	switch k {
	case KindDirectivePayload:
		return "DIRECTIVE_PAYLOAD"
	case KindUnsupportedShape:
		return "UNSUPPORTED_SHAPE"
	case KindFieldNotFound:
		return "FIELD_NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Error reports why no implementation could be derived for a struct.
type Error struct {
	Kind   Kind
	Struct string // Name of the declaration
	Field  string // Delegate field name, when known
	Detail string
	// Suggestions are field names close to a missing Field.
	Suggestions []string
	Pos         token.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Message()
	}

	return e.Message()
}

// Message describes the failure without its source position.
func (e *Error) Message() string {
	var msg string

	switch e.Kind {
	case KindDirectivePayload:
		msg = fmt.Sprintf("invalid directive on %s: %s", e.Struct, e.Detail)
	case KindUnsupportedShape:
		msg = fmt.Sprintf("cannot derive MockComponent for %s: %s", e.Struct, e.Detail)
	case KindFieldNotFound:
		msg = fmt.Sprintf("field %q not found in struct %s", e.Field, e.Struct)
	default:
		msg = fmt.Sprintf("%s: %s", e.Struct, e.Detail)
	}

	if len(e.Suggestions) > 0 {
		quoted := make([]string, 0, len(e.Suggestions))
		for _, s := range e.Suggestions {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}

		msg += " (did you mean " + strings.Join(quoted, " or ") + "?)"
	}

	return msg
}

// Unwrap returns the sentinel error for the Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindDirectivePayload:
		return ErrDirectivePayload
	case KindUnsupportedShape:
		return ErrUnsupportedShape
	case KindFieldNotFound:
		return ErrFieldNotFound
	default:
		return nil
	}
}
