package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"component-derive/internal/common"
)

// Diagnostic codes.
const (
	CodeDirectivePayload = "DIRECTIVE_PAYLOAD"
	CodeUnsupportedShape = "UNSUPPORTED_SHAPE"
	CodeFieldNotFound    = "FIELD_NOT_FOUND"
	CodeTypeNotFound     = "TYPE_NOT_FOUND"
	CodeDirectiveUnused  = "DIRECTIVE_UNUSED"
	CodeDirectiveUnknown = "DIRECTIVE_UNKNOWN"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Struct names the declaration this relates to (if any).
	Struct string
	// Field names the delegate field this relates to (if any).
	Field string
	// Position is the source location, "file:line:col" (if known).
	Position string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, structName, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Struct:   structName,
		Field:    field,
	})
}

// Add appends a fully built diagnostic according to its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Severity == SeverityWarning {
		d.Warnings = append(d.Warnings, diag)
		return
	}

	diag.Severity = SeverityError
	d.Errors = append(d.Errors, diag)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Position != "" {
		prefix = append(prefix, d.Position)
	}

	if d.Struct != "" {
		prefix = append(prefix, "["+d.Struct+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
