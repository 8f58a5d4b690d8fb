package derive

import (
	"go/token"
	"strings"
)

// Param is a method parameter. Type is the bare type name; framework types
// are qualified when the implementation is built.
type Param struct {
	Name string
	Type string
}

// Operation is one method of realm.MockComponent.
type Operation struct {
	Name    string
	Params  []Param
	Results []string
}

// Operations lists the MockComponent methods in the order they are emitted.
// The signatures must match realm.MockComponent exactly.
var Operations = []Operation{
	{
		Name:   "View",
		Params: []Param{{Name: "frame", Type: "Frame"}, {Name: "area", Type: "Rect"}},
	},
	{
		Name:    "Query",
		Params:  []Param{{Name: "attr", Type: "Attribute"}},
		Results: []string{"AttrValue", "bool"},
	},
	{
		Name:   "Attr",
		Params: []Param{{Name: "attr", Type: "Attribute"}, {Name: "value", Type: "AttrValue"}},
	},
	{
		Name:    "State",
		Results: []string{"State"},
	},
	{
		Name:    "Perform",
		Params:  []Param{{Name: "cmd", Type: "Cmd"}},
		Results: []string{"CmdResult"},
	},
}

// InterfaceName is the framework interface the operations implement.
const InterfaceName = "MockComponent"

// paramNames returns every parameter name used by Operations.
func paramNames() map[string]bool {
	names := make(map[string]bool)
	for _, op := range Operations {
		for _, p := range op.Params {
			names[p.Name] = true
		}
	}

	return names
}

// qualify prefixes exported (framework) type names with qualifier.
// Predeclared types such as bool are left alone.
func qualify(qualifier, typeName string) string {
	if qualifier == "" || !token.IsExported(typeName) {
		return typeName
	}

	return qualifier + "." + typeName
}

// Method is one generated forwarding method.
type Method struct {
	Name    string
	Params  []Param  // Types are qualified
	Results []string // Types are qualified
	// Call is the single forwarding call, e.g. "i.component.View(frame, area)".
	Call string
}

// Returns reports whether the method returns the call's results.
func (m Method) Returns() bool {
	return len(m.Results) > 0
}

// ParamList renders the parameter list without parentheses.
func (m Method) ParamList() string {
	parts := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		parts = append(parts, p.Name+" "+p.Type)
	}

	return strings.Join(parts, ", ")
}

// ResultList renders the result list including parentheses when needed,
// with a leading space, or "" for no results.
func (m Method) ResultList() string {
	switch len(m.Results) {
	case 0:
		return ""
	case 1:
		return " " + m.Results[0]
	default:
		return " (" + strings.Join(m.Results, ", ") + ")"
	}
}

// Body returns the method body statement.
func (m Method) Body() string {
	if m.Returns() {
		return "return " + m.Call
	}

	return m.Call
}

func buildMethod(op Operation, qualifier, target string) Method {
	m := Method{Name: op.Name}

	args := make([]string, 0, len(op.Params))
	for _, p := range op.Params {
		m.Params = append(m.Params, Param{Name: p.Name, Type: qualify(qualifier, p.Type)})
		args = append(args, p.Name)
	}

	for _, r := range op.Results {
		m.Results = append(m.Results, qualify(qualifier, r))
	}

	m.Call = target + "." + op.Name + "(" + strings.Join(args, ", ") + ")"

	return m
}
