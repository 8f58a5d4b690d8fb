package derive

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-derive/internal/analyze"
)

// parseOne parses src and returns the declaration called name.
func parseOne(t *testing.T, src, name string) *analyze.StructDescriptor {
	t.Helper()

	descs, err := analyze.ParseFile("inputs.go", src)
	require.NoError(t, err)

	for _, d := range descs {
		if d.Name == name {
			return d
		}
	}

	t.Fatalf("type %s not declared", name)

	return nil
}

func TestDerive_DefaultField(t *testing.T) {
	desc := parseOne(t, `package inputs

//realm:derive
type IpAddressInput struct {
	component *textInput
}
`, "IpAddressInput")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "component", impl.Delegate.Field.Name)
	assert.False(t, impl.Delegate.FromDirective)
	assert.Equal(t, "i", impl.Receiver)
	assert.Equal(t, "realm", impl.Qualifier)
	assert.Equal(t, "IpAddressInput", impl.ReceiverType())
	assert.Equal(t, "realm.MockComponent", impl.Interface())

	require.Len(t, impl.Methods, 5)

	names := make([]string, 0, len(impl.Methods))
	for _, m := range impl.Methods {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"View", "Query", "Attr", "State", "Perform"}, names)

	view := impl.Methods[0]
	assert.Equal(t, "i.component.View(frame, area)", view.Call)
	assert.Equal(t, "i.component.View(frame, area)", view.Body())
	assert.Equal(t, "frame realm.Frame, area realm.Rect", view.ParamList())
	assert.Equal(t, "", view.ResultList())
}

func TestDerive_ForwardingSignatures(t *testing.T) {
	desc := parseOne(t, `package inputs

type Wrapper struct {
	component Backend
}
`, "Wrapper")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)

	tests := []struct {
		name    string
		params  string
		results string
		body    string
	}{
		{"View", "frame realm.Frame, area realm.Rect", "", "w.component.View(frame, area)"},
		{"Query", "attr realm.Attribute", " (realm.AttrValue, bool)", "return w.component.Query(attr)"},
		{"Attr", "attr realm.Attribute, value realm.AttrValue", "", "w.component.Attr(attr, value)"},
		{"State", "", " realm.State", "return w.component.State()"},
		{"Perform", "cmd realm.Cmd", " realm.CmdResult", "return w.component.Perform(cmd)"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := impl.Methods[i]
			assert.Equal(t, tt.name, m.Name)
			assert.Equal(t, tt.params, m.ParamList())
			assert.Equal(t, tt.results, m.ResultList())
			assert.Equal(t, tt.body, m.Body())
		})
	}
}

func TestDerive_DirectiveWinsOverDefault(t *testing.T) {
	desc := parseOne(t, `package inputs

// Labeled draws a label.
//
//realm:derive
//realm:component "inner"
type Labeled struct {
	inner     realm.MockComponent
	component realm.MockComponent
}
`, "Labeled")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "inner", impl.Delegate.Field.Name)
	assert.True(t, impl.Delegate.FromDirective)
	assert.Equal(t, "l.inner.State()", impl.Methods[3].Call)
}

func TestDerive_RawStringDirective(t *testing.T) {
	desc := parseOne(t, "package inputs\n\n//realm:component `Backend`\ntype Boxed struct {\n\tBackend Input\n}\n", "Boxed")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Backend", impl.Delegate.Field.Name)
}

func TestDerive_FieldNotFound(t *testing.T) {
	desc := parseOne(t, `package inputs

type Foo struct {
	foo Backend
}
`, "Foo")

	impl, err := Derive(desc, DefaultOptions())
	require.Error(t, err)
	assert.Nil(t, impl)
	assert.True(t, errors.Is(err, ErrFieldNotFound))
	assert.Contains(t, err.Error(), `field "component" not found in struct Foo`)

	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, KindFieldNotFound, derr.Kind)
	assert.Equal(t, "Foo", derr.Struct)
	assert.Equal(t, "component", derr.Field)
	assert.Empty(t, derr.Suggestions)
	assert.Equal(t, 3, derr.Pos.Line)
}

func TestDerive_FieldNotFoundSuggestion(t *testing.T) {
	desc := parseOne(t, `package inputs

//realm:component "inner"
type Foo struct {
	Inner Backend
	label string
}
`, "Foo")

	_, err := Derive(desc, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldNotFound))
	assert.Contains(t, err.Error(), `field "inner" not found in struct Foo`)
	assert.Contains(t, err.Error(), `did you mean "Inner"?`)
}

func TestDerive_UnsupportedShape(t *testing.T) {
	src := `package inputs

//realm:component "inner"
type Mode int

type Widget interface {
	View()
}

type Alias = Other

type Empty struct{}

type Fn func()
`

	tests := []struct {
		name  string
		shape string
	}{
		{"Mode", "defined type"},
		{"Widget", "interface"},
		{"Alias", "alias"},
		{"Empty", "empty struct"},
		{"Fn", "defined type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := parseOne(t, src, tt.name)

			impl, err := Derive(desc, DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, impl)
			assert.True(t, errors.Is(err, ErrUnsupportedShape))
			assert.Contains(t, err.Error(), "cannot derive MockComponent for "+tt.name)
			assert.Contains(t, err.Error(), tt.shape)
		})
	}
}

func TestDerive_DirectivePayload(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		detail    string
	}{
		{"bare identifier", `//realm:component inner`, "expected a single string literal, got inner"},
		{"two literals", `//realm:component "inner" "outer"`, "expected a single string literal"},
		{"rune literal", `//realm:component 'i'`, "expected a single string literal"},
		{"missing value", `//realm:component`, "got nothing"},
		{"not an identifier", `//realm:component "1inner"`, `"1inner" is not a usable field name`},
		{"blank identifier", `//realm:component "_"`, `"_" is not a usable field name`},
		{"empty literal", `//realm:component ""`, `"" is not a usable field name`},
		{"derive with arguments", "//realm:derive \"inner\"", "realm:derive takes no arguments"},
		{"repeated", "//realm:component \"inner\"\n//realm:component \"inner\"", "realm:component given 2 times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package inputs\n\n" + tt.directive + "\ntype Foo struct {\n\tinner Backend\n}\n"
			desc := parseOne(t, src, "Foo")

			impl, err := Derive(desc, DefaultOptions())
			require.Error(t, err)
			assert.Nil(t, impl)
			assert.True(t, errors.Is(err, ErrDirectivePayload))
			assert.False(t, errors.Is(err, ErrFieldNotFound))
			assert.Contains(t, err.Error(), "on Foo")
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestDerive_DirectiveCheckedBeforeShape(t *testing.T) {
	desc := parseOne(t, "package inputs\n\n//realm:component inner\ntype Mode int\n", "Mode")

	_, err := Derive(desc, DefaultOptions())
	assert.True(t, errors.Is(err, ErrDirectivePayload))
}

func TestDerive_GenericParameters(t *testing.T) {
	desc := parseOne(t, `package inputs

//realm:component "Backend"
type Boxed[C realm.MockComponent, M any] struct {
	Backend C
	Meta    M
}
`, "Boxed")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "M"}, impl.TypeParams())
	assert.Equal(t, "Boxed[C, M]", impl.ReceiverType())
	assert.Equal(t, "b", impl.Receiver)
	assert.Equal(t, "return b.Backend.Perform(cmd)", impl.Methods[4].Body())
}

func TestDerive_EmbeddedDelegate(t *testing.T) {
	desc := parseOne(t, `package inputs

//realm:component "Input"
type Masked struct {
	*widgets.Input
	mask rune
}
`, "Masked")

	impl, err := Derive(desc, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, impl.Delegate.Field.Embedded)
	assert.Equal(t, "m.Input.View(frame, area)", impl.Methods[0].Call)
}

func TestDerive_ReceiverNameCollision(t *testing.T) {
	t.Run("type parameter", func(t *testing.T) {
		desc := parseOne(t, "package inputs\n\ntype Tree[t any] struct {\n\tcomponent t\n}\n", "Tree")

		impl, err := Derive(desc, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "recv", impl.Receiver)
		assert.Equal(t, "Tree[t]", impl.ReceiverType())
	})

	t.Run("framework alias", func(t *testing.T) {
		desc := parseOne(t, "package inputs\n\ntype Widget struct {\n\tcomponent Backend\n}\n", "Widget")

		opts := DefaultOptions()
		opts.Framework.Alias = "w"

		impl, err := Derive(desc, opts)
		require.NoError(t, err)
		assert.Equal(t, "recv", impl.Receiver)
		assert.Equal(t, "frame w.Frame, area w.Rect", impl.Methods[0].ParamList())
	})

	t.Run("non-letter start", func(t *testing.T) {
		desc := parseOne(t, "package inputs\n\ntype _hidden struct {\n\tcomponent Backend\n}\n", "_hidden")

		impl, err := Derive(desc, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "recv", impl.Receiver)
	})
}

func TestDerive_TypeParamCollision(t *testing.T) {
	tests := []struct {
		name       string
		params     string
		framework  string
		wantParams []string
		wantRecv   string
	}{
		{name: "framework alias", params: "realm any", wantParams: []string{"realm1"}, wantRecv: "w"},
		{name: "method parameter", params: "attr any", wantParams: []string{"attr1"}, wantRecv: "w"},
		{name: "predeclared result type", params: "bool any", wantParams: []string{"bool1"}, wantRecv: "w"},
		{name: "fresh name taken", params: "cmd any, cmd1 any", wantParams: []string{"cmd2", "cmd1"}, wantRecv: "w"},
		{name: "unqualified framework type", params: "Frame any", framework: "inputs", wantParams: []string{"Frame1"}, wantRecv: "w"},
		{name: "receiver letter", params: "w any", wantParams: []string{"w"}, wantRecv: "recv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := parseOne(t, "package inputs\n\ntype Wrap["+tt.params+"] struct {\n\tcomponent Backend\n}\n", "Wrap")

			opts := DefaultOptions()
			if tt.framework != "" {
				opts.Framework.Path = tt.framework
			}

			impl, err := Derive(desc, opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantParams, impl.TypeParams())
			assert.Equal(t, "Wrap["+strings.Join(tt.wantParams, ", ")+"]", impl.ReceiverType())
			assert.Equal(t, tt.wantRecv, impl.Receiver)
			assert.Equal(t, []string{strings.Fields(tt.params)[0]}, desc.TypeParamNames()[:1])
		})
	}
}

func TestDerive_ConfiguredDefaultField(t *testing.T) {
	desc := parseOne(t, "package inputs\n\ntype Widget struct {\n\tbackend Backend\n}\n", "Widget")

	opts := DefaultOptions()
	opts.DefaultField = "backend"

	impl, err := Derive(desc, opts)
	require.NoError(t, err)
	assert.Equal(t, "backend", impl.Delegate.Field.Name)
}

func TestDerive_InsideFrameworkPackage(t *testing.T) {
	descs, err := analyze.ParseFile("realm.go", "package realm\n\ntype Wrapper struct {\n\tcomponent MockComponent\n}\n")
	require.NoError(t, err)
	require.Len(t, descs, 1)

	opts := DefaultOptions()
	opts.Framework.Path = "realm"

	impl, err := Derive(descs[0], opts)
	require.NoError(t, err)

	assert.Empty(t, impl.Qualifier)
	assert.Empty(t, impl.Framework.Path)
	assert.Equal(t, "MockComponent", impl.Interface())
	assert.Equal(t, " (AttrValue, bool)", impl.Methods[1].ResultList())
}

func TestParseFieldLiteral(t *testing.T) {
	name, err := ParseFieldLiteral(`"inner"`)
	require.NoError(t, err)
	assert.Equal(t, "inner", name)

	name, err = ParseFieldLiteral("`Backend`")
	require.NoError(t, err)
	assert.Equal(t, "Backend", name)

	_, err = ParseFieldLiteral(`"inner`)
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "directive payload", KindDirectivePayload.String())
	assert.Equal(t, "unsupported shape", KindUnsupportedShape.String())
	assert.Equal(t, "field not found", KindFieldNotFound.String())
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "FIELD_NOT_FOUND", KindFieldNotFound.Code())
}

func TestFramework_Name(t *testing.T) {
	assert.Equal(t, "realm", Framework{Path: "component-derive/realm"}.Name())
	assert.Equal(t, "ui", Framework{Path: "component-derive/realm", Alias: "ui"}.Name())
	assert.Equal(t, "_go", Framework{Path: "example.com/go"}.Name())
}
