package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"

	"component-derive/internal/derive"
	"component-derive/internal/match"
)

// Header is the first line of every generated file.
const Header = "// Code generated by component-derive. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the snake-cased type name to form the file name.
	Suffix string
	// OutputDir overrides the package directory as destination when set.
	OutputDir string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
	// AssertInterface emits "var _ MockComponent = (*T)(nil)" for non-generic types.
	AssertInterface bool
	// DebugUnformatted writes the raw template output next to the destination
	// when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           "_component.go",
		GenerateComments: true,
		AssertInterface:  true,
	}
}

// Generator generates Go code from derived implementations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultGeneratorConfig().Suffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "ip_address_input_component.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
	// TypeName is the struct the file implements MockComponent for.
	TypeName string
}

// Path returns the full destination path.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders one file per implementation. It fails without returning
// any file if two types map to the same destination or a file cannot be
// formatted.
func (g *Generator) Generate(impls []*derive.Implementation) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(impls))
	owners := make(map[string]string)

	for _, impl := range impls {
		file, err := g.GenerateOne(impl)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", impl.Struct, err)
		}

		if prev, ok := owners[file.Path()]; ok {
			return nil, fmt.Errorf("types %s and %s both generate %s", prev, impl.Struct.Name, file.Path())
		}

		owners[file.Path()] = impl.Struct.Name
		files = append(files, *file)
	}

	return files, nil
}

// GenerateOne renders the file for a single implementation.
func (g *Generator) GenerateOne(impl *derive.Implementation) (*GeneratedFile, error) {
	data := g.buildTemplateData(impl)

	dir := g.config.OutputDir
	if dir == "" {
		dir = impl.Struct.Package.Dir
	}

	file := &GeneratedFile{
		Dir:      dir,
		Filename: g.filename(impl),
		TypeName: impl.Struct.Name,
	}

	var buf bytes.Buffer
	if err := componentTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the raw output around to aid debugging.
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(file.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// templateData holds all data needed for the component template.
type templateData struct {
	Header           string
	PackageName      string
	Import           *importSpec
	Assert           bool
	Interface        string
	TypeName         string
	Receiver         string
	ReceiverType     string
	Field            string
	GenerateComments bool
	Methods          []derive.Method
}

// buildTemplateData constructs the template data from an implementation.
func (g *Generator) buildTemplateData(impl *derive.Implementation) *templateData {
	data := &templateData{
		Header:           Header,
		PackageName:      impl.Struct.Package.Name,
		Assert:           g.config.AssertInterface && !impl.Struct.IsGeneric(),
		Interface:        impl.Interface(),
		TypeName:         impl.Struct.Name,
		Receiver:         impl.Receiver,
		ReceiverType:     impl.ReceiverType(),
		Field:            impl.Delegate.Field.Name,
		GenerateComments: g.config.GenerateComments,
		Methods:          impl.Methods,
	}

	if impl.Framework.Path != "" {
		data.Import = &importSpec{
			Alias: impl.Qualifier,
			Path:  impl.Framework.Path,
		}
	}

	return data
}

func (g *Generator) filename(impl *derive.Implementation) string {
	return match.SnakeCase(impl.Struct.Name) + g.config.Suffix
}

var componentTemplate = template.Must(template.New("component").Parse(`{{.Header}}

package {{.PackageName}}
{{if .Import}}
import {{.Import.Alias}} "{{.Import.Path}}"
{{end}}
{{- if .Assert}}
var _ {{.Interface}} = (*{{.TypeName}})(nil)
{{end}}
{{- range .Methods}}
{{if $.GenerateComments}}// {{.Name}} forwards to {{$.Receiver}}.{{$.Field}}.{{.Name}}.
{{end}}func ({{$.Receiver}} *{{$.ReceiverType}}) {{.Name}}({{.ParamList}}){{.ResultList}} {
	{{.Body}}
}
{{end}}`))
