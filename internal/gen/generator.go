package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/Huterenok/fieldname-access/internal/analyze"
	"github.com/Huterenok/fieldname-access/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the snake-cased record name to form the
	// output file name (e.g. "user" + "_access" + ".go").
	Suffix string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_access",
	}
}

// Generator turns generation plans into Go source files.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the record's package).
	Dir string
	// Filename is the base name of the file (e.g. "user_access.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the plan for one record declaration.
// It fails on an unknown capability tag or unformattable output; on the
// latter the raw output is kept in a sidecar file next to the intended
// destination.
func (g *Generator) Generate(decl *analyze.RecordDecl, p *plan.GenerationPlan) (*GeneratedFile, error) {
	data, err := buildTemplateData(decl, p)
	if err != nil {
		return nil, err
	}

	data.Filename = snakeCase(p.Record) + g.config.Suffix + ".go"

	var buf bytes.Buffer
	if err := accessTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", p.Record, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(decl.Dir, data.Filename, buf.Bytes())

		return nil, fmt.Errorf("formatting generated code for %s: %w", p.Record, err)
	}

	return &GeneratedFile{
		Dir:      decl.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

var accessTemplate = template.Must(template.New("access").Parse(`// Code generated by fieldname-access. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.Enum}} is a read-only view of one {{.Record}} field, tagged by variant.
type {{.Enum}} interface {
	is{{.Enum}}()
}

// {{.EnumMut}} is a mutable view of one {{.Record}} field, tagged by variant.
type {{.EnumMut}} interface {
	is{{.EnumMut}}()
}
{{range .Variants}}
// {{.ReadType}} carries a copy of a {{.Sig}} field's value.
type {{.ReadType}} struct {
	Value {{.Sig}}
}

func ({{.ReadType}}) is{{$.Enum}}() {}

// {{.MutType}} carries a pointer to a {{.Sig}} field.
type {{.MutType}} struct {
	Value *{{.Sig}}
}

func ({{.MutType}}) is{{$.EnumMut}}() {}
{{end}}{{if .ReadStringer}}{{range .Variants}}
func (v {{.ReadType}}) String() string {
	return fmt.Sprintf("{{.Name}}(%v)", v.Value)
}
{{end}}{{end}}{{if .MutStringer}}{{range .Variants}}
func (v {{.MutType}}) String() string {
	return fmt.Sprintf("{{.Name}}(%v)", *v.Value)
}
{{end}}{{end}}{{if .ReadJSON}}{{range .Variants}}
func (v {{.ReadType}}) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"variant": "{{.Name}}", "value": v.Value})
}
{{end}}{{end}}{{if .MutJSON}}{{range .Variants}}
func (v {{.MutType}}) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"variant": "{{.Name}}", "value": v.Value})
}
{{end}}{{end}}
// Field returns a read-only view of the named field.
// The second result is false when {{.Record}} has no such field.
func (r *{{.Record}}) Field(name string) ({{.Enum}}, bool) {
	switch name {
	{{range .ReadCases}}case "{{.FieldName}}":
		return {{.VariantType}}{Value: r.{{.FieldName}}}, true
	{{end}}}

	return nil, false
}

// FieldMut returns a mutable view of the named field.
// The second result is false when {{.Record}} has no such field.
func (r *{{.Record}}) FieldMut(name string) ({{.EnumMut}}, bool) {
	switch name {
	{{range .MutCases}}case "{{.FieldName}}":
		return {{.VariantType}}{Value: &r.{{.FieldName}}}, true
	{{end}}}

	return nil, false
}
`))
