package gen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/Huterenok/fieldname-access/internal/analyze"
	"github.com/Huterenok/fieldname-access/internal/common"
	"github.com/Huterenok/fieldname-access/internal/plan"
)

// Capability tags the emitter understands.
const (
	CapStringer = "stringer" // String() string per variant case
	CapJSON     = "json"     // MarshalJSON per variant case
)

// templateData holds all data needed for the access template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	Record      string
	Enum        string
	EnumMut     string
	Variants    []variantData
	ReadCases   []caseData
	MutCases    []caseData

	ReadStringer bool
	MutStringer  bool
	ReadJSON     bool
	MutJSON      bool
}

// importSpec is one import line of the generated file.
type importSpec struct {
	Path  string
	Alias string // empty unless the package name differs from the path base
}

// variantData is one variant class rendered on both union sides.
type variantData struct {
	Name     string // variant name, e.g. "String"
	Sig      string // carried type signature, e.g. "string"
	ReadType string // read-side case type, e.g. "UserFieldString"
	MutType  string // mut-side case type, e.g. "UserFieldMutString"
}

// caseData is one switch arm of an accessor.
type caseData struct {
	FieldName   string
	VariantType string
}

// buildTemplateData flattens a plan into template inputs.
func buildTemplateData(decl *analyze.RecordDecl, p *plan.GenerationPlan) (*templateData, error) {
	data := &templateData{
		PackageName: decl.PkgName,
		Record:      p.Record,
		Enum:        p.EnumName,
		EnumMut:     p.EnumNameMut,
	}

	var err error

	data.ReadStringer, data.ReadJSON, err = capabilityFlags(p.Record, p.Derive)
	if err != nil {
		return nil, err
	}

	data.MutStringer, data.MutJSON, err = capabilityFlags(p.Record, p.DeriveMut)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]variantData, len(p.Variants))

	for _, vc := range p.Variants {
		vd := variantData{
			Name:     vc.Name,
			Sig:      vc.TypeSignature,
			ReadType: p.EnumName + vc.Name,
			MutType:  p.EnumNameMut + vc.Name,
		}
		data.Variants = append(data.Variants, vd)
		byName[vc.Name] = vd
	}

	for _, e := range p.ReadDispatch {
		data.ReadCases = append(data.ReadCases, caseData{
			FieldName:   e.FieldName,
			VariantType: byName[e.Variant].ReadType,
		})
	}

	for _, e := range p.MutDispatch {
		data.MutCases = append(data.MutCases, caseData{
			FieldName:   e.FieldName,
			VariantType: byName[e.Variant].MutType,
		})
	}

	data.Imports = buildImports(decl, data)

	return data, nil
}

// capabilityFlags resolves one side's capability list.
func capabilityFlags(record string, derive []string) (stringer, jsonCap bool, err error) {
	for _, tag := range derive {
		switch tag {
		case CapStringer:
			stringer = true
		case CapJSON:
			jsonCap = true
		default:
			return false, false, fmt.Errorf("record %s: unknown capability %q (known: %s, %s)",
				record, tag, CapStringer, CapJSON)
		}
	}

	return stringer, jsonCap, nil
}

// buildImports merges signature imports with capability imports.
func buildImports(decl *analyze.RecordDecl, data *templateData) []importSpec {
	imports := make(map[string]importSpec, len(decl.Imports))

	for _, ref := range decl.Imports {
		spec := importSpec{Path: ref.Path}
		if ref.Name != common.PkgAlias(ref.Path) {
			spec.Alias = ref.Name
		}

		imports[ref.Path] = spec
	}

	if data.ReadStringer || data.MutStringer {
		imports["fmt"] = importSpec{Path: "fmt"}
	}

	if data.ReadJSON || data.MutJSON {
		imports["encoding/json"] = importSpec{Path: "encoding/json"}
	}

	specs := make([]importSpec, 0, len(imports))
	for _, spec := range imports {
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

// snakeCase converts a CamelCase type name to snake_case for filenames.
// "UserProfile" -> "user_profile", "HTTPServer" -> "http_server".
func snakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 &&
				(!unicode.IsUpper(runes[i-1]) ||
					(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
