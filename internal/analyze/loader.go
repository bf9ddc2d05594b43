package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/Huterenok/fieldname-access/internal/diagnostic"
	"github.com/Huterenok/fieldname-access/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts marked record declarations.
type Analyzer struct {
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Diagnostics returns everything collected during extraction. Records
// that failed directive parsing or schema validation appear here and
// are absent from the LoadRecords result.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// LoadRecords loads the specified packages and extracts every struct
// carrying a //fieldaccess:generate directive. Patterns are standard Go
// package patterns (e.g., "./...", "github.com/x/y/examples/basic").
// The result is sorted by package path and record name so repeated runs
// see the same order.
func (a *Analyzer) LoadRecords(patterns ...string) ([]*RecordDecl, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var decls []*RecordDecl
	for _, pkg := range pkgs {
		decls = append(decls, a.processPackage(pkg)...)
	}

	sort.Slice(decls, func(i, j int) bool {
		return decls[i].ID() < decls[j].ID()
	})

	return decls, nil
}

// processPackage walks the package's syntax trees looking for marked
// type declarations.
func (a *Analyzer) processPackage(pkg *packages.Package) []*RecordDecl {
	var decls []*RecordDecl

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				args, marked := findDirective(docLines(gen, ts))
				if !marked {
					continue
				}

				if rd := a.extractRecord(pkg, ts, args); rd != nil {
					decls = append(decls, rd)
				}
			}
		}
	}

	return decls
}

// docLines collects the doc comment lines attached to a type spec,
// whether the comment sits on the spec or on its enclosing decl.
func docLines(gen *ast.GenDecl, ts *ast.TypeSpec) []string {
	var lines []string

	for _, group := range []*ast.CommentGroup{gen.Doc, ts.Doc} {
		if group == nil {
			continue
		}

		for _, c := range group.List {
			lines = append(lines, c.Text)
		}
	}

	return lines
}

// extractRecord builds the schema for one marked declaration. Failures
// are reported through diagnostics and yield nil; extraction of other
// records continues.
func (a *Analyzer) extractRecord(pkg *packages.Package, ts *ast.TypeSpec, args string) *RecordDecl {
	name := ts.Name.Name

	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		a.diags.AddError(diagnostic.CodeUnsupportedDecl,
			"declaration not found in package scope", name, "")
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		a.diags.AddError(diagnostic.CodeUnsupportedDecl,
			"directive is only valid on defined struct types", name, "")
		return nil
	}

	if named.TypeParams().Len() > 0 {
		a.diags.AddWarning(diagnostic.CodeUnsupportedDecl,
			"generic structs are not supported, skipping", name, "")
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		a.diags.AddError(diagnostic.CodeUnsupportedDecl,
			"directive is only valid on struct types", name, "")
		return nil
	}

	cfg, err := parseRecordDirective(name, args)
	if err != nil {
		a.diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), name, "")
		return nil
	}

	qual := func(p *types.Package) string {
		if p == pkg.Types {
			return ""
		}

		return p.Name()
	}

	imports := make(map[string]string)

	var fields []schema.FieldDescriptor

	for i := range st.NumFields() {
		f := st.Field(i)

		tag := reflect.StructTag(st.Tag(i)).Get(fieldTagKey)

		opts, err := parseFieldTag(name, f.Name(), tag)
		if err != nil {
			a.diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), name, f.Name())
			return nil
		}

		if opts.Skip {
			continue
		}

		fields = append(fields, schema.FieldDescriptor{
			Name:            f.Name(),
			TypeSignature:   types.TypeString(f.Type(), qual),
			VariantOverride: opts.Variant,
		})

		collectImports(f.Type(), pkg.Types, imports)
	}

	rec, err := schema.New(name, fields, cfg)
	if err != nil {
		a.diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), name, "")
		return nil
	}

	pos := pkg.Fset.Position(ts.Pos())

	return &RecordDecl{
		PkgPath: pkg.PkgPath,
		PkgName: pkg.Name,
		Dir:     filepath.Dir(pos.Filename),
		Record:  rec,
		Imports: sortedImports(imports),
	}
}

// collectImports records every package referenced by t other than the
// declaring package itself.
func collectImports(t types.Type, self *types.Package, seen map[string]string) {
	switch t := t.(type) {
	case *types.Basic:
		// Nothing to import.

	case *types.Pointer:
		collectImports(t.Elem(), self, seen)

	case *types.Slice:
		collectImports(t.Elem(), self, seen)

	case *types.Array:
		collectImports(t.Elem(), self, seen)

	case *types.Chan:
		collectImports(t.Elem(), self, seen)

	case *types.Map:
		collectImports(t.Key(), self, seen)
		collectImports(t.Elem(), self, seen)

	case *types.Alias:
		if p := t.Obj().Pkg(); p != nil && p != self {
			seen[p.Path()] = p.Name()
		}

	case *types.Named:
		if p := t.Obj().Pkg(); p != nil && p != self {
			seen[p.Path()] = p.Name()
		}

		for i := range t.TypeArgs().Len() {
			collectImports(t.TypeArgs().At(i), self, seen)
		}

	case *types.Signature:
		for i := range t.Params().Len() {
			collectImports(t.Params().At(i).Type(), self, seen)
		}

		for i := range t.Results().Len() {
			collectImports(t.Results().At(i).Type(), self, seen)
		}

	case *types.Struct:
		for i := range t.NumFields() {
			collectImports(t.Field(i).Type(), self, seen)
		}

	case *types.Interface:
		for i := range t.NumEmbeddeds() {
			collectImports(t.EmbeddedType(i), self, seen)
		}

		for i := range t.NumExplicitMethods() {
			collectImports(t.ExplicitMethod(i).Type(), self, seen)
		}
	}
}

func sortedImports(seen map[string]string) []ImportRef {
	refs := make([]ImportRef, 0, len(seen))
	for path, name := range seen {
		refs = append(refs, ImportRef{Path: path, Name: name})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Path < refs[j].Path
	})

	return refs
}
