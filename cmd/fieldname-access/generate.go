package main

import (
	"errors"
	"fmt"

	"github.com/Huterenok/fieldname-access/internal/analyze"
	"github.com/Huterenok/fieldname-access/internal/config"
	"github.com/Huterenok/fieldname-access/internal/diagnostic"
	"github.com/Huterenok/fieldname-access/internal/gen"
	"github.com/Huterenok/fieldname-access/internal/plan"
	"github.com/Huterenok/fieldname-access/internal/schema"
)

// generate runs the extraction -> configuration -> planning -> emission
// pipeline. Records are independent: a failure in one becomes a
// diagnostic and the rest still generate.
func generate(patterns []string, configPath, suffix string, verbose bool) ([]gen.GeneratedFile, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	var cfg *config.File

	if configPath != "" {
		var err error

		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, diags, err
		}
	}

	analyzer := analyze.NewAnalyzer()

	decls, err := analyzer.LoadRecords(patterns...)
	if err != nil {
		return nil, diags, err
	}

	diags.Merge(analyzer.Diagnostics())

	matched := make(map[string]bool)

	generator := gen.NewGenerator(gen.Config{Suffix: suffix})

	var files []gen.GeneratedFile

	for _, decl := range decls {
		if entry := findEntry(cfg, decl); entry != nil {
			matched[entry.Type] = true

			if err := entry.Apply(decl.Record); err != nil {
				addPlanError(&diags, decl.Record.Name, err)
				continue
			}
		}

		p, err := plan.Build(decl.Record)
		if err != nil {
			addPlanError(&diags, decl.Record.Name, err)
			continue
		}

		file, err := generator.Generate(decl, p)
		if err != nil {
			diags.AddError(diagnostic.CodeUnknownCapability, err.Error(), decl.Record.Name, "")
			continue
		}

		if verbose {
			fmt.Printf("planned %s: %d variants, %d fields\n",
				decl.ID(), len(p.Variants), len(p.ReadDispatch))
		}

		files = append(files, *file)
	}

	// Config entries that matched no declaration are schema errors too:
	// the directive references a record that does not exist.
	if cfg != nil {
		for _, entry := range cfg.Records {
			if !matched[entry.Type] {
				diags.AddError(diagnostic.CodeUnknownRecord,
					"config entry matches no loaded record", entry.Type, "")
			}
		}
	}

	return files, diags, nil
}

// findEntry returns the config entry targeting decl, or nil.
func findEntry(cfg *config.File, decl *analyze.RecordDecl) *config.RecordEntry {
	if cfg == nil {
		return nil
	}

	for i := range cfg.Records {
		if cfg.Records[i].Matches(decl.PkgPath, decl.PkgName, decl.Record.Name) {
			return &cfg.Records[i]
		}
	}

	return nil
}

// addPlanError files a planning failure under the matching diagnostic code.
func addPlanError(diags *diagnostic.Diagnostics, record string, err error) {
	var malformed *schema.MalformedSchemaError

	var collision *plan.VariantNameCollisionError

	switch {
	case errors.As(err, &malformed):
		diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), record, malformed.Field)
	case errors.As(err, &collision):
		diags.AddError(diagnostic.CodeVariantCollision, err.Error(), record, collision.Variant)
	default:
		diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), record, "")
	}
}

// writeOut persists the generated files.
func writeOut(files []gen.GeneratedFile) error {
	return gen.WriteFiles(files)
}
