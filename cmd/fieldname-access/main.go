// Package main provides the CLI entrypoint for fieldname-access.
//
// fieldname-access is a codegen tool that:
//   - Parses Go packages (AST + go/types) to find structs marked with
//     a //fieldaccess:generate directive
//   - Plans a tagged-union accessor per struct (one variant per
//     distinct field type or explicit override)
//   - Generates Field/FieldMut by-name accessors next to the source
//
// Typical usage via go:generate:
//
//	//go:generate go run github.com/Huterenok/fieldname-access/cmd/fieldname-access -pkg ./...
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("fieldname-access", flag.ContinueOnError)

	var (
		pkgPatterns = fs.String("pkg", "./...", "package pattern to scan when no positional patterns are given")
		configPath  = fs.String("config", "", "optional YAML directives file, wins over in-source directives")
		suffix      = fs.String("suffix", "_access", "suffix for generated file names")
		dryRun      = fs.Bool("dry-run", false, "plan and render but do not write files")
		verbose     = fs.Bool("v", false, "verbose output")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{*pkgPatterns}
	}

	files, diags, err := generate(patterns, *configPath, *suffix, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fieldname-access:", err)
		return 1
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", d.String())
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, "error:", d.String())
	}

	if *verbose || *dryRun {
		for _, f := range files {
			fmt.Printf("generated %s/%s (%d bytes)\n", f.Dir, f.Filename, len(f.Content))
		}
	}

	if !*dryRun {
		if err := writeOut(files); err != nil {
			fmt.Fprintln(os.Stderr, "fieldname-access:", err)
			return 1
		}
	}

	if diags.HasErrors() {
		return 1
	}

	return 0
}
