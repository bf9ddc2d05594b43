// Package analyze provides package loading and record schema extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct declarations opted in via a //fieldaccess:generate directive
// and turn them into validated schema records.
//
// Key types:
//   - Analyzer: loads packages and extracts marked structs
//   - RecordDecl: one extracted record plus its source location and the
//     imports its field signatures reference
package analyze
