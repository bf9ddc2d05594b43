// Package gen emits Go source from a generation plan.
//
// For each record it produces one file in the record's own package,
// containing the read-only and mutable union types, their by-name
// accessors, and any requested capability methods. Output goes through
// go/format; unformattable output is kept in a .unformatted.go sidecar
// for debugging.
package gen
