// Package config provides the YAML directives file: an external,
// human-reviewed alternative to in-source directives and tags.
//
// Entries are matched to extracted declarations by "pkg.TypeName" and
// applied onto the record schema before planning; they win over
// anything specified in source.
package config
