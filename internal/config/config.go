package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/Huterenok/fieldname-access/internal/schema"
)

// File represents the root of a YAML directives file.
// This is the authoritative, human-reviewed configuration; entries here
// win over in-source directives and tags.
type File struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Records is a list of per-record directive sets.
	Records []RecordEntry `yaml:"records"`
}

// RecordEntry holds the directives for one record type.
type RecordEntry struct {
	// Type identifies the record (e.g., "examples/basic.User" or just
	// "basic.User"; the package part matches the import path by suffix).
	Type string `yaml:"type"`

	// Enum names the generated read-only union type.
	Enum string `yaml:"enum,omitempty"`

	// EnumMut names the generated mutable union type.
	EnumMut string `yaml:"enum_mut,omitempty"`

	// Derive lists capability tags for the read-only union.
	Derive StringArray `yaml:"derive,omitempty"`

	// DeriveMut lists capability tags for the mutable union.
	DeriveMut StringArray `yaml:"derive_mut,omitempty"`

	// DeriveAll, when present, defines both capability lists and
	// shadows Derive and DeriveMut.
	DeriveAll StringArray `yaml:"derive_all,omitempty"`

	// Fields maps field names to variant overrides.
	Fields map[string]string `yaml:"fields,omitempty"`
}

// Matches reports whether this entry targets the given declaration.
// The type part must equal the record name; the package part matches
// the full import path, an import path suffix, or the package name.
func (e *RecordEntry) Matches(pkgPath, pkgName, typeName string) bool {
	i := strings.LastIndexByte(e.Type, '.')
	if i < 0 {
		return e.Type == typeName
	}

	pkgPart, namePart := e.Type[:i], e.Type[i+1:]
	if namePart != typeName {
		return false
	}

	return pkgPart == pkgPath ||
		pkgPart == pkgName ||
		strings.HasSuffix(pkgPath, "/"+pkgPart)
}

// Apply overwrites the record's configuration with this entry's
// directives and installs its field overrides. A field directive
// referencing a field the record does not have fails with the schema
// package's *MalformedSchemaError.
func (e *RecordEntry) Apply(rec *schema.Record) error {
	if e.Enum != "" {
		rec.Config.EnumName = e.Enum
	}

	if e.EnumMut != "" {
		rec.Config.EnumNameMut = e.EnumMut
	}

	if len(e.DeriveAll) > 0 {
		rec.Config.Derive = append([]string(nil), e.DeriveAll...)
		rec.Config.DeriveMut = append([]string(nil), e.DeriveAll...)
	} else {
		if len(e.Derive) > 0 {
			rec.Config.Derive = append([]string(nil), e.Derive...)
		}

		if len(e.DeriveMut) > 0 {
			rec.Config.DeriveMut = append([]string(nil), e.DeriveMut...)
		}
	}

	// Deterministic application order for the overrides.
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if err := rec.SetVariantOverride(name, e.Fields[name]); err != nil {
			return err
		}
	}

	return nil
}

// StringArray is a string slice that can be unmarshaled from a single
// string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
