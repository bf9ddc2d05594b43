package analyze

import (
	"fmt"
	"strings"

	"github.com/Huterenok/fieldname-access/internal/schema"
)

// directiveMarker opts a struct into generation when it appears at the
// start of a doc comment line:
//
//	//fieldaccess:generate enum=UserBox derive=stringer derive_mut=stringer
const directiveMarker = "fieldaccess:generate"

// fieldTagKey is the struct tag key for per-field options:
//
//	Age uint64 `fieldaccess:"variant=MyAge"`
//	tmp string `fieldaccess:"-"`
const fieldTagKey = "fieldaccess"

// findDirective scans doc comment lines for the generate directive.
// Returns the argument string (possibly empty) and whether it was found.
func findDirective(lines []string) (string, bool) {
	for _, line := range lines {
		line = strings.TrimPrefix(line, "//")
		if rest, ok := strings.CutPrefix(line, directiveMarker); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return strings.TrimSpace(rest), true
			}
		}
	}

	return "", false
}

// parseRecordDirective parses the directive's key=value arguments into
// a record config. Recognized keys: enum, enum_mut, derive, derive_mut,
// derive_all. List values are comma-separated. derive_all fills both
// capability lists and shadows derive/derive_mut, matching the config
// file semantics.
func parseRecordDirective(record, args string) (schema.Config, error) {
	var cfg schema.Config

	var all []string

	hasAll := false

	for _, tok := range strings.Fields(args) {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return schema.Config{}, fmt.Errorf("record %s: malformed directive argument %q, want key=value", record, tok)
		}

		switch key {
		case "enum":
			cfg.EnumName = value
		case "enum_mut":
			cfg.EnumNameMut = value
		case "derive":
			cfg.Derive = splitList(value)
		case "derive_mut":
			cfg.DeriveMut = splitList(value)
		case "derive_all":
			all = splitList(value)
			hasAll = true
		default:
			return schema.Config{}, fmt.Errorf("record %s: unknown directive key %q", record, key)
		}
	}

	if hasAll {
		cfg.Derive = all
		cfg.DeriveMut = append([]string(nil), all...)
	}

	return cfg, nil
}

// fieldOptions holds the parsed per-field tag.
type fieldOptions struct {
	Variant string // explicit variant class name
	Skip    bool   // field excluded from generation
}

// parseFieldTag parses a fieldaccess struct tag value. Options are
// comma-separated: "-" excludes the field, "variant=Name" forces a
// dedicated variant class.
func parseFieldTag(record, field, tag string) (fieldOptions, error) {
	var opts fieldOptions

	if tag == "" {
		return opts, nil
	}

	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)

		switch {
		case part == "-":
			opts.Skip = true
		case strings.HasPrefix(part, "variant="):
			opts.Variant = strings.TrimPrefix(part, "variant=")
			if opts.Variant == "" {
				return opts, fmt.Errorf("record %s: field %s: empty variant name in tag", record, field)
			}
		default:
			return opts, fmt.Errorf("record %s: field %s: unknown tag option %q", record, field, part)
		}
	}

	return opts, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
