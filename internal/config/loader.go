package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML directives file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates its shape.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// validate performs shape-level checks on the parsed file. Checks that
// need loaded declarations (unknown record, unknown field) happen when
// entries are applied.
func validate(f *File) error {
	seen := make(map[string]struct{}, len(f.Records))

	for i := range f.Records {
		e := &f.Records[i]

		if e.Type == "" {
			return fmt.Errorf("records[%d]: missing type", i)
		}

		if _, dup := seen[e.Type]; dup {
			return fmt.Errorf("records[%d]: duplicate entry for type %q", i, e.Type)
		}

		seen[e.Type] = struct{}{}

		for field, variant := range e.Fields {
			if variant == "" {
				return fmt.Errorf("records[%d]: empty variant override for field %q", i, field)
			}
		}
	}

	return nil
}
