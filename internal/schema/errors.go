package schema

import "fmt"

// MalformedSchemaError reports a structurally invalid record schema:
// duplicate field names, empty type signatures, or a directive that
// references a field absent from the record.
type MalformedSchemaError struct {
	// Record is the record type name.
	Record string
	// Field is the offending field or directive target.
	Field string
	// Reason is a short human-readable description.
	Reason string
}

// Error implements the error interface.
func (e *MalformedSchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed schema %s: %s", e.Record, e.Reason)
	}

	return fmt.Sprintf("malformed schema %s: field %q: %s", e.Record, e.Field, e.Reason)
}
