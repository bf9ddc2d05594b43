package schema

// FieldDescriptor describes a single record field.
type FieldDescriptor struct {
	// Name is the field identifier, unique within the record.
	Name string
	// TypeSignature is the normalized textual form of the field's declared
	// type (e.g. "uint64", "*time.Time", "[]string"). It is the grouping
	// key for variant planning; two fields with identical signatures are
	// the same type as far as planning is concerned.
	TypeSignature string
	// VariantOverride, when non-empty, forces a dedicated variant class
	// with this name for the field.
	VariantOverride string
}

// Config holds record-level configuration directives.
type Config struct {
	// EnumName is the name of the generated read-only union type.
	// Empty means "derive from the record name".
	EnumName string
	// EnumNameMut is the name of the generated mutable union type.
	// Empty means "derive from EnumName".
	EnumNameMut string
	// Derive lists capability tags for the read-only union.
	Derive []string
	// DeriveMut lists capability tags for the mutable union.
	// Independent from Derive: requesting a capability on one side does
	// not imply it on the other.
	DeriveMut []string
}

// Record is the validated schema of one record declaration.
type Record struct {
	// Name is the record type name (e.g. "User").
	Name string
	// Fields in declaration order.
	Fields []FieldDescriptor
	// Config holds the record-level directives.
	Config Config

	index map[string]int // field name -> position in Fields
}

// New validates the extracted field list and builds a Record.
// It fails with *MalformedSchemaError on a duplicate field name or an
// empty type signature.
func New(name string, fields []FieldDescriptor, cfg Config) (*Record, error) {
	rec := &Record{
		Name:   name,
		Fields: fields,
		Config: cfg,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if f.TypeSignature == "" {
			return nil, &MalformedSchemaError{
				Record: name,
				Field:  f.Name,
				Reason: "field has an empty type signature",
			}
		}

		if _, dup := rec.index[f.Name]; dup {
			return nil, &MalformedSchemaError{
				Record: name,
				Field:  f.Name,
				Reason: "duplicate field name",
			}
		}

		rec.index[f.Name] = i
	}

	return rec, nil
}

// Field returns the descriptor for the named field, or nil if the
// record has no such field.
func (r *Record) Field(name string) *FieldDescriptor {
	i, ok := r.index[name]
	if !ok {
		return nil
	}

	return &r.Fields[i]
}

// SetVariantOverride applies an external per-field directive forcing a
// dedicated variant name. A directive referencing a field the record
// does not have fails with *MalformedSchemaError.
func (r *Record) SetVariantOverride(field, variant string) error {
	f := r.Field(field)
	if f == nil {
		return &MalformedSchemaError{
			Record: r.Name,
			Field:  field,
			Reason: "directive references unknown field",
		}
	}

	f.VariantOverride = variant

	return nil
}
