package plan

// VariantClass is one named case of the generated tagged union.
type VariantClass struct {
	// Name is the variant identifier, unique within the union.
	Name string
	// TypeSignature is the field type this variant carries.
	TypeSignature string
	// Fields are the member field names, in schema order.
	Fields []string
	// FromOverride is true when the class exists because of a per-field
	// variant override rather than a type-derived default name.
	FromOverride bool
}

// DispatchEntry is one row of a by-name lookup table.
//
// The mapping is reconstructable from VariantClass.Fields, but the read
// and mutate tables are generated and consumed independently, so each
// row is modeled on its own.
type DispatchEntry struct {
	// FieldName is the lookup key.
	FieldName string
	// Variant is the name of the variant class containing the field.
	Variant string
}

// GenerationPlan is the fully resolved artifact handed to the emitter.
type GenerationPlan struct {
	// Record is the record type name.
	Record string
	// EnumName is the resolved name of the read-only union type.
	EnumName string
	// EnumNameMut is the resolved name of the mutable union type.
	EnumNameMut string
	// Derive lists capability tags requested for the read-only union.
	Derive []string
	// DeriveMut lists capability tags requested for the mutable union.
	DeriveMut []string
	// Variants is the ordered, name-unique variant class list.
	Variants []VariantClass
	// ReadDispatch maps field names to variants for the read accessor.
	ReadDispatch []DispatchEntry
	// MutDispatch maps field names to variants for the mutate accessor.
	// Identical key set and grouping as ReadDispatch by construction;
	// only the reference mutability of the emitted accessor differs.
	MutDispatch []DispatchEntry
}

// Variant returns the variant class with the given name, or nil.
func (p *GenerationPlan) Variant(name string) *VariantClass {
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			return &p.Variants[i]
		}
	}

	return nil
}
