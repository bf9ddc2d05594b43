package plan

import (
	"github.com/Huterenok/fieldname-access/internal/schema"
)

// buildDispatch builds one by-name lookup table over already-classified
// fields: exactly one entry per schema field, in schema order, pointing
// at the variant class that contains it.
//
// It is called once for the read table and once for the mutate table.
// Both calls see the same classification, so the tables are guaranteed
// to have identical key sets and identical variant groupings; only the
// reference mutability of the accessor emitted from each table differs.
func buildDispatch(rec *schema.Record, variants []VariantClass) []DispatchEntry {
	fieldVariant := make(map[string]string, len(rec.Fields))
	for _, vc := range variants {
		for _, name := range vc.Fields {
			fieldVariant[name] = vc.Name
		}
	}

	entries := make([]DispatchEntry, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		entries = append(entries, DispatchEntry{
			FieldName: f.Name,
			Variant:   fieldVariant[f.Name],
		})
	}

	return entries
}
