package plan

import (
	"github.com/Huterenok/fieldname-access/internal/schema"
)

// variantKey identifies one variant class during grouping. Two fields
// land in the same class only when name, signature, and origin all
// match: an override never absorbs same-typed fields without that
// override.
type variantKey struct {
	name     string
	sig      string
	override bool
}

// buildVariants groups the record's fields into variant classes.
//
// Fields without an override merge by identical type signature under
// the signature's short name. Fields with an override populate a
// dedicated class keyed by (override name, signature). Any duplicate
// among the resulting variant names aborts planning with
// *VariantNameCollisionError; merging distinct classes under one name
// would conflate distinct types under one tag.
func buildVariants(rec *schema.Record) ([]VariantClass, error) {
	classes := make(map[variantKey]*VariantClass)

	var order []variantKey

	for _, f := range rec.Fields {
		key := variantKey{
			name: f.VariantOverride,
			sig:  f.TypeSignature,
		}
		if f.VariantOverride != "" {
			key.override = true
		} else {
			key.name = shortName(f.TypeSignature)
		}

		vc := classes[key]
		if vc == nil {
			vc = &VariantClass{
				Name:          key.name,
				TypeSignature: key.sig,
				FromOverride:  key.override,
			}
			classes[key] = vc
			order = append(order, key)
		}

		vc.Fields = append(vc.Fields, f.Name)
	}

	byName := make(map[string]variantKey, len(order))
	out := make([]VariantClass, 0, len(order))

	for _, key := range order {
		if prev, clash := byName[key.name]; clash {
			return nil, &VariantNameCollisionError{
				Record:  rec.Name,
				Variant: key.name,
				First:   *classes[prev],
				Second:  *classes[key],
			}
		}

		byName[key.name] = key
		out = append(out, *classes[key])
	}

	return out, nil
}
