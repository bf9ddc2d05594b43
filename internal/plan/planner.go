package plan

import (
	"slices"

	"github.com/Huterenok/fieldname-access/internal/schema"
)

// Suffixes applied when union type names are not configured explicitly.
const (
	defaultEnumSuffix = "Field"
	mutSuffix         = "Mut"
)

// Build computes the generation plan for a validated record schema.
//
// It resolves the union type names, groups fields into variant classes,
// and derives the read and mutate dispatch tables. Build either fully
// succeeds or fails with *VariantNameCollisionError; there is no
// partial plan.
func Build(rec *schema.Record) (*GenerationPlan, error) {
	variants, err := buildVariants(rec)
	if err != nil {
		return nil, err
	}

	enumName := rec.Config.EnumName
	if enumName == "" {
		enumName = rec.Name + defaultEnumSuffix
	}

	enumNameMut := rec.Config.EnumNameMut
	if enumNameMut == "" {
		enumNameMut = enumName + mutSuffix
	}

	return &GenerationPlan{
		Record:       rec.Name,
		EnumName:     enumName,
		EnumNameMut:  enumNameMut,
		Derive:       slices.Clone(rec.Config.Derive),
		DeriveMut:    slices.Clone(rec.Config.DeriveMut),
		Variants:     variants,
		ReadDispatch: buildDispatch(rec, variants),
		MutDispatch:  buildDispatch(rec, variants),
	}, nil
}
