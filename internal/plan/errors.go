package plan

import (
	"fmt"
	"strings"
)

// VariantNameCollisionError reports two variant classes that would end
// up with the same name in the generated union: either two distinct
// type signatures reduce to the same default short name, or an override
// clashes with another variant. Both classes are carried so the caller
// can disambiguate with an explicit override.
type VariantNameCollisionError struct {
	// Record is the record type name.
	Record string
	// Variant is the contested variant name.
	Variant string
	// First and Second are the colliding classes, in schema order.
	First  VariantClass
	Second VariantClass
}

// Error implements the error interface.
func (e *VariantNameCollisionError) Error() string {
	return fmt.Sprintf(
		"variant name collision in %s: %q claimed by %s (fields %s) and %s (fields %s); add a variant override to disambiguate",
		e.Record, e.Variant,
		e.First.TypeSignature, strings.Join(e.First.Fields, ", "),
		e.Second.TypeSignature, strings.Join(e.Second.Fields, ", "),
	)
}
