// Package plan computes the generation plan for one record schema.
//
// Planning pipeline:
//  1. Variant planning: group fields into named variant classes, default
//     names derived from the type signature, per-field overrides kept as
//     dedicated classes; reject name collisions.
//  2. Dispatch planning: build the read and mutate field-name lookup
//     tables, one entry per schema field.
//  3. Assembly: resolve the union type names and package everything
//     into a GenerationPlan for the emitter.
//
// Planning is pure and deterministic: the same schema always yields the
// same plan, variant order follows first appearance in the schema.
package plan
