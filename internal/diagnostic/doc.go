// Package diagnostic provides structured errors and warnings collected
// across a generation run.
//
// Key capabilities:
//   - Fatal schema and variant-collision reports per record
//   - Warnings for skipped declarations (e.g. generic structs)
//   - Aggregated run reporting for the CLI
package diagnostic
