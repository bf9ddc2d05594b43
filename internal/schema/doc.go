// Package schema holds the in-memory model of one record declaration:
// its ordered field list and the configuration attached to the record
// and to individual fields.
//
// The package performs structural validation only (duplicate names,
// empty signatures, directives against unknown fields). All grouping
// and naming policy lives in the plan package.
package schema
