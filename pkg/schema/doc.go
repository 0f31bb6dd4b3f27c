// Package schema defines the typed field-specification and value model that
// the generation pipeline consumes. A Schema maps unique field names to
// FieldSpec rules; Validate checks every rule statically without consuming
// randomness, so a bad schema fails before any value is drawn. The package
// also parses the loose specification DSL (a bare kind name, or a list such
// as ["int", min, max]) from plain Go values or YAML documents, and owns the
// reserved-name table that custom provider registration checks against.
package schema
