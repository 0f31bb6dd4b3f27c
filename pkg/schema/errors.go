package schema

import "errors"

// Sentinel errors for schema validation and field-order checks. Call sites
// wrap these with fmt.Errorf so messages carry the offending field name and
// the concrete values involved; callers discriminate with errors.Is.
var (
	ErrUnknownKind       = errors.New("unknown type")
	ErrInvalidIntRange   = errors.New("invalid int range")
	ErrInvalidFloatRange = errors.New("invalid float range")
	ErrInvalidTextRange  = errors.New("invalid text range")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrEmptyChoice       = errors.New("choice options cannot be empty")
	ErrProviderNotFound  = errors.New("custom provider not found")
	ErrInvalidSpec       = errors.New("invalid field specification")

	ErrDuplicateField = errors.New("duplicate field in field_order")
	ErrUnknownField   = errors.New("field not in schema")
	ErrMissingField   = errors.New("field_order must cover all schema fields")
)
