// Package openapi derives generation schemas from OpenAPI 3 documents.
// Object properties map onto field specifications by format first
// (email, uuid, date, ...), then by declared bounds, then by a
// property-name match against the built-in kinds, so a "name" or "city"
// property produces realistic data without any annotation. The adapter is
// the bridge for callers who want fake payloads shaped like their API
// models.
package openapi
