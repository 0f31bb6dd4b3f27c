// Package leaf holds the built-in value producers behind the dispatcher. Each
// producer is stateless: given a mutable random source and a locale, it
// returns one value of a named kind. Locale-specific string tables live in
// data.go; locales without an override fall back to the en_US tables.
package leaf
