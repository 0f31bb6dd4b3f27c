// Package provider implements caller-registered value pools. A CustomProvider
// draws from a fixed option list either uniformly or by weight; weighted pools
// precompute a strictly increasing cumulative-weight array so one draw costs a
// single uniform sample plus an O(log n) binary search. The Registry stores
// providers by name and rejects names that collide with built-in kinds.
package provider
