// Package rng provides the seeded pseudo-random source consumed by every
// generator in the module. A Source wraps the ChaCha8 generator so that a
// single seed reproduces the exact draw sequence across runs. The stream is
// not cryptographically secure and must not be used for secrets.
package rng
