package provider

import "errors"

var (
	// ErrEmptyOptions reports a provider built from no options.
	ErrEmptyOptions = errors.New("options list cannot be empty")
	// ErrInvalidWeights reports an all-zero or overflowing weight set.
	ErrInvalidWeights = errors.New("invalid weights")
	// ErrNameCollision reports a provider name that shadows a built-in kind.
	ErrNameCollision = errors.New("provider name conflicts with built-in type")
	// ErrNotFound reports a lookup for an unregistered provider.
	ErrNotFound = errors.New("custom provider not found")
	// ErrDuplicate reports a second registration under the same name.
	ErrDuplicate = errors.New("provider already registered")
)
