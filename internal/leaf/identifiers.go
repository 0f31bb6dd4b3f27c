package leaf

import (
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/goliatone/go-forgery/pkg/rng"
)

// UUID returns a version-4 UUID whose bytes come from the deterministic
// source, so a fixed seed reproduces the same identifiers.
func UUID(src *rng.Source) string {
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		// The source's Read never fails; reaching this is an internal bug.
		panic(err)
	}
	return id.String()
}

// MD5 returns 32 hex characters shaped like an MD5 digest. The bytes are
// random, not a hash of anything.
func MD5(src *rng.Source) string {
	return hexString(src, 16)
}

// SHA256 returns 64 hex characters shaped like a SHA-256 digest.
func SHA256(src *rng.Source) string {
	return hexString(src, 32)
}

func hexString(src *rng.Source, nbytes int) string {
	buf := make([]byte, nbytes)
	src.Read(buf)
	return hex.EncodeToString(buf)
}
