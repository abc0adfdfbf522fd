package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ContentTag returns a short, stable digest of b suitable for an HTTP ETag.
func ContentTag(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:16])
}
