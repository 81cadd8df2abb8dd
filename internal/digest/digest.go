package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the lowercase hex SHA-256 digest of the UTF-8 bytes of secret.
// The transform is pure and unsalted: the same input always yields the same
// digest, which keeps output comparable with digests already stored by the
// backend. Do not change the scheme without migrating stored digests.
func Sum(secret string) string {
	h := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(h[:])
}
