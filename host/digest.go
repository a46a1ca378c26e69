package host

import (
	"crypto/sha256"
	"encoding/hex"
)

// VersionDigest is a stable identifier for a version: the sha256 of its
// RFC 8785 canonical JSON, so key order does not matter.
func VersionDigest(version Version) (string, error) {
	canonical, err := canonicalVersion(version)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
