package hostapi

import (
	"crypto/sha1"
	"encoding/hex"
)

// ContentHash returns the hex-encoded SHA-1 digest of s, the stable content
// hash a host uses to key cached Pathfinder instances against scene state.
func ContentHash(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
