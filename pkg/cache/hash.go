package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "<prefix>:<digest>" cache key from the stage name and the
// options that influence the stage's output. Options are serialized before
// hashing so every field participates in the key.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the SHA-256 digest of data as a 64-character hex string. It
// is the content hash used for dataset and layout identity.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
