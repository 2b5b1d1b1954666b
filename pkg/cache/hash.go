package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/grfixtures/grgen/pkg/gr"
)

// FixtureKey generates the cache key for a seeded generation run.
// The key covers every parameter that influences the output bytes: the
// full spec, the seed, and the target strategy.
func FixtureKey(spec gr.Spec, seed int64, ring bool) string {
	data, _ := json.Marshal(struct {
		Spec gr.Spec
		Seed int64
		Ring bool
	}{spec, seed, ring})
	return fmt.Sprintf("fixture:%s", Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
