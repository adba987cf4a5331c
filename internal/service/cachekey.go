package service

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// cacheKey hashes the canonical JSON encoding of payload with FNV-1a,
// namespaced by prefix. Two equal payloads always hash to the same key;
// encoding/json's deterministic field ordering is what makes the hash
// reproducible across requests (SPEC_FULL.md P7).
func cacheKey(prefix string, payload interface{}) (string, error) {
	canonical, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode cache key payload: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(canonical)
	return fmt.Sprintf("%s:%x", prefix, h.Sum64()), nil
}
