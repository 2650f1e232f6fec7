// Package kv implements the entity repositories over the blob store.
// Every call loads and saves the whole collection for its entity; all
// lookups are linear scans. That is the intended operating point at
// this data scale.
package kv

import (
	"context"
	"encoding/json"

	"stayhub/internal/domain/contract"
)

// loadAll reads the full collection at key, returning an empty slice
// when the key is absent or unreadable.
func loadAll[T any](ctx context.Context, store contract.KVStore, key string) []T {
	var items []T
	if !store.Get(ctx, key, &items) || items == nil {
		return []T{}
	}
	return items
}

// saveAll persists the full collection at key.
func saveAll[T any](ctx context.Context, store contract.KVStore, key string, items []T) bool {
	return store.Set(ctx, key, items)
}

// applyPatch shallow-merges patch onto record at the JSON object level:
// patch fields overwrite, unspecified fields are retained.
func applyPatch[T any](record T, patch map[string]interface{}) (T, bool) {
	var zero T
	raw, err := json.Marshal(record)
	if err != nil {
		return zero, false
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, false
	}
	for k, v := range patch {
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, false
	}
	return out, true
}
