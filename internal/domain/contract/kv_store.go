package contract

import (
	"context"
)

// KVStore is the string-keyed JSON blob store every collection lives in.
// Implementations swallow underlying faults: reads report absent, writes
// report false, and the cause goes to the diagnostic log only. A false
// Get is indistinguishable from a key that was never set.
type KVStore interface {
	// Get unmarshals the value at key into dest and reports whether a
	// value was found.
	Get(ctx context.Context, key string, dest interface{}) bool
	// Set marshals value and stores it at key.
	Set(ctx context.Context, key string, value interface{}) bool
	// Remove deletes the value at key.
	Remove(ctx context.Context, key string) bool
	// Clear removes every key owned by the application.
	Clear(ctx context.Context) bool
}
