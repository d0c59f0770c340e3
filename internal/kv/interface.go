package kv

import "context"

// Store is a key-value store for persisted local client state:
// identity records and the current-player marker. It is the Go
// analog of the browser's local storage and is injected into the
// services so it can be faked in tests.
type Store interface {
	// Get returns the value for key, or model.ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set writes the value for key, overwriting any existing value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
