// Package store provides the client's durable local key-value storage.
// Auth tokens, the in-progress food draft and the metadata echo all live
// here. Consumers receive a Store so tests can substitute MemStore.
package store

// Store is a flat string key-value store.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes or replaces the value under key.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
