// Package kv provides the flat key-value persistence used for favorites and
// the search audit log. Values are whole JSON documents; every write replaces
// the prior value. There is no locking: concurrent read-modify-write cycles
// for the same key race and the last write wins.
package kv

import "context"

// Store is a minimal get/set contract over JSON values.
type Store interface {
	// Get unmarshals the value stored under key into dest. It returns false
	// with a nil error when the key does not exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set marshals value and stores it under key, replacing any prior value.
	Set(ctx context.Context, key string, value interface{}) error
}
