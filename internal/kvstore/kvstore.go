// Package kvstore provides the two key-value collaborators the client state
// lives in: a durable file-backed store for the auth token and an in-process
// store scoped to a single run for the match-result handoff.
package kvstore

import "errors"

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a minimal string key-value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
