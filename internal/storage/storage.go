// Package storage is the durable key-value medium behind every collection.
//
// A collection is an ordered sequence of records serialized as one JSON
// document under its own key. Writes replace the whole document; there are no
// transactions, so two independent writers of the same collection race and
// the last write wins. Callers that need read-modify-write atomicity within a
// process must serialize access themselves.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Get and matched by the collection helpers when a key was never written.
var ErrNotExist = errors.New("storage: key does not exist")

// Store is a durable mapping from key to an opaque value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
