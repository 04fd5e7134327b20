// Package storage provides the blob store backing both record stores.
//
// Each product variant keeps its entire state as a single JSON document
// under a fixed key. Every save rewrites the whole blob; there are no
// partial updates and no coordination between concurrent writers
// (last writer wins).
package storage

import "context"

// Store is a key-value store for serialized JSON blobs.
type Store interface {
	// Load returns the blob stored under key. The boolean is false when
	// no blob exists yet.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save overwrites the entire blob stored under key.
	Save(ctx context.Context, key string, blob []byte) error
}
