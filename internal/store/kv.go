// ABOUTME: KV backend abstraction for the record store
// ABOUTME: Implemented by the Charm client and an in-memory test backend
package store

// KV is the minimal key-value surface the record store needs. A missing key
// returns (nil, nil); backends normalize their own not-found errors.
type KV interface {
	Set(key string, value []byte) error
	Get(key string) ([]byte, error)
	Delete(key string) error
	Keys() ([]string, error)
}
