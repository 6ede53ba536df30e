// Package kvstore defines the key-value persistence port the reconciliation
// engine reads and writes through, together with its backends.
package kvstore

// Store is a string-keyed byte store. Read reports absence with the second
// return value and never fails for a missing key. Write either commits the
// whole value or returns an error leaving prior state unchanged. Erase is
// idempotent.
//
// Concurrent writers to the same key are last-write-wins; no merge is
// attempted.
type Store interface {
	Read(key string) ([]byte, bool)
	Write(key string, value []byte) error
	Erase(key string)
}
