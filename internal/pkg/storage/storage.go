// Package storage implements the opaque key→JSON persistence collaborator
// that backs the personal collections.
//
// The contract is deliberately forgiving: Load reports absent (not an error)
// for a missing key or malformed JSON, and Save failures are surfaced to the
// caller only so it can log them — in-memory state stays authoritative for
// the session either way.
package storage

// Store is a synchronous key→JSON blob store.
type Store interface {
	// Load unmarshals the value stored under key into out. It returns false
	// when the key is absent or the stored blob does not parse.
	Load(key string, out any) bool

	// Save marshals value and writes it under key, replacing any previous
	// blob. Best-effort: callers log and ignore the returned error.
	Save(key string, value any) error
}

// Noop discards all writes and loads nothing. Used for state that is
// intentionally session-only, such as the cart.
type Noop struct{}

func (Noop) Load(string, any) bool { return false }

func (Noop) Save(string, any) error { return nil }
