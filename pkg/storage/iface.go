package storage

// Storage is a concurrency-safe key/value store shared between a request
// goroutine and an event loop.
type Storage[key any, val any] interface {
	// Add stores v under k, overwriting any previous value.
	Add(k key, v val)
	// Delete removes the value stored under k, if any.
	Delete(k key)
	// Get returns the value stored under k.
	Get(k key) (val, bool)
	// Exist reports whether a value is stored under k.
	Exist(k key) bool
	// Tap calls fn for each stored entry until fn returns false.
	Tap(fn func(key, val) bool)
}
