// Package lock provides per-key mutual exclusion for check-then-act
// sequences that span multiple storage calls.
package lock

import (
	"fmt"
	"sync"
)

// KeyMutex serializes critical sections by string key. Different keys
// never block each other; entries are dropped once the last holder
// releases, so the map does not grow with the key space.
type KeyMutex struct {
	mu   sync.Mutex
	keys map[string]*keyEntry
}

type keyEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyMutex returns an empty KeyMutex.
func NewKeyMutex() *KeyMutex {
	return &KeyMutex{keys: make(map[string]*keyEntry)}
}

// Lock acquires the mutex for key, blocking until it is available.
func (k *KeyMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.keys[key]
	if !ok {
		e = &keyEntry{}
		k.keys[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. It must be called exactly once per Lock.
func (k *KeyMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.keys[key]
	if !ok {
		k.mu.Unlock()
		panic("lock: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.keys, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// PairKey builds a canonical key for an unordered id pair, so that
// (a, b) and (b, a) contend on the same mutex.
func PairKey(prefix string, a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%s:%d:%d", prefix, a, b)
}
