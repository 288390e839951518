// Package lock serializes operations that share a key, such as the two users of
// a relationship.
package lock

import (
	"context"
	"sync"
)

// Locker acquires the lock for key until the returned release is called.
// Acquire gives up when ctx is done.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type keyEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex is an in-process Locker; entries are dropped once nobody holds or
// waits for them.
type KeyedMutex struct {
	mu   sync.Mutex
	keys map[string]*keyEntry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{keys: map[string]*keyEntry{}}
}

func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	entry, ok := m.keys[key]
	if !ok {
		entry = &keyEntry{sem: make(chan struct{}, 1)}
		m.keys[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		m.done(key, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			m.done(key, entry)
		})
	}, nil
}

func (m *KeyedMutex) done(key string, entry *keyEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(m.keys, key)
	}
}

// Len is the number of keys currently held or waited on
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}
