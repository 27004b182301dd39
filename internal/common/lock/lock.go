// Package lock provides keyed mutual exclusion. The sync engine holds one
// lock per leaderboard channel so two syncs can never interleave on the
// same channel's cached message.
package lock

import "sync"

// KeyedLock hands out one mutex per string key, creating them on demand.
type KeyedLock struct {
	locks sync.Map // map[string]*sync.Mutex
}

// NewKeyedLock creates a new KeyedLock instance.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{}
}

// getLock retrieves or creates the mutex for the given key.
func (l *KeyedLock) getLock(key string) *sync.Mutex {
	if v, ok := l.locks.Load(key); ok {
		return v.(*sync.Mutex)
	}
	v, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Lock acquires the lock for a key, blocking until it is available.
func (l *KeyedLock) Lock(key string) {
	l.getLock(key).Lock()
}

// Unlock releases the lock for a key.
func (l *KeyedLock) Unlock(key string) {
	if v, ok := l.locks.Load(key); ok {
		v.(*sync.Mutex).Unlock()
	}
}

// WithLock executes fn while holding the key's lock.
func (l *KeyedLock) WithLock(key string, fn func() error) error {
	l.Lock(key)
	defer l.Unlock(key)
	return fn()
}
