package services

import "sync"

// clientLocker serializes all processing for one phone number.
// Concurrent webhook deliveries for the same client would otherwise
// both observe the same pre-transition state and double-apply it.
type clientLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newClientLocker() *clientLocker {
	return &clientLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *clientLocker) Lock(phone string) {
	l.mu.Lock()
	lock, ok := l.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[phone] = lock
	}
	l.mu.Unlock()

	lock.Lock()
}

func (l *clientLocker) Unlock(phone string) {
	l.mu.Lock()
	lock, ok := l.locks[phone]
	l.mu.Unlock()

	if ok {
		lock.Unlock()
	}
}
