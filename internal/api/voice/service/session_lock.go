package voiceService

import (
	"context"
	"sync"
)

// sessionLocker serializes turns of the same session inside this process.
// Entries are dropped as soon as nobody holds or waits for them.
type sessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	token chan struct{}
	refs  int
}

func newSessionLocker() *sessionLocker {
	return &sessionLocker{locks: make(map[string]*sessionLock)}
}

// Lock waits for the session to be free or for ctx to end. The returned
// function releases the session and must be called exactly once.
func (l *sessionLocker) Lock(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sessionLock{token: make(chan struct{}, 1)}
		l.locks[sessionID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	select {
	case lock.token <- struct{}{}:
	case <-ctx.Done():
		l.release(sessionID, lock)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lock.token
			l.release(sessionID, lock)
		})
	}, nil
}

func (l *sessionLocker) release(sessionID string, lock *sessionLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(l.locks, sessionID)
	}
}

func (l *sessionLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
