package session

import (
	"sync"
)

// LockManager hands out one mutex per player ID
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given player
func (lm *LockManager) GetLock(playerID string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(playerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
