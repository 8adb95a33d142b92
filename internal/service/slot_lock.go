package service

import "sync"

// slotLocks serializes the conflict-check-then-insert sequence per
// (appliance, date). The guard mutex is held only to fetch the slot
// mutex, so bookings against different appliances or dates never
// contend with each other.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *slotLocks) forSlot(applianceID, date string) *sync.Mutex {
	key := applianceID + "|" + date
	l.mu.Lock()
	defer l.mu.Unlock()
	if lock, ok := l.locks[key]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	l.locks[key] = lock
	return lock
}
