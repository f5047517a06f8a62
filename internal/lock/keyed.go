// Package lock provides an in-process mutual exclusion scope per flight.
package lock

import (
	"context"
	"sync"
)

// Keyed hands out one mutex per flight id. Entries are dropped once nobody holds or waits on them.
type Keyed struct {
	mu    sync.Mutex
	slots map[int64]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{slots: make(map[int64]*slot)}
}

// Lock blocks until the flight's scope is free or ctx is done.
func (k *Keyed) Lock(ctx context.Context, flightID int64) (func(), error) {
	k.mu.Lock()
	s, ok := k.slots[flightID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		k.slots[flightID] = s
	}
	s.refs++
	k.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(flightID, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			k.release(flightID, s)
		})
	}, nil
}

func (k *Keyed) release(flightID int64, s *slot) {
	k.mu.Lock()
	defer k.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(k.slots, flightID)
	}
}

// Len returns the number of flights with a holder or waiter.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.slots)
}
