// Package session holds the single source of truth for who is signed in.
//
// The Store is created once per application mount and handed to every
// component that needs it; there is no package-level instance.
package session

import (
	"sync"

	"github.com/dmitrijs2005/assessment/internal/client/models"
)

// Store keeps the current user and the resolution phase.
//
// Writes are serialized by a mutex; concurrent Set and Clear calls are
// last-write-wins. Subscribers are notified synchronously, in subscription
// order, before Set or Clear returns.
type Store struct {
	mu        sync.Mutex
	phase     models.Phase
	user      *models.User
	listeners map[int]func(models.Session)
	order     []int
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]func(models.Session))}
}

// Get returns a snapshot. The returned user is a copy.
func (s *Store) Get() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Set replaces the user and moves the phase to present.
func (s *Store) Set(u models.User) {
	c := u.Clone()

	s.mu.Lock()
	s.user = &c
	s.phase = models.PhasePresent
	snap, ls := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, snap)
}

// Clear drops the user and moves the phase to absent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.user = nil
	s.phase = models.PhaseAbsent
	snap, ls := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	notify(ls, snap)
}

// Subscribe registers fn for every subsequent change and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) snapshotLocked() models.Session {
	snap := models.Session{Phase: s.phase}
	if s.user != nil {
		c := s.user.Clone()
		snap.User = &c
	}
	return snap
}

func (s *Store) listenersLocked() []func(models.Session) {
	ls := make([]func(models.Session), 0, len(s.order))
	for _, id := range s.order {
		ls = append(ls, s.listeners[id])
	}
	return ls
}

// listeners run outside the lock so they may call Get.
func notify(ls []func(models.Session), snap models.Session) {
	for _, fn := range ls {
		fn(snap)
	}
}
