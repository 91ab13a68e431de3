package services

import (
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
)

// GigList is the in-memory "my gigs" list. Every mutation swaps the whole
// slice, so a reader never sees a half-applied change.
type GigList struct {
	mu    sync.RWMutex
	items []models.Gig
}

func NewGigList() *GigList {
	return &GigList{}
}

// Items returns a copy in display order.
func (l *GigList) Items() []models.Gig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Gig(nil), l.items...)
}

func (l *GigList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Set replaces the list with gigs as fetched.
func (l *GigList) Set(gigs []models.Gig) {
	next := append([]models.Gig(nil), gigs...)
	l.mu.Lock()
	l.items = next
	l.mu.Unlock()
}

// Prepend puts a newly created gig first.
func (l *GigList) Prepend(g models.Gig) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.Gig, 0, len(l.items)+1)
	next = append(next, g)
	l.items = append(next, l.items...)
}

// ReplaceByID swaps in g for the entry with the same id. It reports
// whether such an entry existed.
func (l *GigList) ReplaceByID(g models.Gig) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	next := make([]models.Gig, len(l.items))
	for i, cur := range l.items {
		if cur.ID == g.ID {
			next[i] = g
			found = true
			continue
		}
		next[i] = cur
	}
	if found {
		l.items = next
	}
	return found
}

// RemoveByID drops the entry with id and reports whether it was present.
func (l *GigList) RemoveByID(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]models.Gig, 0, len(l.items))
	for _, cur := range l.items {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(l.items) {
		return false
	}
	l.items = next
	return true
}
