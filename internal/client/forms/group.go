package forms

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/common"
)

// Group is an ordered collection of records of type T. Order is meaningful
// and is kept verbatim through edit and submission. Records are never
// removed.
type Group[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewGroup returns a group seeded with items (copied).
func NewGroup[T any](items ...T) *Group[T] {
	return &Group[T]{items: append([]T(nil), items...)}
}

// Append adds v at the end.
func (g *Group[T]) Append(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = append(g.items, v)
}

// UpdateAt applies fn to the record at index i. Out-of-range indexes leave
// the group untouched and return common.ErrIndexOutOfRange.
func (g *Group[T]) UpdateAt(i int, fn func(*T)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.items) {
		return fmt.Errorf("%w: %d not in [0,%d)", common.ErrIndexOutOfRange, i, len(g.items))
	}
	fn(&g.items[i])
	return nil
}

// At returns the record at index i.
func (g *Group[T]) At(i int) (T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var zero T
	if i < 0 || i >= len(g.items) {
		return zero, false
	}
	return g.items[i], true
}

func (g *Group[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}

// Items returns a shallow copy of the records in order.
func (g *Group[T]) Items() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]T(nil), g.items...)
}
