package forms

import (
	"io"
	"sync"
)

// File is a locally selected attachment, opened only when the multipart
// request body is written.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// MediaStaging holds a gig's image state between hydration and submission:
//
//   - existing: image URLs the server reported, in server order;
//   - marked: URLs of existing images the user wants removed (always a
//     subset of existing);
//   - pending: newly selected local files to append;
//   - cursor: carousel position into existing.
type MediaStaging struct {
	mu       sync.RWMutex
	existing []string
	marked   map[string]struct{}
	pending  []File
	cursor   int
}

func NewMediaStaging(existing []string) *MediaStaging {
	return &MediaStaging{
		existing: append([]string(nil), existing...),
		marked:   make(map[string]struct{}),
	}
}

func (m *MediaStaging) Existing() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.existing...)
}

func (m *MediaStaging) known(url string) bool {
	for _, e := range m.existing {
		if e == url {
			return true
		}
	}
	return false
}

// MarkForDeletion marks url for removal on submit. Marking twice is a no-op;
// unknown URLs are ignored and reported with false.
func (m *MediaStaging) MarkForDeletion(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.known(url) {
		return false
	}
	m.marked[url] = struct{}{}
	return true
}

// Unmark withdraws a deletion mark. Unknown URLs are ignored.
func (m *MediaStaging) Unmark(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.known(url) {
		return false
	}
	delete(m.marked, url)
	return true
}

// Toggle flips the mark on url and returns the new state. ok is false for
// unknown URLs.
func (m *MediaStaging) Toggle(url string) (marked bool, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.known(url) {
		return false, false
	}
	if _, on := m.marked[url]; on {
		delete(m.marked, url)
		return false, true
	}
	m.marked[url] = struct{}{}
	return true, true
}

func (m *MediaStaging) IsMarked(url string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.marked[url]
	return ok
}

// ToDelete lists marked URLs in the order of the existing set.
func (m *MediaStaging) ToDelete() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.marked))
	for _, e := range m.existing {
		if _, ok := m.marked[e]; ok {
			out = append(out, e)
		}
	}
	return out
}

// AddPending replaces the pending selection with files. Picking files again
// discards the previous, unsent selection.
func (m *MediaStaging) AddPending(files ...File) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append([]File(nil), files...)
}

func (m *MediaStaging) Pending() []File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]File(nil), m.pending...)
}

// Next moves the carousel forward, wrapping at the end. No-op when there
// are no existing images.
func (m *MediaStaging) Next() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.existing); n > 0 {
		m.cursor = (m.cursor + 1) % n
	}
}

// Prev moves the carousel back, wrapping at the start.
func (m *MediaStaging) Prev() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.existing); n > 0 {
		m.cursor = (m.cursor - 1 + n) % n
	}
}

func (m *MediaStaging) Cursor() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor
}

// Current returns the image under the cursor and whether it is marked.
// ok is false when there are no existing images.
func (m *MediaStaging) Current() (url string, marked bool, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.existing) == 0 {
		return "", false, false
	}
	url = m.existing[m.cursor]
	_, marked = m.marked[url]
	return url, marked, true
}

// ToggleCurrent flips the deletion mark of the image under the cursor.
func (m *MediaStaging) ToggleCurrent() (url string, marked bool, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.existing) == 0 {
		return "", false, false
	}
	url = m.existing[m.cursor]
	if _, on := m.marked[url]; on {
		delete(m.marked, url)
		return url, false, true
	}
	m.marked[url] = struct{}{}
	return url, true, true
}
