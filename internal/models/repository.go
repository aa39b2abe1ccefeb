package models

import "sync"

// DocumentRepository owns the single Document for the lifetime of the window.
type DocumentRepository struct {
	mu       sync.RWMutex
	current  Document
	revision uint64
}

// NewDocumentRepository creates a repository holding an empty document.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{current: NewDocument()}
}

// Snapshot returns the current document value.
func (r *DocumentRepository) Snapshot() Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Update applies fn to the current document and stores its result.
func (r *DocumentRepository) Update(fn func(Document) Document) Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := fn(r.current)
	if next != r.current {
		r.revision++
	}
	r.current = next
	return next
}

// Revision increases every time Update changes the document.
func (r *DocumentRepository) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

// LayoutState holds UI-only flags that never touch the document.
type LayoutState struct {
	mu             sync.Mutex
	sidebarVisible bool
}

// NewLayoutState creates layout state with the sidebar shown.
func NewLayoutState() *LayoutState {
	return &LayoutState{sidebarVisible: true}
}

// ToggleSidebar flips sidebar visibility and returns the new value.
func (s *LayoutState) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarVisible = !s.sidebarVisible
	return s.sidebarVisible
}

// SidebarVisible reports the current sidebar visibility.
func (s *LayoutState) SidebarVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarVisible
}
