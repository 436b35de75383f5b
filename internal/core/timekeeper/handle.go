package timekeeper

import "sync"

// Surface is the display that renders timer progress.
type Surface interface {
	ShowProgress(event Event)
}

// ViewHandle is a non-owning reference to a Surface. The view releases it
// when it is torn down; the timekeeper treats a failed Upgrade as the end
// of the current run.
type ViewHandle struct {
	mu      sync.RWMutex
	surface Surface
}

// NewViewHandle wraps a live surface.
func NewViewHandle(surface Surface) *ViewHandle {
	return &ViewHandle{surface: surface}
}

// Upgrade returns the surface while it is still live.
func (handle *ViewHandle) Upgrade() (Surface, bool) {
	if handle == nil {
		return nil, false
	}
	handle.mu.RLock()
	defer handle.mu.RUnlock()
	return handle.surface, handle.surface != nil
}

// Release marks the surface as gone. Safe to call more than once.
func (handle *ViewHandle) Release() {
	if handle == nil {
		return
	}
	handle.mu.Lock()
	handle.surface = nil
	handle.mu.Unlock()
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(Event)

// ShowProgress calls fn(event).
func (fn SurfaceFunc) ShowProgress(event Event) {
	fn(event)
}
