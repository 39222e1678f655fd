package inventory

import "sync"

// Shared guards an Inventory for use from several goroutines: any number of
// readers, or one writer.
type Shared struct {
	mu  sync.RWMutex
	inv *Inventory
}

// NewShared guards inv, or a new empty inventory when inv is nil.
func NewShared(inv *Inventory) *Shared {
	if inv == nil {
		inv = New()
	}
	return &Shared{inv: inv}
}

// Read runs fn with shared access. fn must not modify the inventory.
func (s *Shared) Read(fn func(inv *Inventory)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.inv)
}

// Write runs fn with exclusive access.
func (s *Shared) Write(fn func(inv *Inventory)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inv)
}

// Flush applies c under the write lock.
func (s *Shared) Flush(c *Commands) {
	s.Write(c.Flush)
}
