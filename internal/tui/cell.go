package tui

import (
	"sync"

	"github.com/diogo/headline/internal/models"
)

// MessageCell holds the view's Message. It is written at most once per
// lifetime: the first successful Set moves it from Empty to Populated and
// later writes are refused until Reset starts a new lifetime.
type MessageCell struct {
	mu      sync.RWMutex
	value   models.Message
	state   models.State
	version uint64
}

// Get returns the current message
func (c *MessageCell) Get() models.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// State returns Empty or Populated
func (c *MessageCell) State() models.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Version counts accepted writes; each one is a re-render of the heading.
func (c *MessageCell) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Set stores msg and reports whether it was accepted
func (c *MessageCell) Set(msg models.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == models.StatePopulated {
		return false
	}
	c.value = msg
	c.state = models.StatePopulated
	c.version++
	return true
}

// Reset empties the cell for a new lifetime. The version keeps counting.
func (c *MessageCell) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = models.Message{}
	c.state = models.StateEmpty
}
