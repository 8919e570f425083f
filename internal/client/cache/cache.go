// Package cache keeps the signed-in user's entries in memory for the
// lifetime of a session. Entries are never written to disk.
package cache

import (
	"sync"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// Cache is an ordered entry list, newest first. It is safe for concurrent
// use.
type Cache struct {
	mu      sync.RWMutex
	entries []models.Entry
	loaded  bool
}

func New() *Cache {
	return &Cache{}
}

// Replace swaps in a freshly fetched list.
func (c *Cache) Replace(all []models.Entry) {
	cp := make([]models.Entry, len(all))
	copy(cp, all)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = cp
	c.loaded = true
}

// Loaded reports whether Replace has been called since the last Reset.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Add prepends e.
func (c *Cache) Add(e models.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append([]models.Entry{e}, c.entries...)
}

// Update replaces the entry with e.ID. It reports whether one was found.
func (c *Cache) Update(e models.Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == e.ID {
			c.entries[i] = e
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id.
func (c *Cache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cache) Get(id string) (models.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

// All returns a copy of the cached entries.
func (c *Cache) All() []models.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByMood returns the entries tagged m, in cache order.
func (c *Cache) ByMood(m mood.Mood) []models.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Entry
	for _, e := range c.entries {
		if e.Mood == m {
			out = append(out, e)
		}
	}
	return out
}

// ByDate returns the first cached entry written on date (YYYY-MM-DD).
func (c *Cache) ByDate(date string) (models.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.Entry{}, false
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset empties the cache, e.g. on logout.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.loaded = false
}
