package model

import "sync"

// Gallery is the ordered, duplicate-free collection of local image paths on
// display. Batches from the download pipeline are merged into it.
type Gallery struct {
	mu    sync.RWMutex
	items []string
	seen  map[string]struct{}
}

// NewGallery creates an empty gallery
func NewGallery() *Gallery {
	return &Gallery{seen: make(map[string]struct{})}
}

// Merge appends paths that are not displayed yet and returns the ones added.
func (g *Gallery) Merge(paths []string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var added []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := g.seen[p]; ok {
			continue
		}
		g.seen[p] = struct{}{}
		g.items = append(g.items, p)
		added = append(added, p)
	}
	return added
}

// Reset removes every item
func (g *Gallery) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = nil
	g.seen = make(map[string]struct{})
}

// Len returns the number of items
func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.items)
}

// At returns the item at index i, or "" when out of range
func (g *Gallery) At(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.items) {
		return ""
	}
	return g.items[i]
}

// Contains reports whether path is displayed
func (g *Gallery) Contains(path string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.seen[path]
	return ok
}
