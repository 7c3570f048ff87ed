package model

// SelectionMode represents how the gallery grid reacts to taps
type SelectionMode string

const (
	// SelectionSingle means nothing is selected; a tap selects one image
	SelectionSingle SelectionMode = "Single"

	// SelectionMultiple means at least one image is selected; taps toggle
	SelectionMultiple SelectionMode = "Multiple"
)

// String returns the string representation of SelectionMode
func (m SelectionMode) String() string {
	return string(m)
}

// ModeFor derives the selection mode from the number of selected items.
func ModeFor(count int) SelectionMode {
	if count > 0 {
		return SelectionMultiple
	}
	return SelectionSingle
}

// ViewMode represents whether the grid or a single enlarged image is shown
type ViewMode string

const (
	ViewGrid   ViewMode = "Grid"
	ViewZoomed ViewMode = "Zoomed"
)

// Selection is the set of local paths currently marked by the user.
// It is rebuilt from scratch on every change and keeps insertion order.
type Selection struct {
	paths []string
	index map[string]struct{}
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{index: make(map[string]struct{})}
}

// Replace discards the current selection and takes the given paths instead.
// Empty and repeated paths are ignored. It returns the resulting mode.
func (s *Selection) Replace(paths []string) SelectionMode {
	s.paths = make([]string, 0, len(paths))
	s.index = make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := s.index[p]; ok {
			continue
		}
		s.index[p] = struct{}{}
		s.paths = append(s.paths, p)
	}
	return s.Mode()
}

// Toggle flips one path and rebuilds the selection from the result.
func (s *Selection) Toggle(path string) SelectionMode {
	next := make([]string, 0, len(s.paths)+1)
	found := false
	for _, p := range s.paths {
		if p == path {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		next = append(next, path)
	}
	return s.Replace(next)
}

// Clear empties the selection
func (s *Selection) Clear() SelectionMode {
	return s.Replace(nil)
}

// Contains reports whether path is selected
func (s *Selection) Contains(path string) bool {
	_, ok := s.index[path]
	return ok
}

// Count returns the number of selected paths
func (s *Selection) Count() int {
	return len(s.paths)
}

// Paths returns a copy of the selected paths in selection order
func (s *Selection) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Mode returns the selection mode implied by the current count
func (s *Selection) Mode() SelectionMode {
	return ModeFor(len(s.paths))
}
