package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// In-flight mutation markers. Each holds the ID of the place whose
	// remote call is outstanding, or "". They are deliberately single
	// shared markers, not per-record: at most one toggle OR one delete
	// may be in flight across the whole list, and they are mutually
	// exclusive with each other.
	UpdatingID string
	DeletingID string

	// Terminal dimensions
	Width  int
	Height int
}

// MutationInFlight reports whether any toggle or delete is outstanding.
// Checked before starting either kind of mutation.
func (s *SharedState) MutationInFlight() bool {
	return s.UpdatingID != "" || s.DeletingID != ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
