// Package section models the expandable/collapsible disclosure widget
// used across article pages.
package section

// Section is one disclosure widget. Each instance owns its own state;
// nothing is persisted across reloads.
type Section struct {
	Title    string
	expanded bool
}

// New creates a section with the caller-supplied initial state.
func New(title string, expanded bool) *Section {
	return &Section{Title: title, expanded: expanded}
}

// Toggle flips the state; called on header activation.
func (s *Section) Toggle() {
	s.expanded = !s.expanded
}

// Expanded reports whether the section body is shown.
func (s *Section) Expanded() bool {
	return s.expanded
}
