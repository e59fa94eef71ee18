package cairn

// DisplayState holds the three presentation flags of a marker.
//
// Visible is the logical on/off switch a user toggles. Display is whether
// the renderer should currently draw the marker, and is driven by expansion
// of the marker and its ancestors. The two are independent: a visible marker
// is hidden while a collapsed ancestor stands in for it.
//
// Transitions:
//
//	WithVisible(v)      Visible <- v                 (no cascade)
//	WithDisplay(d)      Display <- d
//	WithExpanded(true)  Display <- false             (children shown instead)
//	WithExpanded(false) Display <- true, and every descendant's Display <- false
//
// Setting Visible or Display to its current value is reported as unchanged.
type DisplayState struct {
	Visible  bool
	Display  bool
	Expanded bool
}

// initialDisplayState is the state of a newly created marker.
var initialDisplayState = DisplayState{Visible: true}

// WithVisible returns the state with Visible set to v and whether it changed.
func (s DisplayState) WithVisible(v bool) (DisplayState, bool) {
	if s.Visible == v {
		return s, false
	}
	s.Visible = v
	return s, true
}

// WithDisplay returns the state with Display set to d and whether it changed.
func (s DisplayState) WithDisplay(d bool) (DisplayState, bool) {
	if s.Display == d {
		return s, false
	}
	s.Display = d
	return s, true
}

// WithExpanded returns the state after expanding (true) or collapsing
// (false). collapseDescendants reports whether the caller must clear the
// Display flag of every descendant.
func (s DisplayState) WithExpanded(expand bool) (next DisplayState, collapseDescendants bool) {
	s.Expanded = expand
	if expand {
		s.Display = false
		return s, false
	}
	s.Display = true
	return s, true
}

// State returns the marker's presentation flags.
func (m *Marker) State() DisplayState {
	return m.state
}

// Visible reports the marker's logical visibility.
func (m *Marker) Visible() bool {
	return m.state.Visible
}

// SetVisible sets the logical visibility and emits EventVisibilityChanged.
// Children are not affected. No-op if the value is unchanged.
func (m *Marker) SetVisible(visible bool) {
	next, changed := m.state.WithVisible(visible)
	if !changed {
		return
	}
	m.state = next
	m.DispatchEvent(Event{Type: EventVisibilityChanged, Marker: m, Target: m})
}

// Display reports whether the renderer should currently draw the marker.
func (m *Marker) Display() bool {
	return m.state.Display
}

// SetDisplay shows or hides the marker's representation. No-op if the value
// is unchanged.
func (m *Marker) SetDisplay(display bool) {
	next, changed := m.state.WithDisplay(display)
	if !changed {
		return
	}
	m.state = next
	if m.renderer != nil {
		m.renderer.SetDisplayed(m, display)
	}
}

// Expanded reports whether the marker is expanded.
func (m *Marker) Expanded() bool {
	return m.state.Expanded
}

// SetExpanded expands or collapses the marker. Expanding hides the marker
// itself and leaves its descendants alone. Collapsing shows the marker and
// hides every descendant, so the marker stands in for its whole subtree.
func (m *Marker) SetExpanded(expand bool) {
	next, collapse := m.state.WithExpanded(expand)
	m.SetDisplay(next.Display)
	m.state.Expanded = next.Expanded
	if collapse {
		m.TraverseDescendants(func(d *Marker) bool {
			d.SetDisplay(false)
			return true
		})
	}
}
