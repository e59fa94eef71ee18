package cairn

import (
	"cogentcore.org/core/math32"
	"github.com/google/uuid"
)

// DefaultCollapseThreshold is the collapse threshold given to markers whose
// MarkerArgs leave it unset.
const DefaultCollapseThreshold float32 = 100

// MarkerArgs configures a new Marker. Nil pointers mean "absent".
type MarkerArgs struct {
	Description       string
	Position          *math32.Vector3
	Offset            math32.Vector3
	CameraPosition    *math32.Vector3
	CameraTarget      *math32.Vector3
	Radius            *float32
	CollapseThreshold *float32
	Renderer          Renderer

	// Done is called by MarkerTool.StartInsertion once the marker has been
	// attached.
	Done func(*Marker)
}

// Marker is a node of the annotation hierarchy: an optional anchor point in
// world space, an ordered list of owned children, presentation state and an
// event channel. Markers are not safe for concurrent use.
type Marker struct {
	EventDispatcher

	id          uuid.UUID
	description string

	position    math32.Vector3
	hasPosition bool
	offset      math32.Vector3
	boundingBox math32.Box3

	cameraPosition *math32.Vector3
	cameraTarget   *math32.Vector3
	radius         *float32

	state             DisplayState
	highlighted       bool
	collapseThreshold float32

	// parent is a weak back-reference; ownership flows through children.
	parent   *Marker
	children []*Marker

	renderer Renderer
	disposed bool
}

// NewMarker creates a standalone marker with a fresh ID.
func NewMarker(args MarkerArgs) *Marker {
	m := &Marker{
		id:                uuid.New(),
		description:       args.Description,
		offset:            args.Offset,
		boundingBox:       math32.B3Empty(),
		state:             initialDisplayState,
		collapseThreshold: DefaultCollapseThreshold,
		renderer:          args.Renderer,
	}
	if args.Position != nil {
		m.position = *args.Position
		m.hasPosition = true
	}
	if args.CameraPosition != nil {
		m.cameraPosition = vec3Ptr(*args.CameraPosition)
	}
	if args.CameraTarget != nil {
		m.cameraTarget = vec3Ptr(*args.CameraTarget)
	}
	if args.Radius != nil {
		r := *args.Radius
		m.radius = &r
	}
	if args.CollapseThreshold != nil {
		m.collapseThreshold = *args.CollapseThreshold
	}
	return m
}

// ID returns the marker's immutable identifier.
func (m *Marker) ID() uuid.UUID {
	return m.id
}

// String implements fmt.Stringer.
func (m *Marker) String() string {
	return "Marker: " + m.description
}

// --- Spatial data ---

// Position returns the anchor point and whether the marker has one.
func (m *Marker) Position() (math32.Vector3, bool) {
	return m.position, m.hasPosition
}

// SetPosition sets the anchor point. Bounds are not refreshed until
// UpdateBounds is called.
func (m *Marker) SetPosition(p math32.Vector3) {
	m.position = p
	m.hasPosition = true
}

// ClearPosition removes the anchor point.
func (m *Marker) ClearPosition() {
	m.position = math32.Vector3{}
	m.hasPosition = false
}

// Offset returns the leader-line offset.
func (m *Marker) Offset() math32.Vector3 {
	return m.offset
}

// SetOffset sets the leader-line offset.
func (m *Marker) SetOffset(o math32.Vector3) {
	m.offset = o
}

// Endpoints returns the two world-space ends of the leader line: the anchor
// and anchor+offset. ok is false when the marker has no anchor.
func (m *Marker) Endpoints() (start, end math32.Vector3, ok bool) {
	if !m.hasPosition {
		return math32.Vector3{}, math32.Vector3{}, false
	}
	return m.position, m.position.Add(m.offset), true
}

// CollapseThreshold returns the distance threshold used by hosts that
// collapse marker groups automatically.
func (m *Marker) CollapseThreshold() float32 {
	return m.collapseThreshold
}

// --- Description ---

// Description returns the marker's text.
func (m *Marker) Description() string {
	return m.description
}

// SetDescription replaces the text and emits EventMarkerChanged.
// No-op if the text is unchanged.
func (m *Marker) SetDescription(description string) {
	if m.description == description {
		return
	}
	m.description = description
	m.DispatchEvent(Event{Type: EventMarkerChanged, Marker: m, Target: m})
}

// --- Rendering collaborator ---

// Renderer returns the marker's renderer, or nil.
func (m *Marker) Renderer() Renderer {
	return m.renderer
}

// SetRenderer attaches r. The previous renderer, if any, releases the
// marker; a displayed marker is announced to r.
func (m *Marker) SetRenderer(r Renderer) {
	if m.renderer == r {
		return
	}
	if m.renderer != nil {
		m.renderer.Dispose(m)
	}
	m.renderer = r
	if r != nil && m.state.Display {
		r.SetDisplayed(m, true)
	}
}

// IsHighlighted reports the hover highlight.
func (m *Marker) IsHighlighted() bool {
	return m.highlighted
}

// SetHighlighted sets the hover highlight and forwards it to the renderer.
func (m *Marker) SetHighlighted(highlighted bool) {
	m.highlighted = highlighted
	if m.renderer != nil {
		m.renderer.SetHighlighted(m, highlighted)
	}
}

// --- Tree manipulation ---

// Add appends child to this marker's children.
//
// Re-adding a direct child is a no-op. A child that belongs to another
// marker is unlinked from it first (without disposal). The child is then
// appended, its parent link is set, and EventMarkerAdded is dispatched once
// per (ancestor of m including m, descendant of child including child) pair:
// m and then each ancestor up to the root receives every descendant in
// pre-order. Both lists are captured before the first dispatch, so listeners
// may mutate the tree. Panics if child is nil or child is m or one of its
// ancestors (cycle).
func (m *Marker) Add(child *Marker) {
	if child == nil {
		panic("cairn: cannot add nil child")
	}
	if isAncestor(child, m) {
		panic("cairn: adding child would create a cycle")
	}
	if globalDebug {
		debugCheckDisposed(m, "Add (parent)")
		debugCheckDisposed(child, "Add (child)")
	}
	if m.HasChild(child) {
		return
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	m.children = append(m.children, child)
	child.parent = m

	descendants := child.Flatten()
	ancestors := m.ancestry()

	// Reattaching revives markers disposed by an earlier Remove.
	for _, d := range descendants {
		d.disposed = false
		if m.renderer != nil && d.renderer == nil {
			d.SetRenderer(m.renderer)
		}
	}
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(m)
		debugf("add %s under %s (%d descendants, %d ancestors)", child.id, m.id, len(descendants), len(ancestors))
	}

	for _, a := range ancestors {
		for _, d := range descendants {
			a.DispatchEvent(Event{Type: EventMarkerAdded, Marker: d, Target: a})
		}
	}
}

// Remove detaches child and disposes its subtree, deepest markers first.
// No-op if child is not a direct child.
func (m *Marker) Remove(child *Marker) {
	if !m.HasChild(child) {
		return
	}
	child.RemoveAllChildren()
	child.dispose()
	m.removeChildByPtr(child)
	child.parent = nil
	if globalDebug {
		debugf("remove %s from %s", child.id, m.id)
	}
}

// RemoveAllChildren removes and disposes every descendant, post-order.
func (m *Marker) RemoveAllChildren() {
	for _, child := range m.children {
		m.Remove(child)
	}
}

// RemoveFromParent detaches this marker from its parent.
// No-op if this marker has no parent.
func (m *Marker) RemoveFromParent() {
	if m.parent == nil {
		return
	}
	m.parent.Remove(m)
}

// Parent returns the containing marker, or nil for a root.
func (m *Marker) Parent() *Marker {
	return m.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (m *Marker) Children() []*Marker {
	return m.children
}

// NumChildren returns the number of children.
func (m *Marker) NumChildren() int {
	return len(m.children)
}

// ChildAt returns the child at the given index.
func (m *Marker) ChildAt(index int) *Marker {
	return m.children[index]
}

// HasChild reports whether c is a direct child. It does not search deeper.
func (m *Marker) HasChild(c *Marker) bool {
	for _, child := range m.children {
		if child == c {
			return true
		}
	}
	return false
}

// Level returns the depth of the marker; roots are level 0.
func (m *Marker) Level() int {
	if m.parent == nil {
		return 0
	}
	return m.parent.Level() + 1
}

// Root returns the topmost ancestor, or m itself.
func (m *Marker) Root() *Marker {
	r := m
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// --- Traversal ---

// Traverse walks the subtree pre-order starting at m. Returning false from
// visit skips the visited marker's descendants.
func (m *Marker) Traverse(visit func(*Marker) bool) {
	if !visit(m) {
		return
	}
	for _, child := range m.children {
		child.Traverse(visit)
	}
}

// TraverseDescendants is Traverse applied to each direct child in turn.
func (m *Marker) TraverseDescendants(visit func(*Marker) bool) {
	for _, child := range m.children {
		child.Traverse(visit)
	}
}

// Flatten returns m and all of its descendants in pre-order.
func (m *Marker) Flatten() []*Marker {
	var out []*Marker
	m.Traverse(func(n *Marker) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Descendants returns Flatten without m itself.
func (m *Marker) Descendants() []*Marker {
	var out []*Marker
	m.TraverseDescendants(func(n *Marker) bool {
		out = append(out, n)
		return true
	})
	return out
}

// --- Disposal ---

// IsDisposed returns true once the marker has been removed from a parent,
// until it is added again.
func (m *Marker) IsDisposed() bool {
	return m.disposed
}

// dispose releases the marker's external representation. Children are
// handled by the caller.
func (m *Marker) dispose() {
	if m.renderer != nil {
		m.renderer.Dispose(m)
	}
	m.disposed = true
}

// --- Helpers ---

// ancestry returns m followed by each ancestor up to the root.
func (m *Marker) ancestry() []*Marker {
	var out []*Marker
	for c := m; c != nil; c = c.parent {
		out = append(out, c)
	}
	return out
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Marker) bool {
	for c := node; c != nil; c = c.parent {
		if c == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr filters child out into a new backing array, leaving any
// in-progress range over the old slice untouched.
func (m *Marker) removeChildByPtr(child *Marker) {
	next := make([]*Marker, 0, len(m.children))
	for _, c := range m.children {
		if c != child {
			next = append(next, c)
		}
	}
	m.children = next
}
