package cairn

import "cogentcore.org/core/math32"

// BoundingBox returns the box computed by the last UpdateBounds call. A
// marker that was never updated, or has no anchored descendants, reports an
// empty box (see math32.Box3.IsEmpty).
func (m *Marker) BoundingBox() math32.Box3 {
	return m.boundingBox
}

// UpdateBounds recomputes the bounding box of m and every descendant,
// bottom-up: each box is the union of the marker's own anchor and the
// freshly computed boxes of its children.
//
// Bounds are pulled, not pushed. Call UpdateBounds after a batch of
// structural or positional changes.
func (m *Marker) UpdateBounds() {
	box := math32.B3Empty()
	if m.hasPosition {
		box.ExpandByPoint(m.position)
	}
	for _, child := range m.children {
		child.UpdateBounds()
		// Union, not ExpandByBox: an empty child box holds +/-Inf corners.
		box = box.Union(child.boundingBox)
	}
	m.boundingBox = box
}
