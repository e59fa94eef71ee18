package cairn

import "cogentcore.org/core/math32"

// Renderer materializes markers on screen. A marker calls it when its
// display or highlight state changes and when the marker is disposed.
// Overlay is the ebiten-backed implementation shipped with cairn.
type Renderer interface {
	SetDisplayed(m *Marker, displayed bool)
	SetHighlighted(m *Marker, highlighted bool)
	Dispose(m *Marker)
}

// ViewFramer performs an animated camera move on behalf of Marker.MoveHere.
// The marker decides what to frame; the framer decides how to get there.
// ViewAnimator is the gween-backed implementation shipped with cairn.
type ViewFramer interface {
	// MoveTo places the camera at position looking at target.
	MoveTo(position, target math32.Vector3)
	// Orbit keeps the current viewing direction and places the camera
	// radius units away from target.
	Orbit(target math32.Vector3, radius float32)
}

// Picker resolves a screen position to a world-space point, typically by
// intersecting a ray with the loaded point clouds.
type Picker interface {
	Pick(x, y float64) (math32.Vector3, bool)
}
