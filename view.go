package cairn

import "cogentcore.org/core/math32"

// Frame is what a marker hands to a ViewFramer: where to look, and either
// where to stand or how far to orbit.
type Frame struct {
	Target      math32.Vector3
	Position    math32.Vector3
	HasPosition bool
	Radius      float32
	HasRadius   bool
}

// CameraPosition returns the stored camera position, if any.
func (m *Marker) CameraPosition() (math32.Vector3, bool) {
	if m.cameraPosition == nil {
		return math32.Vector3{}, false
	}
	return *m.cameraPosition, true
}

// SetCameraPosition stores the camera position used by MoveHere.
func (m *Marker) SetCameraPosition(p math32.Vector3) {
	m.cameraPosition = vec3Ptr(p)
}

// CameraTarget returns the stored camera target, if any.
func (m *Marker) CameraTarget() (math32.Vector3, bool) {
	if m.cameraTarget == nil {
		return math32.Vector3{}, false
	}
	return *m.cameraTarget, true
}

// SetCameraTarget stores the camera target used by MoveHere.
func (m *Marker) SetCameraTarget(t math32.Vector3) {
	m.cameraTarget = vec3Ptr(t)
}

// Radius returns the orbit distance, if any.
func (m *Marker) Radius() (float32, bool) {
	if m.radius == nil {
		return 0, false
	}
	return *m.radius, true
}

// SetRadius stores the orbit distance used by MoveHere.
func (m *Marker) SetRadius(r float32) {
	m.radius = &r
}

// ClearView drops the camera position, target and radius.
func (m *Marker) ClearView() {
	m.cameraPosition = nil
	m.cameraTarget = nil
	m.radius = nil
}

// HasView reports whether the marker defines a camera shot: a target plus
// either a camera position or an orbit radius.
func (m *Marker) HasView() bool {
	if m.cameraTarget == nil {
		return false
	}
	return m.cameraPosition != nil || m.radius != nil
}

// Frame returns the shot described by the marker. ok is false for a
// view-less marker.
func (m *Marker) Frame() (f Frame, ok bool) {
	if !m.HasView() {
		return Frame{}, false
	}
	f.Target = *m.cameraTarget
	if m.cameraPosition != nil {
		f.Position = *m.cameraPosition
		f.HasPosition = true
	}
	if m.radius != nil {
		f.Radius = *m.radius
		f.HasRadius = true
	}
	return f, true
}

// MoveHere asks framer to bring the camera to the marker's shot. A stored
// camera position wins over the radius; a radius of zero frames nothing.
// Returns false, doing nothing, for view-less markers or a nil framer.
func (m *Marker) MoveHere(framer ViewFramer) bool {
	f, ok := m.Frame()
	if !ok || framer == nil {
		return false
	}
	switch {
	case f.HasPosition:
		framer.MoveTo(f.Position, f.Target)
	case f.HasRadius && f.Radius > 0:
		framer.Orbit(f.Target, f.Radius)
	default:
		return false
	}
	if globalDebug {
		debugf("frame %s at %v", m.id, f.Target)
	}
	return true
}
