package cairn

import "cogentcore.org/core/math32"

// minClipW keeps points behind the camera from flipping through the
// perspective divide.
const minClipW float32 = 0.1

// Handle is a marker's leader line in screen space.
type Handle struct {
	Start math32.Vector2 // projected anchor
	End   math32.Vector2 // projected anchor+offset
	// Origin is the top-left corner of the rectangle spanned by Start and End.
	Origin math32.Vector2
}

// ToScreen projects a world-space point through viewProj (projection *
// view, column-major) into pixel coordinates of a width x height area,
// origin at the top-left and Y increasing downward.
func ToScreen(p math32.Vector3, viewProj *math32.Matrix4, width, height float32) math32.Vector2 {
	ndc := math32.Vector4FromVector3(p, 1).MulMatrix4(viewProj)
	ndc.W = math32.Max(ndc.W, minClipW)
	ndc = ndc.DivScalar(ndc.W)
	return math32.Vec2(
		width*(ndc.X+1)/2,
		height*(1-(ndc.Y+1)/2),
	)
}

// LeaderLine projects the marker's leader-line endpoints. ok is false when
// the marker has no anchor.
func LeaderLine(m *Marker, viewProj *math32.Matrix4, width, height float32) (h Handle, ok bool) {
	start, end, ok := m.Endpoints()
	if !ok {
		return Handle{}, false
	}
	h.Start = ToScreen(start, viewProj, width, height)
	h.End = ToScreen(end, viewProj, width, height)
	h.Origin = math32.Vec2(
		math32.Min(h.Start.X, h.End.X),
		math32.Min(h.Start.Y, h.End.Y),
	)
	return h, true
}
