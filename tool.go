package cairn

import "cogentcore.org/core/math32"

// MarkerTool creates markers in a scene, either directly or through an
// interactive insertion that follows the pointer until it is finished or
// cancelled. It emits EventStartInsertingMarker for every marker it creates.
type MarkerTool struct {
	EventDispatcher

	scene  *Scene
	picker Picker
}

// NewMarkerTool creates a tool that inserts into scene's marker tree and
// resolves pointer positions with picker. picker may be nil when only
// CreateMarker is used.
func NewMarkerTool(scene *Scene, picker Picker) *MarkerTool {
	return &MarkerTool{scene: scene, picker: picker}
}

// CreateMarker builds a marker from args, announces it and attaches it under
// the scene's marker root. args.Done is not called; it belongs to
// StartInsertion.
func (t *MarkerTool) CreateMarker(args MarkerArgs) *Marker {
	m := NewMarker(args)
	t.DispatchEvent(Event{Type: EventStartInsertingMarker, Marker: m, Scene: t.scene})
	t.scene.Markers().Add(m)
	return m
}

// Insertion is an in-progress interactive marker placement.
type Insertion struct {
	tool   *MarkerTool
	marker *Marker
	done   bool
}

// StartInsertion creates a marker like CreateMarker, runs args.Done once it
// is attached and returns a handle that moves it with Drag until Finish or
// Cancel. A marker without a position in args starts at the origin.
func (t *MarkerTool) StartInsertion(args MarkerArgs) *Insertion {
	if args.Position == nil {
		args.Position = &math32.Vector3{}
	}
	m := t.CreateMarker(args)
	if args.Done != nil {
		args.Done(m)
	}
	return &Insertion{tool: t, marker: m}
}

// Marker returns the marker being placed.
func (in *Insertion) Marker() *Marker {
	return in.marker
}

// Done reports whether the insertion was finished or cancelled.
func (in *Insertion) Done() bool {
	return in.done
}

// Drag moves the marker to the point under screen position (x, y). Returns
// false if the insertion is over, there is no picker, or nothing was hit.
func (in *Insertion) Drag(x, y float64) bool {
	if in.done || in.tool.picker == nil {
		return false
	}
	p, ok := in.tool.picker.Pick(x, y)
	if !ok {
		return false
	}
	in.marker.SetPosition(p)
	return true
}

// Finish keeps the marker where it is and ends the insertion.
func (in *Insertion) Finish() {
	in.done = true
}

// Cancel removes the marker from the scene and ends the insertion.
// No-op once the insertion is over.
func (in *Insertion) Cancel() {
	if in.done {
		return
	}
	in.done = true
	in.tool.scene.Markers().Remove(in.marker)
}
