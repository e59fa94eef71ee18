// Package cairn is a retained-mode annotation layer for 3D point-cloud
// viewers, with an [Ebitengine] overlay.
//
// Cairn provides the marker hierarchy, bounding-box aggregation, the
// expand/collapse display state machine, camera framing, scene entity
// collections and the events that tie them to a host viewer.
//
// # Quick start
//
// A [Scene] owns two marker trees, [Scene.Markers] and [Scene.Annotations].
// Attach a [Renderer] (the bundled [Overlay] draws icons and leader lines on
// an ebiten screen) and add markers:
//
//	scene := cairn.NewScene()
//	overlay := cairn.NewOverlay()
//	scene.SetRenderer(overlay)
//
//	m := scene.AddMarker(math32.Vec3(10, 0, 2), cairn.MarkerArgs{
//		Description: "Pump house",
//	})
//	m.SetExpanded(false) // show the marker
//
// Per frame, project and draw:
//
//	overlay.Update(&viewProj, w, h)
//	overlay.Draw(screen)
//
// # Marker tree
//
// Every annotation is a [Marker]. A marker owns its children; [Marker.Add]
// attaches a subtree and notifies every ancestor with [EventMarkerAdded] for
// each attached marker, and [Marker.Remove] tears a subtree down deepest
// first, disposing each marker's renderer state.
//
// Bounds are pulled: call [Marker.UpdateBounds] after a batch of changes and
// read [Marker.BoundingBox].
//
// # Display state
//
// [Marker.SetVisible] is the logical switch a user toggles.
// [Marker.SetExpanded] drives what is drawn: a collapsed marker is displayed
// in place of its whole subtree, an expanded one hides itself so its
// children can be shown.
//
// # Camera framing
//
// A marker with a camera target and either a camera position or an orbit
// radius can frame itself with [Marker.MoveHere]. [ViewAnimator] is a
// [ViewFramer] that tweens a [View] there (via [gween]):
//
//	anim := cairn.NewViewAnimator(view)
//	m.MoveHere(anim)
//	// each frame:
//	anim.Update(dt)
//
// # Configuration
//
// [LoadConfig] reads a YAML document describing debug mode, units, framing
// animation and initial marker trees; [Config.Apply] seeds a scene from it.
//
// ECS integration is available via the [Donburi] adapter in cairn/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package cairn
