package cairn

import (
	"slices"

	"cogentcore.org/core/math32"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, scene events and marker additions are forwarded to it.
type EntityStore interface {
	EmitEvent(event Event)
}

// Scene is the top-level object that owns the two marker trees (markers and
// annotations) and the collections of externally loaded entities. Every
// collection change is announced through the scene's EventDispatcher.
type Scene struct {
	EventDispatcher

	annotations *Marker
	markers     *Marker

	pointClouds        []PointCloud
	shapefiles         []Shapefile
	measurements       []*Measurement
	profiles           []*Profile
	volumes            []*Volume
	polygonClipVolumes []*PolygonClipVolume
	cameraAnimations   []*CameraAnimation
	orientedImages     []*ImageSet
	images360          []*ImageSet
	geopackages        []*Geopackage

	lengthUnit        LengthUnit
	lengthUnitDisplay LengthUnit

	renderer Renderer
	store    EntityStore
	debug    bool
}

// NewScene creates a scene with empty annotation and marker roots.
func NewScene() *Scene {
	s := &Scene{
		annotations:       NewMarker(MarkerArgs{}),
		markers:           NewMarker(MarkerArgs{}),
		lengthUnit:        LengthUnitMeter,
		lengthUnitDisplay: LengthUnitMeter,
	}
	forward := func(e Event) {
		if s.store != nil {
			e.Scene = s
			s.store.EmitEvent(e)
		}
	}
	s.annotations.AddEventListener(EventMarkerAdded, forward)
	s.markers.AddEventListener(EventMarkerAdded, forward)
	return s
}

// Annotations returns the root of the annotation tree.
func (s *Scene) Annotations() *Marker {
	return s.annotations
}

// Markers returns the root of the marker tree.
func (s *Scene) Markers() *Marker {
	return s.markers
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-marker
// use panics, tree depth and child count warnings are printed, and tree and
// collection changes are traced to the debug output.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that marker
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetRenderer attaches r to both marker trees. Markers added later inherit
// it from their container.
func (s *Scene) SetRenderer(r Renderer) {
	s.renderer = r
	for _, root := range []*Marker{s.annotations, s.markers} {
		root.Traverse(func(m *Marker) bool {
			m.SetRenderer(r)
			return true
		})
	}
}

// Renderer returns the renderer set by SetRenderer, or nil.
func (s *Scene) Renderer() Renderer {
	return s.renderer
}

// SetLengthUnit sets the unit stamped on measurements added from now on.
func (s *Scene) SetLengthUnit(unit, display LengthUnit) {
	s.lengthUnit = unit
	s.lengthUnitDisplay = display
}

// emit dispatches a collection event and forwards it to the entity store.
func (s *Scene) emit(t EventType, entity any) {
	e := Event{Type: t, Scene: s, Entity: entity}
	if s.debug {
		debugf("scene %s", t)
	}
	s.DispatchEvent(e)
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}

// without returns s minus the element at i in a fresh backing array, so a
// range over the old slice in a listener is unaffected.
func without[T any](s []T, i int) []T {
	return append(s[:i:i], s[i+1:]...)
}

// --- Markers and annotations ---

// AddMarker creates a marker at position and attaches it to the marker root.
func (s *Scene) AddMarker(position math32.Vector3, args MarkerArgs) *Marker {
	args.Position = &position
	m := NewMarker(args)
	s.markers.Add(m)
	return m
}

// RemoveMarker removes m from the marker root. No-op if m is not a top-level marker.
func (s *Scene) RemoveMarker(m *Marker) {
	s.markers.Remove(m)
}

// RemoveAllMarkers removes and disposes every marker.
func (s *Scene) RemoveAllMarkers() {
	s.markers.RemoveAllChildren()
}

// AddAnnotation creates an annotation at position and attaches it to the
// annotation root.
func (s *Scene) AddAnnotation(position math32.Vector3, args MarkerArgs) *Marker {
	args.Position = &position
	a := NewMarker(args)
	s.annotations.Add(a)
	return a
}

// RemoveAnnotation removes a from the annotation root.
func (s *Scene) RemoveAnnotation(a *Marker) {
	s.annotations.Remove(a)
}

// RemoveAllAnnotations removes and disposes every annotation.
func (s *Scene) RemoveAllAnnotations() {
	s.annotations.RemoveAllChildren()
}

// --- Point clouds ---

// AddPointCloud appends pc and emits EventPointCloudAdded.
func (s *Scene) AddPointCloud(pc PointCloud) {
	s.pointClouds = append(s.pointClouds, pc)
	s.emit(EventPointCloudAdded, pc)
}

// RemovePointCloud removes pc and emits EventPointCloudRemoved.
// No-op if pc is not in the scene.
func (s *Scene) RemovePointCloud(pc PointCloud) {
	if i := slices.Index(s.pointClouds, pc); i >= 0 {
		s.pointClouds = without(s.pointClouds, i)
		s.emit(EventPointCloudRemoved, pc)
	}
}

// RemoveAllPointClouds removes every point cloud, one event each.
func (s *Scene) RemoveAllPointClouds() {
	for len(s.pointClouds) > 0 {
		s.RemovePointCloud(s.pointClouds[0])
	}
}

// PointClouds returns the scene's point clouds. The returned slice MUST NOT be mutated.
func (s *Scene) PointClouds() []PointCloud {
	return s.pointClouds
}

// BoundingBox returns the union of the bounds of the given point clouds, or
// of every point cloud in the scene when none are given.
func (s *Scene) BoundingBox(pointClouds ...PointCloud) math32.Box3 {
	if len(pointClouds) == 0 {
		pointClouds = s.pointClouds
	}
	box := math32.B3Empty()
	for _, pc := range pointClouds {
		box = box.Union(pc.BoundingBox())
	}
	return box
}

// --- Shapefiles ---

// AddShapefile appends sf and emits EventShapefileAdded.
func (s *Scene) AddShapefile(sf Shapefile) {
	s.shapefiles = append(s.shapefiles, sf)
	s.emit(EventShapefileAdded, sf)
}

// RemoveShapefile removes sf and emits EventShapefileRemoved.
func (s *Scene) RemoveShapefile(sf Shapefile) {
	if i := slices.Index(s.shapefiles, sf); i >= 0 {
		s.shapefiles = without(s.shapefiles, i)
		s.emit(EventShapefileRemoved, sf)
	}
}

// RemoveAllShapefiles removes every shapefile.
func (s *Scene) RemoveAllShapefiles() {
	for len(s.shapefiles) > 0 {
		s.RemoveShapefile(s.shapefiles[0])
	}
}

// Shapefiles returns the scene's shapefiles. The returned slice MUST NOT be mutated.
func (s *Scene) Shapefiles() []Shapefile {
	return s.shapefiles
}

// --- Measurements, profiles, volumes ---

// AddMeasurement stamps the scene's length units onto m, appends it and
// emits EventMeasurementAdded.
func (s *Scene) AddMeasurement(m *Measurement) {
	m.LengthUnit = s.lengthUnit
	m.LengthUnitDisplay = s.lengthUnitDisplay
	s.measurements = append(s.measurements, m)
	s.emit(EventMeasurementAdded, m)
}

// RemoveMeasurement removes m and emits EventMeasurementRemoved.
func (s *Scene) RemoveMeasurement(m *Measurement) {
	if i := slices.Index(s.measurements, m); i >= 0 {
		s.measurements = without(s.measurements, i)
		s.emit(EventMeasurementRemoved, m)
	}
}

// Measurements returns the scene's measurements. The returned slice MUST NOT be mutated.
func (s *Scene) Measurements() []*Measurement {
	return s.measurements
}

// AddProfile appends p and emits EventProfileAdded.
func (s *Scene) AddProfile(p *Profile) {
	s.profiles = append(s.profiles, p)
	s.emit(EventProfileAdded, p)
}

// RemoveProfile removes p and emits EventProfileRemoved.
func (s *Scene) RemoveProfile(p *Profile) {
	if i := slices.Index(s.profiles, p); i >= 0 {
		s.profiles = without(s.profiles, i)
		s.emit(EventProfileRemoved, p)
	}
}

// Profiles returns the scene's profiles. The returned slice MUST NOT be mutated.
func (s *Scene) Profiles() []*Profile {
	return s.profiles
}

// AddVolume appends v and emits EventVolumeAdded.
func (s *Scene) AddVolume(v *Volume) {
	s.volumes = append(s.volumes, v)
	s.emit(EventVolumeAdded, v)
}

// RemoveVolume removes v and emits EventVolumeRemoved.
func (s *Scene) RemoveVolume(v *Volume) {
	if i := slices.Index(s.volumes, v); i >= 0 {
		s.volumes = without(s.volumes, i)
		s.emit(EventVolumeRemoved, v)
	}
}

// Volumes returns the scene's volumes. The returned slice MUST NOT be mutated.
func (s *Scene) Volumes() []*Volume {
	return s.volumes
}

// RemoveAllMeasurements removes every measurement, profile and volume.
func (s *Scene) RemoveAllMeasurements() {
	for len(s.measurements) > 0 {
		s.RemoveMeasurement(s.measurements[0])
	}
	for len(s.profiles) > 0 {
		s.RemoveProfile(s.profiles[0])
	}
	for len(s.volumes) > 0 {
		s.RemoveVolume(s.volumes[0])
	}
}

// --- Clip volumes ---

// AddPolygonClipVolume appends v and emits EventPolygonClipVolumeAdded.
func (s *Scene) AddPolygonClipVolume(v *PolygonClipVolume) {
	s.polygonClipVolumes = append(s.polygonClipVolumes, v)
	s.emit(EventPolygonClipVolumeAdded, v)
}

// RemovePolygonClipVolume removes v and emits EventPolygonClipVolumeRemoved.
func (s *Scene) RemovePolygonClipVolume(v *PolygonClipVolume) {
	if i := slices.Index(s.polygonClipVolumes, v); i >= 0 {
		s.polygonClipVolumes = without(s.polygonClipVolumes, i)
		s.emit(EventPolygonClipVolumeRemoved, v)
	}
}

// PolygonClipVolumes returns the scene's polygon clip volumes. The returned
// slice MUST NOT be mutated.
func (s *Scene) PolygonClipVolumes() []*PolygonClipVolume {
	return s.polygonClipVolumes
}

// RemoveAllClipVolumes removes every clipping box volume and every polygon
// clip volume. Non-clipping volumes stay.
func (s *Scene) RemoveAllClipVolumes() {
	var clip []*Volume
	for _, v := range s.volumes {
		if v.Clip {
			clip = append(clip, v)
		}
	}
	for _, v := range clip {
		s.RemoveVolume(v)
	}
	for len(s.polygonClipVolumes) > 0 {
		s.RemovePolygonClipVolume(s.polygonClipVolumes[0])
	}
}

// --- Camera animations ---

// AddCameraAnimation appends a and emits EventCameraAnimationAdded.
func (s *Scene) AddCameraAnimation(a *CameraAnimation) {
	s.cameraAnimations = append(s.cameraAnimations, a)
	s.emit(EventCameraAnimationAdded, a)
}

// RemoveCameraAnimation removes a and emits EventCameraAnimationRemoved.
func (s *Scene) RemoveCameraAnimation(a *CameraAnimation) {
	if i := slices.Index(s.cameraAnimations, a); i >= 0 {
		s.cameraAnimations = without(s.cameraAnimations, i)
		s.emit(EventCameraAnimationRemoved, a)
	}
}

// CameraAnimations returns the scene's camera animations. The returned
// slice MUST NOT be mutated.
func (s *Scene) CameraAnimations() []*CameraAnimation {
	return s.cameraAnimations
}

// --- Images and geopackages ---

// AddOrientedImages appends images and emits EventOrientedImagesAdded.
func (s *Scene) AddOrientedImages(images *ImageSet) {
	s.orientedImages = append(s.orientedImages, images)
	s.emit(EventOrientedImagesAdded, images)
}

// RemoveOrientedImages removes images and emits EventOrientedImagesRemoved.
func (s *Scene) RemoveOrientedImages(images *ImageSet) {
	if i := slices.Index(s.orientedImages, images); i >= 0 {
		s.orientedImages = without(s.orientedImages, i)
		s.emit(EventOrientedImagesRemoved, images)
	}
}

// OrientedImages returns the scene's oriented image sets. The returned slice
// MUST NOT be mutated.
func (s *Scene) OrientedImages() []*ImageSet {
	return s.orientedImages
}

// Add360Images appends images and emits EventImages360Added.
func (s *Scene) Add360Images(images *ImageSet) {
	s.images360 = append(s.images360, images)
	s.emit(EventImages360Added, images)
}

// Remove360Images removes images and emits EventImages360Removed.
func (s *Scene) Remove360Images(images *ImageSet) {
	if i := slices.Index(s.images360, images); i >= 0 {
		s.images360 = without(s.images360, i)
		s.emit(EventImages360Removed, images)
	}
}

// Images360 returns the scene's panoramic image sets. The returned slice
// MUST NOT be mutated.
func (s *Scene) Images360() []*ImageSet {
	return s.images360
}

// AddGeopackage appends g and emits EventGeopackageAdded.
func (s *Scene) AddGeopackage(g *Geopackage) {
	s.geopackages = append(s.geopackages, g)
	s.emit(EventGeopackageAdded, g)
}

// RemoveGeopackage removes g and emits EventGeopackageRemoved.
func (s *Scene) RemoveGeopackage(g *Geopackage) {
	if i := slices.Index(s.geopackages, g); i >= 0 {
		s.geopackages = without(s.geopackages, i)
		s.emit(EventGeopackageRemoved, g)
	}
}

// Geopackages returns the scene's geopackages. The returned slice MUST NOT be mutated.
func (s *Scene) Geopackages() []*Geopackage {
	return s.geopackages
}

// Clear removes point clouds, shapefiles, measurements, clip volumes,
// annotations and markers. Image sets, geopackages and camera animations
// are kept.
func (s *Scene) Clear() {
	s.RemoveAllPointClouds()
	s.RemoveAllShapefiles()
	s.RemoveAllMeasurements()
	s.RemoveAllClipVolumes()
	s.RemoveAllAnnotations()
	s.RemoveAllMarkers()
}
