package cairn

import "cogentcore.org/core/math32"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the overlay submits draw calls.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default icon tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default leader line color.
var ColorBlack = Color{0, 0, 0, 1}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for vector drawing.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// vec3Ptr returns a pointer to a copy of v.
func vec3Ptr(v math32.Vector3) *math32.Vector3 {
	return &v
}

// EventType identifies a kind of notification delivered by an EventDispatcher.
type EventType uint8

const (
	EventVisibilityChanged EventType = iota // marker visible flag changed
	EventMarkerChanged                      // marker description edited
	EventMarkerAdded                        // descendant attached; fired on every ancestor

	EventPointCloudAdded   // scene gained a point cloud
	EventPointCloudRemoved // scene lost a point cloud
	EventShapefileAdded
	EventShapefileRemoved
	EventVolumeAdded
	EventVolumeRemoved
	EventMeasurementAdded
	EventMeasurementRemoved
	EventProfileAdded
	EventProfileRemoved
	EventPolygonClipVolumeAdded
	EventPolygonClipVolumeRemoved
	EventCameraAnimationAdded
	EventCameraAnimationRemoved
	EventOrientedImagesAdded
	EventOrientedImagesRemoved
	EventImages360Added
	EventImages360Removed
	EventGeopackageAdded
	EventGeopackageRemoved

	EventStartInsertingMarker // marker tool created a marker

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventVisibilityChanged:        "visibility_changed",
	EventMarkerChanged:            "marker_changed",
	EventMarkerAdded:              "marker_added",
	EventPointCloudAdded:          "pointcloud_added",
	EventPointCloudRemoved:        "pointcloud_removed",
	EventShapefileAdded:           "shapefile_added",
	EventShapefileRemoved:         "shapefile_removed",
	EventVolumeAdded:              "volume_added",
	EventVolumeRemoved:            "volume_removed",
	EventMeasurementAdded:         "measurement_added",
	EventMeasurementRemoved:       "measurement_removed",
	EventProfileAdded:             "profile_added",
	EventProfileRemoved:           "profile_removed",
	EventPolygonClipVolumeAdded:   "polygon_clip_volume_added",
	EventPolygonClipVolumeRemoved: "polygon_clip_volume_removed",
	EventCameraAnimationAdded:     "camera_animation_added",
	EventCameraAnimationRemoved:   "camera_animation_removed",
	EventOrientedImagesAdded:      "oriented_images_added",
	EventOrientedImagesRemoved:    "oriented_images_removed",
	EventImages360Added:           "360_images_added",
	EventImages360Removed:         "360_images_removed",
	EventGeopackageAdded:          "geopackage_added",
	EventGeopackageRemoved:        "geopackage_removed",
	EventStartInsertingMarker:     "start_inserting_marker",
}

// String returns the wire name of the event type, e.g. "marker_added".
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}
