package cairn

import "cogentcore.org/core/math32"

// PointCloud is a loaded point cloud. Loading, LOD and rendering live in the
// host; the scene only needs a name and world-space bounds.
type PointCloud interface {
	Name() string
	BoundingBox() math32.Box3
}

// Shapefile is a vector overlay converted from GIS features by the host.
type Shapefile interface {
	Name() string
	BoundingBox() math32.Box3
}

// LengthUnit is the unit measurements are reported in.
type LengthUnit string

const (
	LengthUnitMeter LengthUnit = "m"
	LengthUnitFeet  LengthUnit = "ft"
	LengthUnitInch  LengthUnit = "in"
)

// metersPer converts one unit to meters.
var metersPer = map[LengthUnit]float32{
	LengthUnitMeter: 1,
	LengthUnitFeet:  0.3048,
	LengthUnitInch:  0.0254,
}

// Measurement is a polyline measurement. Scene.AddMeasurement stamps the
// scene's length unit onto it.
type Measurement struct {
	Name              string
	Points            []math32.Vector3
	LengthUnit        LengthUnit
	LengthUnitDisplay LengthUnit
}

// Length returns the polyline length in LengthUnitDisplay, assuming the
// points are in LengthUnit. Unknown units are treated as meters.
func (m *Measurement) Length() float32 {
	var total float32
	for i := 1; i < len(m.Points); i++ {
		total += m.Points[i].Sub(m.Points[i-1]).Length()
	}
	from, ok := metersPer[m.LengthUnit]
	if !ok {
		from = 1
	}
	to, ok := metersPer[m.LengthUnitDisplay]
	if !ok {
		to = 1
	}
	return total * from / to
}

// Profile is a height profile cut along a polyline.
type Profile struct {
	Name   string
	Points []math32.Vector3
	Width  float32
}

// Volume is a box volume. Clip volumes hide the points they contain (or
// everything else, depending on the host's clip mode).
type Volume struct {
	Name string
	Box  math32.Box3
	Clip bool
}

// PolygonClipVolume is a screen-space polygon extruded along the view.
type PolygonClipVolume struct {
	Name     string
	Vertices []math32.Vector3
}

// CameraAnimation is a camera path through control points.
type CameraAnimation struct {
	Name      string
	Positions []math32.Vector3
	Targets   []math32.Vector3
	Duration  float32
}

// ImageSet is a set of oriented or panoramic images.
type ImageSet struct {
	Name   string
	Images []string
}

// Geopackage is a loaded GeoPackage layer set.
type Geopackage struct {
	Name string
	Path string
}
