package cairn

import (
	"testing"

	"cogentcore.org/core/math32"
)

func at(desc string, x, y, z float32) *Marker {
	p := math32.Vec3(x, y, z)
	return NewMarker(MarkerArgs{Description: desc, Position: &p})
}

func TestUpdateBoundsSingleAnchor(t *testing.T) {
	m := at("m", 1, 2, 3)
	m.UpdateBounds()
	want := math32.B3(1, 2, 3, 1, 2, 3)
	if m.BoundingBox() != want {
		t.Errorf("BoundingBox = %v, want %v", m.BoundingBox(), want)
	}
}

func TestUpdateBoundsUnionOfSubtree(t *testing.T) {
	root := named("root") // no anchor
	a := at("a", 0, 0, 0)
	b := at("b", 10, -5, 2)
	b.Add(at("b1", -3, 4, 8))
	root.Add(a)
	root.Add(b)

	root.UpdateBounds()

	want := math32.B3(-3, -5, 0, 10, 4, 8)
	if root.BoundingBox() != want {
		t.Errorf("root BoundingBox = %v, want %v", root.BoundingBox(), want)
	}
	wantB := math32.B3(-3, -5, 2, 10, 4, 8)
	if b.BoundingBox() != wantB {
		t.Errorf("b BoundingBox = %v, want %v", b.BoundingBox(), wantB)
	}
}

func TestUpdateBoundsEmpty(t *testing.T) {
	root := named("root")
	root.Add(named("child"))
	root.UpdateBounds()
	if !root.BoundingBox().IsEmpty() {
		t.Errorf("BoundingBox = %v, want empty", root.BoundingBox())
	}
}

func TestUpdateBoundsIsPulled(t *testing.T) {
	root := named("root")
	child := at("child", 1, 1, 1)
	root.Add(child)
	root.UpdateBounds()

	child.SetPosition(math32.Vec3(5, 5, 5))
	if root.BoundingBox() != math32.B3(1, 1, 1, 1, 1, 1) {
		t.Error("bounds should not change before UpdateBounds")
	}
	root.UpdateBounds()
	if root.BoundingBox() != math32.B3(5, 5, 5, 5, 5, 5) {
		t.Errorf("BoundingBox = %v, want (5,5,5)", root.BoundingBox())
	}
}

func TestUpdateBoundsAfterRemove(t *testing.T) {
	root := named("root")
	far := at("far", 100, 0, 0)
	root.Add(at("near", 0, 0, 0))
	root.Add(far)
	root.UpdateBounds()
	root.Remove(far)
	root.UpdateBounds()
	if root.BoundingBox() != math32.B3(0, 0, 0, 0, 0, 0) {
		t.Errorf("BoundingBox = %v, want origin", root.BoundingBox())
	}
}
