package cairn

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/tanema/gween/ease"
)

const epsilon = 1e-4

func approxEqual(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

func approxVec3(a, b math32.Vector3) bool {
	return approxEqual(a.X, b.X, epsilon) && approxEqual(a.Y, b.Y, epsilon) && approxEqual(a.Z, b.Z, epsilon)
}

func TestViewDefaults(t *testing.T) {
	v := NewView()
	if v.Radius != 1 {
		t.Errorf("Radius = %v, want 1", v.Radius)
	}
	if v.Pivot() != math32.Vec3(0, 1, 0) {
		t.Errorf("Pivot = %v, want (0,1,0)", v.Pivot())
	}
}

func TestViewLookAt(t *testing.T) {
	v := NewView()
	v.LookAt(math32.Vec3(3, 0, 4))
	if !approxEqual(v.Radius, 5, epsilon) {
		t.Errorf("Radius = %v, want 5", v.Radius)
	}
	if !approxVec3(v.Direction, math32.Vec3(0.6, 0, 0.8)) {
		t.Errorf("Direction = %v, want (0.6,0,0.8)", v.Direction)
	}
	if !approxVec3(v.Pivot(), math32.Vec3(3, 0, 4)) {
		t.Errorf("Pivot = %v, want (3,0,4)", v.Pivot())
	}
}

func TestViewLookAtSelfNoop(t *testing.T) {
	v := NewView()
	v.LookAt(v.Position)
	if v.Direction != math32.Vec3(0, 1, 0) || v.Radius != 1 {
		t.Errorf("view changed: %+v", v)
	}
}

func TestViewAnimatorMoveTo(t *testing.T) {
	v := NewView()
	a := NewViewAnimator(v)
	a.Duration = 1
	a.Easing = ease.Linear

	a.MoveTo(math32.Vec3(10, 0, 0), math32.Vec3(10, 10, 0))
	if !a.Active() {
		t.Fatal("animator should be active")
	}

	if a.Update(0.5) {
		t.Error("Update should report in progress at the halfway point")
	}
	if !approxEqual(v.Position.X, 5, epsilon) {
		t.Errorf("Position.X at half = %v, want 5", v.Position.X)
	}

	if !a.Update(0.5) {
		t.Error("Update should report done")
	}
	if a.Active() {
		t.Error("animator should be idle")
	}
	if !approxVec3(v.Position, math32.Vec3(10, 0, 0)) {
		t.Errorf("Position = %v, want (10,0,0)", v.Position)
	}
	if !approxVec3(v.Pivot(), math32.Vec3(10, 10, 0)) {
		t.Errorf("Pivot = %v, want (10,10,0)", v.Pivot())
	}
}

func TestViewAnimatorOrbit(t *testing.T) {
	v := NewView() // looking down +Y
	a := NewViewAnimator(v)
	a.Duration = 0.25

	a.Orbit(math32.Vec3(0, 20, 0), 5)
	for !a.Update(0.1) {
	}

	if !approxVec3(v.Position, math32.Vec3(0, 15, 0)) {
		t.Errorf("Position = %v, want (0,15,0)", v.Position)
	}
	if !approxEqual(v.Radius, 5, epsilon) {
		t.Errorf("Radius = %v, want 5", v.Radius)
	}
	if !approxVec3(v.Pivot(), math32.Vec3(0, 20, 0)) {
		t.Errorf("Pivot = %v, want (0,20,0)", v.Pivot())
	}
}

func TestViewAnimatorReplaceAndStop(t *testing.T) {
	v := NewView()
	a := NewViewAnimator(v)
	a.Duration = 1
	a.Easing = nil // falls back to the default easing

	a.MoveTo(math32.Vec3(100, 0, 0), math32.Vec3(100, 1, 0))
	a.Update(0.1)
	a.MoveTo(math32.Vec3(-5, 0, 0), math32.Vec3(-5, 1, 0))
	for !a.Update(0.5) {
	}
	if !approxVec3(v.Position, math32.Vec3(-5, 0, 0)) {
		t.Errorf("Position = %v, want (-5,0,0)", v.Position)
	}

	a.Orbit(math32.Vec3(0, 0, 0), 2)
	a.Stop()
	if a.Active() {
		t.Error("Stop should clear the move")
	}
	if !a.Update(1) {
		t.Error("Update with no move should report done")
	}
}

func TestMarkerMoveHereDrivesAnimator(t *testing.T) {
	v := NewView()
	a := NewViewAnimator(v)
	a.Duration = 0.2

	m := named("m")
	m.SetCameraTarget(math32.Vec3(0, 0, 0))
	m.SetCameraPosition(math32.Vec3(0, -8, 6))
	if !m.MoveHere(a) {
		t.Fatal("MoveHere returned false")
	}
	for !a.Update(0.05) {
	}
	if !approxVec3(v.Position, math32.Vec3(0, -8, 6)) {
		t.Errorf("Position = %v, want (0,-8,6)", v.Position)
	}
	if !approxEqual(v.Radius, 10, epsilon) {
		t.Errorf("Radius = %v, want 10", v.Radius)
	}
}
