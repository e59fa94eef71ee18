package cairn

import (
	"testing"

	"cogentcore.org/core/math32"
)

// recordingFramer records the last request it received.
type recordingFramer struct {
	moves  int
	orbits int

	position math32.Vector3
	target   math32.Vector3
	radius   float32
}

func (f *recordingFramer) MoveTo(position, target math32.Vector3) {
	f.moves++
	f.position = position
	f.target = target
}

func (f *recordingFramer) Orbit(target math32.Vector3, radius float32) {
	f.orbits++
	f.target = target
	f.radius = radius
}

func TestHasView(t *testing.T) {
	pos := math32.Vec3(1, 1, 1)
	target := math32.Vec3(0, 0, 0)
	radius := float32(5)

	tests := []struct {
		name string
		args MarkerArgs
		want bool
	}{
		{"nothing", MarkerArgs{}, false},
		{"target only", MarkerArgs{CameraTarget: &target}, false},
		{"position only", MarkerArgs{CameraPosition: &pos}, false},
		{"radius only", MarkerArgs{Radius: &radius}, false},
		{"target and position", MarkerArgs{CameraTarget: &target, CameraPosition: &pos}, true},
		{"target and radius", MarkerArgs{CameraTarget: &target, Radius: &radius}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMarker(tt.args).HasView(); got != tt.want {
				t.Errorf("HasView = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClearView(t *testing.T) {
	m := named("m")
	m.SetCameraTarget(math32.Vec3(1, 2, 3))
	m.SetRadius(4)
	if !m.HasView() {
		t.Fatal("HasView should be true")
	}
	m.ClearView()
	if m.HasView() {
		t.Error("HasView should be false after ClearView")
	}
	if _, ok := m.Radius(); ok {
		t.Error("Radius should be absent")
	}
}

func TestFrame(t *testing.T) {
	m := named("m")
	if _, ok := m.Frame(); ok {
		t.Error("Frame should fail without a view")
	}
	m.SetCameraTarget(math32.Vec3(1, 2, 3))
	m.SetCameraPosition(math32.Vec3(4, 5, 6))
	f, ok := m.Frame()
	if !ok || !f.HasPosition || f.HasRadius {
		t.Fatalf("Frame = %+v, %v", f, ok)
	}
	if f.Target != math32.Vec3(1, 2, 3) || f.Position != math32.Vec3(4, 5, 6) {
		t.Errorf("Frame = %+v", f)
	}
}

func TestMoveHerePrefersPosition(t *testing.T) {
	m := named("m")
	m.SetCameraTarget(math32.Vec3(1, 0, 0))
	m.SetCameraPosition(math32.Vec3(0, -10, 0))
	m.SetRadius(3)

	f := &recordingFramer{}
	if !m.MoveHere(f) {
		t.Fatal("MoveHere returned false")
	}
	if f.moves != 1 || f.orbits != 0 {
		t.Errorf("moves=%d orbits=%d, want 1 0", f.moves, f.orbits)
	}
	if f.position != math32.Vec3(0, -10, 0) || f.target != math32.Vec3(1, 0, 0) {
		t.Errorf("MoveTo(%v, %v)", f.position, f.target)
	}
}

func TestMoveHereOrbits(t *testing.T) {
	m := named("m")
	m.SetCameraTarget(math32.Vec3(1, 0, 0))
	m.SetRadius(3)

	f := &recordingFramer{}
	if !m.MoveHere(f) {
		t.Fatal("MoveHere returned false")
	}
	if f.orbits != 1 || f.radius != 3 || f.target != math32.Vec3(1, 0, 0) {
		t.Errorf("Orbit = %+v", f)
	}
}

func TestMoveHereNoView(t *testing.T) {
	m := named("m")
	m.SetCameraPosition(math32.Vec3(1, 1, 1)) // no target
	f := &recordingFramer{}
	if m.MoveHere(f) {
		t.Error("MoveHere should return false without a view")
	}
	if f.moves+f.orbits != 0 {
		t.Error("framer should not be called")
	}
}

func TestMoveHereZeroRadius(t *testing.T) {
	m := named("m")
	m.SetCameraTarget(math32.Vec3(1, 0, 0))
	m.SetRadius(0)
	f := &recordingFramer{}
	if m.MoveHere(f) {
		t.Error("MoveHere should return false for a zero radius")
	}
	if f.orbits != 0 {
		t.Error("framer should not be called")
	}
}

func TestMoveHereNilFramer(t *testing.T) {
	m := named("m")
	m.SetCameraTarget(math32.Vec3(1, 0, 0))
	m.SetRadius(2)
	if m.MoveHere(nil) {
		t.Error("MoveHere(nil) should return false")
	}
}
