package cairn

import (
	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultFrameDuration is the length of a framing move in seconds.
const DefaultFrameDuration float32 = 0.5

// DefaultFrameEasing is the easing of a framing move.
var DefaultFrameEasing ease.TweenFunc = ease.OutQuart

// View is an orbit camera: a position, a unit viewing direction and the
// distance to the pivot it orbits.
type View struct {
	Position  math32.Vector3
	Direction math32.Vector3
	Radius    float32
}

// NewView returns a view at the origin looking down +Y with unit radius.
func NewView() *View {
	return &View{
		Direction: math32.Vec3(0, 1, 0),
		Radius:    1,
	}
}

// Pivot returns the point the view orbits around.
func (v *View) Pivot() math32.Vector3 {
	return v.Position.Add(v.Direction.MulScalar(v.Radius))
}

// LookAt points the view at target and sets the radius to the distance.
// No-op if target coincides with the view position.
func (v *View) LookAt(target math32.Vector3) {
	d := target.Sub(v.Position)
	l := d.Length()
	if l == 0 {
		return
	}
	v.Direction = d.MulScalar(1 / l)
	v.Radius = l
}

// viewAnim holds the active tweens of one framing move.
type viewAnim struct {
	tweens [7]*gween.Tween
	fields [7]*float32
	count  int

	lookAt    math32.Vector3
	hasLookAt bool
}

// add registers a tween from *field to to.
func (a *viewAnim) add(field *float32, to, duration float32, fn ease.TweenFunc) {
	a.tweens[a.count] = gween.New(*field, to, duration, fn)
	a.fields[a.count] = field
	a.count++
}

// ViewAnimator moves a View to the shots requested by markers. It
// implements ViewFramer; call Update(dt) once per frame.
//
// There is no global animation manager; callers drive Update themselves.
type ViewAnimator struct {
	View     *View
	Duration float32
	Easing   ease.TweenFunc

	anim *viewAnim
}

var _ ViewFramer = (*ViewAnimator)(nil)

// NewViewAnimator creates an animator for view with the default duration and
// easing.
func NewViewAnimator(view *View) *ViewAnimator {
	return &ViewAnimator{
		View:     view,
		Duration: DefaultFrameDuration,
		Easing:   DefaultFrameEasing,
	}
}

// MoveTo animates the view position to position while turning it towards
// target.
func (a *ViewAnimator) MoveTo(position, target math32.Vector3) {
	anim := &viewAnim{lookAt: a.View.Pivot(), hasLookAt: true}
	anim.add(&a.View.Position.X, position.X, a.Duration, a.easing())
	anim.add(&a.View.Position.Y, position.Y, a.Duration, a.easing())
	anim.add(&a.View.Position.Z, position.Z, a.Duration, a.easing())
	anim.add(&anim.lookAt.X, target.X, a.Duration, a.easing())
	anim.add(&anim.lookAt.Y, target.Y, a.Duration, a.easing())
	anim.add(&anim.lookAt.Z, target.Z, a.Duration, a.easing())
	a.anim = anim
}

// Orbit keeps the current direction and animates the view to stand radius
// units before target, tweening the radius alongside.
func (a *ViewAnimator) Orbit(target math32.Vector3, radius float32) {
	end := target.Sub(a.View.Direction.MulScalar(radius))
	anim := &viewAnim{}
	anim.add(&a.View.Position.X, end.X, a.Duration, a.easing())
	anim.add(&a.View.Position.Y, end.Y, a.Duration, a.easing())
	anim.add(&a.View.Position.Z, end.Z, a.Duration, a.easing())
	anim.add(&a.View.Radius, radius, a.Duration, a.easing())
	a.anim = anim
}

// Update advances the active move by dt seconds and writes the values to
// the view. Returns true when no move is in progress afterwards.
func (a *ViewAnimator) Update(dt float32) bool {
	anim := a.anim
	if anim == nil {
		return true
	}
	allDone := true
	for i := 0; i < anim.count; i++ {
		val, finished := anim.tweens[i].Update(dt)
		*anim.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	if anim.hasLookAt {
		a.View.LookAt(anim.lookAt)
	}
	if allDone {
		a.anim = nil
	}
	return allDone
}

// Active reports whether a move is in progress.
func (a *ViewAnimator) Active() bool {
	return a.anim != nil
}

// Stop abandons the active move, leaving the view where it is.
func (a *ViewAnimator) Stop() {
	a.anim = nil
}

func (a *ViewAnimator) easing() ease.TweenFunc {
	if a.Easing == nil {
		return DefaultFrameEasing
	}
	return a.Easing
}
