package cairn

import (
	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	defaultIconRadius   float32 = 8
	defaultLineWidth    float32 = 2
	defaultHandleRadius float32 = 4

	// Icon opacity when idle and when hovered.
	iconAlphaIdle        = 0.5
	iconAlphaHighlighted = 0.8
)

// OverlayCommand is one marker's screen-space draw data, produced by
// Overlay.Update and consumed by Overlay.Draw.
type OverlayCommand struct {
	Marker      *Marker
	Icon        math32.Vector2
	Handle      Handle
	HasHandle   bool
	Highlighted bool
}

type overlayEntry struct {
	displayed   bool
	highlighted bool
	handles     bool
}

// Overlay is a Renderer that draws marker icons and leader lines on top of
// an ebiten screen. Markers register themselves through the Renderer
// methods; Update projects the displayed ones and Draw submits them.
type Overlay struct {
	IconColor   Color
	LineColor   Color
	HandleColor Color
	IconRadius  float32
	LineWidth   float32

	entries  map[*Marker]*overlayEntry
	order    []*Marker // registration order, for stable draw order
	commands []OverlayCommand
}

var _ Renderer = (*Overlay)(nil)

// NewOverlay creates an overlay with default styling.
func NewOverlay() *Overlay {
	return &Overlay{
		IconColor:   ColorWhite,
		LineColor:   ColorBlack,
		HandleColor: Color{0.5, 0.5, 0.5, 1},
		IconRadius:  defaultIconRadius,
		LineWidth:   defaultLineWidth,
		entries:     make(map[*Marker]*overlayEntry),
	}
}

// entry returns the marker's entry, creating it on first use.
func (o *Overlay) entry(m *Marker) *overlayEntry {
	e, ok := o.entries[m]
	if !ok {
		e = &overlayEntry{}
		o.entries[m] = e
		o.order = append(o.order, m)
	}
	return e
}

// SetDisplayed implements Renderer.
func (o *Overlay) SetDisplayed(m *Marker, displayed bool) {
	o.entry(m).displayed = displayed
}

// SetHighlighted implements Renderer.
func (o *Overlay) SetHighlighted(m *Marker, highlighted bool) {
	o.entry(m).highlighted = highlighted
}

// Dispose implements Renderer. The marker's icon and handles are dropped.
func (o *Overlay) Dispose(m *Marker) {
	if _, ok := o.entries[m]; !ok {
		return
	}
	delete(o.entries, m)
	for i, c := range o.order {
		if c == m {
			copy(o.order[i:], o.order[i+1:])
			o.order[len(o.order)-1] = nil
			o.order = o.order[:len(o.order)-1]
			break
		}
	}
}

// Displayed reports whether the overlay currently shows m.
func (o *Overlay) Displayed(m *Marker) bool {
	e, ok := o.entries[m]
	return ok && e.displayed
}

// InstallHandles enables the leader line for m. No-op if already installed.
func (o *Overlay) InstallHandles(m *Marker) {
	o.entry(m).handles = true
}

// RemoveHandles disables the leader line for m. No-op if not installed.
func (o *Overlay) RemoveHandles(m *Marker) {
	if e, ok := o.entries[m]; ok {
		e.handles = false
	}
}

// HasHandles reports whether m has a leader line installed.
func (o *Overlay) HasHandles(m *Marker) bool {
	e, ok := o.entries[m]
	return ok && e.handles
}

// Update projects every displayed, visible, anchored marker into a
// width x height screen using viewProj and rebuilds the command list.
func (o *Overlay) Update(viewProj *math32.Matrix4, width, height float32) {
	o.commands = o.commands[:0]
	for _, m := range o.order {
		e := o.entries[m]
		if !e.displayed || !m.Visible() {
			continue
		}
		pos, ok := m.Position()
		if !ok {
			continue
		}
		cmd := OverlayCommand{
			Marker:      m,
			Icon:        ToScreen(pos, viewProj, width, height),
			Highlighted: e.highlighted,
		}
		if e.handles {
			cmd.Handle, cmd.HasHandle = LeaderLine(m, viewProj, width, height)
		}
		o.commands = append(o.commands, cmd)
	}
}

// Commands returns the commands built by the last Update. The returned slice
// MUST NOT be mutated by the caller.
func (o *Overlay) Commands() []OverlayCommand {
	return o.commands
}

// shapeKind selects the vector primitive an overlayShape is drawn with.
type shapeKind uint8

const (
	shapeLine shapeKind = iota // stroked segment From-To
	shapeDisc                  // filled circle at From
	shapeRing                  // stroked circle at From
)

// overlayShape is one vector primitive submitted by Draw.
type overlayShape struct {
	kind   shapeKind
	from   math32.Vector2
	to     math32.Vector2
	radius float32
	width  float32
	color  colorRGBA
}

// shapes expands the commands built by the last Update into primitives, in
// submission order: each marker's leader line and handles, then its icon.
func (o *Overlay) shapes() []overlayShape {
	line := o.LineColor.toRGBA()
	handle := o.HandleColor.toRGBA()
	var out []overlayShape
	for i := range o.commands {
		cmd := &o.commands[i]
		if cmd.HasHandle {
			h := cmd.Handle
			out = append(out,
				overlayShape{kind: shapeLine, from: h.Start, to: h.End, width: o.LineWidth, color: line},
				overlayShape{kind: shapeDisc, from: h.Start, radius: defaultHandleRadius, color: handle},
				overlayShape{kind: shapeDisc, from: h.End, radius: defaultHandleRadius, color: handle},
				overlayShape{kind: shapeRing, from: h.Start, radius: defaultHandleRadius, width: o.LineWidth, color: line},
				overlayShape{kind: shapeRing, from: h.End, radius: defaultHandleRadius, width: o.LineWidth, color: line},
			)
		}
		alpha := iconAlphaIdle
		if cmd.Highlighted {
			alpha = iconAlphaHighlighted
		}
		icon := o.IconColor.WithAlpha(o.IconColor.A * alpha).toRGBA()
		out = append(out, overlayShape{kind: shapeDisc, from: cmd.Icon, radius: o.IconRadius, color: icon})
	}
	return out
}

// Draw submits the commands built by the last Update to screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, sh := range o.shapes() {
		switch sh.kind {
		case shapeLine:
			vector.StrokeLine(screen, sh.from.X, sh.from.Y, sh.to.X, sh.to.Y, sh.width, sh.color, true)
		case shapeDisc:
			vector.DrawFilledCircle(screen, sh.from.X, sh.from.Y, sh.radius, sh.color, true)
		case shapeRing:
			vector.StrokeCircle(screen, sh.from.X, sh.from.Y, sh.radius, sh.width, sh.color, true)
		}
	}
}
