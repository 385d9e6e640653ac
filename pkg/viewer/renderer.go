// Package viewer draws line overlays in a top-down fyne widget and turns
// pointer input into ground-plane events.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// Segment is one world-space line to draw
type Segment struct {
	From  geometry.Vector3
	To    geometry.Vector3
	Color color.Color
	Width float32
}

// EventKind identifies a pointer event handed to the Handler
type EventKind int

const (
	DoubleClick EventKind = iota
	MouseDown
	MouseMove
	MouseUp
)

// PointerEvent is a pointer event with its ground-plane position
type PointerEvent struct {
	X, Y   float64
	Ctrl   bool
	Shift  bool
	Ground geometry.Vector3
}

// Handler receives the input of a PlanView
type Handler interface {
	Pointer(kind EventKind, ev PointerEvent)
	KeyDown(key string) bool
	Crosshair() bool
}

// PlanView renders segments through a Camera and forwards input
type PlanView struct {
	widget.BaseWidget
	camera   *Camera
	scene    func() []Segment
	handler  Handler
	lines    []*canvas.Line
	width    float64
	height   float64
	panStart *fyne.Position
	buttons  desktop.MouseButton
}

var (
	_ desktop.Mouseable   = (*PlanView)(nil)
	_ desktop.Hoverable   = (*PlanView)(nil)
	_ desktop.Cursorable  = (*PlanView)(nil)
	_ fyne.DoubleTappable = (*PlanView)(nil)
	_ fyne.Focusable      = (*PlanView)(nil)
	_ fyne.Scrollable     = (*PlanView)(nil)
)

// NewPlanView creates a view drawing the segments returned by scene
func NewPlanView(camera *Camera, scene func() []Segment, handler Handler) *PlanView {
	v := &PlanView{camera: camera, scene: scene, handler: handler}
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the view camera
func (v *PlanView) Camera() *Camera {
	return v.camera
}

// CreateRenderer creates the renderer for the widget
func (v *PlanView) CreateRenderer() fyne.WidgetRenderer {
	return &planViewRenderer{view: v}
}

// Render projects the scene for the given view size
func (v *PlanView) Render(width, height float64) {
	v.width = width
	v.height = height

	v.lines = v.lines[:0]
	if v.scene == nil {
		return
	}
	for _, seg := range v.scene() {
		x1, y1 := v.camera.Project(seg.From, width, height)
		x2, y2 := v.camera.Project(seg.To, width, height)

		line := canvas.NewLine(seg.Color)
		line.StrokeWidth = seg.Width
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		v.lines = append(v.lines, line)
	}
}

// Redraw re-renders the scene at the current size
func (v *PlanView) Redraw() {
	v.Render(v.width, v.height)
	v.Refresh()
}

func (v *PlanView) event(pos fyne.Position, mod fyne.KeyModifier) PointerEvent {
	x, y := float64(pos.X), float64(pos.Y)
	return PointerEvent{
		X:      x,
		Y:      y,
		Ctrl:   mod&(fyne.KeyModifierControl|fyne.KeyModifierSuper) != 0,
		Shift:  mod&fyne.KeyModifierShift != 0,
		Ground: v.camera.Unproject(x, y, v.width, v.height),
	}
}

func (v *PlanView) send(kind EventKind, ev PointerEvent) {
	if v.handler != nil {
		v.handler.Pointer(kind, ev)
	}
	v.Redraw()
}

// MouseDown handles button presses. The middle button pans the view.
func (v *PlanView) MouseDown(ev *desktop.MouseEvent) {
	v.buttons |= ev.Button
	if ev.Button == desktop.MouseButtonTertiary {
		pos := ev.Position
		v.panStart = &pos
		return
	}
	if ev.Button == desktop.MouseButtonPrimary {
		v.send(MouseDown, v.event(ev.Position, ev.Modifier))
	}
}

func (v *PlanView) MouseUp(ev *desktop.MouseEvent) {
	v.buttons &^= ev.Button
	if ev.Button == desktop.MouseButtonTertiary {
		v.panStart = nil
		return
	}
	if ev.Button == desktop.MouseButtonPrimary {
		v.send(MouseUp, v.event(ev.Position, ev.Modifier))
	}
}

func (v *PlanView) MouseIn(*desktop.MouseEvent) {}

func (v *PlanView) MouseMoved(ev *desktop.MouseEvent) {
	if v.panStart != nil {
		v.camera.Pan(float64(ev.Position.X-v.panStart.X), float64(ev.Position.Y-v.panStart.Y), v.width, v.height)
		pos := ev.Position
		v.panStart = &pos
		v.Redraw()
		return
	}
	v.send(MouseMove, v.event(ev.Position, ev.Modifier))
}

func (v *PlanView) MouseOut() {
	v.panStart = nil
}

// DoubleTapped forwards double clicks
func (v *PlanView) DoubleTapped(ev *fyne.PointEvent) {
	v.send(DoubleClick, v.event(ev.Position, 0))
}

// Scrolled handles scroll events for zooming
func (v *PlanView) Scrolled(ev *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	v.Redraw()
}

// Cursor shows a crosshair while a drawing or measuring tool is active
func (v *PlanView) Cursor() desktop.Cursor {
	if v.handler != nil && v.handler.Crosshair() {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}

func (v *PlanView) FocusGained() {}
func (v *PlanView) FocusLost()   {}

// TypedRune forwards character keys such as "p" or "3"
func (v *PlanView) TypedRune(r rune) {
	v.key(string(r))
}

// TypedKey forwards named keys
func (v *PlanView) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		v.key("Escape")
	case fyne.KeyHome:
		v.key("Home")
	}
}

func (v *PlanView) key(name string) {
	if v.handler != nil && v.handler.KeyDown(name) {
		v.Redraw()
	}
}

// Tapped requests focus so key presses reach the view
func (v *PlanView) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp(); c != nil {
		if w := c.Driver().CanvasForObject(v); w != nil {
			w.Focus(v)
		}
	}
}

// planViewRenderer implements fyne.WidgetRenderer
type planViewRenderer struct {
	view    *PlanView
	objects []fyne.CanvasObject
}

func (r *planViewRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
	r.Refresh()
}

func (r *planViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *planViewRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.view.lines))
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.view)
}

func (r *planViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *planViewRenderer) Destroy() {}
