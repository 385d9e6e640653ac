// Package interaction holds the pointer event and hit-test types shared by
// the overlay tools and the event router.
package interaction

import "github.com/philipparndt/vizpanel/pkg/geometry"

// Kind identifies one of the four routed pointer events
type Kind int

const (
	DoubleClick Kind = iota
	MouseDown
	MouseMove
	MouseUp
)

func (k Kind) String() string {
	switch k {
	case DoubleClick:
		return "doubleClick"
	case MouseDown:
		return "mouseDown"
	case MouseMove:
		return "mouseMove"
	case MouseUp:
		return "mouseUp"
	default:
		return "unknown"
	}
}

// ParseKind maps the names produced by Kind.String back to a Kind
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{DoubleClick, MouseDown, MouseMove, MouseUp} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Pointer is the screen-side part of a pointer event
type Pointer struct {
	ClientX float64
	ClientY float64
	Ctrl    bool
	Shift   bool
}

// Position returns the client coordinates as a point
func (p Pointer) Position() geometry.Point2 {
	return geometry.Point2{X: p.ClientX, Y: p.ClientY}
}

// Object is a renderable that was hit by a pointer event. Topic names the
// stream it came from; Data is the message it was built from.
type Object struct {
	Topic string         `json:"topic" yaml:"topic"`
	Data  map[string]any `json:"data" yaml:"data"`
}

// HitTest is what the renderer reports for a pointer event that landed on
// the world: the picked objects front to back and the point where the pointer
// ray meets the drawing plane.
type HitTest struct {
	Objects []Object
	Ground  geometry.Vector3
}

// Handler receives the four routed pointer events
type Handler interface {
	OnDoubleClick(ev Pointer, hit HitTest)
	OnMouseDown(ev Pointer, hit HitTest)
	OnMouseMove(ev Pointer, hit HitTest)
	OnMouseUp(ev Pointer, hit HitTest)
}

// Dispatch calls the handler method matching kind
func Dispatch(h Handler, kind Kind, ev Pointer, hit HitTest) {
	switch kind {
	case DoubleClick:
		h.OnDoubleClick(ev, hit)
	case MouseDown:
		h.OnMouseDown(ev, hit)
	case MouseMove:
		h.OnMouseMove(ev, hit)
	case MouseUp:
		h.OnMouseUp(ev, hit)
	}
}
