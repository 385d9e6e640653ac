package main

import (
	"image/color"

	"github.com/philipparndt/vizpanel/internal/app"
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/philipparndt/vizpanel/pkg/viewer"
)

// segments flattens line markers into world-space segments
func segments(ms []markers.Marker) []viewer.Segment {
	var out []viewer.Segment
	for _, m := range ms {
		pts := make([]geometry.Vector3, len(m.Points))
		for i, p := range m.Points {
			pts[i] = m.Pose.Position.Add(m.Pose.Orientation.Rotate(p))
		}

		col := toColor(m.Color)
		width := float32(2)
		if m.Color == markers.Black {
			width = 4
		}

		switch m.Type {
		case markers.TypeLineList:
			for i := 0; i+1 < len(pts); i += 2 {
				out = append(out, viewer.Segment{From: pts[i], To: pts[i+1], Color: col, Width: width})
			}
		case markers.TypeLineStrip:
			for i := 0; i+1 < len(pts); i++ {
				out = append(out, viewer.Segment{From: pts[i], To: pts[i+1], Color: col, Width: width})
			}
		}
	}
	return out
}

func toColor(c markers.Color) color.Color {
	return color.NRGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// controller adapts the interaction controller to the view's input handler
type controller struct {
	app      *app.App
	onChange func()
}

func (c controller) Pointer(kind viewer.EventKind, ev viewer.PointerEvent) {
	p := interaction.Pointer{ClientX: ev.X, ClientY: ev.Y, Ctrl: ev.Ctrl, Shift: ev.Shift}
	hit := &interaction.HitTest{Ground: ev.Ground}
	switch kind {
	case viewer.DoubleClick:
		c.app.OnDoubleClick(p, hit)
	case viewer.MouseDown:
		c.app.OnMouseDown(p, hit)
	case viewer.MouseMove:
		c.app.OnMouseMove(p, hit)
	case viewer.MouseUp:
		c.app.OnMouseUp(p, hit)
	}
	if kind != viewer.MouseMove && c.onChange != nil {
		c.onChange()
	}
}

func (c controller) KeyDown(key string) bool {
	ok := c.app.KeyDown(key)
	if ok && c.onChange != nil {
		c.onChange()
	}
	return ok
}

func (c controller) Crosshair() bool {
	return c.app.Cursor() == app.CursorCrosshair
}
