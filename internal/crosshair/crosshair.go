// Package crosshair builds the screen-fixed crosshair drawn over the orbit
// target while the camera is orthographic.
package crosshair

import (
	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
)

const (
	lengthFactor    = 0.02
	thicknessFactor = 0.004

	outlineDepth     = 1000
	outlineThickness = 1.6
	fillDepth        = 1001
)

// Geometry is the shared pose and size of both crosshair layers
type Geometry struct {
	Point       geometry.Vector3
	Orientation geometry.Quaternion
	Length      float64
	Thickness   float64
}

// Compute derives the crosshair pose from the camera. It does not look at the
// projection mode.
func Compute(cam camera.State) Geometry {
	heading := camera.TargetHeading(cam)
	theta := heading + cam.ThetaOffset

	// targetOffset is camera-local; rotate it into world space first
	offset := geometry.FromArray(cam.TargetOffset).RotateZ(-heading)
	point := geometry.FromArray(cam.Target).Add(offset)

	return Geometry{
		Point:       point,
		Orientation: geometry.IdentityQuaternion().RotateZ(-theta),
		Length:      lengthFactor * cam.Distance,
		Thickness:   thicknessFactor * cam.Distance,
	}
}

// Generate returns the two crosshair markers, outline first. Nothing is
// returned for a perspective camera or when the crosshair is hidden.
func Generate(cam camera.State, show bool) []markers.Marker {
	if cam.Perspective || !show {
		return nil
	}
	g := Compute(cam)
	return []markers.Marker{
		g.layer(outlineDepth, outlineThickness, markers.Black),
		g.layer(fillDepth, 1, markers.White),
	}
}

func (g Geometry) layer(z, thickness float64, color markers.Color) markers.Marker {
	t := g.Thickness * thickness
	return markers.Marker{
		Type: markers.TypeLineList,
		Pose: markers.Pose{
			Position:    geometry.NewVector3(g.Point.X, g.Point.Y, z),
			Orientation: g.Orientation,
		},
		Points: []geometry.Vector3{
			geometry.NewVector3(-g.Length, 0, 0),
			geometry.NewVector3(g.Length, 0, 0),
			geometry.NewVector3(0, -g.Length, 0),
			geometry.NewVector3(0, g.Length, 0),
		},
		Scale: geometry.NewVector3(t, t, t),
		Color: color,
	}
}

// Provider renders the crosshair from live camera state on every pass
type Provider struct {
	Camera  func() camera.State
	Show    func() bool
	FrameID string
}

func (p Provider) RenderMarkers(add markers.Collector) {
	if p.Camera == nil || p.Show == nil {
		return
	}
	for _, m := range Generate(p.Camera(), p.Show()) {
		m.FrameID = p.FrameID
		add.LineList(m)
	}
}
