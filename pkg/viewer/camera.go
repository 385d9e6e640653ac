package viewer

import (
	"math"

	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// Camera is a top-down orthographic camera looking at the ground plane
type Camera struct {
	Target   geometry.Vector3
	Heading  float64 // Rotation of the view about Z, in radians
	Distance float64 // World units spanned by the shorter side of the view
}

// NewCamera creates a camera centered on target
func NewCamera(target geometry.Vector3, heading, distance float64) *Camera {
	c := &Camera{Target: target, Heading: heading, Distance: distance}
	c.clamp()
	return c
}

func (c *Camera) clamp() {
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
}

// scale returns pixels per world unit
func (c *Camera) scale(width, height float64) float64 {
	return math.Min(width, height) / c.Distance
}

// Rotate turns the view about the target
func (c *Camera) Rotate(delta float64) {
	c.Heading += delta
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	c.clamp()
}

// Pan moves the target by a screen-space offset in pixels
func (c *Camera) Pan(dx, dy, width, height float64) {
	s := c.scale(width, height)
	delta := geometry.NewVector3(-dx/s, dy/s, 0).RotateZ(-c.Heading)
	c.Target = c.Target.Add(delta)
}

// Project maps a world point to screen coordinates. Z is ignored.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64) {
	s := c.scale(width, height)
	d := point.Sub(c.Target).RotateZ(c.Heading)
	return width/2 + d.X*s, height/2 - d.Y*s
}

// Unproject maps screen coordinates to the point on the ground plane z=0
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Vector3 {
	s := c.scale(width, height)
	local := geometry.NewVector3((screenX-width/2)/s, (height/2-screenY)/s, 0)
	p := local.RotateZ(-c.Heading).Add(c.Target)
	p.Z = 0
	return p
}
