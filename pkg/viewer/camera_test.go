package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/vizpanel/pkg/geometry"
)

func TestProjectCenter(t *testing.T) {
	c := NewCamera(geometry.NewVector3(5, 5, 0), 0.3, 20)
	x, y := c.Project(geometry.NewVector3(5, 5, 3), 800, 600)
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("Target projected to (%v, %v), expected view center", x, y)
	}
}

func TestProjectScaleAndAxes(t *testing.T) {
	c := NewCamera(geometry.NewVector3(0, 0, 0), 0, 10)
	// 600px / 10 units = 60px per unit; +Y is up on screen
	x, y := c.Project(geometry.NewVector3(1, 1, 0), 800, 600)
	if math.Abs(x-460) > 1e-9 || math.Abs(y-240) > 1e-9 {
		t.Errorf("Project = (%v, %v), expected (460, 240)", x, y)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	c := NewCamera(geometry.NewVector3(-3, 7, 0), 1.1, 42)
	want := geometry.NewVector3(2.5, -4, 0)

	x, y := c.Project(want, 640, 480)
	got := c.Unproject(x, y, 640, 480)
	if got.Distance(want) > 1e-9 {
		t.Errorf("Unproject(Project(p)) = %v, expected %v", got, want)
	}
}

func TestPanFollowsPointer(t *testing.T) {
	c := NewCamera(geometry.NewVector3(0, 0, 0), 0.7, 10)
	before := c.Unproject(100, 100, 500, 500)

	c.Pan(30, -20, 500, 500)

	after := c.Unproject(130, 80, 500, 500)
	if after.Distance(before) > 1e-9 {
		t.Errorf("Point under pointer moved from %v to %v", before, after)
	}
}

func TestZoomClamp(t *testing.T) {
	c := NewCamera(geometry.Vector3{}, 0, 1)
	c.Zoom(-0.99)
	if c.Distance < 0.1 {
		t.Errorf("Distance = %v, expected clamp at 0.1", c.Distance)
	}
}
