package drawing

import (
	"github.com/google/uuid"
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// DefaultPickTolerance is the ground-plane distance within which a pointer
// grabs an existing point or edge.
const DefaultPickTolerance = 0.5

var (
	polygonColor = markers.Color{R: 0.3, G: 0.8, B: 1, A: 1}
	activeColor  = markers.Color{R: 1, G: 0.8, B: 0.2, A: 1}
)

// Polygon is an ordered list of ground-plane points
type Polygon struct {
	ID     string
	Points []geometry.Point2
	Closed bool
}

// PolygonBuilder edits polygons from pointer events. Ctrl+down adds points,
// a double click closes the polygon being drawn, and plain drags move
// existing points or whole polygons.
type PolygonBuilder struct {
	Polygons  []*Polygon
	Tolerance float64

	active *Polygon

	grabbedPolygon *Polygon
	grabbedPoint   int
	lastGround     geometry.Point2
}

// NewPolygonBuilder creates a builder holding closed copies of polygons
func NewPolygonBuilder(polygons [][]geometry.Point2) *PolygonBuilder {
	b := &PolygonBuilder{Tolerance: DefaultPickTolerance, grabbedPoint: -1}
	b.SetPolygons(polygons)
	return b
}

// SetPolygons discards everything, including in-progress edits, and loads polygons
func (b *PolygonBuilder) SetPolygons(polygons [][]geometry.Point2) {
	b.Polygons = make([]*Polygon, 0, len(polygons))
	for _, pts := range polygons {
		b.Polygons = append(b.Polygons, &Polygon{
			ID:     uuid.NewString(),
			Points: append([]geometry.Point2(nil), pts...),
			Closed: true,
		})
	}
	b.active = nil
	b.release()
}

// Points returns a copy of every polygon's points, including the one being drawn
func (b *PolygonBuilder) Points() [][]geometry.Point2 {
	out := make([][]geometry.Point2, 0, len(b.Polygons))
	for _, p := range b.Polygons {
		out = append(out, append([]geometry.Point2(nil), p.Points...))
	}
	return out
}

// Active returns the polygon being drawn, if any
func (b *PolygonBuilder) Active() *Polygon {
	return b.active
}

// Cancel drops the polygon being drawn and any grab in progress
func (b *PolygonBuilder) Cancel() {
	if b.active != nil {
		b.remove(b.active)
		b.active = nil
	}
	b.release()
}

func (b *PolygonBuilder) OnMouseDown(ev interaction.Pointer, hit interaction.HitTest) {
	p := hit.Ground.XY()
	if ev.Ctrl {
		if b.active == nil {
			b.active = &Polygon{ID: uuid.NewString(), Points: []geometry.Point2{p, p}}
			b.Polygons = append(b.Polygons, b.active)
			return
		}
		// pin the preview point and start a new one
		b.active.Points[len(b.active.Points)-1] = p
		b.active.Points = append(b.active.Points, p)
		return
	}

	b.release()
	if poly, idx := b.nearestPoint(p); poly != nil {
		b.grabbedPolygon, b.grabbedPoint = poly, idx
	} else if poly := b.nearestEdge(p); poly != nil {
		b.grabbedPolygon = poly
	}
	b.lastGround = p
}

func (b *PolygonBuilder) OnMouseMove(_ interaction.Pointer, hit interaction.HitTest) {
	p := hit.Ground.XY()
	switch {
	case b.active != nil:
		b.active.Points[len(b.active.Points)-1] = p
	case b.grabbedPolygon != nil && b.grabbedPoint >= 0:
		b.grabbedPolygon.Points[b.grabbedPoint] = p
	case b.grabbedPolygon != nil:
		delta := p.Sub(b.lastGround)
		for i := range b.grabbedPolygon.Points {
			b.grabbedPolygon.Points[i] = b.grabbedPolygon.Points[i].Add(delta)
		}
	}
	b.lastGround = p
}

func (b *PolygonBuilder) OnMouseUp(_ interaction.Pointer, _ interaction.HitTest) {
	b.release()
}

func (b *PolygonBuilder) OnDoubleClick(_ interaction.Pointer, hit interaction.HitTest) {
	if b.active != nil {
		b.closeActive()
		return
	}
	poly, idx := b.nearestPoint(hit.Ground.XY())
	if poly == nil {
		return
	}
	poly.Points = append(poly.Points[:idx], poly.Points[idx+1:]...)
	if len(poly.Points) < 3 {
		b.remove(poly)
	}
}

func (b *PolygonBuilder) closeActive() {
	poly := b.active
	b.active = nil
	b.release()

	// drop the preview point and the duplicates left by the clicks of the double click
	pts := poly.Points[:len(poly.Points)-1]
	for len(pts) > 1 && pts[len(pts)-1] == pts[len(pts)-2] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		b.remove(poly)
		return
	}
	poly.Points = pts
	poly.Closed = true
}

func (b *PolygonBuilder) release() {
	b.grabbedPolygon = nil
	b.grabbedPoint = -1
}

func (b *PolygonBuilder) remove(poly *Polygon) {
	for i, p := range b.Polygons {
		if p == poly {
			b.Polygons = append(b.Polygons[:i], b.Polygons[i+1:]...)
			return
		}
	}
}

func (b *PolygonBuilder) nearestPoint(p geometry.Point2) (*Polygon, int) {
	var best *Polygon
	bestIdx := -1
	bestDist := b.Tolerance
	for _, poly := range b.Polygons {
		if poly == b.active {
			continue
		}
		for i, pt := range poly.Points {
			if d := pt.Distance(p); d <= bestDist {
				best, bestIdx, bestDist = poly, i, d
			}
		}
	}
	return best, bestIdx
}

func (b *PolygonBuilder) nearestEdge(p geometry.Point2) *Polygon {
	var best *Polygon
	bestDist := b.Tolerance
	for _, poly := range b.Polygons {
		if poly == b.active {
			continue
		}
		n := len(poly.Points)
		for i := 0; i < n; i++ {
			j := i + 1
			if j == n {
				if !poly.Closed || n < 3 {
					break
				}
				j = 0
			}
			if d := p.DistanceToSegment(poly.Points[i], poly.Points[j]); d <= bestDist {
				best, bestDist = poly, d
			}
		}
	}
	return best
}

// RenderMarkers draws every polygon as a line strip on the ground plane
func (b *PolygonBuilder) RenderMarkers(add markers.Collector) {
	for _, poly := range b.Polygons {
		if len(poly.Points) == 0 {
			continue
		}
		pts := make([]geometry.Vector3, 0, len(poly.Points)+1)
		for _, p := range poly.Points {
			pts = append(pts, geometry.NewVector3(p.X, p.Y, 0))
		}
		color := polygonColor
		if poly.Closed {
			pts = append(pts, pts[0])
		} else {
			color = activeColor
		}
		add.LineStrip(markers.Marker{
			ID:        poly.ID,
			Namespace: "polygons",
			Pose:      markers.Pose{Orientation: geometry.IdentityQuaternion()},
			Points:    pts,
			Scale:     geometry.NewVector3(0.1, 0.1, 0.1),
			Color:     color,
		})
	}
}
