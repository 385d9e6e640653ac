// Package markers defines the renderable line markers that overlay tools
// hand to the world renderer.
package markers

import "github.com/philipparndt/vizpanel/pkg/geometry"

// Type mirrors the visualization marker type codes
type Type int

const (
	TypeLineStrip Type = 4
	TypeLineList  Type = 5
)

// Color is an RGBA color with components in [0, 1]
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
)

// Pose places a marker in the world
type Pose struct {
	Position    geometry.Vector3    `json:"position" yaml:"position"`
	Orientation geometry.Quaternion `json:"orientation" yaml:"orientation"`
}

// Marker is a single renderable line marker
type Marker struct {
	Type      Type               `json:"type" yaml:"type"`
	ID        string             `json:"id" yaml:"id"`
	Namespace string             `json:"ns" yaml:"ns"`
	FrameID   string             `json:"frameId" yaml:"frameId"`
	Pose      Pose               `json:"pose" yaml:"pose"`
	Points    []geometry.Vector3 `json:"points" yaml:"points"`
	Scale     geometry.Vector3   `json:"scale" yaml:"scale"`
	Color     Color              `json:"color" yaml:"color"`
}

// Collector receives markers during a render pass
type Collector interface {
	LineList(m Marker)
	LineStrip(m Marker)
}

// Provider appends zero or more markers to a collector
type Provider interface {
	RenderMarkers(add Collector)
}

// Collection is a Collector that keeps everything it receives in order
type Collection struct {
	Markers []Marker
}

func (c *Collection) LineList(m Marker) {
	m.Type = TypeLineList
	c.Markers = append(c.Markers, m)
}

func (c *Collection) LineStrip(m Marker) {
	m.Type = TypeLineStrip
	c.Markers = append(c.Markers, m)
}

// Collect runs every provider against a fresh collection
func Collect(providers ...Provider) []Marker {
	c := &Collection{}
	for _, p := range providers {
		if p != nil {
			p.RenderMarkers(c)
		}
	}
	return c.Markers
}
