// Package drawing tracks which exclusive overlay drawing tool is active and
// owns the polygon builder the Polygons tool edits.
package drawing

import (
	"fmt"

	"github.com/philipparndt/vizpanel/pkg/geometry"
	"go.uber.org/zap"
)

// Type is the active drawing tool. The zero value is None.
type Type int

const (
	None Type = iota
	Polygons
	Camera
)

func (t Type) String() string {
	switch t {
	case Polygons:
		return "polygons"
	case Camera:
		return "camera"
	default:
		return "none"
	}
}

// ParseType converts a tool name back into a Type
func ParseType(s string) (Type, error) {
	switch s {
	case "", "none":
		return None, nil
	case "polygons":
		return Polygons, nil
	case "camera":
		return Camera, nil
	}
	return None, fmt.Errorf("unknown drawing tool %q", s)
}

// RequiresOrthographic reports whether the tool draws on the ground plane and
// needs a plan-view camera to map screen points predictably.
func (t Type) RequiresOrthographic() bool {
	return t == Polygons
}

// Tools is the drawing-tool state machine
type Tools struct {
	current Type
	builder *PolygonBuilder
	logger  *zap.Logger
}

// NewTools creates the state machine in the None state
func NewTools(builder *PolygonBuilder, logger *zap.Logger) *Tools {
	if builder == nil {
		builder = NewPolygonBuilder(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{builder: builder, logger: logger}
}

// Type returns the active tool
func (t *Tools) Type() Type {
	return t.current
}

// Builder returns the polygon builder owned by the Polygons tool
func (t *Tools) Builder() *PolygonBuilder {
	return t.builder
}

// Toggle activates tool, or deactivates it when it is already active. It
// returns the new active tool.
func (t *Tools) Toggle(tool Type) Type {
	next := tool
	if t.current == tool {
		next = None
	}
	t.transition(next)
	return next
}

// Exit deactivates whatever tool is active
func (t *Tools) Exit() {
	t.transition(None)
}

// SetType jumps straight to a tool
func (t *Tools) SetType(tool Type) {
	t.transition(tool)
}

// SetPolygons replaces the builder's polygons without changing the active tool
func (t *Tools) SetPolygons(polygons [][]geometry.Point2) {
	t.builder.SetPolygons(polygons)
	t.logger.Debug("polygons replaced", zap.Int("count", len(polygons)))
}

func (t *Tools) transition(next Type) {
	prev := t.current
	if prev == Polygons && next != Polygons {
		t.builder.Cancel()
	}
	t.current = next
	if prev != next {
		t.logger.Debug("drawing tool changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", next))
	}
}
