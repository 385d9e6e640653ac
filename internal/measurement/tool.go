// Package measurement implements the distance measuring overlay tool.
package measurement

import (
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"go.uber.org/zap"
)

// Phase is the stage of a measurement
type Phase int

const (
	Idle Phase = iota
	Measuring
	Done
)

func (p Phase) String() string {
	switch p {
	case Measuring:
		return "measuring"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// State is Idle, Measuring{Start} or Done{Start, End}. End tracks the pointer
// while measuring.
type State struct {
	Phase Phase
	Start geometry.Vector3
	End   geometry.Vector3
}

// Distance returns the length of the measured segment, or 0 when idle
func (s State) Distance() float64 {
	if s.Phase == Idle {
		return 0
	}
	return s.Start.Distance(s.End)
}

var lineColor = markers.Color{R: 1, G: 0.3, B: 0.3, A: 1}

// Tool is the measuring tool. While active it claims all pointer events.
type Tool struct {
	active   bool
	state    State
	onChange func(State)
	logger   *zap.Logger
}

// NewTool creates an inactive measuring tool. onChange may be nil.
func NewTool(onChange func(State), logger *zap.Logger) *Tool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tool{onChange: onChange, logger: logger}
}

// Active reports whether the tool currently claims pointer events
func (t *Tool) Active() bool {
	return t.active
}

// State returns the current measurement
func (t *Tool) State() State {
	return t.state
}

// Toggle arms or disarms the tool. Arming clears any previous measurement.
func (t *Tool) Toggle() {
	if t.active {
		t.active = false
		if t.state.Phase == Measuring {
			t.set(State{})
		}
		t.logger.Debug("measuring disabled")
		return
	}
	t.active = true
	t.set(State{})
	t.logger.Debug("measuring enabled")
}

// Reset disarms the tool and clears the measurement
func (t *Tool) Reset() {
	t.active = false
	t.set(State{})
}

func (t *Tool) OnMouseDown(_ interaction.Pointer, hit interaction.HitTest) {
	if !t.active || t.state.Phase == Measuring {
		return
	}
	t.set(State{Phase: Measuring, Start: hit.Ground, End: hit.Ground})
}

func (t *Tool) OnMouseMove(_ interaction.Pointer, hit interaction.HitTest) {
	if !t.active || t.state.Phase != Measuring {
		return
	}
	t.set(State{Phase: Measuring, Start: t.state.Start, End: hit.Ground})
}

func (t *Tool) OnMouseUp(_ interaction.Pointer, hit interaction.HitTest) {
	if !t.active || t.state.Phase != Measuring {
		return
	}
	// releasing on the start point keeps measuring until a second click
	if hit.Ground == t.state.Start {
		return
	}
	t.set(State{Phase: Done, Start: t.state.Start, End: hit.Ground})
	t.active = false
	t.logger.Info("measured distance", zap.Float64("distance", t.state.Distance()))
}

func (t *Tool) OnDoubleClick(interaction.Pointer, interaction.HitTest) {}

func (t *Tool) set(s State) {
	t.state = s
	if t.onChange != nil {
		t.onChange(s)
	}
}

// RenderMarkers draws the measured segment
func (t *Tool) RenderMarkers(add markers.Collector) {
	if t.state.Phase == Idle {
		return
	}
	add.LineStrip(markers.Marker{
		ID:        "measure",
		Namespace: "measuring",
		Pose:      markers.Pose{Orientation: geometry.IdentityQuaternion()},
		Points:    []geometry.Vector3{t.state.Start, t.state.End},
		Scale:     geometry.NewVector3(0.05, 0.05, 0.05),
		Color:     lineColor,
	})
}
