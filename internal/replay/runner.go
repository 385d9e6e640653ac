package replay

import (
	"context"

	"github.com/philipparndt/vizpanel/internal/app"
	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/config"
	"github.com/philipparndt/vizpanel/internal/globalvars"
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/logging"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/internal/measurement"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"go.uber.org/zap"
)

// Summary is the panel state after a replay
type Summary struct {
	Drawing     string               `json:"drawing" yaml:"drawing"`
	Cursor      string               `json:"cursor" yaml:"cursor"`
	Camera      camera.State         `json:"camera" yaml:"camera"`
	CameraSaves int                  `json:"cameraSaves" yaml:"cameraSaves"`
	Selection   string               `json:"selection" yaml:"selection"`
	Selected    *app.InteractionData `json:"selected,omitempty" yaml:"selected,omitempty"`
	Candidates  []string             `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Polygons    [][]geometry.Point2  `json:"polygons" yaml:"polygons"`
	Measurement *Measurement         `json:"measurement,omitempty" yaml:"measurement,omitempty"`
	GlobalData  globalvars.Data      `json:"globalData,omitempty" yaml:"globalData,omitempty"`
	Markers     []markers.Marker     `json:"markers,omitempty" yaml:"markers,omitempty"`
	Errors      []string             `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Measurement is the measured segment in a summary
type Measurement struct {
	Phase    string           `json:"phase" yaml:"phase"`
	Start    geometry.Vector3 `json:"start" yaml:"start"`
	End      geometry.Vector3 `json:"end" yaml:"end"`
	Distance float64          `json:"distance" yaml:"distance"`
}

// Run feeds every step of the script into a controller built from cfg. A
// failed select step is recorded in the summary and does not stop the replay.
func Run(ctx context.Context, script *Script, cfg config.Config, logger *zap.Logger) (*Summary, error) {
	logger = logging.OrNop(logger)
	store := globalvars.NewMemoryStore(cfg.GlobalData)
	summary := &Summary{}

	a := app.New(app.Options{
		Config: cfg,
		SaveCameraState: func(camera.State) {
			summary.CameraSaves++
		},
		Store:  store,
		Logger: logger,
	})

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("replay step", zap.Int("step", i+1))
		switch {
		case step.Mouse != "":
			kind, _ := interaction.ParseKind(step.Mouse)
			ev := interaction.Pointer{ClientX: step.X, ClientY: step.Y, Ctrl: step.Ctrl, Shift: step.Shift}
			var hit *interaction.HitTest
			if !step.Miss {
				hit = &interaction.HitTest{Objects: step.Objects, Ground: step.ground()}
			}
			dispatch(a, kind, ev, hit)
		case step.Key != "":
			if !a.KeyDown(step.Key) {
				logger.Warn("unbound key", zap.String("key", step.Key))
			}
		case step.Select != nil:
			if _, err := a.SelectObject(*step.Select); err != nil {
				summary.Errors = append(summary.Errors, err.Error())
			}
		case step.Clear:
			a.ClearSelectedObject()
		}
	}

	summary.fill(a, store)
	return summary, nil
}

func dispatch(a *app.App, kind interaction.Kind, ev interaction.Pointer, hit *interaction.HitTest) {
	switch kind {
	case interaction.DoubleClick:
		a.OnDoubleClick(ev, hit)
	case interaction.MouseDown:
		a.OnMouseDown(ev, hit)
	case interaction.MouseMove:
		a.OnMouseMove(ev, hit)
	case interaction.MouseUp:
		a.OnMouseUp(ev, hit)
	}
}

func (s Step) ground() geometry.Vector3 {
	var v geometry.Vector3
	if len(s.Ground) > 0 {
		v.X = s.Ground[0]
	}
	if len(s.Ground) > 1 {
		v.Y = s.Ground[1]
	}
	if len(s.Ground) > 2 {
		v.Z = s.Ground[2]
	}
	return v
}

func (s *Summary) fill(a *app.App, store *globalvars.MemoryStore) {
	s.Drawing = a.Drawing.Type().String()
	s.Cursor = a.Cursor()
	s.Camera = a.CurrentCamera()
	state := a.Selection.State()
	s.Selection = state.Kind().String()
	s.Selected = a.InteractionData()
	if objects, _, ok := state.Pending(); ok {
		for _, obj := range objects {
			s.Candidates = append(s.Candidates, obj.Topic)
		}
	}
	s.Polygons = a.Drawing.Builder().Points()
	if m := a.Measurement.State(); m.Phase != measurement.Idle {
		s.Measurement = &Measurement{
			Phase:    m.Phase.String(),
			Start:    m.Start,
			End:      m.End,
			Distance: m.Distance(),
		}
	}
	if values := store.Values(); len(values) > 0 {
		s.GlobalData = values
	}
	s.Markers = a.Markers()
}
