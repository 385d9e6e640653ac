// Package app is the interaction controller of the viewport panel. It routes
// pointer and key events to the active overlay tool and combines the tools'
// markers for the renderer.
package app

import (
	"slices"

	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/config"
	"github.com/philipparndt/vizpanel/internal/crosshair"
	"github.com/philipparndt/vizpanel/internal/drawing"
	"github.com/philipparndt/vizpanel/internal/globalvars"
	"github.com/philipparndt/vizpanel/internal/logging"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/internal/measurement"
	"github.com/philipparndt/vizpanel/internal/selection"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"go.uber.org/zap"
)

// Options configures a new App
type Options struct {
	Config config.Config
	// SaveCameraState persists camera changes made by the controller. May be nil.
	SaveCameraState func(camera.State)
	// Refresh requests a redraw after the overlay changed. May be nil.
	Refresh func()
	// Store receives linked global variables. Defaults to a MemoryStore
	// seeded with Config.GlobalData.
	Store  globalvars.Store
	Logger *zap.Logger
}

type App struct {
	Camera      CameraState
	View        ViewSettings
	Interaction InteractionState
	Variables   VariableState
	Drawing     *drawing.Tools
	Measurement *measurement.Tool
	Selection   *selection.Resolver

	editFormat drawing.EditFormat
	refresh    func()
	logger     *zap.Logger
}

// New creates the controller from a panel config
func New(opts Options) *App {
	logger := logging.OrNop(opts.Logger)
	cfg := opts.Config

	app := &App{
		Camera: CameraState{
			state:        cfg.CameraState,
			defaultState: cfg.CameraState,
			save:         opts.SaveCameraState,
		},
		View: ViewSettings{
			showCrosshair: cfg.ShowCrosshair,
			followTf:      cfg.FollowTf,
		},
		editFormat: cfg.SelectedPolygonEditFormat,
		refresh:    opts.Refresh,
		logger:     logger,
	}
	if app.editFormat == "" {
		app.editFormat = drawing.FormatYAML
	}

	store := opts.Store
	if store == nil {
		store = globalvars.NewMemoryStore(cfg.GlobalData)
	}
	app.Variables = VariableState{
		bindings: cfg.LinkedGlobalVariables,
		store:    store,
	}
	app.Variables.linker = globalvars.NewLinker(app.bindings, store, logger.Named("globalvars"))

	builder := drawing.NewPolygonBuilder(cfg.Polygons)
	if cfg.PickTolerance > 0 {
		builder.Tolerance = cfg.PickTolerance
	}
	app.Drawing = drawing.NewTools(builder, logger.Named("drawing"))
	app.Measurement = measurement.NewTool(func(measurement.State) { app.requestRefresh() }, logger.Named("measurement"))
	app.Selection = selection.NewResolver(app.Variables.linker, logger.Named("selection"))

	return app
}

func (app *App) bindings() []globalvars.Binding {
	return app.Variables.bindings
}

// Store returns the global-variable store
func (app *App) Store() globalvars.Store {
	return app.Variables.store
}

// ShowCrosshair reports whether the crosshair overlay is enabled
func (app *App) ShowCrosshair() bool {
	return app.View.showCrosshair
}

// SetShowCrosshair enables or disables the crosshair overlay
func (app *App) SetShowCrosshair(show bool) {
	app.View.showCrosshair = show
	app.requestRefresh()
}

// FollowTf returns the frame the camera follows, or "" when it is free
func (app *App) FollowTf() string {
	return app.View.followTf
}

// EditFormat returns the format polygons are edited in
func (app *App) EditFormat() drawing.EditFormat {
	return app.editFormat
}

// SetEditFormat changes the polygon edit format
func (app *App) SetEditFormat(format drawing.EditFormat) {
	app.editFormat = format
}

// Config returns the current panel state as a config
func (app *App) Config() config.Config {
	cfg := config.Default()
	cfg.CameraState = app.Camera.state
	cfg.ShowCrosshair = app.View.showCrosshair
	cfg.FollowTf = app.View.followTf
	cfg.Polygons = app.Drawing.Builder().Points()
	cfg.SelectedPolygonEditFormat = app.editFormat
	cfg.LinkedGlobalVariables = app.Variables.bindings
	cfg.PickTolerance = app.Drawing.Builder().Tolerance
	if values, ok := app.Variables.store.(interface{ Values() globalvars.Data }); ok {
		cfg.GlobalData = values.Values()
	}
	return cfg
}

// ReloadConfig applies a config that changed on disk. Polygons are only
// replaced when they differ from the current ones and none is being drawn, so
// reloading the panel's own save does not discard edits.
func (app *App) ReloadConfig(cfg config.Config) {
	app.View.showCrosshair = cfg.ShowCrosshair
	app.View.followTf = cfg.FollowTf
	app.Variables.bindings = cfg.LinkedGlobalVariables

	builder := app.Drawing.Builder()
	current := builder.Points()
	same := slices.EqualFunc(current, cfg.Polygons, func(a, b []geometry.Point2) bool {
		return slices.Equal(a, b)
	})
	switch {
	case same:
	case builder.Active() != nil:
		app.logger.Debug("keeping polygons while one is being drawn")
	default:
		app.Drawing.SetPolygons(cfg.Polygons)
	}
	app.SetCameraState(cfg.CameraState)
}

// RenderMarkers adds the crosshair, polygon and measurement overlays
func (app *App) RenderMarkers(add markers.Collector) {
	providers := []markers.Provider{
		crosshair.Provider{
			Camera:  app.CurrentCamera,
			Show:    app.ShowCrosshair,
			FrameID: app.View.followTf,
		},
		app.Drawing.Builder(),
		app.Measurement,
	}
	for _, p := range providers {
		p.RenderMarkers(add)
	}
}

// Markers returns all overlay markers for the current state
func (app *App) Markers() []markers.Marker {
	return markers.Collect(app)
}

func (app *App) requestRefresh() {
	if app.refresh != nil {
		app.refresh()
	}
}
