package app

import (
	"github.com/philipparndt/vizpanel/internal/drawing"
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/measurement"
	"go.uber.org/zap"
)

// clickThreshold is how far the pointer may travel between down and up, in
// pixels, for the pair to still count as a click rather than a drag
const clickThreshold = 5

// Cursor names understood by the view
const (
	CursorDefault   = "default"
	CursorCrosshair = "crosshair"
)

func (app *App) OnDoubleClick(ev interaction.Pointer, hit *interaction.HitTest) {
	app.route(interaction.DoubleClick, ev, hit)
}

func (app *App) OnMouseDown(ev interaction.Pointer, hit *interaction.HitTest) {
	app.route(interaction.MouseDown, ev, hit)
}

func (app *App) OnMouseMove(ev interaction.Pointer, hit *interaction.HitTest) {
	app.route(interaction.MouseMove, ev, hit)
}

func (app *App) OnMouseUp(ev interaction.Pointer, hit *interaction.HitTest) {
	app.route(interaction.MouseUp, ev, hit)
}

// route hands one pointer event to whichever overlay owns it. The measuring
// tool wins over drawing tools; without an active tool, down/up pairs become
// selection clicks.
func (app *App) route(kind interaction.Kind, ev interaction.Pointer, hit *interaction.HitTest) {
	if hit == nil {
		// a release off the scene still ends the press
		if kind == interaction.MouseUp {
			app.cancelClick()
		}
		return
	}

	if app.Measurement.Active() {
		app.cancelClick()
		interaction.Dispatch(app.Measurement, kind, ev, *hit)
		return
	}

	if app.Drawing.Type() == drawing.Polygons {
		app.cancelClick()
		interaction.Dispatch(app.Drawing.Builder(), kind, ev, *hit)
		app.requestRefresh()
		return
	}

	switch kind {
	case interaction.MouseDown:
		app.Interaction.mouseDownPos = ev.Position()
		app.Interaction.mouseDown = true
		app.Interaction.mouseMoved = false
	case interaction.MouseMove:
		if app.Interaction.mouseDown && ev.Position().Distance(app.Interaction.mouseDownPos) > clickThreshold {
			app.Interaction.mouseMoved = true
		}
	case interaction.MouseUp:
		if !app.Interaction.mouseDown {
			return
		}
		app.Interaction.mouseDown = false
		if app.Interaction.mouseMoved || ev.Position().Distance(app.Interaction.mouseDownPos) > clickThreshold {
			return
		}
		app.Selection.Click(hit.Objects, ev.Position())
	}
}

// KeyDown handles a key press and reports whether the key was bound
func (app *App) KeyDown(key string) bool {
	switch key {
	case "3":
		app.ToggleCameraMode()
	case "p":
		app.ToggleDrawing(drawing.Polygons)
	case "c":
		app.ToggleDrawing(drawing.Camera)
	case "m":
		app.ToggleMeasuring()
	case "Escape":
		app.ExitDrawing()
	case "Home":
		app.resetCameraView()
	case "t":
		app.setCameraTopView()
	default:
		return false
	}
	return true
}

// ToggleDrawing activates tool, or deactivates it when already active. A
// tool that draws on the ground plane forces the camera orthographic.
func (app *App) ToggleDrawing(tool drawing.Type) {
	next := app.Drawing.Toggle(tool)
	app.afterToolChange(next)
}

// SetDrawingType activates tool directly, as the toolbar does
func (app *App) SetDrawingType(tool drawing.Type) {
	app.Drawing.SetType(tool)
	app.afterToolChange(tool)
}

// ExitDrawing leaves any drawing tool and discards a measurement in progress
func (app *App) ExitDrawing() {
	app.cancelClick()
	app.Drawing.Exit()
	if app.Measurement.State().Phase == measurement.Measuring {
		app.Measurement.Reset()
	}
	app.requestRefresh()
}

// ToggleMeasuring arms or disarms the measuring tool
func (app *App) ToggleMeasuring() {
	app.cancelClick()
	app.Measurement.Toggle()
	app.requestRefresh()
}

// cancelClick forgets a pending press so a later release is not taken as a click
func (app *App) cancelClick() {
	app.Interaction.mouseDown = false
	app.Interaction.mouseMoved = false
}

func (app *App) afterToolChange(next drawing.Type) {
	app.cancelClick()
	if next.RequiresOrthographic() && app.Camera.state.Perspective {
		app.logger.Debug("forcing orthographic camera", zap.Stringer("tool", next))
		app.saveCameraState(app.Camera.state.WithPerspective(false))
		return
	}
	app.requestRefresh()
}

// Cursor returns the pointer cursor the view should show
func (app *App) Cursor() string {
	t := app.Drawing.Type()
	if (t != drawing.None && t != drawing.Camera) || app.Measurement.Active() {
		return CursorCrosshair
	}
	return CursorDefault
}
