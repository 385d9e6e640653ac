package app

import (
	"github.com/philipparndt/vizpanel/internal/camera"
	"go.uber.org/zap"
)

// CurrentCamera returns the camera state the controller last saw
func (app *App) CurrentCamera() camera.State {
	return app.Camera.state
}

// SetCameraState records a camera change made outside the controller, such as
// the user orbiting the view. It is not echoed back through the save callback.
func (app *App) SetCameraState(s camera.State) {
	app.Camera.state = s
	app.requestRefresh()
}

// saveCameraState updates the camera and hands it to the config callback
func (app *App) saveCameraState(s camera.State) {
	app.Camera.state = s
	if app.Camera.save != nil {
		app.Camera.save(s)
	}
	app.requestRefresh()
}

// resetCameraView restores the camera the panel was opened with
func (app *App) resetCameraView() {
	app.saveCameraState(app.Camera.defaultState)
}

// setCameraTopView switches to a plan view keeping target and heading
func (app *App) setCameraTopView() {
	if !app.Camera.state.Perspective {
		return
	}
	app.saveCameraState(app.Camera.state.WithPerspective(false))
}

// ToggleCameraMode flips between perspective and orthographic. Leaving
// perspective discards any measurement in progress.
func (app *App) ToggleCameraMode() {
	next := !app.Camera.state.Perspective
	if !next {
		app.Measurement.Reset()
	}
	app.logger.Debug("camera mode toggled", zap.Bool("perspective", next))
	app.saveCameraState(app.Camera.state.WithPerspective(next))
}
