package app

import (
	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/globalvars"
	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// CameraState holds the orbit camera the panel reads and writes through the
// config callback
type CameraState struct {
	state        camera.State
	defaultState camera.State // camera at startup (for reset)
	save         func(camera.State)
}

// ViewSettings holds display settings
type ViewSettings struct {
	showCrosshair bool
	followTf      string
}

// InteractionState holds mouse and click detection state
type InteractionState struct {
	mouseDownPos geometry.Point2
	mouseDown    bool
	mouseMoved   bool
}

// VariableState holds the global-variable bindings and their store
type VariableState struct {
	bindings []globalvars.Binding
	store    globalvars.Store
	linker   *globalvars.Linker
}
