package app

import (
	"github.com/philipparndt/vizpanel/internal/drawing"
	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// SelectedObject returns the single selected object, if any
func (app *App) SelectedObject() (interaction.Object, bool) {
	return app.Selection.State().Object()
}

// SelectObject picks one of the candidates of a pending selection
func (app *App) SelectObject(index int) (interaction.Object, error) {
	obj, err := app.Selection.Choose(index)
	if err != nil {
		return interaction.Object{}, err
	}
	app.requestRefresh()
	return obj, nil
}

// ClearSelectedObject drops the current selection
func (app *App) ClearSelectedObject() {
	app.Selection.Clear()
	app.requestRefresh()
}

// InteractionData is what the panel exposes about the current selection
type InteractionData struct {
	Topic string `json:"topic,omitempty" yaml:"topic,omitempty"`
}

// InteractionData returns the topic of the selected object, or nil when
// nothing is selected
func (app *App) InteractionData() *InteractionData {
	obj, ok := app.SelectedObject()
	if !ok {
		return nil
	}
	return &InteractionData{Topic: obj.Topic}
}

// SetPolygons replaces the drawn polygons, keeping the active tool
func (app *App) SetPolygons(polygons [][]geometry.Point2) {
	app.Drawing.SetPolygons(polygons)
	app.requestRefresh()
}

// EditPolygons returns the polygons encoded in the current edit format
func (app *App) EditPolygons() ([]byte, error) {
	return drawing.EncodePolygons(app.Drawing.Builder().Points(), app.editFormat)
}

// ApplyPolygonEdit decodes edited polygons and replaces the current ones.
// Invalid input leaves the polygons untouched.
func (app *App) ApplyPolygonEdit(data []byte) error {
	polygons, err := drawing.DecodePolygons(data, app.editFormat)
	if err != nil {
		return err
	}
	app.SetPolygons(polygons)
	return nil
}
