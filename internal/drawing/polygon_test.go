package drawing

import (
	"testing"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ground(x, y float64) interaction.HitTest {
	return interaction.HitTest{Ground: geometry.NewVector3(x, y, 0)}
}

var ctrl = interaction.Pointer{Ctrl: true}

func TestDrawAndClosePolygon(t *testing.T) {
	b := NewPolygonBuilder(nil)

	b.OnMouseDown(ctrl, ground(0, 0))
	b.OnMouseUp(ctrl, ground(0, 0))
	b.OnMouseMove(ctrl, ground(4, 0))
	b.OnMouseDown(ctrl, ground(4, 0))
	b.OnMouseUp(ctrl, ground(4, 0))
	b.OnMouseMove(ctrl, ground(4, 3))
	b.OnMouseDown(ctrl, ground(4, 3))
	b.OnMouseUp(ctrl, ground(4, 3))
	// second click of the double click
	b.OnMouseDown(ctrl, ground(4, 3))
	b.OnMouseUp(ctrl, ground(4, 3))
	b.OnDoubleClick(ctrl, ground(4, 3))

	assert.Nil(t, b.Active())
	require.Len(t, b.Polygons, 1)
	assert.True(t, b.Polygons[0].Closed)
	assert.NotEmpty(t, b.Polygons[0].ID)
	assert.Equal(t, []geometry.Point2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}, b.Polygons[0].Points)
}

func TestMoveUpdatesPreviewPoint(t *testing.T) {
	b := NewPolygonBuilder(nil)
	b.OnMouseDown(ctrl, ground(1, 1))
	b.OnMouseMove(interaction.Pointer{}, ground(2, 5))

	require.NotNil(t, b.Active())
	assert.Equal(t, []geometry.Point2{{X: 1, Y: 1}, {X: 2, Y: 5}}, b.Active().Points)
}

func TestDragPoint(t *testing.T) {
	b := NewPolygonBuilder([][]geometry.Point2{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}})

	b.OnMouseDown(interaction.Pointer{}, ground(10.2, 0.1))
	b.OnMouseMove(interaction.Pointer{}, ground(12, 1))
	b.OnMouseUp(interaction.Pointer{}, ground(12, 1))
	b.OnMouseMove(interaction.Pointer{}, ground(20, 20))

	assert.Equal(t, geometry.Point2{X: 12, Y: 1}, b.Polygons[0].Points[1])
}

func TestDragPolygonByEdge(t *testing.T) {
	b := NewPolygonBuilder([][]geometry.Point2{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}})

	b.OnMouseDown(interaction.Pointer{}, ground(5, 0.2))
	b.OnMouseMove(interaction.Pointer{}, ground(6, 1.2))
	b.OnMouseUp(interaction.Pointer{}, ground(6, 1.2))

	pts := b.Polygons[0].Points
	assert.InDelta(t, 1, pts[0].X, 1e-9)
	assert.InDelta(t, 1, pts[0].Y, 1e-9)
	assert.InDelta(t, 11, pts[2].X, 1e-9)
	assert.InDelta(t, 11, pts[2].Y, 1e-9)
}

func TestDoubleClickDeletesPoint(t *testing.T) {
	b := NewPolygonBuilder([][]geometry.Point2{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	})

	b.OnDoubleClick(interaction.Pointer{}, ground(0, 10))
	require.Len(t, b.Polygons, 1)
	assert.Len(t, b.Polygons[0].Points, 3)

	// dropping below a triangle removes the polygon
	b.OnDoubleClick(interaction.Pointer{}, ground(0, 0))
	assert.Empty(t, b.Polygons)
}

func TestSetPolygonsDiscardsInProgress(t *testing.T) {
	b := NewPolygonBuilder(nil)
	b.OnMouseDown(ctrl, ground(0, 0))

	b.SetPolygons([][]geometry.Point2{{{X: 1, Y: 1}, {X: 2, Y: 2}}})
	assert.Nil(t, b.Active())
	assert.Equal(t, [][]geometry.Point2{{{X: 1, Y: 1}, {X: 2, Y: 2}}}, b.Points())
}

func TestRenderMarkersClosesLoops(t *testing.T) {
	b := NewPolygonBuilder([][]geometry.Point2{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}})
	b.OnMouseDown(ctrl, ground(5, 5))

	got := markers.Collect(b)
	require.Len(t, got, 2)
	assert.Equal(t, markers.TypeLineStrip, got[0].Type)
	assert.Len(t, got[0].Points, 4)
	assert.Equal(t, got[0].Points[0], got[0].Points[3])
	assert.Len(t, got[1].Points, 2)
}
