package measurement

import (
	"testing"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/internal/markers"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x, y float64) interaction.HitTest {
	return interaction.HitTest{Ground: geometry.NewVector3(x, y, 0)}
}

func TestInactiveToolIgnoresEvents(t *testing.T) {
	tool := NewTool(nil, nil)
	tool.OnMouseDown(interaction.Pointer{}, at(1, 1))
	assert.Equal(t, Idle, tool.State().Phase)
	assert.False(t, tool.Active())
}

func TestDragMeasurement(t *testing.T) {
	var changes []Phase
	tool := NewTool(func(s State) { changes = append(changes, s.Phase) }, nil)
	tool.Toggle()
	require.True(t, tool.Active())

	tool.OnMouseDown(interaction.Pointer{}, at(0, 0))
	tool.OnMouseMove(interaction.Pointer{}, at(3, 0))
	assert.Equal(t, Measuring, tool.State().Phase)
	assert.InDelta(t, 3, tool.State().Distance(), 1e-12)

	tool.OnMouseUp(interaction.Pointer{}, at(3, 4))
	assert.Equal(t, Done, tool.State().Phase)
	assert.InDelta(t, 5, tool.State().Distance(), 1e-12)
	assert.False(t, tool.Active())
	assert.Equal(t, []Phase{Idle, Measuring, Measuring, Done}, changes)
}

func TestClickClickMeasurement(t *testing.T) {
	tool := NewTool(nil, nil)
	tool.Toggle()

	tool.OnMouseDown(interaction.Pointer{}, at(1, 1))
	tool.OnMouseUp(interaction.Pointer{}, at(1, 1))
	assert.Equal(t, Measuring, tool.State().Phase)

	tool.OnMouseMove(interaction.Pointer{}, at(1, 2))
	tool.OnMouseDown(interaction.Pointer{}, at(1, 3))
	tool.OnMouseUp(interaction.Pointer{}, at(1, 3))
	assert.Equal(t, Done, tool.State().Phase)
	assert.InDelta(t, 2, tool.State().Distance(), 1e-12)
}

func TestResetAndToggleOff(t *testing.T) {
	tool := NewTool(nil, nil)
	tool.Toggle()
	tool.OnMouseDown(interaction.Pointer{}, at(0, 0))

	tool.Toggle()
	assert.False(t, tool.Active())
	assert.Equal(t, Idle, tool.State().Phase)

	tool.Toggle()
	tool.OnMouseDown(interaction.Pointer{}, at(0, 0))
	tool.Reset()
	assert.False(t, tool.Active())
	assert.Equal(t, State{}, tool.State())
}

func TestRenderMarkers(t *testing.T) {
	tool := NewTool(nil, nil)
	assert.Empty(t, markers.Collect(tool))

	tool.Toggle()
	tool.OnMouseDown(interaction.Pointer{}, at(0, 0))
	tool.OnMouseUp(interaction.Pointer{}, at(2, 0))

	got := markers.Collect(tool)
	require.Len(t, got, 1)
	assert.Equal(t, []geometry.Vector3{{}, {X: 2}}, got[0].Points)
}
