package selection

import (
	"testing"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRecorder struct{ linked []interaction.Object }

func (l *linkRecorder) Link(obj interaction.Object) { l.linked = append(l.linked, obj) }

func objs(topics ...string) []interaction.Object {
	out := make([]interaction.Object, len(topics))
	for i, t := range topics {
		out[i] = interaction.Object{Topic: t}
	}
	return out
}

func TestClickResolvesByCount(t *testing.T) {
	links := &linkRecorder{}
	r := NewResolver(links, nil)
	pos := geometry.Point2{X: 10, Y: 20}

	r.Click(nil, pos)
	assert.Equal(t, Empty, r.State().Kind())

	r.Click(objs("/a"), pos)
	assert.Equal(t, Single, r.State().Kind())
	obj, ok := r.State().Object()
	require.True(t, ok)
	assert.Equal(t, "/a", obj.Topic)
	assert.Equal(t, objs("/a"), links.linked)

	r.Click(objs("/a", "/b"), pos)
	assert.Equal(t, Pending, r.State().Kind())
	pending, clicked, ok := r.State().Pending()
	require.True(t, ok)
	assert.Len(t, pending, 2)
	assert.Equal(t, pos, clicked)
	_, ok = r.State().Object()
	assert.False(t, ok)
	assert.Len(t, links.linked, 1, "pending selections are not linked")
}

func TestChooseFromPending(t *testing.T) {
	links := &linkRecorder{}
	r := NewResolver(links, nil)
	candidates := objs("/a", "/b", "/c")
	r.Click(candidates, geometry.Point2{})

	obj, err := r.Choose(1)
	require.NoError(t, err)
	assert.Equal(t, candidates[1], obj)

	selected, ok := r.State().Object()
	require.True(t, ok)
	assert.Equal(t, candidates[1], selected)
	_, _, pending := r.State().Pending()
	assert.False(t, pending)
	assert.Equal(t, []interaction.Object{candidates[1]}, links.linked)
}

func TestChooseErrors(t *testing.T) {
	r := NewResolver(nil, nil)
	_, err := r.Choose(0)
	assert.ErrorIs(t, err, ErrNotPending)

	r.Click(objs("/a", "/b"), geometry.Point2{})
	_, err = r.Choose(2)
	assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	assert.Equal(t, Pending, r.State().Kind(), "a bad choice keeps the pending list")
}

func TestReclickReplacesPending(t *testing.T) {
	r := NewResolver(nil, nil)
	r.Click(objs("/a", "/b"), geometry.Point2{X: 1, Y: 1})
	r.Click(objs("/c", "/d", "/e"), geometry.Point2{X: 5, Y: 6})

	pending, pos, ok := r.State().Pending()
	require.True(t, ok)
	assert.Equal(t, objs("/c", "/d", "/e"), pending)
	assert.Equal(t, geometry.Point2{X: 5, Y: 6}, pos)
}

func TestClickCopiesCandidates(t *testing.T) {
	r := NewResolver(nil, nil)
	candidates := objs("/a", "/b")
	r.Click(candidates, geometry.Point2{})
	candidates[0].Topic = "/mutated"

	pending, _, _ := r.State().Pending()
	assert.Equal(t, "/a", pending[0].Topic)
}

func TestClear(t *testing.T) {
	r := NewResolver(nil, nil)
	r.Click(objs("/a", "/b"), geometry.Point2{})
	r.Clear()
	assert.Equal(t, Empty, r.State().Kind())
}
