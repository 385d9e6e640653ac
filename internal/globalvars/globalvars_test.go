package globalvars

import (
	"testing"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func static(b ...Binding) func() []Binding {
	return func() []Binding { return b }
}

func TestLinkReversesKeyPath(t *testing.T) {
	store := NewMemoryStore(nil)
	l := NewLinker(static(Binding{Topic: "T", MarkerKeyPath: []string{"a", "b"}, Name: "X"}), store, nil)

	l.Link(interaction.Object{Topic: "T", Data: map[string]any{"b": map[string]any{"a": 42}}})

	v, ok := store.Get("X")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestLinkIgnoresOtherTopics(t *testing.T) {
	store := NewMemoryStore(Data{"X": 1})
	l := NewLinker(static(Binding{Topic: "T", MarkerKeyPath: []string{"a"}, Name: "X"}), store, nil)

	l.Link(interaction.Object{Topic: "U", Data: map[string]any{"a": 2}})

	assert.Equal(t, Data{"X": 1}, store.Values())
}

func TestLinkWritesUnsetForMissingPath(t *testing.T) {
	store := NewMemoryStore(Data{"X": 1})
	l := NewLinker(static(Binding{Topic: "T", MarkerKeyPath: []string{"z", "y"}, Name: "X"}), store, nil)

	l.Link(interaction.Object{Topic: "T", Data: map[string]any{"y": map[string]any{}}})

	v, ok := store.Get("X")
	assert.True(t, ok, "key must stay present")
	assert.Nil(t, v)
}

func TestLinkMultipleBindingsSameTopic(t *testing.T) {
	store := NewMemoryStore(nil)
	l := NewLinker(static(
		Binding{Topic: "T", MarkerKeyPath: []string{"x", "pose"}, Name: "px"},
		Binding{Topic: "T", MarkerKeyPath: []string{"id"}, Name: "id"},
		Binding{Topic: "U", MarkerKeyPath: []string{"id"}, Name: "other"},
	), store, nil)

	l.Link(interaction.Object{Topic: "T", Data: map[string]any{
		"id":   "car-1",
		"pose": map[string]any{"x": 3.5},
	}})

	assert.Equal(t, Data{"px": 3.5, "id": "car-1"}, store.Values())
}

func TestLinkNoOps(t *testing.T) {
	store := NewMemoryStore(nil)

	NewLinker(static(), store, nil).Link(interaction.Object{Topic: "T"})
	NewLinker(static(Binding{Topic: "T", Name: "X"}), store, nil).Link(interaction.Object{})
	NewLinker(nil, store, nil).Link(interaction.Object{Topic: "T"})

	assert.Empty(t, store.Values())
}

func TestLookupShapes(t *testing.T) {
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte("points:\n  - {x: 1}\n  - {x: 2}\n"), &decoded))

	v, ok := Lookup(decoded, []string{"points", "1", "x"})
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = Lookup(decoded, []string{"points", "7"})
	assert.False(t, ok)
	_, ok = Lookup(decoded, []string{"points", "x"})
	assert.False(t, ok)

	v, ok = Lookup(map[string]int{"n": 4}, []string{"n"})
	require.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = Lookup([]string{"a", "b"}, []string{"1"})
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = Lookup(decoded, nil)
	assert.True(t, ok)
	assert.Equal(t, decoded, v)
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []string{"c", "b", "a"}, Reverse([]string{"a", "b", "c"}))
	assert.Empty(t, Reverse(nil))
}
