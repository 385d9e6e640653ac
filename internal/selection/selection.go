// Package selection turns the objects hit by a click into the panel's
// selection: nothing, one object, or several objects awaiting a choice.
package selection

import (
	"errors"
	"fmt"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"go.uber.org/zap"
)

var (
	ErrNotPending       = errors.New("no pending selection")
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// Kind is the selection variant
type Kind int

const (
	Empty Kind = iota
	Single
	Pending
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Pending:
		return "pending"
	default:
		return "empty"
	}
}

// State is Empty, Single(Object) or Pending(Objects, ClickPosition). Only the
// fields of the active variant are set.
type State struct {
	kind          Kind
	object        interaction.Object
	objects       []interaction.Object
	clickPosition geometry.Point2
}

func (s State) Kind() Kind { return s.kind }

// Object returns the selected object of a Single state
func (s State) Object() (interaction.Object, bool) {
	return s.object, s.kind == Single
}

// Pending returns the candidates and click position of a Pending state
func (s State) Pending() ([]interaction.Object, geometry.Point2, bool) {
	return s.objects, s.clickPosition, s.kind == Pending
}

// Linker is notified whenever a single object becomes selected
type Linker interface {
	Link(obj interaction.Object)
}

// Resolver owns the selection state
type Resolver struct {
	state  State
	linker Linker
	logger *zap.Logger
}

// NewResolver creates an empty selection. linker may be nil.
func NewResolver(linker Linker, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{linker: linker, logger: logger}
}

// State returns the current selection
func (r *Resolver) State() State {
	return r.state
}

// Click resolves the objects hit under a click. Several hits replace any
// pending choice outright.
func (r *Resolver) Click(objects []interaction.Object, pos geometry.Point2) {
	switch len(objects) {
	case 0:
		r.state = State{}
	case 1:
		r.selectObject(objects[0])
	default:
		r.state = State{
			kind:          Pending,
			objects:       append([]interaction.Object(nil), objects...),
			clickPosition: pos,
		}
		r.logger.Debug("selection pending", zap.Int("candidates", len(objects)))
	}
}

// Choose picks one of the pending candidates
func (r *Resolver) Choose(index int) (interaction.Object, error) {
	if r.state.kind != Pending {
		return interaction.Object{}, ErrNotPending
	}
	if index < 0 || index >= len(r.state.objects) {
		return interaction.Object{}, fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, index, len(r.state.objects))
	}
	obj := r.state.objects[index]
	r.selectObject(obj)
	return obj, nil
}

// Clear drops any selection
func (r *Resolver) Clear() {
	r.state = State{}
}

func (r *Resolver) selectObject(obj interaction.Object) {
	r.state = State{kind: Single, object: obj}
	r.logger.Debug("object selected", zap.String("topic", obj.Topic))
	if r.linker != nil {
		r.linker.Link(obj)
	}
}
