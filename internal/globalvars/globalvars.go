// Package globalvars keeps named panel-wide variables in sync with fields of
// the selected object.
package globalvars

import (
	"reflect"
	"strconv"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"go.uber.org/zap"
)

// Binding links a field of objects on Topic to the variable Name
type Binding struct {
	Topic         string   `json:"topic" yaml:"topic"`
	MarkerKeyPath []string `json:"markerKeyPath" yaml:"markerKeyPath"`
	Name          string   `json:"name" yaml:"name"`
}

// Data maps variable names to values. A present key holding nil means the
// variable is linked but currently unset.
type Data map[string]any

// Store receives variable updates. Update merges values into the store.
type Store interface {
	Update(values Data)
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	values Data
}

// NewMemoryStore creates a store holding a copy of initial
func NewMemoryStore(initial Data) *MemoryStore {
	s := &MemoryStore{values: Data{}}
	s.Update(initial)
	return s
}

func (s *MemoryStore) Update(values Data) {
	for k, v := range values {
		s.values[k] = v
	}
}

// Get returns a value and whether the key is present at all
func (s *MemoryStore) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Values returns a copy of all variables
func (s *MemoryStore) Values() Data {
	out := make(Data, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Linker writes bound fields of a selected object into the store
type Linker struct {
	bindings func() []Binding
	store    Store
	logger   *zap.Logger
}

// NewLinker creates a linker reading the current bindings on every link
func NewLinker(bindings func() []Binding, store Store, logger *zap.Logger) *Linker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linker{bindings: bindings, store: store, logger: logger}
}

// Link updates every variable bound to the object's topic
func (l *Linker) Link(obj interaction.Object) {
	if l.bindings == nil || l.store == nil {
		return
	}
	bindings := l.bindings()
	if len(bindings) == 0 || obj.Topic == "" {
		return
	}
	values := Data{}
	for _, b := range bindings {
		if b.Topic != obj.Topic {
			continue
		}
		v, _ := Lookup(obj.Data, Reverse(b.MarkerKeyPath))
		values[b.Name] = v
		l.logger.Debug("linked global variable",
			zap.String("name", b.Name),
			zap.String("topic", b.Topic),
			zap.Any("value", v))
	}
	l.store.Update(values)
}

// Reverse returns path in reverse order.
//
// Marker key paths are authored leaf first, the opposite of how the object
// is traversed. Bindings in saved layouts depend on this convention.
func Reverse(path []string) []string {
	out := make([]string, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

// Lookup walks path through nested maps and slices. It returns nil and false
// as soon as a segment does not resolve.
func Lookup(value any, path []string) (any, bool) {
	cur := value
	for _, key := range path {
		next, ok := step(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(value any, key string) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		next, ok := v[key]
		return next, ok
	case interaction.Object:
		return step(v.Data, key)
	case map[any]any:
		next, ok := v[key]
		return next, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, false
		}
		return v[idx], true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		next := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !next.IsValid() {
			return nil, false
		}
		return next.Interface(), true
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}
	return nil, false
}
