// Package replay drives the controller from a recorded input script, which
// makes panel behaviour reproducible from the command line.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/vizpanel/internal/interaction"
	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid replay step")

// Script is a panel config plus the input to feed it
type Script struct {
	// Config is a config file path, relative to the script
	Config string `yaml:"config,omitempty"`
	Steps  []Step `yaml:"steps"`

	dir string
}

// Step is one input. Exactly one of Mouse, Key, Select or Clear is set.
type Step struct {
	Mouse   string               `yaml:"mouse,omitempty"`
	X       float64              `yaml:"x,omitempty"`
	Y       float64              `yaml:"y,omitempty"`
	Ctrl    bool                 `yaml:"ctrl,omitempty"`
	Shift   bool                 `yaml:"shift,omitempty"`
	Ground  []float64            `yaml:"ground,omitempty"`
	Objects []interaction.Object `yaml:"objects,omitempty"`
	// Miss sends the event without a hit test, as when the pointer is off the scene
	Miss bool `yaml:"miss,omitempty"`

	Key    string `yaml:"key,omitempty"`
	Select *int   `yaml:"select,omitempty"`
	Clear  bool   `yaml:"clear,omitempty"`
}

// ConfigPath resolves the config file against the script location
func (s *Script) ConfigPath() string {
	if s.Config == "" || filepath.IsAbs(s.Config) {
		return s.Config
	}
	return filepath.Join(s.dir, s.Config)
}

// Load reads a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and checks a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.check(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (s Step) check() error {
	set := 0
	if s.Mouse != "" {
		set++
		if _, ok := interaction.ParseKind(s.Mouse); !ok {
			return fmt.Errorf("%w: unknown mouse event %q", ErrInvalidStep, s.Mouse)
		}
		if len(s.Ground) != 0 && len(s.Ground) != 2 && len(s.Ground) != 3 {
			return fmt.Errorf("%w: ground needs 2 or 3 coordinates", ErrInvalidStep)
		}
	}
	if s.Key != "" {
		set++
	}
	if s.Select != nil {
		set++
	}
	if s.Clear {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: expected exactly one of mouse, key, select or clear", ErrInvalidStep)
	}
	return nil
}
