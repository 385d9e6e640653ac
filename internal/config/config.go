// Package config loads and saves the panel configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/drawing"
	"github.com/philipparndt/vizpanel/internal/globalvars"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/philipparndt/vizpanel/pkg/validate"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Config is the persisted state of one panel
type Config struct {
	CameraState               camera.State         `json:"cameraState" yaml:"cameraState"`
	ShowCrosshair             bool                 `json:"showCrosshair" yaml:"showCrosshair"`
	FollowTf                  string               `json:"followTf,omitempty" yaml:"followTf,omitempty"`
	Polygons                  [][]geometry.Point2  `json:"polygons,omitempty" yaml:"polygons,omitempty"`
	SelectedPolygonEditFormat drawing.EditFormat   `json:"selectedPolygonEditFormat" yaml:"selectedPolygonEditFormat"`
	LinkedGlobalVariables     []globalvars.Binding `json:"linkedGlobalVariables,omitempty" yaml:"linkedGlobalVariables,omitempty"`
	GlobalData                globalvars.Data      `json:"globalData,omitempty" yaml:"globalData,omitempty"`
	PickTolerance             float64              `json:"pickTolerance,omitempty" yaml:"pickTolerance,omitempty"`
}

// Default returns the configuration of a fresh panel
func Default() Config {
	return Config{
		CameraState:               camera.Default(),
		SelectedPolygonEditFormat: drawing.FormatYAML,
		PickTolerance:             drawing.DefaultPickTolerance,
	}
}

type format int

const (
	formatYAML format = iota
	formatJSON
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads a YAML or JSON config, chosen by file extension. Fields missing
// from the file keep their defaults.
func Load(path string) (Config, error) {
	f, err := formatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data, f == formatJSON)
}

// Parse decodes config data, validating the camera state first
func Parse(data []byte, isJSON bool) (Config, error) {
	var raw map[string]any
	unmarshal := yaml.Unmarshal
	if isJSON {
		unmarshal = json.Unmarshal
	}
	if err := unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cam, ok := raw["cameraState"]; ok {
		if res := validate.CameraState(cam); res != nil {
			return Config{}, fmt.Errorf("invalid cameraState: %s", res)
		}
	}
	if polys, ok := raw["polygons"]; ok {
		if res := validate.PolygonPoints(polys); res != nil {
			return Config{}, fmt.Errorf("invalid polygons: %s", res)
		}
	}

	cfg := Default()
	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.PickTolerance <= 0 {
		cfg.PickTolerance = drawing.DefaultPickTolerance
	}
	if cfg.SelectedPolygonEditFormat == "" {
		cfg.SelectedPolygonEditFormat = drawing.FormatYAML
	}
	return cfg, nil
}

// Save writes the config in the format implied by the file extension
func Save(path string, cfg Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	if f == formatJSON {
		data, err = json.MarshalIndent(cfg, "", "\t")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
