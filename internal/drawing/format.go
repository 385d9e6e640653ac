package drawing

import (
	"encoding/json"
	"fmt"

	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/philipparndt/vizpanel/pkg/validate"
	"gopkg.in/yaml.v3"
)

// EditFormat is the text format polygons are edited in
type EditFormat string

const (
	FormatJSON EditFormat = "json"
	FormatYAML EditFormat = "yaml"
)

// EncodePolygons renders polygon points for the polygon editor
func EncodePolygons(polygons [][]geometry.Point2, format EditFormat) ([]byte, error) {
	if polygons == nil {
		polygons = [][]geometry.Point2{}
	}
	switch format {
	case FormatJSON:
		return json.MarshalIndent(polygons, "", "  ")
	case FormatYAML:
		return yaml.Marshal(polygons)
	}
	return nil, fmt.Errorf("unsupported polygon format %q", format)
}

// DecodePolygons parses and validates edited polygon points
func DecodePolygons(data []byte, format EditFormat) ([][]geometry.Point2, error) {
	var raw any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported polygon format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse polygons: %w", err)
	}
	if res := validate.PolygonPoints(raw); res != nil {
		return nil, fmt.Errorf("invalid polygons: %s", res)
	}

	var polygons [][]geometry.Point2
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &polygons)
	case FormatYAML:
		err = yaml.Unmarshal(data, &polygons)
	}
	if err != nil {
		// the validator accepts {} as "no polygons"
		return [][]geometry.Point2{}, nil
	}
	if polygons == nil {
		polygons = [][]geometry.Point2{}
	}
	return polygons, nil
}
