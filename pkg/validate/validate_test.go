package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrimitiveRules(t *testing.T) {
	assert.Equal(t, "is required", IsRequired(nil))
	assert.Empty(t, IsRequired(0))

	assert.Empty(t, IsNumber(nil))
	assert.Empty(t, IsNumber(3))
	assert.Empty(t, IsNumber(2.5))
	assert.Equal(t, "must be a number", IsNumber("3"))

	assert.Empty(t, IsBoolean(true))
	assert.Equal(t, `must be "true" or "false"`, IsBoolean("yes"))

	assert.Equal(t, "must be string", IsString(1))
	assert.Equal(t, "must not start with _", IsNotPrivate("_hidden"))
	assert.Empty(t, IsNotPrivate("visible"))
}

func TestLengthRules(t *testing.T) {
	assert.Equal(t, "must contain at least 2 array items", MinLen(2)([]any{1}))
	assert.Equal(t, "must contain at least 3 characters", MinLen(3)("ab"))
	assert.Equal(t, "must contain at most 1 array items", MaxLen(1)([]any{1, 2}))
	assert.Empty(t, MaxLen(5)("abc"))
}

func TestNumberArray(t *testing.T) {
	assert.Empty(t, IsNumberArray(3)([]any{1.0, 2, 3}))
	assert.Empty(t, IsNumberArray(3)(nil))
	assert.Equal(t, "must contain 3 array items", IsNumberArray(3)([]any{1, 2}))
	assert.Contains(t, IsNumberArray(2)([]any{1, "a"}), `"a" is not a number`)
}

func TestOrientation(t *testing.T) {
	assert.Empty(t, IsOrientation([]any{0, 0, 0, 1}))
	assert.Empty(t, IsOrientation([]any{0, 0, 0.7071067811865476, 0.7071067811865476}))
	assert.Equal(t, "must be valid quaternion", IsOrientation([]any{0, 0, 1, 1}))
}

func TestCreatePrimitiveValidatorReturnsFirstError(t *testing.T) {
	v := CreatePrimitiveValidator(IsRequired, IsString)
	assert.Equal(t, "is required", v(nil))
	assert.Equal(t, "must be string", v(1))
	assert.Empty(t, v("ok"))
}

func TestCameraState(t *testing.T) {
	assert.Nil(t, CameraState(map[string]any{
		"distance":          10,
		"perspective":       false,
		"target":            []any{0, 0, 0},
		"targetOrientation": []any{0, 0, 0, 1},
	}))
	assert.Nil(t, CameraState("not an object"))

	res := CameraState(map[string]any{
		"distance":    "far",
		"perspective": 1,
		"target":      []any{1, 2},
	})
	require.NotNil(t, res)
	assert.Equal(t, map[string]string{
		"distance":    "must be a number",
		"perspective": `must be "true" or "false"`,
		"target":      "must contain 3 array items",
	}, res.Fields)
	assert.Equal(t, `distance: must be a number, perspective: must be "true" or "false", target: must contain 3 array items`, res.String())
}

func TestPolygonPoints(t *testing.T) {
	assert.Nil(t, PolygonPoints(nil))
	assert.Nil(t, PolygonPoints([]any{}))
	assert.Nil(t, PolygonPoints(map[string]any{}))

	var decoded any
	require.NoError(t, yaml.Unmarshal([]byte("- - {x: 1, y: 2}\n  - {x: 3, y: 4.5}\n"), &decoded))
	assert.Nil(t, PolygonPoints(decoded))

	assert.Equal(t, "must be an array of nested x and y points", PolygonPoints(map[string]any{"a": 1}).String())
	assert.Equal(t, "must be an array of x and y points", PolygonPoints([]any{1}).String())
	assert.Equal(t, "must contain x and y points", PolygonPoints([]any{[]any{map[string]any{"x": 1}}}).String())
	assert.Equal(t, "x and y points must be numbers", PolygonPoints([]any{[]any{map[string]any{"x": 1, "y": "2"}}}).String())
}

func TestPoint2D(t *testing.T) {
	assert.Nil(t, Point2D(map[string]any{"x": 1, "y": 2}))
	res := Point2D(map[string]any{"x": "1"})
	require.NotNil(t, res)
	assert.Equal(t, "x: must be a number, y: is required", res.String())
}
