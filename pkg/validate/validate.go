// Package validate checks loosely typed values decoded from JSON or YAML,
// such as camera state or polygon point lists typed into an editor.
package validate

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// Rule returns an error message for an invalid value, or "" when it is valid
type Rule func(value any) string

// Rules maps field names to the rules applied to them in order
type Rules map[string][]Rule

// Result is a failed validation: either a single message or per-field messages
type Result struct {
	Message string
	Fields  map[string]string
}

// String flattens the result into one line with fields in name order
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, r.Fields[k]))
	}
	return strings.Join(parts, ", ")
}

func (r *Result) Error() string {
	return r.String()
}

func isEmpty(value any) bool {
	return value == nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint:
		return float64(v), true
	}
	return 0, false
}

func toSlice(value any) ([]any, bool) {
	if value == nil {
		return nil, false
	}
	if s, ok := value.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// IsRequired rejects nil
func IsRequired(value any) string {
	if value == nil {
		return "is required"
	}
	return ""
}

// IsNumber accepts nil or any numeric value
func IsNumber(value any) string {
	if _, ok := toFloat(value); !isEmpty(value) && !ok {
		return "must be a number"
	}
	return ""
}

// IsBoolean accepts nil or a bool
func IsBoolean(value any) string {
	if _, ok := value.(bool); !isEmpty(value) && !ok {
		return `must be "true" or "false"`
	}
	return ""
}

// IsString requires a string
func IsString(value any) string {
	if _, ok := value.(string); !ok {
		return "must be string"
	}
	return ""
}

// IsNumberArray checks that an array value has exactly n numbers. Non-array
// values pass.
func IsNumberArray(n int) Rule {
	return func(value any) string {
		items, ok := toSlice(value)
		if !ok {
			return ""
		}
		if len(items) != n {
			return fmt.Sprintf("must contain %d array items", n)
		}
		for _, item := range items {
			if _, ok := toFloat(item); !ok {
				return fmt.Sprintf("must contain only numbers in the array. %q is not a number.", fmt.Sprint(item))
			}
		}
		return ""
	}
}

// IsOrientation requires a unit quaternion given as four numbers
func IsOrientation(value any) string {
	if msg := IsNumberArray(4)(value); msg != "" {
		return msg
	}
	items, ok := toSlice(value)
	if !ok {
		return ""
	}
	sum := 0.0
	for _, item := range items {
		f, _ := toFloat(item)
		sum += f * f
	}
	if math.Abs(sum-1) > 1e-6 {
		return "must be valid quaternion"
	}
	return ""
}

// MinLen bounds the length of arrays and strings from below
func MinLen(min int) Rule {
	return func(value any) string {
		if s, ok := value.(string); ok {
			if len(s) < min {
				return fmt.Sprintf("must contain at least %d characters", min)
			}
			return ""
		}
		if items, ok := toSlice(value); ok && len(items) < min {
			return fmt.Sprintf("must contain at least %d array items", min)
		}
		return ""
	}
}

// MaxLen bounds the length of arrays and strings from above
func MaxLen(max int) Rule {
	return func(value any) string {
		if s, ok := value.(string); ok {
			if len(s) > max {
				return fmt.Sprintf("must contain at most %d characters", max)
			}
			return ""
		}
		if items, ok := toSlice(value); ok && len(items) > max {
			return fmt.Sprintf("must contain at most %d array items", max)
		}
		return ""
	}
}

// IsNotPrivate rejects strings that start with an underscore
func IsNotPrivate(value any) string {
	if s, ok := value.(string); ok && strings.HasPrefix(s, "_") {
		return "must not start with _"
	}
	return ""
}

func join(rules []Rule) Rule {
	return func(value any) string {
		for _, rule := range rules {
			if msg := rule(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// CreateValidator returns a validator reporting the first failing rule per field
func CreateValidator(rules Rules) func(data map[string]any) map[string]string {
	return func(data map[string]any) map[string]string {
		errs := make(map[string]string)
		for key, fieldRules := range rules {
			if msg := join(fieldRules)(data[key]); msg != "" {
				errs[key] = msg
			}
		}
		return errs
	}
}

// CreatePrimitiveValidator returns a validator reporting the first failing rule
func CreatePrimitiveValidator(rules ...Rule) Rule {
	return join(rules)
}

func fieldResult(errs map[string]string) *Result {
	if len(errs) == 0 {
		return nil
	}
	return &Result{Fields: errs}
}

// CameraState validates a decoded camera state object
func CameraState(data any) *Result {
	m, ok := toMap(data)
	if !ok {
		m = map[string]any{}
	}
	v := CreateValidator(Rules{
		"distance":          {IsNumber},
		"perspective":       {IsBoolean},
		"phi":               {IsNumber},
		"thetaOffset":       {IsNumber},
		"target":            {IsNumberArray(3)},
		"targetOffset":      {IsNumberArray(3)},
		"targetOrientation": {IsOrientation},
	})
	return fieldResult(v(m))
}

func isXYPointArray(value any) string {
	items, ok := toSlice(value)
	if !ok {
		return "must be an array of x and y points"
	}
	for _, item := range items {
		pt, ok := toMap(item)
		if !ok || pt["x"] == nil || pt["y"] == nil {
			return "must contain x and y points"
		}
		if IsNumber(pt["x"]) != "" || IsNumber(pt["y"]) != "" {
			return "x and y points must be numbers"
		}
	}
	return ""
}

func isPolygons(value any) string {
	items, ok := toSlice(value)
	if !ok {
		return "must be an array of nested x and y points"
	}
	for _, item := range items {
		if msg := isXYPointArray(item); msg != "" {
			return msg
		}
	}
	return ""
}

// PolygonPoints validates a nested array of {x, y} points. Empty input is valid.
func PolygonPoints(data any) *Result {
	if data == nil {
		return nil
	}
	if items, ok := toSlice(data); ok && len(items) == 0 {
		return nil
	}
	if m, ok := toMap(data); ok && len(m) == 0 {
		return nil
	}
	if msg := isPolygons(data); msg != "" {
		return &Result{Message: msg}
	}
	return nil
}

// Point2D validates a single {x, y} point
func Point2D(data any) *Result {
	m, ok := toMap(data)
	if !ok {
		m = map[string]any{}
	}
	v := CreateValidator(Rules{
		"x": {IsRequired, IsNumber},
		"y": {IsRequired, IsNumber},
	})
	return fieldResult(v(m))
}
