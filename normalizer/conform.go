package normalizer

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// Issue is one defect found while checking a decoded value against its schema.
type Issue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return "$: " + i.Reason
	}
	return i.Path + ": " + i.Reason
}

// Conform checks value against the response schema sent to the model.
// Array elements with defects are removed and reported in dropped; defects
// anywhere else are reported in fatal. Numbers and booleans sent as strings
// come back as float64 and bool. The returned tree shares no slices
// with the input.
func Conform(value any, schema *genai.Schema) (cleaned any, dropped, fatal []Issue) {
	return conform(value, schema, "")
}

func conform(value any, schema *genai.Schema, path string) (any, []Issue, []Issue) {
	if schema == nil {
		return value, nil, nil
	}

	switch schema.Type {
	case genai.TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, nil, []Issue{{Path: path, Reason: "expected object, got " + kindOf(value)}}
		}
		return conformObject(obj, schema, path)

	case genai.TypeArray:
		arr, ok := value.([]any)
		if !ok {
			return nil, nil, []Issue{{Path: path, Reason: "expected array, got " + kindOf(value)}}
		}
		return conformArray(arr, schema, path)

	case genai.TypeString:
		s, ok := value.(string)
		if !ok {
			return nil, nil, []Issue{{Path: path, Reason: "expected string, got " + kindOf(value)}}
		}
		if len(schema.Enum) > 0 && !slices.Contains(schema.Enum, s) {
			return nil, nil, []Issue{{Path: path, Reason: fmt.Sprintf("%q is not one of %s", s, strings.Join(schema.Enum, ", "))}}
		}
		return s, nil, nil

	case genai.TypeNumber:
		n, ok := toNumber(value)
		if !ok {
			return nil, nil, []Issue{{Path: path, Reason: "expected finite number, got " + describe(value)}}
		}
		return n, nil, nil

	case genai.TypeInteger:
		n, ok := toNumber(value)
		if !ok || n != math.Trunc(n) {
			return nil, nil, []Issue{{Path: path, Reason: "expected integer, got " + describe(value)}}
		}
		return n, nil, nil

	case genai.TypeBoolean:
		b, ok := toBool(value)
		if !ok {
			return nil, nil, []Issue{{Path: path, Reason: "expected boolean, got " + describe(value)}}
		}
		return b, nil, nil
	}

	return value, nil, nil
}

func conformObject(obj map[string]any, schema *genai.Schema, path string) (any, []Issue, []Issue) {
	var dropped, fatal []Issue

	for _, key := range schema.Required {
		if v, found := obj[key]; !found || v == nil {
			fatal = append(fatal, Issue{Path: field(path, key), Reason: "required field is missing"})
		}
	}

	out := make(map[string]any, len(obj))
	for key, v := range obj {
		prop, known := schema.Properties[key]
		if !known || v == nil {
			out[key] = v
			continue
		}
		cleaned, d, f := conform(v, prop, field(path, key))
		dropped = append(dropped, d...)
		fatal = append(fatal, f...)
		out[key] = cleaned
	}

	slices.SortFunc(fatal, func(a, b Issue) int { return strings.Compare(a.Path, b.Path) })
	return out, dropped, fatal
}

func conformArray(arr []any, schema *genai.Schema, path string) (any, []Issue, []Issue) {
	var dropped []Issue

	out := make([]any, 0, len(arr))
	for i, item := range arr {
		cleaned, d, f := conform(item, schema.Items, fmt.Sprintf("%s[%d]", path, i))
		if len(f) > 0 {
			dropped = append(dropped, f...)
			continue
		}
		dropped = append(dropped, d...)
		out = append(out, cleaned)
	}
	return out, dropped, nil
}

func field(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// toNumber accepts finite numbers and numeric strings and returns them as
// float64, the only numeric form the typed decode sees.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	}
	return false, false
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("string %q", s)
	}
	return kindOf(v)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
