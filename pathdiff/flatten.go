package pathdiff

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Flatten returns the entries of a decoded document in document order.
//
// v is a tree of map[string]any, map[any]any, yaml.MapSlice, []any and
// scalars, as produced by [Decode]. Members of Go maps are visited in key
// order.
func Flatten(v any) []Entry {
	return flatten(nil, v, "")
}

func flatten(res []Entry, v any, path string) []Entry {
	switch x := v.(type) {
	case nil:
		return append(res, Entry{Path: path, Type: NullType, Value: "null"})
	case []any:
		if len(x) == 0 {
			return append(res, Entry{Path: path, Type: ArrayType, Value: "[]"})
		}
		for i, y := range x {
			res = flatten(res, y, path+"["+strconv.Itoa(i)+"]")
		}
		return res
	case map[string]any:
		if len(x) == 0 {
			return append(res, emptyObject(path))
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			res = flatten(res, x[k], member(path, k))
		}
		return res
	case map[any]any:
		if len(x) == 0 {
			return append(res, emptyObject(path))
		}
		keys := make([]string, 0, len(x))
		byKey := make(map[string]any, len(x))
		for k, y := range x {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = y
		}
		slices.Sort(keys)
		for _, k := range keys {
			res = flatten(res, byKey[k], member(path, k))
		}
		return res
	case yaml.MapSlice:
		if len(x) == 0 {
			return append(res, emptyObject(path))
		}
		for _, item := range x {
			res = flatten(res, item.Value, member(path, fmt.Sprint(item.Key)))
		}
		return res
	default:
		typ, s := scalar(x)
		return append(res, Entry{Path: path, Type: ScalarType, Scalar: typ, Value: s})
	}
}

func emptyObject(path string) Entry {
	return Entry{Path: path, Type: ObjectType, Value: "{}"}
}

func member(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// scalar returns the type name and string form of a scalar value.
func scalar(v any) (string, string) {
	switch x := v.(type) {
	case string:
		return "string", x
	case bool:
		return "boolean", strconv.FormatBool(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return "number", strconv.FormatInt(i, 10)
		}
		if f, err := x.Float64(); err == nil {
			return "number", formatFloat(f)
		}
		return "number", x.String()
	case float64:
		return "number", formatFloat(x)
	case float32:
		return "number", formatFloat(float64(x))
	case int:
		return "number", strconv.Itoa(x)
	case int64:
		return "number", strconv.FormatInt(x, 10)
	case uint64:
		return "number", strconv.FormatUint(x, 10)
	case int32, int16, int8, uint, uint32, uint16, uint8:
		return "number", fmt.Sprint(x)
	default:
		return "string", fmt.Sprint(x)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
