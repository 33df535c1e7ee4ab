/*
File   : squared/host/modules_json.go

The `json` host module (SPEC_FULL.md "Supplemented features"), grounded on
the teacher's std/json.go (`parse_json`/`stringify_json` builtins) and
re-exposed as an importable module using `encoding/json` to bridge
Squared's runtime value model (objects.Value) and Go's native JSON types.
*/
package host

import (
	"encoding/json"
	"fmt"

	"github.com/squared-lang/squared/objects"
)

func newJSONModule() *objects.Object {
	mod := objects.NewObject()
	mod.Set("parse", objects.NewNativeFunction("parse", jsonParse))
	mod.Set("stringify", objects.NewNativeFunction("stringify", jsonStringify))
	return mod
}

func jsonParse(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("json.parse expects 1 argument, got %d", len(args))
	}
	str, ok := args[0].(*objects.Primitive)
	if !ok || !str.IsStr() {
		return nil, fmt.Errorf("json.parse expects a str argument")
	}
	var decoded any
	if err := json.Unmarshal([]byte(str.StrVal()), &decoded); err != nil {
		return nil, fmt.Errorf("json.parse: %w", err)
	}
	return fromGoValue(decoded), nil
}

func jsonStringify(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("json.stringify expects 1 argument, got %d", len(args))
	}
	encoded, err := json.Marshal(toGoValue(args[0]))
	if err != nil {
		return nil, fmt.Errorf("json.stringify: %w", err)
	}
	return objects.Str(string(encoded)), nil
}

// fromGoValue converts a value produced by encoding/json.Unmarshal (map,
// []any, float64, string, bool, nil) into the Squared runtime value model.
func fromGoValue(v any) objects.Value {
	switch val := v.(type) {
	case nil:
		return objects.Undefined()
	case bool:
		return objects.Bool(val)
	case float64:
		return objects.Int(int64(val))
	case string:
		return objects.Str(val)
	case []any:
		elems := make([]objects.Value, len(val))
		for i, e := range val {
			elems[i] = fromGoValue(e)
		}
		return objects.NewArray(elems)
	case map[string]any:
		obj := objects.NewObject()
		for _, k := range sortedKeys(val) {
			obj.Set(k, fromGoValue(val[k]))
		}
		return obj
	default:
		return objects.Undefined()
	}
}

// toGoValue converts a Squared runtime value into a Go value
// encoding/json.Marshal can serialize.
func toGoValue(v objects.Value) any {
	switch val := v.(type) {
	case *objects.Primitive:
		switch {
		case val.IsInt():
			return val.IntVal()
		case val.IsBool():
			return val.BoolVal()
		case val.IsStr():
			return val.StrVal()
		default:
			return nil
		}
	case *objects.Array:
		out := make([]any, len(val.Elements))
		for i, e := range val.Elements {
			out[i] = toGoValue(e)
		}
		return out
	case *objects.Object:
		out := make(map[string]any)
		for _, k := range val.Keys() {
			mv, _ := val.Get(k)
			out[k] = toGoValue(mv)
		}
		return out
	default:
		return nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
