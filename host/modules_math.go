/*
File   : squared/host/modules_math.go

The `math` host module (SPEC_FULL.md "Supplemented features"), grounded on
the teacher's std/math.go builtin table (sqrt/abs/pow and friends),
re-exposed here as an importable module object instead of a global
builtin, since Squared's `import` is the language's own module mechanism
(spec.md §4.4) rather than an always-present global namespace.
*/
package host

import (
	"fmt"
	"math"

	"github.com/squared-lang/squared/objects"
)

func newMathModule() *objects.Object {
	mod := objects.NewObject()
	pi := math.Pi
	mod.Set("pi", objects.Int(int64(pi)))
	mod.Set("sqrt", objects.NewNativeFunction("sqrt", mathUnary("sqrt", math.Sqrt)))
	mod.Set("abs", objects.NewNativeFunction("abs", mathUnary("abs", math.Abs)))
	mod.Set("pow", objects.NewNativeFunction("pow", mathPow))
	return mod
}

func mathUnary(name string, fn func(float64) float64) objects.NativeFunc {
	return func(args []objects.Value) (objects.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("math.%s expects 1 argument, got %d", name, len(args))
		}
		x, err := numericArg(args[0])
		if err != nil {
			return nil, err
		}
		return objects.Int(int64(fn(x))), nil
	}
}

func mathPow(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("math.pow expects 2 arguments, got %d", len(args))
	}
	base, err := numericArg(args[0])
	if err != nil {
		return nil, err
	}
	exp, err := numericArg(args[1])
	if err != nil {
		return nil, err
	}
	return objects.Int(int64(math.Pow(base, exp))), nil
}

func numericArg(v objects.Value) (float64, error) {
	p, ok := v.(*objects.Primitive)
	if !ok || !p.IsInt() {
		return 0, fmt.Errorf("expected an int argument, got %s", v.Type())
	}
	return float64(p.IntVal()), nil
}
