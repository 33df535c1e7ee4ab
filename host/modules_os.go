/*
File   : squared/host/modules_os.go

The `os` host module (SPEC_FULL.md "Supplemented features"), grounded on
the teacher's std/os.go builtin table (`args`/`env` process-introspection
builtins), re-exposed as an importable module.
*/
package host

import (
	"os"

	"github.com/squared-lang/squared/objects"
)

func newOSModule() *objects.Object {
	mod := objects.NewObject()

	argv := make([]objects.Value, len(os.Args))
	for i, a := range os.Args {
		argv[i] = objects.Str(a)
	}
	mod.Set("args", objects.NewArray(argv))

	mod.Set("env", objects.NewNativeFunction("env", osEnv))
	return mod
}

func osEnv(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return objects.Undefined(), nil
	}
	key, ok := args[0].(*objects.Primitive)
	if !ok || !key.IsStr() {
		return objects.Undefined(), nil
	}
	val, ok := os.LookupEnv(key.StrVal())
	if !ok {
		return objects.Undefined(), nil
	}
	return objects.Str(val), nil
}
