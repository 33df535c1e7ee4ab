/*
File   : squared/host/modules_time.go

The `time` host module (SPEC_FULL.md "Supplemented features"), grounded on
the teacher's std/time.go builtin table, re-exposed as an importable
module with a single `now()` function returning a Unix timestamp.
*/
package host

import (
	"time"

	"github.com/squared-lang/squared/objects"
)

func newTimeModule() *objects.Object {
	mod := objects.NewObject()
	mod.Set("now", objects.NewNativeFunction("now", timeNow))
	return mod
}

func timeNow(args []objects.Value) (objects.Value, error) {
	return objects.Int(time.Now().Unix()), nil
}
