/*
File   : squared/host/modules.go

RegisterStandardModules populates a Registry with the host-supplied
modules SPEC_FULL.md's "Supplemented features" section calls for:
math/os/time/json, mirroring the breadth of the teacher's std package
(math.go, os.go, time.go, json.go) applied to Squared's own `import`.
*/
package host

// RegisterStandardModules registers the math, os, time, and json modules.
func (r *Registry) RegisterStandardModules() {
	r.Register("math", newMathModule())
	r.Register("os", newOSModule())
	r.Register("time", newTimeModule())
	r.Register("json", newJSONModule())
}
