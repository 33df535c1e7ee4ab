/*
File   : squared/host/registry.go

Registry is the concrete `moduleRegistry: name -> moduleObject` spec.md §6
calls for, modeled on the teacher's std.Package/RegisterPackage pattern
(std/math.go, std/common.go: a Package{Name, Functions} registered at
init() and looked up by dotted call syntax). Squared's import binds
differently (spec.md §4.4): the module itself is bound to the first
dot-separated segment of the import name, and every enumerable top-level
member is additionally bound directly in the importing scope.
*/
package host

import "github.com/squared-lang/squared/objects"

// Registry maps a module name to its default-export object (spec.md §6).
type Registry struct {
	modules map[string]*objects.Object
}

// NewRegistry creates an empty registry. Use RegisterStandardModules to
// populate it with the host-supplied math/os/time/json modules
// (SPEC_FULL.md "Supplemented features").
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*objects.Object)}
}

// Register binds a module object under name. A dotted import name (spec.md
// §4.2 "import foo.js") is registered and looked up under its full
// spelling; only the *binding* the evaluator performs on Import uses the
// first segment (spec.md §4.4).
func (r *Registry) Register(name string, module *objects.Object) {
	r.modules[name] = module
}

// Lookup finds a module by its full (possibly dotted) registered name.
func (r *Registry) Lookup(name string) (*objects.Object, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// FirstSegment returns the portion of a (possibly dotted) module name
// before the first '.', used as the bind name for the module's default
// export (spec.md §4.4 "bound to the first dot-separated segment").
func FirstSegment(moduleName string) string {
	for i, c := range moduleName {
		if c == '.' {
			return moduleName[:i]
		}
	}
	return moduleName
}
