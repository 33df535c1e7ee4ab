/*
File   : squared/scope/scope.go

Package scope implements Squared's lexical scope chain (spec §3 "Scope",
§4.5, §9 "Closure capture snapshot"). A Scope is a flat name→Value map plus
a pointer to its enclosing scope; lookup and write-through walk that chain.
*/
package scope

import "github.com/squared-lang/squared/objects"

// Scope is one lexical frame. Parent is nil only for the global scope.
type Scope struct {
	Variables map[string]objects.Value
	Parent    *Scope
}

// New creates a Scope enclosed by parent. Pass nil to create the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Value),
		Parent:    parent,
	}
}

// Lookup searches the current scope and then its enclosing chain, which
// for Squared terminates at the global scope (spec §3 "Lookup searches
// current scope then the global scope").
func (s *Scope) Lookup(name string) (objects.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Declare binds name in the current scope only (spec §4.5 "VarDecl always
// writes into the current scope"), shadowing any outer binding of the same
// name.
func (s *Scope) Declare(name string, v objects.Value) {
	s.Variables[name] = v
}

// Assign performs write-through assignment (spec §4.5): it mutates the
// nearest scope in the chain that already declares name. It reports
// whether such a scope was found.
func (s *Scope) Assign(name string, v objects.Value) bool {
	if _, ok := s.Variables[name]; ok {
		s.Variables[name] = v
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, v)
	}
	return false
}

// Global walks up the Parent chain to the outermost scope.
func (s *Scope) Global() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// Snapshot returns a new, parent-less Scope populated with a copy of every
// binding visible in s (current scope plus its entire ancestor chain),
// flattened into one frame. This is the closure-capture mechanism spec §9
// requires: "a copy of the bindings visible at function-declaration time",
// not a live reference, so later mutation of the original scope is not
// observable from the closure.
func (s *Scope) Snapshot() *Scope {
	flat := make(map[string]objects.Value)
	var collect func(*Scope)
	collect = func(cur *Scope) {
		if cur == nil {
			return
		}
		collect(cur.Parent)
		for k, v := range cur.Variables {
			flat[k] = v
		}
	}
	collect(s)
	return &Scope{Variables: flat}
}
