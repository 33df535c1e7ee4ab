/*
File   : squared/eval/evaluator.go

Package eval implements Squared's tree-walking evaluator (spec.md
§4.4-§4.6): a single-pass, synchronous interpreter over the ast.Program
produced by the parser. The Evaluator struct and its Run entry point are
grounded on the teacher interpreter's eval.Evaluator (eval/evaluator.go):
a root scope, a host I/O bridge, and a position-aware error path, adapted
from the teacher's Writer/Reader-owning shape to delegate all I/O to a
host.Host so the evaluator itself stays free of *os.File concerns.
*/
package eval

import (
	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/host"
	"github.com/squared-lang/squared/objects"
	"github.com/squared-lang/squared/scope"
)

// Evaluator holds the state for evaluating a Squared program: the global
// scope and the host bridge used for output, input, and module import
// (spec.md §6).
type Evaluator struct {
	Global *scope.Scope
	Host   *host.Host

	// lastEval backs the eval() builtin's no-argument form (spec.md
	// §4.6 "eval() returns the last EvalCell result").
	lastEval objects.Value
}

// New creates an Evaluator with a fresh global scope, wired to h for
// output/input/import.
func New(h *host.Host) *Evaluator {
	return &Evaluator{
		Global:   scope.New(nil),
		Host:     h,
		lastEval: objects.Undefined(),
	}
}

// Run executes prog's top-level statements in the global scope (spec.md
// §5 "a single pass that returns when the top-level statement list is
// exhausted"). On error, it reports "Runtime Error: <message>" through
// the host sink with the error flag set (spec.md §7 "Policy"), then
// returns the error to the caller.
func (e *Evaluator) Run(prog *ast.Program) (objects.Value, error) {
	result, err := e.executeBlock(prog.Body, e.Global)
	if err != nil {
		e.Host.Output("Runtime Error: "+err.Error(), true)
		return nil, err
	}
	if ctrl, ok := result.(*objects.Control); ok {
		return ctrl.Value, nil
	}
	return result, nil
}

// executeBlock iterates statements in scope; if any yields a Control
// value (Return/Break/Continue), it is returned immediately without
// running the remaining statements, to propagate up to whichever
// construct (loop, function call, or Run itself) is positioned to act on
// it (spec.md §4.4).
func (e *Evaluator) executeBlock(stmts []ast.Statement, sc *scope.Scope) (objects.Value, error) {
	var result objects.Value = objects.Undefined()
	for _, stmt := range stmts {
		v, err := e.execStatement(stmt, sc)
		if err != nil {
			return nil, err
		}
		result = v
		if _, isControl := v.(*objects.Control); isControl {
			return v, nil
		}
	}
	return result, nil
}
