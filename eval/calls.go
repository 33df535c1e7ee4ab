/*
File   : squared/eval/calls.go

Call resolution (spec.md §4.6 "Call resolves in three steps") and the
three language built-ins (print/random/eval), grounded on the teacher's
eval/eval_controls.go evalCallExpression (builtin-first, then
package/object-method dispatch, then a plain scope lookup) and
eval/evaluator.go's CallFunction (closure-snapshot call-scope setup).
*/
package eval

import (
	"math/rand"

	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/errs"
	"github.com/squared-lang/squared/objects"
	"github.com/squared-lang/squared/scope"
)

var builtinNames = map[string]bool{"print": true, "random": true, "eval": true}

// evalCall implements spec.md §4.6's three-step resolution:
//  1. a built-in identifier callee is invoked directly.
//  2. a Member callee whose object is an Object looks up the property as a
//     Function and invokes it.
//  3. otherwise the callee is evaluated; it must yield a Function.
func (e *Evaluator) evalCall(n *ast.Call, sc *scope.Scope) (objects.Value, error) {
	if ident, ok := n.Callee.(*ast.Identifier); ok && builtinNames[ident.Name] {
		args, err := e.evalArgs(n.Args, sc)
		if err != nil {
			return nil, err
		}
		return e.invokeBuiltin(ident.Name, args)
	}

	if member, ok := n.Callee.(*ast.Member); ok {
		objVal, err := e.evalExpr(member.Object, sc)
		if err != nil {
			return nil, err
		}
		if obj, isObj := objVal.(*objects.Object); isObj {
			key := member.Property
			if member.Dynamic {
				keyVal, err := e.evalExpr(member.DynamicKey, sc)
				if err != nil {
					return nil, err
				}
				key = keyVal.Format()
			}
			fnVal, ok := obj.Get(key)
			if !ok {
				return nil, errs.New(errs.InvalidMember, "object has no member %q", key)
			}
			fn, ok := fnVal.(*objects.Function)
			if !ok {
				return nil, errs.New(errs.UnknownFunction, "member %q is not callable", key)
			}
			args, err := e.evalArgs(n.Args, sc)
			if err != nil {
				return nil, err
			}
			return e.invokeFunction(fn, args)
		}
	}

	callee, err := e.evalExpr(n.Callee, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*objects.Function)
	if !ok {
		return nil, errs.New(errs.UnknownFunction, "%s is not callable", callee.Type())
	}
	args, err := e.evalArgs(n.Args, sc)
	if err != nil {
		return nil, err
	}
	return e.invokeFunction(fn, args)
}

func (e *Evaluator) evalArgs(exprs []ast.Expression, sc *scope.Scope) ([]objects.Value, error) {
	args := make([]objects.Value, len(exprs))
	for i, arg := range exprs {
		v, err := e.evalExpr(arg, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// invokeFunction implements spec.md §4.6's invocation rule: a new scope
// snapshot-initialised from the function's closure, one binding per
// parameter, then the body runs; callers have already evaluated arguments
// in their own scope. A NativeFunc body (host module function) is called
// directly with no Squared-level scope at all.
func (e *Evaluator) invokeFunction(fn *objects.Function, args []objects.Value) (objects.Value, error) {
	if native, ok := fn.Body.(objects.NativeFunc); ok {
		return native(args)
	}

	body, ok := fn.Body.([]ast.Statement)
	if !ok {
		return nil, errs.New(errs.UnknownFunction, "function %q has no body", fn.Name)
	}
	closure, _ := fn.Closure.(*scope.Scope)
	callScope := scope.New(closure)
	for i, param := range fn.Params {
		if i < len(args) {
			callScope.Declare(param, args[i])
		} else {
			callScope.Declare(param, objects.Undefined())
		}
	}

	result, err := e.executeBlock(body, callScope)
	if err != nil {
		return nil, err
	}
	if ctrl, ok := result.(*objects.Control); ok && ctrl.Kind == objects.ControlReturn {
		return ctrl.Value, nil
	}
	return objects.Undefined(), nil
}

// invokeBuiltin dispatches the three language built-ins (spec.md §4.6).
func (e *Evaluator) invokeBuiltin(name string, args []objects.Value) (objects.Value, error) {
	switch name {
	case "print":
		e.Host.Print(args)
		return objects.Undefined(), nil
	case "random":
		return e.builtinRandom(args)
	case "eval":
		return e.builtinEval(args)
	default:
		return nil, errs.New(errs.UnknownFunction, "unknown builtin %q", name)
	}
}

// builtinRandom implements spec.md §4.6: `random(a)` picks a uniform
// element of array `a`; `random(min, max)` returns a uniform integer in
// [min, max] inclusive.
func (e *Evaluator) builtinRandom(args []objects.Value) (objects.Value, error) {
	switch len(args) {
	case 1:
		arr, ok := args[0].(*objects.Array)
		if !ok || len(arr.Elements) == 0 {
			return objects.Undefined(), nil
		}
		return arr.Elements[rand.Intn(len(arr.Elements))], nil
	case 2:
		min, minOk := asInt(args[0])
		max, maxOk := asInt(args[1])
		if !minOk || !maxOk || max < min {
			return nil, errs.New(errs.TypeError, "random(min, max) requires two ints with min <= max")
		}
		return objects.Int(min + rand.Int63n(max-min+1)), nil
	default:
		return nil, errs.New(errs.TypeError, "random expects 1 or 2 arguments, got %d", len(args))
	}
}

// builtinEval implements spec.md §4.6: `eval()` returns the last EvalCell
// result; `eval(x)` sets it and returns a fresh EvalCell{result: x}.
func (e *Evaluator) builtinEval(args []objects.Value) (objects.Value, error) {
	if len(args) == 0 {
		return &objects.EvalCell{Result: e.lastEval}, nil
	}
	e.lastEval = args[0]
	return &objects.EvalCell{Result: args[0]}, nil
}
