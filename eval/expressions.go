/*
File   : squared/eval/expressions.go

Expression evaluation (spec.md §4.6), grounded on the teacher's
eval/eval_expressions.go and eval/eval_access.go (binary-operator
dispatch, member access) adapted to Squared's closed runtime value set.
*/
package eval

import (
	"regexp"
	"strconv"

	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/errs"
	"github.com/squared-lang/squared/objects"
	"github.com/squared-lang/squared/scope"
)

func (e *Evaluator) evalExpr(expr ast.Expression, sc *scope.Scope) (objects.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return objects.Int(int64(n.Number)), nil
	case *ast.Identifier:
		return e.evalIdentifier(n, sc), nil
	case *ast.Binary:
		return e.evalBinary(n, sc)
	case *ast.Member:
		return e.evalMember(n, sc)
	case *ast.Call:
		return e.evalCall(n, sc)
	case *ast.TypeCtor:
		return e.evalTypeCtor(n, sc)
	default:
		return nil, errs.New(errs.SyntaxError, "unhandled expression %s", expr.String())
	}
}

// evalIdentifier implements spec.md §4.5: lookup in the current scope then
// globals; if absent, the identifier's own name string is returned (the
// "identifier-as-string fallback" spec.md §9 documents as load-bearing for
// bare words inside constructor bodies).
func (e *Evaluator) evalIdentifier(n *ast.Identifier, sc *scope.Scope) objects.Value {
	if v, ok := sc.Lookup(n.Name); ok {
		return v
	}
	return objects.Str(n.Name)
}

var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}

// evalBinary implements spec.md §4.6: evaluate both sides, unwrap
// Primitive payloads, apply the operator. Arithmetic yields Primitive(Int)
// except `+` on two strings, which concatenates (mirrors the host
// language's operator-overloaded `+`); comparisons yield Primitive(Bool).
func (e *Evaluator) evalBinary(n *ast.Binary, sc *scope.Scope) (objects.Value, error) {
	left, err := e.evalExpr(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right, sc)
	if err != nil {
		return nil, err
	}
	if comparisonOps[n.Op] {
		return evalComparison(n.Op, left, right)
	}
	return evalArithmetic(n.Op, left, right)
}

func evalArithmetic(op string, left, right objects.Value) (objects.Value, error) {
	if op == "+" {
		if ls, lok := asStr(left); lok {
			if rs, rok := asStr(right); rok {
				return objects.Str(ls + rs), nil
			}
		}
	}
	li, lok := asInt(left)
	ri, rok := asInt(right)
	if !lok || !rok {
		return nil, errs.New(errs.TypeError, "operator %q requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return objects.Int(li + ri), nil
	case "-":
		return objects.Int(li - ri), nil
	case "*":
		return objects.Int(li * ri), nil
	case "/":
		if ri == 0 {
			return nil, errs.New(errs.TypeError, "division by zero")
		}
		return objects.Int(li / ri), nil
	default:
		return nil, errs.New(errs.TypeError, "unknown operator %q", op)
	}
}

func evalComparison(op string, left, right objects.Value) (objects.Value, error) {
	if li, lok := asInt(left); lok {
		if ri, rok := asInt(right); rok {
			return objects.Bool(compareOrdered(op, int(sign(li-ri)))), nil
		}
	}
	if ls, lok := asStr(left); lok {
		if rs, rok := asStr(right); rok {
			switch {
			case ls < rs:
				return objects.Bool(compareOrdered(op, -1)), nil
			case ls > rs:
				return objects.Bool(compareOrdered(op, 1)), nil
			default:
				return objects.Bool(compareOrdered(op, 0)), nil
			}
		}
	}
	switch op {
	case "==":
		return objects.Bool(left.Format() == right.Format()), nil
	case "!=":
		return objects.Bool(left.Format() != right.Format()), nil
	default:
		return nil, errs.New(errs.TypeError, "operator %q requires comparable operands, got %s and %s", op, left.Type(), right.Type())
	}
}

func sign(n int64) int64 {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func compareOrdered(op string, cmp int) bool {
	switch op {
	case "==":
		return cmp == 0
	case "!=":
		return cmp != 0
	case "<":
		return cmp < 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case ">=":
		return cmp >= 0
	}
	return false
}

func asInt(v objects.Value) (int64, bool) {
	p, ok := v.(*objects.Primitive)
	if !ok || !p.IsInt() {
		return 0, false
	}
	return p.IntVal(), true
}

func asStr(v objects.Value) (string, bool) {
	p, ok := v.(*objects.Primitive)
	if !ok || !p.IsStr() {
		return "", false
	}
	return p.StrVal(), true
}

var arrayIndexPattern = regexp.MustCompile(`^(?:e(\d+)|(\d+))$`)

// evalMember implements spec.md §4.6's "Member" rules for Array, Object,
// and host-attached fields (e.g. an EvalCell's "result").
func (e *Evaluator) evalMember(n *ast.Member, sc *scope.Scope) (objects.Value, error) {
	obj, err := e.evalExpr(n.Object, sc)
	if err != nil {
		return nil, err
	}
	key := n.Property
	if n.Dynamic {
		keyVal, err := e.evalExpr(n.DynamicKey, sc)
		if err != nil {
			return nil, err
		}
		key = keyVal.Format()
	}
	switch o := obj.(type) {
	case *objects.Array:
		if key == "val" {
			return o, nil
		}
		if m := arrayIndexPattern.FindStringSubmatch(key); m != nil {
			idxText := m[1]
			if idxText == "" {
				idxText = m[2]
			}
			idx, _ := strconv.Atoi(idxText)
			if idx < 0 || idx >= len(o.Elements) {
				return objects.Str("undefined"), nil
			}
			return o.Elements[idx], nil
		}
		return nil, errs.New(errs.InvalidMember, "array has no member %q", key)
	case *objects.Object:
		if v, ok := o.Get(key); ok {
			return v, nil
		}
		return nil, errs.New(errs.InvalidMember, "object has no member %q", key)
	case *objects.EvalCell:
		if key == "result" {
			return o.Result, nil
		}
		return nil, errs.New(errs.InvalidMember, "evalcell has no member %q", key)
	default:
		return nil, errs.New(errs.InvalidMember, "%s has no member %q", obj.Type(), key)
	}
}
