/*
File   : squared/eval/typector.go

Type-constructor evaluation (spec.md §4.3), the language's signature
feature: each ast.TypeCtor carries a verbatim raw token slice whose
semantics depend on Kind. This file implements the full semantics table,
including the deferred sub-parse for `f`/`fobj` (via the parser package,
spec.md §9 "Deferred sub-parse inside constructors") and the `fint`/`fstr`
template-interpolation scan.
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/errs"
	"github.com/squared-lang/squared/objects"
	"github.com/squared-lang/squared/parser"
	"github.com/squared-lang/squared/scope"
	"github.com/squared-lang/squared/token"
)

func (e *Evaluator) evalTypeCtor(n *ast.TypeCtor, sc *scope.Scope) (objects.Value, error) {
	switch n.Kind {
	case "int":
		return ctorInt(n.BodyTokens)
	case "str":
		return ctorStr(n.BodyTokens)
	case "bool":
		return ctorBool(n.BodyTokens)
	case "var":
		return e.ctorVar(n.BodyTokens, sc)
	case "f", "fobj":
		return e.ctorDeferredExpr(n.BodyTokens, sc)
	case "a":
		return e.ctorArray(n.BodyTokens, sc)
	case "obj", "o":
		return e.ctorObject(n.BodyTokens, sc)
	case "fint":
		return e.ctorTemplate(n.BodyTokens, sc, true)
	case "fstr":
		return e.ctorTemplate(n.BodyTokens, sc, false)
	default:
		return nil, errs.New(errs.SyntaxError, "unknown type-constructor kind %q", n.Kind)
	}
}

func concatTexts(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

func joinWithSpaces(toks []token.Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}

// ctorInt: concatenate token texts, parse as base-10 integer (spec.md
// §4.3).
func ctorInt(toks []token.Token) (objects.Value, error) {
	text := concatTexts(toks)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errs.Wrap(errs.TypeError, err, "int[%s] is not a valid integer", text)
	}
	return objects.Int(n), nil
}

// ctorStr: join token texts with single spaces, collapse " , "->"," and
// " ."->".", trim (spec.md §4.3).
func ctorStr(toks []token.Token) (objects.Value, error) {
	s := joinWithSpaces(toks)
	s = strings.ReplaceAll(s, " , ", ",")
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.TrimSpace(s)
	return objects.Str(s), nil
}

// ctorBool: join texts, lowercase, compare to "true" (spec.md §4.3).
func ctorBool(toks []token.Token) (objects.Value, error) {
	s := strings.ToLower(joinWithSpaces(toks))
	return objects.Bool(s == "true"), nil
}

// ctorVar: treat the first token as a variable name, look up in current
// scope then globals, fail if missing (spec.md §4.3).
func (e *Evaluator) ctorVar(toks []token.Token, sc *scope.Scope) (objects.Value, error) {
	if len(toks) == 0 {
		return nil, errs.New(errs.SyntaxError, "var[] requires a variable name")
	}
	name := toks[0].Text
	if v, ok := sc.Lookup(name); ok {
		return v, nil
	}
	return nil, errs.New(errs.UndefinedVariable, "var[%s]: %q is not defined", name, name)
}

// ctorDeferredExpr implements `f`/`fobj` (spec.md §4.3): re-parse the body
// as a single expression and evaluate it; on parse failure, fall back to
// the raw concatenation of token texts (spec.md §9).
func (e *Evaluator) ctorDeferredExpr(toks []token.Token, sc *scope.Scope) (objects.Value, error) {
	expr, err := parser.ParseExpressionTokens(toks)
	if err != nil {
		return objects.Str(concatTexts(toks)), nil
	}
	return e.evalExpr(expr, sc)
}

// ctorArray implements `a` (spec.md §4.3): split by top-level commas,
// evaluate each segment as an expression, yield Array.
func (e *Evaluator) ctorArray(toks []token.Token, sc *scope.Scope) (objects.Value, error) {
	segments := splitTopLevelCommas(toks)
	elems := make([]objects.Value, 0, len(segments))
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		expr, err := parser.ParseExpressionTokens(seg)
		if err != nil {
			return nil, errs.Wrap(errs.SyntaxError, err, "a[...]: invalid element expression")
		}
		v, err := e.evalExpr(expr, sc)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return objects.NewArray(elems), nil
}

// ctorObject implements `obj`/`o` (spec.md §4.3): split by top-level
// commas; each segment must begin with the identifier `prop`; the token at
// index 2 is the key name; tokens after `=` form the value expression.
// Segments not starting with `prop` are ignored.
func (e *Evaluator) ctorObject(toks []token.Token, sc *scope.Scope) (objects.Value, error) {
	obj := objects.NewObject()
	for _, seg := range splitTopLevelCommas(toks) {
		if len(seg) < 5 || seg[0].Text != "prop" || seg[1].Kind != token.LBracket || seg[3].Kind != token.RBracket {
			continue
		}
		key := seg[2].Text
		eqIdx := -1
		for i := 4; i < len(seg); i++ {
			if seg[i].Kind == token.Symbol && seg[i].Text == "=" {
				eqIdx = i
				break
			}
		}
		if eqIdx == -1 {
			continue
		}
		valueToks := seg[eqIdx+1:]
		expr, err := parser.ParseExpressionTokens(valueToks)
		if err != nil {
			return nil, errs.Wrap(errs.SyntaxError, err, "obj[...]: invalid value expression for prop[%s]", key)
		}
		v, err := e.evalExpr(expr, sc)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	return obj, nil
}

// splitTopLevelCommas splits toks on Symbol "," at depth zero, with depth
// counted by LBracket/RBracket (spec.md §4.3).
func splitTopLevelCommas(toks []token.Token) [][]token.Token {
	var segments [][]token.Token
	var cur []token.Token
	depth := 0
	for _, t := range toks {
		switch {
		case t.Kind == token.LBracket:
			depth++
			cur = append(cur, t)
		case t.Kind == token.RBracket:
			depth--
			cur = append(cur, t)
		case depth == 0 && t.Kind == token.Symbol && t.Text == ",":
			segments = append(segments, cur)
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	if len(cur) > 0 {
		segments = append(segments, cur)
	}
	return segments
}

// ctorTemplate implements `fint`/`fstr` (spec.md §4.3): scan body for `{
// … }` expression islands (balanced), evaluate and substitute each with
// its formatted value, then concatenate. `fint` concatenates with no
// separators and parses as an integer; `fstr` joins with single spaces,
// collapses whitespace before punctuation, trims, and yields a string.
func (e *Evaluator) ctorTemplate(toks []token.Token, sc *scope.Scope, asInt bool) (objects.Value, error) {
	pieces, err := e.expandTemplateIslands(toks, sc)
	if err != nil {
		return nil, err
	}
	if asInt {
		text := strings.Join(pieces, "")
		n, perr := strconv.ParseInt(text, 10, 64)
		if perr != nil {
			return nil, errs.Wrap(errs.TypeError, perr, "fint[...] result %q is not a valid integer", text)
		}
		return objects.Int(n), nil
	}
	text := strings.Join(pieces, " ")
	for _, punct := range []string{",", "!", "?", "."} {
		text = strings.ReplaceAll(text, " "+punct, punct)
	}
	text = strings.TrimSpace(text)
	return objects.Str(text), nil
}

// expandTemplateIslands walks toks, treating a balanced `{ … }` run as an
// expression to evaluate and format, and every other token as a literal
// text piece, in source order.
func (e *Evaluator) expandTemplateIslands(toks []token.Token, sc *scope.Scope) ([]string, error) {
	var pieces []string
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Kind == token.Symbol && t.Text == "{" {
			depth := 1
			j := i + 1
			for j < len(toks) && depth > 0 {
				if toks[j].Kind == token.Symbol && toks[j].Text == "{" {
					depth++
				} else if toks[j].Kind == token.Symbol && toks[j].Text == "}" {
					depth--
					if depth == 0 {
						break
					}
				}
				j++
			}
			if depth != 0 {
				return nil, errs.New(errs.SyntaxError, "unterminated template island")
			}
			island := toks[i+1 : j]
			expr, err := parser.ParseExpressionTokens(island)
			if err != nil {
				return nil, errs.Wrap(errs.SyntaxError, err, "invalid template island expression")
			}
			v, err := e.evalExpr(expr, sc)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, v.Format())
			i = j + 1
			continue
		}
		pieces = append(pieces, t.Text)
		i++
	}
	return pieces, nil
}
