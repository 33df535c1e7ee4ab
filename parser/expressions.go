/*
File   : squared/parser/expressions.go

Expression grammar (spec §4.2 points 4-6): comparison ← additive ←
callMemberPrimary ← primary. Mirrors the teacher's
parser_expressions.go precedence-climbing shape, collapsed to the two
levels the spec actually calls for (comparison is intentionally a single
non-precedence-climbed level; additive intentionally also carries `*`/`/`
at the same level, spec §9).
*/
package parser

import (
	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/token"
)

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

var additiveOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseComparison()
}

// parseComparison implements spec §4.2 point 4: a single left-associative
// level for == != < > <= >=, not chained precedence climbing.
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Symbol && comparisonOps[p.cur().Text] {
		op := p.advance().Text
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseAdditive implements spec §4.2 point 4: + - * / all at one
// left-associative level (intentional deviation from conventional
// precedence, spec §9).
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseCallMemberPrimary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Symbol && additiveOps[p.cur().Text] {
		op := p.advance().Text
		right, err := p.parseCallMemberPrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseCallMemberPrimary repeatedly attaches postfix operators to the
// current expression (spec §4.2 point 5): member access (static and
// dynamic), calls, and type-constructor brackets.
func (p *Parser) parseCallMemberPrimary() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.atSymbol("."):
			p.advance()
			if p.atSymbol("{") {
				p.advance()
				key, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				if err := p.expectSymbol("}"); err != nil {
					return nil, err
				}
				expr = &ast.Member{Object: expr, Dynamic: true, DynamicKey: key}
				continue
			}
			propTok := p.advance()
			if propTok.Kind != token.Identifier && propTok.Kind != token.Number {
				return nil, p.errorf("expected property name after '.', got %s", propTok)
			}
			expr = &ast.Member{Object: expr, Property: propTok.Text}
		case p.atSymbol("("):
			p.advance()
			var args []ast.Expression
			for !p.atSymbol(")") {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.atSymbol(",") {
					p.advance()
					continue
				}
				break
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: expr, Args: args}
		case p.at(token.LBracket):
			ident, ok := expr.(*ast.Identifier)
			if !ok || !token.IsTypeCtorKeyword(ident.Name) {
				return expr, nil
			}
			body, err := p.collectBracketBody()
			if err != nil {
				return nil, err
			}
			expr = &ast.TypeCtor{Kind: ident.Name, BodyTokens: body}
		default:
			return expr, nil
		}
	}
}

// parsePrimary accepts a parenthesized sub-expression, an identifier, or a
// number literal (spec §4.2 point 6).
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.atSymbol("("):
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return expr, nil
	case p.at(token.Identifier):
		tok := p.advance()
		return &ast.Identifier{Name: tok.Text}, nil
	case p.at(token.Number):
		tok := p.advance()
		n, err := parseNumberText(tok.Text)
		if err != nil {
			return nil, p.errorf("invalid number literal %q", tok.Text)
		}
		return &ast.Literal{Number: n}, nil
	default:
		return nil, p.errorf("unexpected token %s", p.cur())
	}
}
