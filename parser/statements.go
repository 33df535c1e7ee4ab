/*
File   : squared/parser/statements.go

Statement-level grammar (spec §4.2 points 2-3 and "Statement forms"),
mirroring the teacher's parser_statements.go/parser_loops.go split: one
function per statement shape, dispatched by parseStatement on the leading
keyword.
*/
package parser

import (
	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/token"
)

// parseStatement dispatches on the leading keyword identifier (spec §4.2
// point 2). Falling through: a bare "Identifier =" pair is an Assign;
// anything else is an expression statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.cur().Kind == token.Identifier {
		switch p.cur().Text {
		case "import":
			return p.parseImport()
		case "var":
			return p.parseVarDeclStatement()
		case "func":
			return p.parseFuncDecl()
		case "return":
			return p.parseReturn()
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "for":
			return p.parseFor()
		case "break":
			p.advance()
			p.consumeOptionalNewline()
			return &ast.Break{}, nil
		case "continue":
			p.advance()
			p.consumeOptionalNewline()
			return &ast.Continue{}, nil
		}
		if p.peekAt(1).Kind == token.Symbol && p.peekAt(1).Text == "=" {
			return p.parseAssign()
		}
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	return &ast.ExprStmt{Expr: expr}, nil
}

// parseSimpleStatement parses the non-terminal-consuming statement forms
// allowed as a `for` loop's init/update clause (spec §4.2 "init and update
// may be a var-declaration (without trailing newline), an assignment, or
// an expression statement").
func (p *Parser) parseSimpleStatement() (ast.Statement, error) {
	if p.atKeyword("var") {
		return p.parseVarDeclBody()
	}
	if p.cur().Kind == token.Identifier && p.peekAt(1).Kind == token.Symbol && p.peekAt(1).Text == "=" {
		name := p.advance().Text
		p.advance() // "="
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name, Value: value}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// parseVarDeclBody parses `var [name] = expr` without consuming a trailing
// newline, shared by the top-level statement form and the `for`-clause
// form.
func (p *Parser) parseVarDeclBody() (*ast.VarDecl, error) {
	p.advance() // "var"
	if err := p.expectSymbol0(token.LBracket); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol0(token.RBracket); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: nameTok.Text, Value: value}, nil
}

func (p *Parser) parseVarDeclStatement() (ast.Statement, error) {
	decl, err := p.parseVarDeclBody()
	if err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	return decl, nil
}

func (p *Parser) parseAssign() (ast.Statement, error) {
	name := p.advance().Text
	p.advance() // "="
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	return &ast.Assign{Name: name, Value: value}, nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	p.advance() // "import"
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	return &ast.Import{ModuleName: nameTok.Text}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	p.advance() // "return"
	if p.at(token.Newline) || p.at(token.Dedent) || p.at(token.EOF) {
		p.consumeOptionalNewline()
		return &ast.Return{}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	return &ast.Return{Value: value}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	p.advance() // "if"
	if err := p.expectSymbol0(token.LBracket); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol0(token.RBracket); err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	consequent, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Test: test, Consequent: consequent}
	if p.atKeyword("else") {
		p.advance()
		p.consumeOptionalNewline()
		alt, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Alternate = alt
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.advance() // "while"
	if err := p.expectSymbol0(token.LBracket); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol0(token.RBracket); err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Test: test, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	p.advance() // "for"
	if err := p.expectSymbol0(token.LBracket); err != nil {
		return nil, err
	}
	initStmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(","); err != nil {
		return nil, err
	}
	updateStmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol0(token.RBracket); err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: initStmt, Test: test, Update: updateStmt, Body: body}, nil
}

// parseFuncDecl parses `func [name(param, …)]` (spec §4.2), where each
// parameter is a bare identifier or a `var[name]` box (both forms
// accepted).
func (p *Parser) parseFuncDecl() (ast.Statement, error) {
	p.advance() // "func"
	if err := p.expectSymbol0(token.LBracket); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol("("); err != nil {
		return nil, err
	}
	var params []string
	for !p.atSymbol(")") {
		name, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if p.atSymbol(",") {
			p.advance()
			continue
		}
		break
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}
	if err := p.expectSymbol0(token.RBracket); err != nil {
		return nil, err
	}
	p.consumeOptionalNewline()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: nameTok.Text, Params: params, Body: body}, nil
}

// parseParam accepts a plain identifier or a `var[name]` box (spec §4.2
// "The parameter list syntax may be plain identifiers, or var[name] boxes
// — both forms must be accepted").
func (p *Parser) parseParam() (string, error) {
	if p.atKeyword("var") && p.peekAt(1).Kind == token.LBracket {
		p.advance() // "var"
		p.advance() // "["
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return "", err
		}
		if err := p.expectSymbol0(token.RBracket); err != nil {
			return "", err
		}
		return nameTok.Text, nil
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return "", err
	}
	return nameTok.Text, nil
}

// expectSymbol0 expects a bracket-kind token (LBracket/RBracket have their
// own token.Kind, not a Symbol).
func (p *Parser) expectSymbol0(kind token.Kind) error {
	_, err := p.expect(kind)
	return err
}
