/*
File   : squared/parser/parser.go

Package parser implements a recursive-descent parser for Squared (^2)
(spec §4.2). It converts a token.Token stream from the lexer into an
ast.Program. Unlike the teacher interpreter's Pratt parser
(parser.Parser/UnaryFuncs/BinaryFuncs), Squared's precedence ladder is flat
enough (comparison, then a combined additive/multiplicative level, spec
§4.2 point 4 and §9 "Operator precedence") that a small hand-written
descent is clearer than a full operator-precedence table — but the overall
shape (CurrToken/NextToken lookahead, stopping at the first fatal error,
which is returned as an error value, one file per grammar area) is carried from
parser/parser.go and its parser_statements.go/parser_expressions.go split.
*/
package parser

import (
	"github.com/squared-lang/squared/ast"
	"github.com/squared-lang/squared/errs"
	"github.com/squared-lang/squared/lexer"
	"github.com/squared-lang/squared/token"
)

// Parser holds parsing state: the full pre-lexed token stream plus a
// cursor. Pre-lexing (rather than pulling tokens lazily from the lexer)
// keeps type-constructor body harvesting (spec §4.2 step 5) a simple slice
// operation.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource lexes src and parses it into a Program in one step; this is
// the entry point the REPL and the CLI use. The evaluator's deferred
// sub-parse goes through ParseExpressionTokens instead.
func ParseSource(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(toks).ParseProgram()
}

// ParseExpressionTokens parses a single expression from a standalone token
// slice. This is the deferred sub-parse spec §4.3 describes for `f`/`fobj`
// constructor bodies: the body has no trailing EOF of its own, so parsing
// stops at the first token that cannot extend the expression rather than
// requiring the slice to be exhausted.
func ParseExpressionTokens(toks []token.Token) (ast.Expression, error) {
	p := New(append(append([]token.Token{}, toks...), token.New(token.EOF, "")))
	return p.parseExpression()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(off int) token.Token {
	idx := p.pos + off
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) atSymbol(text string) bool {
	t := p.cur()
	return t.Kind == token.Symbol && t.Text == text
}

func (p *Parser) atKeyword(name string) bool {
	t := p.cur()
	return t.Kind == token.Identifier && t.Text == name
}

// expect consumes the current token if it matches kind, otherwise raises a
// fatal SyntaxError naming the token position (spec §4.2 "Failure").
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.errorf("expected %s, got %s", kind, p.cur())
	}
	return p.advance(), nil
}

func (p *Parser) expectSymbol(text string) error {
	if !p.atSymbol(text) {
		return p.errorf("expected %q, got %s", text, p.cur())
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	t := p.cur()
	return errs.At(errs.SyntaxError, errs.Position{Line: t.Line, Column: t.Column}, format, args...)
}

// skipNewlinesAndDedents consumes stray Newline/Dedent tokens, used at
// program top level (spec §4.2 "parseProgram — ... skipping stray newlines
// and dedents at top level"). Blocks use skipBlankLines instead, so their
// closing Dedent is left for parseBlock.
func (p *Parser) skipNewlinesAndDedents() {
	for p.at(token.Newline) || p.at(token.Dedent) {
		p.advance()
	}
}

// ParseProgram parses the entire token stream into a Program (spec §4.2
// point 1).
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipNewlinesAndDedents()
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
		p.skipNewlinesAndDedents()
	}
	return prog, nil
}

// parseBlock consumes one Indent, then statements until a matching Dedent,
// which it also consumes (spec §4.2 point 3).
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.Indent); err != nil {
		return nil, err
	}
	var body []ast.Statement
	p.skipBlankLines()
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.skipBlankLines()
	}
	if _, err := p.expect(token.Dedent); err != nil {
		return nil, err
	}
	return body, nil
}

// skipBlankLines consumes Newline tokens between statements inside a block,
// without consuming the Dedent that ends the block.
func (p *Parser) skipBlankLines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// consumeOptionalNewline eats a single trailing Newline if present; several
// statement forms make their trailing newline optional (spec §4.2 "return
// expr?, break, continue — trailing newline optional").
func (p *Parser) consumeOptionalNewline() {
	if p.at(token.Newline) {
		p.advance()
	}
}
