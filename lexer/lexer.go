/*
File   : squared/lexer/lexer.go

Package lexer performs lexical analysis of Squared (^2) source code. It
scans UTF-8 text byte by byte, producing a flat token stream in which
indentation changes are synthesized as explicit Indent/Dedent tokens rather
than left implicit — the parser never looks at raw whitespace.

The lexer maintains its current byte position plus line/column counters for
error reporting, the same bookkeeping style the wider Squared core uses for
every position-aware diagnostic (see errs.Position).
*/
package lexer

import (
	"strings"

	"github.com/squared-lang/squared/errs"
	"github.com/squared-lang/squared/token"
)

const indentWidth = 4

// Options configures lexer behavior for cases the spec leaves open (spec
// §9 Open Questions). The zero value is the spec's default: tolerant of
// unknown bytes.
type Options struct {
	// Strict makes an unrecognized byte a fatal LexError instead of being
	// silently skipped.
	Strict bool
}

// Lexer converts source text into a token.Token stream. Whitespace within a
// line is never emitted as a token; only leading indentation produces
// Indent/Dedent (spec §4.1).
type Lexer struct {
	src     string
	pos     int
	line    int
	column  int
	opts    Options
	current int  // current indentation width
	pending int  // Dedents still owed before ordinary tokenizing resumes
	atLine  bool // true when the next byte starts a new logical line

	// afterImport is true when the token just returned was the "import"
	// keyword, so the identifier lexed next is a module name and should
	// fuse dotted segments (spec §4.1 "when tokenizing import module
	// names"). It is false for every other identifier, so ordinary
	// member-access dots (o.name, xs.e0, math.sqrt) lex as separate
	// Identifier/Symbol("." )/Identifier tokens for the parser to combine
	// into ast.Member nodes.
	afterImport bool
}

// New creates a Lexer over src with default (tolerant) options.
func New(src string) *Lexer {
	return NewWithOptions(src, Options{})
}

// NewWithOptions creates a Lexer over src with explicit Options.
func NewWithOptions(src string, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		line:   1,
		column: 1,
		opts:   opts,
		atLine: true,
	}
}

// Tokenize runs the lexer to completion and returns the full token stream,
// terminated by enough Dedent tokens to close any open indentation followed
// by a single EOF token (spec §4.1 "At end of input...").
func Tokenize(src string) ([]token.Token, error) {
	return NewWithOptions(src, Options{}).All()
}

// All drains the lexer into a slice, the form the parser consumes.
func (l *Lexer) All() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

// Next returns the next token in the stream. Callers normally use All or
// Tokenize; Next is exposed for tests and for hosts (e.g. a syntax
// highlighter) that want incremental access without depending on the
// parser.
func (l *Lexer) Next() (token.Token, error) {
	fuseDots := l.afterImport
	l.afterImport = false

	if l.pending > 0 {
		l.pending--
		return token.NewAt(token.Dedent, "", l.line, l.column), nil
	}

	if l.atLine && !l.eof() {
		if indentTok, ok, err := l.measureIndent(); err != nil {
			return token.Token{}, err
		} else if ok {
			return indentTok, nil
		}
	}

	l.skipInlineWhitespaceAndComments()

	line, col := l.line, l.column

	if l.eof() {
		if l.current > 0 {
			// End of input: emit enough Dedents to return to zero (spec
			// §4.1). The first one is returned now; the rest queue in
			// l.pending and drain on subsequent calls.
			count := l.current / indentWidth
			if l.current%indentWidth != 0 {
				count++
			}
			l.current = 0
			l.pending = count - 1
			return token.NewAt(token.Dedent, "", line, col), nil
		}
		return token.NewAt(token.EOF, "", line, col), nil
	}

	c := l.peek()

	if c == '\n' {
		l.advance()
		l.atLine = true
		return token.NewAt(token.Newline, "\n", line, col), nil
	}

	if isIdentStart(c) {
		tok := l.lexIdentifier(line, col, fuseDots)
		if tok.Text == "import" {
			l.afterImport = true
		}
		return tok, nil
	}
	if isDigit(c) {
		return l.lexNumber(line, col), nil
	}

	if sym, ok := l.lexSymbol(); ok {
		return token.NewAt(sym.kind, sym.text, line, col), nil
	}

	l.advance()
	if l.opts.Strict {
		return token.Token{}, errs.At(errs.LexError, errs.Position{Line: line, Column: col},
			"unrecognized byte %q", c)
	}
	return l.Next()
}

// measureIndent runs once per logical line (when atLine is true) and emits
// at most one Indent or Dedent token before ordinary tokenizing resumes;
// blank and comment-only lines are skipped entirely without altering
// indentation state (spec §4.1).
func (l *Lexer) measureIndent() (token.Token, bool, error) {
	width := 0
	for !l.eof() {
		switch l.peek() {
		case ' ':
			width++
			l.advance()
			continue
		case '\t':
			width += indentWidth
			l.advance()
			continue
		}
		break
	}

	if l.eof() || l.peek() == '\n' || l.peek() == '#' {
		// Blank or comment-only line: the whitespace consumed above is
		// discarded without affecting indentation state (spec §4.1).
		l.atLine = false
		return token.Token{}, false, nil
	}

	l.atLine = false
	line, col := l.line, l.column

	switch {
	case width > l.current:
		indent := token.NewAt(token.Indent, "", line, col)
		indent.Width = width - l.current
		l.current = width
		return indent, true, nil
	case width < l.current:
		// Emit one Dedent now, decrementing by 4 each time until current
		// <= w (spec §4.1); queue any remaining Dedents in l.pending. A
		// dedent that overshoots below zero clamps to zero.
		count := 0
		c := l.current
		for c > width {
			c -= indentWidth
			count++
		}
		if c < 0 {
			c = 0
		}
		l.current = width
		l.pending = count - 1
		return token.NewAt(token.Dedent, "", line, col), true, nil
	default:
		return token.Token{}, false, nil
	}
}

func (l *Lexer) skipInlineWhitespaceAndComments() {
	for !l.eof() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '#':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lexIdentifier scans a plain identifier. fuseDots is true only when this
// identifier immediately follows the "import" keyword (spec §4.1 "when
// tokenizing import module names"): in that position only, dotted segments
// ("foo.js") fuse into one Identifier token so the parser sees a single
// module name. Everywhere else — o.name, xs.e0, math.sqrt — the '.' is left
// as its own Symbol token so parser/expressions.go's postfix loop can build
// an ast.Member node from it.
func (l *Lexer) lexIdentifier(line, col int, fuseDots bool) token.Token {
	var b strings.Builder
	for !l.eof() && isIdentCont(l.peek()) {
		b.WriteByte(l.advance())
	}
	if fuseDots {
		for !l.eof() && l.peek() == '.' && isIdentStart(l.peekAt(1)) {
			l.advance() // consume '.'
			b.WriteByte('.')
			for !l.eof() && isIdentCont(l.peek()) {
				b.WriteByte(l.advance())
			}
		}
	}
	return token.NewAt(token.Identifier, b.String(), line, col)
}

func (l *Lexer) lexNumber(line, col int) token.Token {
	var b strings.Builder
	for !l.eof() && isDigit(l.peek()) {
		b.WriteByte(l.advance())
	}
	if !l.eof() && l.peek() == '.' && isDigit(l.peekAt(1)) {
		b.WriteByte(l.advance())
		for !l.eof() && isDigit(l.peek()) {
			b.WriteByte(l.advance())
		}
	}
	return token.NewAt(token.Number, b.String(), line, col)
}

type symbolMatch struct {
	kind token.Kind
	text string
}

// twoCharOps lists the multi-char symbols recognized before falling back to
// single-char matching (spec §4.1 "Multi-char symbols").
var twoCharOps = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true,
}

func (l *Lexer) lexSymbol() (symbolMatch, bool) {
	c := l.peek()
	two := string(c) + string(l.peekAt(1))
	if twoCharOps[two] {
		l.advance()
		l.advance()
		return symbolMatch{token.Symbol, two}, true
	}
	switch c {
	case '[':
		l.advance()
		return symbolMatch{token.LBracket, "["}, true
	case ']':
		l.advance()
		return symbolMatch{token.RBracket, "]"}, true
	case '=', ',', '.', '+', '-', '*', '/', '(', ')', '{', '}', '<', '>', '!':
		l.advance()
		return symbolMatch{token.Symbol, string(c)}, true
	}
	return symbolMatch{}, false
}
