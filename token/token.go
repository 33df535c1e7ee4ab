// Package token defines the lexical token model shared by the lexer and
// parser. A Token is a tagged variant: its Kind selects which of its fields
// are meaningful, mirroring the Squared value model's own tagging scheme.
package token

import "fmt"

// Kind identifies the syntactic category of a Token. It is defined as a
// string so that token dumps (used in tests and error messages) are
// self-describing without a lookup table.
type Kind string

const (
	// Identifier is a bare name: a variable, function, or type-constructor
	// keyword. Raw spelling is preserved in Token.Text.
	Identifier Kind = "Identifier"
	// Number is an integer or decimal literal. Raw spelling is preserved in
	// Token.Text so constructor bodies can re-concatenate it verbatim.
	Number Kind = "Number"
	// Symbol covers every operator and punctuation mark except brackets:
	// "= , . + - * / ( ) { } < > ! == != <= >=".
	Symbol Kind = "Symbol"
	// LBracket is '['. Brackets are their own kind (not a Symbol) because
	// the parser treats them specially when harvesting type-constructor
	// bodies (spec §4.2 step 5).
	LBracket Kind = "LBracket"
	// RBracket is ']'.
	RBracket Kind = "RBracket"
	// Newline marks the end of a logical line.
	Newline Kind = "Newline"
	// Indent marks an increase in leading whitespace width. Width holds the
	// size of the increase, not the new absolute indentation.
	Indent Kind = "Indent"
	// Dedent marks a decrease in leading whitespace width back toward (or
	// past) an earlier level.
	Dedent Kind = "Dedent"
	// EOF marks the end of the token stream.
	EOF Kind = "EOF"
)

// Token is a single lexical token. Text carries the raw spelling for
// Identifier and Number tokens (and the operator spelling for Symbol);
// Width is meaningful only for Indent.
type Token struct {
	Kind   Kind
	Text   string
	Width  int
	Line   int
	Column int
}

// New builds a Token without position metadata, for use where position is
// not observable (e.g. synthesized tokens inside the parser's own fallback
// paths).
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewAt builds a Token with full source position metadata. The lexer uses
// this constructor for every token it emits.
func NewAt(kind Kind, text string, line, column int) Token {
	return Token{Kind: kind, Text: text, Line: line, Column: column}
}

// String renders the token for debugging and error messages, e.g.
// "Number(42) @1:5".
func (t Token) String() string {
	if t.Kind == Indent {
		return fmt.Sprintf("Indent(%d) @%d:%d", t.Width, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) @%d:%d", t.Kind, t.Text, t.Line, t.Column)
}

// typeCtorKeywords is the set of identifiers that open a type-constructor
// bracket body (spec §4.2 step 5) rather than an ordinary index expression.
var typeCtorKeywords = map[string]bool{
	"int": true, "str": true, "bool": true, "fstr": true, "fint": true,
	"var": true, "obj": true, "o": true, "a": true, "f": true, "fobj": true,
}

// IsTypeCtorKeyword reports whether name is one of the reserved
// type-constructor kinds recognized before a '[' (spec §4.2 step 5).
func IsTypeCtorKeyword(name string) bool {
	return typeCtorKeywords[name]
}

// statementKeywords is the set of identifiers that start a statement form
// (spec §4.2 step 2) rather than an expression.
var statementKeywords = map[string]bool{
	"import": true, "var": true, "func": true, "return": true,
	"if": true, "while": true, "for": true, "break": true, "continue": true,
}

// IsStatementKeyword reports whether name begins a statement form.
func IsStatementKeyword(name string) bool {
	return statementKeywords[name]
}
