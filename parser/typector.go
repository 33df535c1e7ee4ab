/*
File   : squared/parser/typector.go

Balanced type-constructor body harvesting (spec §4.2 point 5, §4.3, §9
"Deferred sub-parse inside constructors"). The parser does not interpret
the body here — it only collects the verbatim token slice between the
matching brackets, preserving any nested `[ … ]` pairs, so the evaluator
can re-derive semantics lazily from Kind.
*/
package parser

import (
	"strconv"

	"github.com/squared-lang/squared/token"
)

// collectBracketBody consumes the current LBracket, then every token up to
// and including its matching RBracket, returning the enclosed tokens
// (brackets excluded) with nested bracket pairs preserved verbatim.
func (p *Parser) collectBracketBody() ([]token.Token, error) {
	if _, err := p.expect(token.LBracket); err != nil {
		return nil, err
	}
	var body []token.Token
	depth := 1
	for {
		if p.at(token.EOF) {
			return nil, p.errorf("unterminated type-constructor body")
		}
		if p.at(token.LBracket) {
			depth++
			body = append(body, p.advance())
			continue
		}
		if p.at(token.RBracket) {
			depth--
			if depth == 0 {
				p.advance()
				return body, nil
			}
			body = append(body, p.advance())
			continue
		}
		body = append(body, p.advance())
	}
}

// parseNumberText parses a Number token's raw text (spec §4.1 "[0-9]+(\.[0-9]+)?").
func parseNumberText(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
