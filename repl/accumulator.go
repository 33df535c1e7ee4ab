package repl

import "strings"

// accumulator buffers REPL input lines until they form one complete logical
// unit in Squared's indentation-structured grammar (spec.md §4.1): a single
// flat statement, or a block header (if/while/for/func/else) plus its
// indented body, plus any chained else. It works on raw line text rather
// than tokens because the real lexer's Indent/Dedent synthesis needs a
// terminating dedent to close a block — exactly what the REPL doesn't have
// until the user types the next line.
type accumulator struct {
	lines       []string
	indentStack []int // body indent width per currently open block; -1 means "not yet observed"
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

func (a *accumulator) pending() bool {
	return len(a.indentStack) > 0
}

func (a *accumulator) drain() string {
	src := strings.Join(a.lines, "\n") + "\n"
	a.lines = nil
	a.indentStack = nil
	return src
}

var blockHeaderPrefixes = []string{"if ", "if[", "while ", "while[", "for ", "for[", "func ", "func[", "else"}

func opensBlock(trimmed string) bool {
	if trimmed == "else" || strings.HasPrefix(trimmed, "else ") || strings.HasPrefix(trimmed, "else[") {
		return true
	}
	for _, p := range blockHeaderPrefixes[:len(blockHeaderPrefixes)-1] {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func leadingWidth(line string) int {
	width := 0
	for _, c := range line {
		switch c {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width
		}
	}
	return width
}

// addLine feeds one more raw line into the buffer and updates the open-block
// bookkeeping. Call pending() afterward to decide whether to keep reading.
func (a *accumulator) addLine(line string) {
	a.lines = append(a.lines, line)

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if len(a.indentStack) > 0 && a.indentStack[len(a.indentStack)-1] == -1 {
		a.indentStack[len(a.indentStack)-1] = leadingWidth(line)
	} else if len(a.indentStack) > 0 {
		width := leadingWidth(line)
		for len(a.indentStack) > 0 && width < a.indentStack[len(a.indentStack)-1] {
			a.indentStack = a.indentStack[:len(a.indentStack)-1]
		}
	}

	if opensBlock(trimmed) {
		a.indentStack = append(a.indentStack, -1)
	}
}
