package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squared-lang/squared/host"
	"github.com/squared-lang/squared/parser"
)

// run parses and evaluates src, returning the lines written through
// print() (one per Output call).
func run(t *testing.T, src string) []string {
	t.Helper()
	prog, err := parser.ParseSource(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	h := host.New()
	h.SetWriter(&buf)
	ev := New(h)

	_, err = ev.Run(prog)
	require.NoError(t, err)

	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Scenario 1: assignment and print.
func TestScenario_AssignmentAndPrint(t *testing.T) {
	lines := run(t, "var [x] = int[10]\nprint(x)\n")
	assert.Equal(t, []string{"10"}, lines)
}

// Scenario 2: conditional.
func TestScenario_Conditional(t *testing.T) {
	src := "var [x] = int[3]\nif [x > int[1]]\n    print(str[big])\nelse\n    print(str[small])\n"
	lines := run(t, src)
	assert.Equal(t, []string{"big"}, lines)
}

// Scenario 3: while loop with break-free natural termination.
func TestScenario_WhileLoop(t *testing.T) {
	src := "var [i] = int[0]\nwhile [i < int[3]]\n    print(i)\n    i = i + int[1]\n"
	lines := run(t, src)
	assert.Equal(t, []string{"0", "1", "2"}, lines)
}

// Scenario 4: function with closure over global.
func TestScenario_FunctionClosureOverGlobal(t *testing.T) {
	src := "var [g] = int[10]\nfunc [add(var[a])]\n    return a + g\nprint(add(int[5]))\n"
	lines := run(t, src)
	assert.Equal(t, []string{"15"}, lines)
}

// Scenario 5: array and template interpolation.
func TestScenario_ArrayAndTemplateInterpolation(t *testing.T) {
	src := "var [xs] = a[int[1], int[2], int[3]]\nprint(fstr[sum is {xs.e0 + xs.e2}])\n"
	lines := run(t, src)
	assert.Equal(t, []string{"sum is 4"}, lines)
}

// Scenario 6: object construction and member call.
func TestScenario_ObjectConstructionAndMemberCall(t *testing.T) {
	src := "var [o] = obj[prop[name] = str[bot], prop[greet] = f[fstr[hi {str[there]}]]]\nprint(o.name)\n"
	lines := run(t, src)
	assert.Equal(t, []string{"bot"}, lines)
}

// Testable property: lexical scoping — assignment inside a function body
// never mutates the global unless the function does not declare a local.
func TestProperty_LexicalScopingDoesNotLeakAssignmentToGlobal(t *testing.T) {
	src := strings.Join([]string{
		"var [x] = int[1]",
		"func [mutate()]",
		"    var [x] = int[99]",
		"    x = int[100]",
		"print(x)",
		"print(mutate())",
		"print(x)",
	}, "\n") + "\n"
	lines := run(t, src)
	assert.Equal(t, []string{"1", "undefined", "1"}, lines)
}

// Testable property: return termination — a return inside a loop inside a
// function returns from the function, not merely the loop.
func TestProperty_ReturnTerminatesFunctionThroughNestedLoop(t *testing.T) {
	src := strings.Join([]string{
		"func [firstEven(var[xs])]",
		"    var [i] = int[0]",
		"    while [i < int[3]]",
		"        if [i == int[1]]",
		"            return i",
		"        i = i + int[1]",
		"    return int[-1]",
		"print(firstEven(int[0]))",
	}, "\n") + "\n"
	lines := run(t, src)
	assert.Equal(t, []string{"1"}, lines)
}

// Testable property: break/continue affect only the nearest loop.
func TestProperty_BreakAffectsOnlyNearestLoop(t *testing.T) {
	src := strings.Join([]string{
		"var [i] = int[0]",
		"while [i < int[2]]",
		"    var [j] = int[0]",
		"    while [j < int[5]]",
		"        if [j == int[1]]",
		"            break",
		"        print(j)",
		"        j = j + int[1]",
		"    print(str[outer])",
		"    i = i + int[1]",
	}, "\n") + "\n"
	lines := run(t, src)
	assert.Equal(t, []string{"0", "outer", "0", "outer"}, lines)
}

// Testable property: constructor idempotence.
func TestProperty_ConstructorIdempotence(t *testing.T) {
	lines := run(t, "print(int[42])\nprint(fint[{42}])\nprint(str[hello])\nprint(fstr[hello])\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, lines[2], lines[3])
}

func TestImport_BindsModuleAndTopLevelMembers(t *testing.T) {
	src := "import math\nprint(math.sqrt(int[9]))\nprint(sqrt(int[16]))\n"
	lines := run(t, src)
	assert.Equal(t, []string{"3", "4"}, lines)
}

func TestForLoop_InitVariableOutlivesLoop(t *testing.T) {
	src := "for [var [i] = int[0], i < int[3], i = i + int[1]]\n    print(i)\nprint(i)\n"
	lines := run(t, src)
	assert.Equal(t, []string{"0", "1", "2", "3"}, lines)
}
