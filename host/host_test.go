package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squared-lang/squared/objects"
)

func TestHost_PrintJoinsArgsWithSpace(t *testing.T) {
	var buf bytes.Buffer
	h := New()
	h.SetWriter(&buf)

	h.Print([]objects.Value{objects.Str("sum is"), objects.Int(4)})

	assert.Equal(t, "sum is 4\n", buf.String())
}

func TestRegistry_StandardModulesRegistered(t *testing.T) {
	r := NewRegistry()
	r.RegisterStandardModules()

	for _, name := range []string{"math", "os", "time", "json"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "expected module %q to be registered", name)
	}
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "foo", FirstSegment("foo.js"))
	assert.Equal(t, "math", FirstSegment("math"))
}

func TestMathModule_SqrtAndPow(t *testing.T) {
	r := NewRegistry()
	r.RegisterStandardModules()
	mod, ok := r.Lookup("math")
	require.True(t, ok)

	sqrtVal, ok := mod.Get("sqrt")
	require.True(t, ok)
	sqrtFn := sqrtVal.(*objects.Function)
	result, err := sqrtFn.Body.(objects.NativeFunc)([]objects.Value{objects.Int(9)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.(*objects.Primitive).IntVal())

	powVal, _ := mod.Get("pow")
	powFn := powVal.(*objects.Function)
	result, err = powFn.Body.(objects.NativeFunc)([]objects.Value{objects.Int(2), objects.Int(10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1024), result.(*objects.Primitive).IntVal())
}

func TestJSONModule_RoundTrip(t *testing.T) {
	r := NewRegistry()
	r.RegisterStandardModules()
	mod, _ := r.Lookup("json")

	stringifyVal, _ := mod.Get("stringify")
	stringifyFn := stringifyVal.(*objects.Function).Body.(objects.NativeFunc)
	arr := objects.NewArray([]objects.Value{objects.Int(1), objects.Int(2)})
	encoded, err := stringifyFn([]objects.Value{arr})
	require.NoError(t, err)
	assert.True(t, strings.Contains(encoded.Format(), "1"))

	parseVal, _ := mod.Get("parse")
	parseFn := parseVal.(*objects.Function).Body.(objects.NativeFunc)
	decoded, err := parseFn([]objects.Value{encoded})
	require.NoError(t, err)
	decodedArr, ok := decoded.(*objects.Array)
	require.True(t, ok)
	require.Len(t, decodedArr.Elements, 2)
}
