package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitive_Format(t *testing.T) {
	tests := []struct {
		name string
		val  *Primitive
		want string
	}{
		{"int", Int(42), "42"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"str", Str("hello"), "hello"},
		{"undefined", Undefined(), "undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.val.Format())
		})
	}
}

func TestPrimitive_Truthy(t *testing.T) {
	assert.True(t, Int(1).Truthy())
	assert.False(t, Int(0).Truthy())
	assert.True(t, Bool(true).Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.False(t, Undefined().Truthy())
	assert.True(t, Str("").Truthy())
}

func TestArray_Format(t *testing.T) {
	arr := NewArray([]Value{Int(1), Int(2), Str("x")})
	assert.Equal(t, "[1, 2, x]", arr.Format())
}

func TestObject_InsertionOrderPreserved(t *testing.T) {
	obj := NewObject()
	obj.Set("name", Str("bot"))
	obj.Set("age", Int(3))
	obj.Set("name", Str("bot2")) // update, must not reorder

	assert.Equal(t, []string{"name", "age"}, obj.Keys())
	assert.Equal(t, "{ name: bot2, age: 3 }", obj.Format())

	v, ok := obj.Get("age")
	assert.True(t, ok)
	assert.Equal(t, "3", v.Format())

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestControl_Format(t *testing.T) {
	assert.Equal(t, "<break>", (&Control{Kind: ControlBreak}).Format())
	assert.Equal(t, "<continue>", (&Control{Kind: ControlContinue}).Format())
	assert.Equal(t, "5", (&Control{Kind: ControlReturn, Value: Int(5)}).Format())
}

func TestEvalCell_Format(t *testing.T) {
	cell := &EvalCell{Result: Str("hi")}
	assert.Equal(t, "hi", cell.Format())
}
