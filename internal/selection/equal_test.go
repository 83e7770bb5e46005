package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	str := "x"
	other := "x"
	var nilPtr *string

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs empty string", nil, "", false},
		{"same strings", "r", "r", true},
		{"different strings", "r", "b", false},
		{"int vs int64", 1, int64(1), true},
		{"int vs float", 2, 2.0, true},
		{"int vs float fraction", 2, 2.5, false},
		{"negative vs unsigned", -1, uint(1), false},
		{"uint vs int", uint8(7), 7, true},
		{"string vs number", "1", 1, false},
		{"bools", true, true, true},
		{"nil slice vs empty slice", []any(nil), []any{}, true},
		{"slices same", []any{1, "a"}, []int{1, 2}, false},
		{"slices mixed numeric", []any{1, 2}, []int{1, 2}, true},
		{"array vs slice", [2]int{1, 2}, []int{1, 2}, true},
		{"maps same keys", map[string]any{"id": 1}, map[string]int{"id": 1}, true},
		{"maps different values", map[string]any{"id": 1}, map[string]any{"id": 2}, false},
		{"maps different sizes", map[string]any{"id": 1}, map[string]any{"id": 1, "x": 2}, false},
		{"maps different key types", map[any]any{"id": 1}, map[string]any{"id": 1}, true},
		{"nested maps", map[string]any{"a": []any{map[string]any{"b": 1}}}, map[string]any{"a": []any{map[string]any{"b": 1.0}}}, true},
		{"pointers followed", &str, &other, true},
		{"nil funcs", (func())(nil), (func())(nil), true},
		{"non-nil funcs", func() {}, func() {}, false},
		{"nil func vs non-nil", (func())(nil), func() {}, false},
		{"pointer vs value", &str, "x", true},
		{"nil pointer vs nil", nilPtr, nil, true},
		{"items equal", Item{Label: "Red", Value: "r"}, Item{Label: "Red", Value: "r"}, true},
		{"items differ by color", Item{Label: "Red", Value: "r"}, Item{Label: "Red", Value: "r", Color: "red"}, false},
		{"item vs placeholder", Item{Label: "Red"}, Placeholder{Label: "Red"}, false},
		{"funcs never equal", func() {}, func() {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestIsComposite(t *testing.T) {
	assert.False(t, isComposite(nil))
	assert.False(t, isComposite("a"))
	assert.False(t, isComposite(3))
	assert.False(t, isComposite(true))
	assert.True(t, isComposite(map[string]any{}))
	assert.True(t, isComposite([]int{1}))
	assert.True(t, isComposite(struct{ ID int }{1}))
	assert.True(t, isComposite(&Item{}))
}

func TestPresent(t *testing.T) {
	assert.False(t, present(nil))
	assert.False(t, present(""))
	assert.False(t, present(0))
	assert.False(t, present(0.0))
	assert.False(t, present(math.NaN()))
	assert.False(t, present(false))
	assert.True(t, present("k"))
	assert.True(t, present(7))
	assert.True(t, present(uint(1)))
	assert.True(t, present(-1))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"b", "b"},
		{true, "true"},
		{42, "42"},
		{int64(-3), "-3"},
		{uint16(9), "9"},
		{2.0, "2"},
		{1.5, "1.5"},
		{1e21, "1e+21"},
		{math.Inf(1), "Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stringify(tt.in), "stringify(%v)", tt.in)
	}
}
