package compare_test

import (
	"testing"

	. "github.com/pseudomuto/domainkit/pkg/compare"
	"github.com/stretchr/testify/require"
)

func TestNilCheck(t *testing.T) {
	tests := []struct {
		name             string
		a, b             *int
		expectedEqual    bool
		expectedContinue bool
	}{
		{
			name:             "both nil",
			a:                nil,
			b:                nil,
			expectedEqual:    true,
			expectedContinue: false,
		},
		{
			name:             "first nil",
			a:                nil,
			b:                intPtr(5),
			expectedEqual:    false,
			expectedContinue: false,
		},
		{
			name:             "second nil",
			a:                intPtr(5),
			b:                nil,
			expectedEqual:    false,
			expectedContinue: false,
		},
		{
			name:             "neither nil",
			a:                intPtr(5),
			b:                intPtr(5),
			expectedEqual:    false,
			expectedContinue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equal, shouldContinue := NilCheck(tt.a, tt.b)
			require.Equal(t, tt.expectedEqual, equal)
			require.Equal(t, tt.expectedContinue, shouldContinue)
		})
	}
}

func TestPointers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *int
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "first nil",
			a:        nil,
			b:        intPtr(5),
			expected: false,
		},
		{
			name:     "second nil",
			a:        intPtr(5),
			b:        nil,
			expected: false,
		},
		{
			name:     "equal values",
			a:        intPtr(5),
			b:        intPtr(5),
			expected: true,
		},
		{
			name:     "different values",
			a:        intPtr(5),
			b:        intPtr(10),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pointers(tt.a, tt.b)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestPointersFunc(t *testing.T) {
	type testStruct struct {
		value int
	}

	equalFunc := func(a, b testStruct) bool {
		return a.value == b.value
	}

	tests := []struct {
		name     string
		a, b     *testStruct
		expected bool
	}{
		{
			name:     "both nil",
			a:        nil,
			b:        nil,
			expected: true,
		},
		{
			name:     "first nil",
			a:        nil,
			b:        &testStruct{value: 5},
			expected: false,
		},
		{
			name:     "second nil",
			a:        &testStruct{value: 5},
			b:        nil,
			expected: false,
		},
		{
			name:     "equal by function",
			a:        &testStruct{value: 5},
			b:        &testStruct{value: 5},
			expected: true,
		},
		{
			name:     "not equal by function",
			a:        &testStruct{value: 5},
			b:        &testStruct{value: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointersFunc(tt.a, tt.b, equalFunc)
			require.Equal(t, tt.expected, result)
		})
	}
}

// evenParity equates ints by parity so dispatch through the Equaler method is
// observable against plain == semantics.
type evenParity struct {
	n int
}

func (e evenParity) Equal(other evenParity) bool {
	return e.n%2 == other.n%2
}

func TestValues(t *testing.T) {
	t.Run("dispatches to Equal method", func(t *testing.T) {
		require.True(t, Values(evenParity{n: 2}, evenParity{n: 4}))
		require.False(t, Values(evenParity{n: 2}, evenParity{n: 3}))
	})

	t.Run("falls back to deep equality", func(t *testing.T) {
		require.True(t, Values([]int{1, 2}, []int{1, 2}))
		require.False(t, Values([]int{1, 2}, []int{2, 1}))
		require.True(t, Values(map[string]int{"a": 1}, map[string]int{"a": 1}))
	})

	t.Run("comparable types compare by value", func(t *testing.T) {
		require.True(t, Values("ada", "ada"))
		require.False(t, Values("ada", "Ada"))
		require.True(t, Values(42, 42))
	})
}

func intPtr(i int) *int {
	return &i
}
