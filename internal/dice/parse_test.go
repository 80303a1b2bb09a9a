package dice

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Count(t *testing.T) {
	for n := 1; n <= 99; n++ {
		set, err := Parse(fmt.Sprintf("%dD6", n))
		require.NoError(t, err, "count %d", n)
		require.Len(t, set, n)
		for _, d := range set {
			assert.Equal(t, Regular(6), d)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Set
	}{
		{
			name:     "implicit count",
			input:    "D6",
			expected: Set{Regular(6)},
		},
		{
			name:     "explicit single count",
			input:    "1D6",
			expected: Set{Regular(6)},
		},
		{
			name:     "bonuses cancel out",
			input:    "D6 +1 +2 -3",
			expected: Set{Regular(6)},
		},
		{
			name:     "set with bonus",
			input:    "3D6 +1",
			expected: Set{Regular(6), Regular(6), Regular(6), Bonus(1)},
		},
		{
			name:     "percentile",
			input:    "D100",
			expected: Set{Regular(100)},
		},
		{
			name:     "lower case without spaces",
			input:    "2d8-1",
			expected: Set{Regular(8), Regular(8), Bonus(-1)},
		},
		{
			name:     "bonuses are summed",
			input:    "D20 +2 +3",
			expected: Set{Regular(20), Bonus(5)},
		},
		{
			name:     "surrounding whitespace",
			input:    "  2D4 +1  ",
			expected: Set{Regular(4), Regular(4), Bonus(1)},
		},
		{
			name:     "extreme bonus bounds",
			input:    "D6 +127 -127",
			expected: Set{Regular(6)},
		},
		{
			name:     "largest count",
			input:    "255D2",
			expected: func() Set {
				s := make(Set, 0, 255)
				for i := 0; i < 255; i++ {
					s = s.Add(Regular(2))
				}
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set)
		})
	}
}

func TestParse_ZeroCountYieldsEmptySet(t *testing.T) {
	set, err := Parse("0D6")
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = Parse("0D6 +2")
	require.NoError(t, err)
	assert.Equal(t, Set{Bonus(2)}, set)
}

func TestParse_Errors(t *testing.T) {
	inputs := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing D", "6"},
		{"missing size", "3D"},
		{"zero size", "D0"},
		{"letters in count", "xD6"},
		{"trailing garbage", "2D6 foo"},
		{"two dice", "D6D6"},
		{"detached sign", "D6 + 1"},
		{"bonus only", "+1"},
		{"count overflow", "256D6"},
		{"bonus overflow", "D6 +128"},
		{"malus overflow", "D6 -128"},
		{"size overflow", "D99999999999"},
		{"double sign", "D6 --1"},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.Nil(t, set)
		})
	}
}

func TestParseOpen(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Set
	}{
		{"implicit count", "D6", Set{Open(6)}},
		{"explicit single count", "1D10", Set{Open(10)}},
		{"with bonus", "D6 +2", Set{Open(6), Bonus(2)}},
		{"cancelled bonus", "d6 +2 -2", Set{Open(6)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseOpen(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set)
		})
	}
}

func TestParseOpen_KeepsBonus(t *testing.T) {
	set, err := ParseOpen(" D6 +2")
	require.NoError(t, err)
	assert.Equal(t, Set{Open(6), Bonus(2)}, set)

	set, err = ParseOpen(" D10 -1 -2")
	require.NoError(t, err)
	assert.Equal(t, Set{Open(10), Bonus(-3)}, set)
}

func TestParseOpen_RejectsCount(t *testing.T) {
	for _, input := range []string{"3D6", "0D6", "2D6 +1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOpen(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestSet_String(t *testing.T) {
	set, err := Parse("3D6 +1")
	require.NoError(t, err)
	assert.Equal(t, "D6 D6 D6 +1", set.String())
	assert.Equal(t, "O6 -2", Set{Open(6), Bonus(-2)}.String())
	assert.Equal(t, "C4", Constant(4).String())
}
