package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dices/internal/testutils"
)

// chiSquareCritical is the 0.999 quantile of chi-square with 5 degrees of freedom.
const chiSquareCritical = 20.515

func TestSampler_Uniformity(t *testing.T) {
	const rolls = 10000
	const faces = 6

	for _, sampler := range []Sampler{SamplerDirect, SamplerCoin} {
		t.Run(sampler.String(), func(t *testing.T) {
			r := NewRoller(NewSource(42), WithSampler(sampler))

			counts := make([]int, faces+1)
			for i := 0; i < rolls; i++ {
				res, err := r.Roll(Regular(faces))
				require.NoError(t, err)
				require.Len(t, res.Rolls, 1)
				v := res.Rolls[0]
				require.GreaterOrEqual(t, v, 1)
				require.LessOrEqual(t, v, faces)
				counts[v]++
			}

			expected := float64(rolls) / faces
			var chi float64
			for face := 1; face <= faces; face++ {
				d := float64(counts[face]) - expected
				chi += d * d / expected
			}
			assert.Less(t, chi, chiSquareCritical, "counts %v", counts[1:])
		})
	}
}

func TestSampler_CoinDraws(t *testing.T) {
	// Faces 1 and 2 are passed over, face 3 is kept on the third coin.
	src := testutils.NewScriptedSource(1, 1, 0)
	v := SamplerCoin.draw(src, 6)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{6, 5, 4}, src.Calls())
}

func TestSampler_CoinFallsThroughToLastFace(t *testing.T) {
	src := testutils.NewScriptedSource(1)
	assert.Equal(t, 4, SamplerCoin.draw(src, 4))
	assert.Equal(t, []int{4, 3, 2}, src.Calls())
}

func TestSampler_SingleFace(t *testing.T) {
	src := testutils.NewScriptedSource()
	assert.Equal(t, 1, SamplerCoin.draw(src, 1))
	assert.Empty(t, src.Calls())
	assert.Equal(t, 1, SamplerDirect.draw(src, 1))
}

func TestParseSampler(t *testing.T) {
	tests := []struct {
		input    string
		expected Sampler
		wantErr  bool
	}{
		{"", SamplerDirect, false},
		{"direct", SamplerDirect, false},
		{"coin", SamplerCoin, false},
		{"dice", SamplerDirect, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseSampler(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestNewSource_Deterministic(t *testing.T) {
	a := NewRoller(NewSource(99))
	b := NewRoller(NewSource(99))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Draw(20), b.Draw(20))
	}
}
