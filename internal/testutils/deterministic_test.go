package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(0, 5, 7)
	assert.Equal(t, 0, src.IntN(6))
	assert.Equal(t, 5, src.IntN(6))
	assert.Equal(t, 1, src.IntN(6))
	assert.Equal(t, 0, src.IntN(6), "script wraps around")
	assert.Equal(t, 4, src.Consumed())
	assert.Equal(t, []int{6, 6, 6, 6}, src.Calls())
}

func TestFaces(t *testing.T) {
	src := Faces(1, 6)
	assert.Equal(t, 0, src.IntN(6))
	assert.Equal(t, 5, src.IntN(6))
}

func TestGenerateSessionID(t *testing.T) {
	ResetTestCounters()
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", GenerateSessionID(true))
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", GenerateSessionID(true))

	id := GenerateSessionID(false)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestNewTestRegistry(t *testing.T) {
	r := NewTestRegistry()
	assert.True(t, r.Contains("doom"))
	assert.True(t, r.Contains("roll"))
	assert.Len(t, r.Names(), 8)
}
