package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dices/internal/dice"
	"dices/internal/testutils"
	"dices/pkg/dicetypes"
)

func newDispatcher(src dice.Source, opts ...dice.Option) *Dispatcher {
	return NewDispatcher(dice.NewRoller(src, opts...), testutils.NewTestRegistry())
}

func TestDispatcher_Execute(t *testing.T) {
	tests := []struct {
		name     string
		op       dicetypes.CoreOp
		args     string
		faces    []int
		expected dice.Result
	}{
		{
			name:     "dice with bonus",
			op:       dicetypes.OpDice,
			args:     " 3D6 +1",
			faces:    []int{2, 5, 6},
			expected: dice.Result{Rolls: []int{2, 5, 6}, Sum: 13, Bonus: 1},
		},
		{
			name:     "single die",
			op:       dicetypes.OpDice,
			args:     " D20",
			faces:    []int{17},
			expected: dice.Result{Rolls: []int{17}, Sum: 17},
		},
		{
			name:     "open die explodes",
			op:       dicetypes.OpOpen,
			args:     " D6 -1",
			faces:    []int{6, 6, 2},
			expected: dice.Result{Rolls: []int{6, 6, 2}, Sum: 14, Bonus: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDispatcher(testutils.Faces(tt.faces...))
			res, err := d.Execute(tt.op, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestDispatcher_ExecuteErrors(t *testing.T) {
	d := newDispatcher(testutils.Faces(1))

	_, err := d.Execute(dicetypes.OpDice, " banana")
	assert.ErrorIs(t, err, dice.ErrParse)

	_, err = d.Execute(dicetypes.OpOpen, " 3D6")
	assert.ErrorIs(t, err, dice.ErrParse)

	_, err = d.Execute(dicetypes.OpOpen, " D1")
	assert.ErrorIs(t, err, dice.ErrInvalidSize)

	_, err = d.Execute(dicetypes.OpInvalid, " D6")
	assert.ErrorIs(t, err, dicetypes.ErrInvalidBuiltin)
}

func TestDispatcher_ExecuteStrict(t *testing.T) {
	d := newDispatcher(testutils.Faces(1), dice.Strict())

	_, err := d.Execute(dicetypes.OpDice, " D7")
	assert.ErrorIs(t, err, dice.ErrUnknownDie)

	_, err = d.Execute(dicetypes.OpDice, " 2D10")
	assert.NoError(t, err)
}

func TestDispatcher_Run(t *testing.T) {
	d := newDispatcher(testutils.Faces(4, 3))

	out := d.Run(dicetypes.Execute(dicetypes.OpDice, " 2D6 +2"))
	require.NoError(t, out.Err)
	assert.Equal(t, dice.Set{dice.Regular(6), dice.Regular(6), dice.Bonus(2)}, out.Set)
	assert.Equal(t, "total: 7 - incl. bonus: 2", out.Result.String())
	assert.False(t, out.Exit())

	out = d.Run(dicetypes.Action{Kind: dicetypes.ActionExit})
	assert.True(t, out.Exit())
	assert.NoError(t, out.Err)

	out = d.Run(dicetypes.Fail(dicetypes.ErrCycleDetected))
	assert.ErrorIs(t, out.Err, dicetypes.ErrCycleDetected)

	out = d.Run(dicetypes.Execute(dicetypes.OpDice, "x"))
	assert.ErrorIs(t, out.Err, dice.ErrParse)
	assert.Nil(t, out.Set)
}

func TestDispatcher_RunListings(t *testing.T) {
	d := newDispatcher(testutils.Faces(1))

	out := d.Run(dicetypes.Action{Kind: dicetypes.ActionAliases})
	require.Len(t, out.Commands, 1)
	assert.Equal(t, "roll", out.Commands[0].Name)

	out = d.Run(dicetypes.Action{Kind: dicetypes.ActionMacros})
	require.Len(t, out.Commands, 1)
	assert.Equal(t, "doom", out.Commands[0].Name)

	out = d.Run(dicetypes.Action{Kind: dicetypes.ActionList})
	assert.Len(t, out.Commands, 8)
}
