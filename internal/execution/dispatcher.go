// Package execution runs compiled actions: it parses the arguments of a core operation
// into a dice set and rolls it.
package execution

import (
	"fmt"

	"github.com/charmbracelet/log"

	"dices/internal/commands"
	"dices/internal/dice"
	"dices/internal/logger"
	"dices/pkg/dicetypes"
)

// parsers maps each core operation to the grammar reading its arguments.
var parsers = map[dicetypes.CoreOp]func(string) (dice.Set, error){
	dicetypes.OpDice: dice.Parse,
	dicetypes.OpOpen: dice.ParseOpen,
}

// Dispatcher executes actions with a roller. Listing actions read the registry.
type Dispatcher struct {
	roller   *dice.Roller
	registry *commands.Registry
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(roller *dice.Roller, registry *commands.Registry) *Dispatcher {
	return &Dispatcher{
		roller:   roller,
		registry: registry,
		logger:   logger.NewStyledLogger("Dispatcher"),
	}
}

// Parse reads args with the grammar of op.
func (d *Dispatcher) Parse(op dicetypes.CoreOp, args string) (dice.Set, error) {
	parse, ok := parsers[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dicetypes.ErrInvalidBuiltin, op)
	}
	return parse(args)
}

// Execute parses args for op and rolls the resulting set.
func (d *Dispatcher) Execute(op dicetypes.CoreOp, args string) (dice.Result, error) {
	_, res, err := d.roll(op, args)
	return res, err
}

func (d *Dispatcher) roll(op dicetypes.CoreOp, args string) (dice.Set, dice.Result, error) {
	set, err := d.Parse(op, args)
	if err != nil {
		return nil, dice.Result{}, err
	}

	res, err := d.roller.RollSet(set)
	if err != nil {
		return nil, dice.Result{}, err
	}
	d.logger.Debug("rolled", "op", op, "set", set, "rolls", res.Rolls, "sum", res.Sum, "bonus", res.Bonus)
	return set, res, nil
}

// Outcome is what running one action produced.
type Outcome struct {
	Kind dicetypes.ActionKind
	// Set and Result are filled for ActionExecute.
	Set    dice.Set
	Result dice.Result
	// Commands is the registry view for listing actions.
	Commands []dicetypes.Command
	Err      error
}

// Exit reports whether the shell should stop.
func (o Outcome) Exit() bool {
	return o.Kind == dicetypes.ActionExit
}

// Run executes a whole action.
func (d *Dispatcher) Run(action dicetypes.Action) Outcome {
	out := Outcome{Kind: action.Kind}

	switch action.Kind {
	case dicetypes.ActionExecute:
		out.Set, out.Result, out.Err = d.roll(action.Op, action.Args)
	case dicetypes.ActionList:
		out.Commands = d.registry.All()
	case dicetypes.ActionAliases:
		out.Commands = d.registry.Aliases()
	case dicetypes.ActionMacros:
		out.Commands = d.registry.Macros()
	case dicetypes.ActionExit:
	case dicetypes.ActionError:
		out.Err = action.Err
	default:
		out.Err = fmt.Errorf("%w: unknown action %s", dicetypes.ErrInvalidBuiltin, action.Kind)
	}
	return out
}
