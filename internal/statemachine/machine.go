// Package statemachine compiles an input line into an executable Action.
// Aliases and macros are substituted until a builtin or a control command is reached,
// with guards against cycles and runaway chains.
package statemachine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"dices/internal/commands"
	"dices/internal/logger"
	"dices/pkg/dicetypes"
)

// Compiler resolves input lines against a registry snapshot.
type Compiler struct {
	registry *commands.Registry
	config   dicetypes.CompilerConfig
	logger   *log.Logger
}

// Step is one visited state of a resolution, as recorded by Resolve.
type Step struct {
	State dicetypes.State
	Input string
	Depth int
}

// NewCompiler creates a compiler over registry. A MaxRecursion below 1 falls back to
// the default.
func NewCompiler(registry *commands.Registry, config dicetypes.CompilerConfig) *Compiler {
	if config.MaxRecursion < 1 {
		config.MaxRecursion = dicetypes.DefaultMaxRecursion
	}
	return &Compiler{
		registry: registry,
		config:   config,
		logger:   logger.NewStyledLogger("Compiler"),
	}
}

// NewCompilerWithDefaults creates a compiler with the default configuration.
func NewCompilerWithDefaults(registry *commands.Registry) *Compiler {
	return NewCompiler(registry, dicetypes.DefaultCompilerConfig())
}

// Config returns the compiler configuration.
func (c *Compiler) Config() dicetypes.CompilerConfig {
	return c.config
}

// Compile turns an input line into an Action. Resolution failures come back as an
// ActionError carrying the cause.
func (c *Compiler) Compile(input string) dicetypes.Action {
	action, _ := c.Resolve(input)
	return action
}

// Resolve is Compile that also returns the visited states.
func (c *Compiler) Resolve(input string) (dicetypes.Action, []Step) {
	var trace []Step
	visit := func(state dicetypes.State, input string, depth int) {
		trace = append(trace, Step{State: state, Input: input, Depth: depth})
		c.logger.Debug("resolve", "state", state, "input", input, "depth", depth)
	}
	fail := func(input string, depth int, err error) (dicetypes.Action, []Step) {
		visit(dicetypes.StateError, input, depth)
		c.logger.Debug("resolution failed", "input", input, "error", err)
		return dicetypes.Fail(err), trace
	}

	seen := make(map[string]bool)
	depth := 0
	for {
		visit(dicetypes.StateParsing, input, depth)

		name, args := splitKeyword(input)
		if name == "" {
			return fail(input, depth, fmt.Errorf("%w: %q", dicetypes.ErrUnknownCommand, input))
		}

		cmd, ok := c.registry.Get(name)
		if !ok {
			return fail(input, depth, fmt.Errorf("%w: %s", dicetypes.ErrUnknownCommand, name))
		}
		if seen[name] {
			return fail(input, depth, fmt.Errorf("%w: %s", dicetypes.ErrCycleDetected, name))
		}
		seen[name] = true

		switch cmd.Kind {
		case dicetypes.CommandBuiltin:
			if cmd.Op == dicetypes.OpInvalid {
				return fail(input, depth, fmt.Errorf("%w: %s", dicetypes.ErrInvalidBuiltin, name))
			}
			visit(dicetypes.StateTerminal, input, depth)
			return dicetypes.Execute(cmd.Op, args), trace

		case dicetypes.CommandExit, dicetypes.CommandList, dicetypes.CommandAliases, dicetypes.CommandMacros:
			action, _ := dicetypes.Control(cmd.Kind)
			visit(dicetypes.StateTerminal, input, depth)
			return action, trace

		case dicetypes.CommandAlias, dicetypes.CommandMacro:
			depth++
			if depth >= c.config.MaxRecursion {
				return fail(input, depth, fmt.Errorf("%w for %s", dicetypes.ErrMaxRecursionReached, name))
			}
			input = cmd.Target + args
			visit(dicetypes.StateSubstituting, input, depth)

		default:
			return fail(input, depth, fmt.Errorf("%w: %s is a %s", dicetypes.ErrInvalidBuiltin, name, cmd.Kind))
		}
	}
}
