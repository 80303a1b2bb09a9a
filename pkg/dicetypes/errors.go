package dicetypes

import "errors"

// Resolution errors. Callers match them with errors.Is; the compiler wraps them with
// the offending name or input.
var (
	// ErrUnknownCommand is returned when the leading token is not bound in the registry.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMaxRecursionReached is returned when a resolution chain is too deep.
	ErrMaxRecursionReached = errors.New("max recursion level reached")
	// ErrCycleDetected is returned when a name comes back in the same resolution chain.
	ErrCycleDetected = errors.New("cycle detected")
	// ErrInvalidBuiltin is returned when resolution meets a command it cannot execute.
	ErrInvalidBuiltin = errors.New("invalid builtin")
)
