package dicetypes

// State is a step of the compiler state machine.
type State int

const (
	// StateParsing extracts the leading token of the current input.
	StateParsing State = iota
	// StateSubstituting replaces an alias or macro and loops back to parsing.
	StateSubstituting
	// StateTerminal accepts a builtin or control command.
	StateTerminal
	// StateError rejects the input.
	StateError
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateParsing:
		return "Parsing"
	case StateSubstituting:
		return "Substituting"
	case StateTerminal:
		return "Terminal"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// DefaultMaxRecursion bounds the number of substitutions in one resolution chain.
const DefaultMaxRecursion = 10

// CompilerConfig holds the tunables of the compiler.
type CompilerConfig struct {
	MaxRecursion int
}

// DefaultCompilerConfig returns the default compiler configuration.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxRecursion: DefaultMaxRecursion}
}
