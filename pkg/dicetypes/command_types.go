// Package dicetypes defines the command model shared by the registry, the compiler and the shell.
// This file contains the closed set of command variants and the core operations
// a command line is eventually reduced to.
package dicetypes

import "fmt"

// CoreOp is a directly executable built-in operation.
type CoreOp int

const (
	// OpInvalid is the zero value and never executable.
	OpInvalid CoreOp = iota
	// OpDice rolls a set of regular dice with an optional bonus.
	OpDice
	// OpOpen rolls a single open-ended (exploding) die.
	OpOpen
)

// String returns the keyword bound to the operation.
func (op CoreOp) String() string {
	switch op {
	case OpDice:
		return "dice"
	case OpOpen:
		return "open"
	default:
		return "invalid"
	}
}

// ParseCoreOp returns the operation associated with a builtin keyword.
// Aliases are not considered here; unknown keywords map to OpInvalid.
func ParseCoreOp(name string) CoreOp {
	switch name {
	case "dice":
		return OpDice
	case "open":
		return OpOpen
	default:
		return OpInvalid
	}
}

// CommandKind is the tag of a Command.
type CommandKind int

const (
	// CommandMacro substitutes a text body and keeps the trailing arguments.
	CommandMacro CommandKind = iota
	// CommandBuiltin executes a CoreOp.
	CommandBuiltin
	// CommandAlias points at another registered name.
	CommandAlias
	// CommandComment is produced by the alias loader for comment lines.
	CommandComment
	// CommandExit leaves the shell.
	CommandExit
	// CommandList lists every command.
	CommandList
	// CommandAliases lists aliases.
	CommandAliases
	// CommandMacros lists macros.
	CommandMacros
)

// String returns a human-readable name for the kind, as shown by the list command.
func (k CommandKind) String() string {
	switch k {
	case CommandMacro:
		return "macro"
	case CommandBuiltin:
		return "builtin"
	case CommandAlias:
		return "alias"
	case CommandComment:
		return "comment"
	case CommandExit, CommandList, CommandAliases, CommandMacros:
		return "special"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether resolution stops when it reaches a command of this kind.
func (k CommandKind) IsTerminal() bool {
	switch k {
	case CommandBuiltin, CommandExit, CommandList, CommandAliases, CommandMacros:
		return true
	default:
		return false
	}
}

// Command is a value bound to a name in the registry.
// Target holds the alias target or the macro body; Op is only meaningful for builtins.
type Command struct {
	Kind   CommandKind
	Name   string
	Target string
	Op     CoreOp
}

// NewMacro creates a macro whose body is re-entered into resolution.
func NewMacro(name, body string) Command {
	return Command{Kind: CommandMacro, Name: name, Target: body}
}

// NewAlias creates an alias of an existing command.
func NewAlias(name, target string) Command {
	return Command{Kind: CommandAlias, Name: name, Target: target}
}

// NewBuiltin creates a builtin bound to a core operation.
func NewBuiltin(name string, op CoreOp) Command {
	return Command{Kind: CommandBuiltin, Name: name, Op: op}
}

// NewControl creates one of the shell control commands (exit, list, aliases, macros).
func NewControl(name string, kind CommandKind) Command {
	return Command{Kind: kind, Name: name}
}

// String renders the command the way the list command shows it.
func (c Command) String() string {
	switch c.Kind {
	case CommandMacro:
		return fmt.Sprintf("%s = %q", c.Name, c.Target)
	case CommandAlias:
		return fmt.Sprintf("%s = %s", c.Name, c.Target)
	case CommandBuiltin:
		return fmt.Sprintf("%s (%s)", c.Name, c.Op)
	default:
		return c.Name
	}
}
