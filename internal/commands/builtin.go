package commands

import "dices/pkg/dicetypes"

// Builtins returns the fixed command table every registry starts from.
func Builtins() []dicetypes.Command {
	return []dicetypes.Command{
		dicetypes.NewControl("aliases", dicetypes.CommandAliases),
		dicetypes.NewBuiltin("dice", dicetypes.OpDice),
		dicetypes.NewControl("exit", dicetypes.CommandExit),
		dicetypes.NewControl("list", dicetypes.CommandList),
		dicetypes.NewControl("macros", dicetypes.CommandMacros),
		dicetypes.NewBuiltin("open", dicetypes.OpOpen),
	}
}

// NewBuiltinRegistry creates a registry holding only the builtin table.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Merge(Builtins())
	return r
}
