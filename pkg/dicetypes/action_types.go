package dicetypes

// ActionKind is the tag of an Action.
type ActionKind int

const (
	// ActionError carries the reason resolution failed.
	ActionError ActionKind = iota
	// ActionExecute runs a core operation on the remaining input.
	ActionExecute
	// ActionExit leaves the shell.
	ActionExit
	// ActionList lists all commands.
	ActionList
	// ActionAliases lists aliases.
	ActionAliases
	// ActionMacros lists macros.
	ActionMacros
)

// String returns a human-readable representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionError:
		return "error"
	case ActionExecute:
		return "execute"
	case ActionExit:
		return "exit"
	case ActionList:
		return "list"
	case ActionAliases:
		return "aliases"
	case ActionMacros:
		return "macros"
	default:
		return "unknown"
	}
}

// Action is the output of compiling one input line.
// It is consumed immediately by the dispatcher and never stored.
type Action struct {
	Kind ActionKind
	// Op and Args are set for ActionExecute; Args keeps its leading separators.
	Op   CoreOp
	Args string
	// Err is set for ActionError.
	Err error
}

// Execute returns an action running op on args.
func Execute(op CoreOp, args string) Action {
	return Action{Kind: ActionExecute, Op: op, Args: args}
}

// Fail returns an error action.
func Fail(err error) Action {
	return Action{Kind: ActionError, Err: err}
}

// Control returns the action matching a terminal control command.
// It returns false for kinds that do not map to a control action.
func Control(kind CommandKind) (Action, bool) {
	switch kind {
	case CommandExit:
		return Action{Kind: ActionExit}, true
	case CommandList:
		return Action{Kind: ActionList}, true
	case CommandAliases:
		return Action{Kind: ActionAliases}, true
	case CommandMacros:
		return Action{Kind: ActionMacros}, true
	default:
		return Action{}, false
	}
}
