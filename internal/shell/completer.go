package shell

import (
	"github.com/chzyer/readline"

	"dices/internal/commands"
)

// NewCompleter completes the first word of a line with the names bound in registry.
func NewCompleter(registry *commands.Registry) *readline.PrefixCompleter {
	names := registry.Names()
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
