// Package commands provides the command registry of dices.
// It binds names to builtins, aliases, macros and shell controls.
package commands

import (
	"sort"
	"sync"

	"dices/pkg/dicetypes"
)

// Registry maps names to commands. It is filled during startup and only read afterwards;
// lookups are exact and case-sensitive.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]dicetypes.Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]dicetypes.Command),
	}
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (dicetypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Contains reports whether name is bound.
func (r *Registry) Contains(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Merge inserts the entries in order, overwriting existing bindings.
// Entries without a name are skipped.
func (r *Registry) Merge(entries []dicetypes.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cmd := range entries {
		if cmd.Name == "" {
			continue
		}
		r.commands[cmd.Name] = cmd
	}
}

// Len returns the number of bound names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Names returns every bound name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every command sorted by name.
func (r *Registry) All() []dicetypes.Command {
	return r.filter(func(dicetypes.Command) bool { return true })
}

// Aliases returns the aliases sorted by name.
func (r *Registry) Aliases() []dicetypes.Command {
	return r.filter(func(c dicetypes.Command) bool { return c.Kind == dicetypes.CommandAlias })
}

// Macros returns the macros sorted by name.
func (r *Registry) Macros() []dicetypes.Command {
	return r.filter(func(c dicetypes.Command) bool { return c.Kind == dicetypes.CommandMacro })
}

func (r *Registry) filter(keep func(dicetypes.Command) bool) []dicetypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dicetypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if keep(cmd) {
			out = append(out, cmd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
