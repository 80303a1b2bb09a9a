package aliases

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"dices/internal/commands"
	"dices/internal/data/embedded"
	"dices/internal/logger"
	"dices/pkg/dicetypes"
)

// Loader merges alias files into a registry.
type Loader struct {
	registry *commands.Registry
	logger   *log.Logger
}

// NewLoader creates a loader writing into registry.
func NewLoader(registry *commands.Registry) *Loader {
	return &Loader{
		registry: registry,
		logger:   logger.NewStyledLogger("Aliases"),
	}
}

// Classify turns entries into commands. A value naming a known command, or a name
// bound earlier in the same list, becomes an Alias; any other value is a Macro body.
func Classify(entries []Entry, known func(string) bool) []dicetypes.Command {
	seen := make(map[string]bool, len(entries))
	out := make([]dicetypes.Command, 0, len(entries))
	for _, e := range entries {
		if known(e.Value) || seen[e.Value] {
			out = append(out, dicetypes.NewAlias(e.Name, e.Value))
		} else {
			out = append(out, dicetypes.NewMacro(e.Name, e.Value))
		}
		seen[e.Name] = true
	}
	return out
}

// LoadDefaults merges the aliases compiled into the binary.
func (l *Loader) LoadDefaults() error {
	_, err := l.LoadBytes(FormatText, embedded.DefaultAliasesName, embedded.DefaultAliasesData)
	return err
}

// LoadBytes parses data and merges the result. It returns the merged commands.
func (l *Loader) LoadBytes(format Format, name string, data []byte) ([]dicetypes.Command, error) {
	entries, err := Parse(format, name, data)
	if err != nil {
		return nil, err
	}

	cmds := Classify(entries, l.registry.Contains)
	l.registry.Merge(cmds)

	l.logger.Debug("aliases loaded", "source", name, "format", format, "count", len(cmds))
	for _, c := range cmds {
		l.logger.Debug("bound", "name", c.Name, "kind", c.Kind, "target", c.Target)
	}
	return cmds, nil
}

// LoadFile reads an alias file, picking the format from its extension.
// When required is false a missing file is not an error.
func (l *Loader) LoadFile(path string, required bool) ([]dicetypes.Command, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			l.logger.Debug("no alias file", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	return l.LoadBytes(format, path, data)
}

// NewRegistry builds the registry used by a shell: builtins, embedded defaults and
// the user alias file, in that order.
func NewRegistry(path string, required bool) (*commands.Registry, error) {
	reg := commands.NewBuiltinRegistry()
	loader := NewLoader(reg)

	if err := loader.LoadDefaults(); err != nil {
		return nil, fmt.Errorf("load builtin aliases: %w", err)
	}
	if path == "" {
		return reg, nil
	}
	if _, err := loader.LoadFile(path, required); err != nil {
		return nil, err
	}
	return reg, nil
}
