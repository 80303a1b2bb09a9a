// Package embedded provides access to data files compiled into the dices binary.
package embedded

import _ "embed"

// DefaultAliasesData contains the aliases and macros every registry is seeded with,
// in the alias file text format.
//
//go:embed aliases/default.aliases
var DefaultAliasesData []byte

// DefaultAliasesName is the display name of the embedded alias file in diagnostics.
const DefaultAliasesName = "<builtin aliases>"
