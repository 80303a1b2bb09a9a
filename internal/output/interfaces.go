// Package output provides the console output of dices.
// A Printer renders messages, roll results and registry listings in plain, styled or
// JSON form; styling is injected through a StyleProvider.
package output

// StyleProvider supplies text styles per semantic type.
// The printer falls back to plain text when no provider is available.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type ("info", "error", "total", ...).
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider can style text on the current terminal.
	IsAvailable() bool

	// GetThemeType returns "dark" or "light", used to pick the markdown renderer style.
	GetThemeType() string
}

// TextStyle renders text with styling.
type TextStyle interface {
	Render(text string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a provider is available.
	ModeAuto Mode = iota

	// ModeStyled forces styled output (with colors, formatting)
	ModeStyled

	// ModePlain forces plain text output (no colors, minimal formatting)
	ModePlain

	// ModeJSON outputs one JSON object per message
	ModeJSON
)

// ParseMode maps a configuration value to a Mode; unknown values are auto.
func ParseMode(name string) Mode {
	switch name {
	case "styled":
		return ModeStyled
	case "plain":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticHighlight represents highlighted or emphasized text.
	SemanticHighlight SemanticType = "highlight"

	// SemanticTotal is the summary line of a roll.
	SemanticTotal SemanticType = "total"
	// SemanticRolls is the line listing individual draws.
	SemanticRolls SemanticType = "rolls"
	// SemanticNatural marks a single die that did not fumble.
	SemanticNatural SemanticType = "natural"
	// SemanticFumble marks a single die that landed on 1.
	SemanticFumble SemanticType = "fumble"
	// SemanticListing is a registry listing.
	SemanticListing SemanticType = "listing"
)
