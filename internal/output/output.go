package output

import (
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter sets the global printer instance.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal replaces the global printer with one built from options.
func ConfigureGlobal(options ...Option) {
	SetGlobalPrinter(NewPrinter(options...))
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Error outputs error text using the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ForMode returns printer options for a configured output mode. Auto mode styles
// output only when stdout is a terminal with colors.
func ForMode(mode Mode) []Option {
	switch mode {
	case ModeJSON:
		return []Option{JSON()}
	case ModePlain:
		return []Option{PlainText()}
	case ModeStyled:
		return []Option{WithMode(ModeStyled), WithStyles(NewThemeStyleProvider())}
	default:
		if !IsTerminal() {
			return []Option{PlainText()}
		}
		return []Option{WithStyles(NewThemeStyleProvider())}
	}
}
