package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Printer is the output handler of dices. It renders plain, styled or JSON output and
// is safe for use from several goroutines.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	silent        bool
	prefix        string

	mu sync.Mutex
}

// NewPrinter returns a printer writing to stdout in auto mode, changed by options.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println writes an unstyled line.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info writes a notice, such as an empty listing.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Warning writes a warning line.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error writes a failed command.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	var finalText string
	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(map[string]interface{}{
			"type":    semantic,
			"message": ansi.Strip(text),
		})
	case ModePlain, ModeAuto:
		finalText = p.renderText(semantic, text, addNewline)
	case ModeStyled:
		finalText = p.renderStyled(semantic, text, addNewline)
	}

	p.write(finalText)
}

func (p *Printer) write(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.prefix != "" {
		text = p.prefix + text
	}
	_, _ = fmt.Fprint(p.writer, text)
}

// style applies the semantic style, or the plain prefixes when styling is off.
func (p *Printer) style(semantic SemanticType, text string) string {
	if p.IsStylable() {
		return p.styleProvider.GetStyle(string(semantic)).Render(text)
	}
	return NewPlainStyleProvider().GetStyle(string(semantic)).Render(ansi.Strip(text))
}

// renderText renders text in plain or auto mode.
func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	result := p.style(semantic, text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

// renderStyled renders text with forced styling.
func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if p.styleProvider != nil && p.styleProvider.IsAvailable() {
		result := p.styleProvider.GetStyle(string(semantic)).Render(text)
		if addNewline && !strings.HasSuffix(result, "\n") {
			result += "\n"
		}
		return result
	}

	return p.renderText(semantic, text, addNewline)
}

// renderJSON encodes one output record per line.
func (p *Printer) renderJSON(record interface{}) string {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Sprintf("%v\n", record)
	}
	return string(jsonBytes) + "\n"
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}
