package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"dices/internal/dice"
	"dices/pkg/dicetypes"
)

// Result prints a roll: the total line, then the individual draws. A single die carrying
// a natural or fumble flag gets a marker.
func (p *Printer) Result(set dice.Set, res dice.Result) {
	if p.silent {
		return
	}

	if p.mode == ModeJSON {
		rolls := res.Rolls
		if rolls == nil {
			rolls = []int{}
		}
		p.write(p.renderJSON(map[string]interface{}{
			"type":  SemanticTotal,
			"dice":  set.String(),
			"rolls": rolls,
			"sum":   res.Sum,
			"bonus": res.Bonus,
			"total": res.Total(),
			"flag":  res.Flag.String(),
		}))
		return
	}

	var b strings.Builder
	b.WriteString(p.style(SemanticTotal, res.String()))
	b.WriteString("\n")
	b.WriteString(p.style(SemanticRolls, "rolls: "+formatRolls(res.Rolls)))
	switch {
	case res.Natural():
		b.WriteString(" " + p.style(SemanticNatural, "(natural)"))
	case res.Fumble():
		b.WriteString(" " + p.style(SemanticFumble, "(fumble)"))
	}
	b.WriteString("\n")
	p.write(b.String())
}

func formatRolls(rolls []int) string {
	if len(rolls) == 0 {
		return "-"
	}
	parts := make([]string, len(rolls))
	for i, v := range rolls {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// Commands prints a registry listing. Styled output is a markdown table rendered by
// glamour; plain output is one aligned line per command.
func (p *Printer) Commands(title string, cmds []dicetypes.Command) {
	if p.silent {
		return
	}

	switch {
	case p.mode == ModeJSON:
		type entry struct {
			Name   string `json:"name"`
			Kind   string `json:"kind"`
			Target string `json:"target,omitempty"`
			Op     string `json:"op,omitempty"`
		}
		entries := make([]entry, 0, len(cmds))
		for _, c := range cmds {
			e := entry{Name: c.Name, Kind: c.Kind.String(), Target: c.Target}
			if c.Kind == dicetypes.CommandBuiltin {
				e.Op = c.Op.String()
			}
			entries = append(entries, e)
		}
		p.write(p.renderJSON(map[string]interface{}{
			"type":     SemanticListing,
			"title":    title,
			"commands": entries,
		}))
	case p.IsStylable():
		if out, err := p.renderMarkdown(CommandsMarkdown(title, cmds)); err == nil {
			p.write(out)
			return
		}
		p.write(CommandsText(title, cmds))
	default:
		p.write(CommandsText(title, cmds))
	}
}

// CommandsMarkdown returns the listing as a markdown table.
func CommandsMarkdown(title string, cmds []dicetypes.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	b.WriteString("| name | kind | definition |\n|---|---|---|\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", c.Name, c.Kind, definition(c))
	}
	return b.String()
}

// CommandsText returns the listing as aligned plain text.
func CommandsText(title string, cmds []dicetypes.Command) string {
	width := 0
	for _, c := range cmds {
		if w := ansi.StringWidth(c.Name); w > width {
			width = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	for _, c := range cmds {
		fmt.Fprintf(&b, "  %-*s  %-8s %s\n", width, c.Name, c.Kind, definition(c))
	}
	return b.String()
}

func definition(c dicetypes.Command) string {
	switch c.Kind {
	case dicetypes.CommandMacro:
		return fmt.Sprintf("%q", c.Target)
	case dicetypes.CommandAlias:
		return c.Target
	case dicetypes.CommandBuiltin:
		return c.Op.String()
	default:
		return "-"
	}
}

func (p *Printer) renderMarkdown(md string) (string, error) {
	style := "dark"
	if p.styleProvider != nil {
		style = p.styleProvider.GetThemeType()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
