// Package aliases loads user-defined aliases and macros into the command registry.
//
// The native format is line oriented:
//
//	# comment (also // or !)
//	doom = "dice 2D6"
//	roll = dice
//
// YAML and TOML files with an `aliases` mapping are accepted as well.
package aliases

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Entry is one `name = value` binding read from an alias file.
type Entry struct {
	Name  string
	Value string
	// Line is the 1-based line of the binding, or 0 for formats without line tracking.
	Line int
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(#|//|!)[^\r\n]*`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Ident", Pattern: `[A-Za-z0-9]+`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type aliasLine struct {
	Comment *string  `parser:"  @Comment"`
	Binding *binding `parser:"| @@"`
}

type binding struct {
	Name     string  `parser:"@Ident Eq"`
	Value    value   `parser:"@@"`
	Trailing *string `parser:"@Comment?"`
}

type value struct {
	Quoted string `parser:"  @String"`
	Bare   string `parser:"| @Ident"`
}

var lineParser = participle.MustBuild[aliasLine](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// ParseText reads the line-oriented alias format. Blank and comment lines are skipped.
// A malformed line fails the whole file with ErrSyntax.
func ParseText(name string, data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		line, err := lineParser.ParseString(name, text)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrSyntax, name, lineNo, err)
		}
		if line.Binding == nil {
			continue
		}

		value := line.Binding.Value.Bare
		if q := line.Binding.Value.Quoted; q != "" {
			value = strings.TrimSpace(q[1 : len(q)-1])
		}
		if value == "" {
			return nil, fmt.Errorf("%w: %s:%d: empty value for %q", ErrSyntax, name, lineNo, line.Binding.Name)
		}

		entries = append(entries, Entry{Name: line.Binding.Name, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return entries, nil
}
