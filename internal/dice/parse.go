package dice

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits a dice expression into a die token and signed bonus tokens.
// Whitespace is elided, so bonuses may or may not be separated by spaces.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `\d*[dD]\d+`},
	{Name: "Bonus", Pattern: `[+-]\d+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// expr is the grammar of `[count]D<size> [(+|-)<bonus>]*`.
type expr struct {
	Die     string   `parser:"@Dice"`
	Bonuses []string `parser:"@Bonus*"`
}

var exprParser = participle.MustBuild[expr](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace"),
)

// term is the decoded form of an expression.
type term struct {
	count    int
	explicit bool
	size     int
	bonus    int
}

// Parse reads `<n>*D<s>[ [+-]<b>]*` and returns n Regular(s) terms followed by a single
// Bonus term when the bonuses do not cancel out. `D6` is the same as `1D6`.
func Parse(input string) (Set, error) {
	t, err := parseTerm(input)
	if err != nil {
		return nil, err
	}

	set := make(Set, 0, t.count+1)
	for i := 0; i < t.count; i++ {
		set = append(set, Regular(t.size))
	}
	if t.bonus != 0 {
		set = append(set, Bonus(t.bonus))
	}
	return set, nil
}

// ParseOpen reads `D<s>[ [+-]<b>]*` and returns a single Open(s) term, plus the net bonus.
// A count other than 1 is rejected since an open die is always rolled alone.
func ParseOpen(input string) (Set, error) {
	t, err := parseTerm(input)
	if err != nil {
		return nil, err
	}
	if t.explicit && t.count != 1 {
		return nil, fmt.Errorf("%w: open dice take no count: %q", ErrParse, strings.TrimSpace(input))
	}

	set := Set{Open(t.size)}
	if t.bonus != 0 {
		set = append(set, Bonus(t.bonus))
	}
	return set, nil
}

func parseTerm(input string) (term, error) {
	e, err := exprParser.ParseString("", input)
	if err != nil {
		return term{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	idx := strings.IndexAny(e.Die, "dD")
	countStr, sizeStr := e.Die[:idx], e.Die[idx+1:]

	t := term{count: 1}
	if countStr != "" {
		count, err := parseUint[uint8](countStr)
		if err != nil {
			return term{}, fmt.Errorf("%w: bad count %q", ErrParse, countStr)
		}
		t.count = int(count)
		t.explicit = true
	}

	size, err := parseUint[uint32](sizeStr)
	if err != nil || size == 0 {
		return term{}, fmt.Errorf("%w: bad size %q", ErrParse, sizeStr)
	}
	t.size = int(size)

	for _, b := range e.Bonuses {
		v, err := parseUint[int8](b[1:])
		if err != nil {
			return term{}, fmt.Errorf("%w: bad bonus %q", ErrParse, b)
		}
		if b[0] == '-' {
			v = -v
		}
		t.bonus += int(v)
	}
	return t, nil
}

// parseUint checks that a number fits the width of its field: counts are 8-bit unsigned,
// sizes 32-bit unsigned and each bonus magnitude 8-bit signed, whatever its sign.
func parseUint[T safecast.Integer](s string) (T, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[T](n)
}
