package dice

import "fmt"

// Flag marks special single-die outcomes.
type Flag int

const (
	// FlagNone means nothing special, or more than one die contributed.
	FlagNone Flag = iota
	// FlagFumble is set when a single regular die lands on 1.
	FlagFumble
	// FlagNatural is set when a single regular die lands on anything else.
	FlagNatural
)

// String returns a human-readable name for the flag.
func (f Flag) String() string {
	switch f {
	case FlagFumble:
		return "fumble"
	case FlagNatural:
		return "natural"
	default:
		return "none"
	}
}

// Result accumulates the outcome of a roll.
type Result struct {
	// Rolls holds every individual draw in order; bonus terms never appear here.
	Rolls []int
	// Sum is the total of Rolls plus any constant contribution.
	Sum int
	// Bonus is the net of all bonus terms, reported separately from Sum.
	Bonus int
	// Flag is only meaningful when Rolls has exactly one element.
	Flag Flag
}

// Append records one draw.
func (r *Result) Append(v int) {
	r.Rolls = append(r.Rolls, v)
	r.Sum += v
}

// Merge folds other into a copy of r. Rolls are concatenated, sums and bonuses added,
// and the flag is reset since it loses its meaning once several dice contribute.
func (r Result) Merge(other Result) Result {
	rolls := make([]int, 0, len(r.Rolls)+len(other.Rolls))
	rolls = append(rolls, r.Rolls...)
	rolls = append(rolls, other.Rolls...)
	return Result{
		Rolls: rolls,
		Sum:   r.Sum + other.Sum,
		Bonus: r.Bonus + other.Bonus,
		Flag:  FlagNone,
	}
}

// Natural reports a single die flagged natural.
func (r Result) Natural() bool {
	return len(r.Rolls) == 1 && r.Flag == FlagNatural
}

// Fumble reports a single die flagged fumble.
func (r Result) Fumble() bool {
	return len(r.Rolls) == 1 && r.Flag == FlagFumble
}

// Total returns the sum with the bonus applied.
func (r Result) Total() int {
	return r.Sum + r.Bonus
}

// String renders the result as "total: <sum> - incl. bonus: <bonus>".
func (r Result) String() string {
	return fmt.Sprintf("total: %d - incl. bonus: %d", r.Sum, r.Bonus)
}
