// Package dice implements the dice model, the dice grammar and the rolling engine.
//
// Four kinds of dice exist:
//
//   - Constant(n) always yields n
//   - Regular(n) yields a value between 1 and n
//   - Open(n) is a regular die that rolls again as long as it lands on n
//   - Bonus(b) records a signed bonus alongside the dice
//
// A Set is parsed from the compact notation (`3D6 +1`) and rolled with a Roller.
package dice

import (
	"fmt"
	"strings"
)

// Kind is the tag of a Dice term.
type Kind int

const (
	// KindConstant always yields its size.
	KindConstant Kind = iota
	// KindRegular yields a uniform value in [1, size].
	KindRegular
	// KindOpen rerolls and accumulates while it lands on its size.
	KindOpen
	// KindBonus carries a signed bonus and is never rolled.
	KindBonus
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindRegular:
		return "regular"
	case KindOpen:
		return "open"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Dice is one term of a Set. It is a comparable value: two terms are equal when
// both their kind and their number are.
type Dice struct {
	Kind Kind
	// N is the size for Constant, Regular and Open terms and the signed bonus for Bonus.
	N int
}

// Constant returns a term that always yields n.
func Constant(n int) Dice { return Dice{Kind: KindConstant, N: n} }

// Regular returns a regular die with n faces.
func Regular(n int) Dice { return Dice{Kind: KindRegular, N: n} }

// Open returns an open-ended die with n faces.
func Open(n int) Dice { return Dice{Kind: KindOpen, N: n} }

// Bonus returns a bonus (or malus when b is negative) term.
func Bonus(b int) Dice { return Dice{Kind: KindBonus, N: b} }

// Size returns the number of faces, or 0 for a bonus.
func (d Dice) Size() int {
	if d.Kind == KindBonus {
		return 0
	}
	return d.N
}

// String renders the term in dice notation.
func (d Dice) String() string {
	switch d.Kind {
	case KindConstant:
		return fmt.Sprintf("C%d", d.N)
	case KindRegular:
		return fmt.Sprintf("D%d", d.N)
	case KindOpen:
		return fmt.Sprintf("O%d", d.N)
	case KindBonus:
		return fmt.Sprintf("%+d", d.N)
	default:
		return "?"
	}
}

// Set is an ordered sequence of terms rolled and combined together.
// Bonus terms are conventionally last.
type Set []Dice

// Add appends a term and returns the set for chaining.
func (s Set) Add(d Dice) Set {
	return append(s, d)
}

// String renders the set as space-separated terms, e.g. "D6 D6 D6 +1".
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}
