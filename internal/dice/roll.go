package dice

import "fmt"

// standardSizes are the dice found on a gaming table.
var standardSizes = map[int]bool{4: true, 6: true, 8: true, 10: true, 12: true, 20: true, 100: true}

// IsStandard reports whether n is one of 4, 6, 8, 10, 12, 20 or 100.
func IsStandard(n int) bool {
	return standardSizes[n]
}

// Roller rolls dice and sets of dice from a random source.
// It is deterministic given a fixed stream of draws.
type Roller struct {
	src     Source
	sampler Sampler
	strict  bool
}

// Option configures a Roller.
type Option func(*Roller)

// WithSampler selects the face sampling algorithm.
func WithSampler(s Sampler) Option {
	return func(r *Roller) {
		r.sampler = s
	}
}

// Strict rejects dice sizes outside the standard set at roll time.
func Strict() Option {
	return func(r *Roller) {
		r.strict = true
	}
}

// NewRoller creates a Roller drawing from src.
func NewRoller(src Source, opts ...Option) *Roller {
	r := &Roller{src: src, sampler: SamplerDirect}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw returns one uniform face in [1, n].
func (r *Roller) Draw(n int) int {
	return r.sampler.draw(r.src, n)
}

// Roll rolls a single term.
//
// Unlike RollSet, a constant rolled alone is recorded in Rolls. A regular die rolled
// alone is flagged Fumble on 1 and Natural otherwise.
func (r *Roller) Roll(d Dice) (Result, error) {
	if err := r.check(d); err != nil {
		return Result{}, err
	}

	var res Result
	switch d.Kind {
	case KindConstant:
		res.Append(d.N)
	case KindRegular:
		v := r.Draw(d.N)
		res.Append(v)
		if v == 1 {
			res.Flag = FlagFumble
		} else {
			res.Flag = FlagNatural
		}
	case KindOpen:
		it := r.Explode(d.N)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			res.Append(v)
		}
	case KindBonus:
		res.Bonus = d.N
	}
	return res, nil
}

// RollSet rolls every term of the set and folds the results in order.
// Constant terms only add to Sum here; they are not recorded in Rolls.
func (r *Roller) RollSet(s Set) (Result, error) {
	var total Result
	for _, d := range s {
		if d.Kind == KindConstant {
			if err := r.check(d); err != nil {
				return Result{}, err
			}
			total = total.Merge(Result{Sum: d.N})
			continue
		}

		res, err := r.Roll(d)
		if err != nil {
			return Result{}, err
		}
		total = total.Merge(res)
	}
	return total, nil
}

func (r *Roller) check(d Dice) error {
	switch d.Kind {
	case KindBonus:
		return nil
	case KindOpen:
		if d.N < 2 {
			return fmt.Errorf("%w: open dice need at least 2 faces, got %d", ErrInvalidSize, d.N)
		}
	default:
		if d.N < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, d.N)
		}
	}
	if r.strict && d.Kind != KindConstant && !IsStandard(d.N) {
		return fmt.Errorf("%w: %d", ErrUnknownDie, d.N)
	}
	return nil
}

// Exploding is the lazy sequence of draws of an open die: it yields draws until one is
// lower than the die's size. The last draw is included.
type Exploding struct {
	size  int
	draw  func(int) int
	limit int
	count int
	done  bool
}

// Explode returns the draw sequence of an Open(n) die.
func (r *Roller) Explode(n int) *Exploding {
	return &Exploding{size: n, draw: r.Draw}
}

// Limit caps the number of draws; zero means no cap.
func (e *Exploding) Limit(n int) *Exploding {
	e.limit = n
	return e
}

// Next returns the next draw, or false once the sequence has stopped.
func (e *Exploding) Next() (int, bool) {
	if e.done {
		return 0, false
	}
	if e.limit > 0 && e.count >= e.limit {
		e.done = true
		return 0, false
	}

	v := e.draw(e.size)
	e.count++
	if v != e.size {
		e.done = true
	}
	return v, true
}
