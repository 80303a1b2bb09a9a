package dice

import "errors"

// ErrParse is returned for any malformed dice expression.
var ErrParse = errors.New("error parsing input")

// ErrInvalidSize indicates a die that cannot be rolled (no faces, or an open die with one face).
var ErrInvalidSize = errors.New("invalid dice size")

// ErrUnknownDie indicates a size outside the standard set while strict mode is on.
var ErrUnknownDie = errors.New("unknown dice")
