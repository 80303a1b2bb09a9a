package aliases

import "errors"

// ErrSyntax is returned for a malformed alias file, wrapped with the file and line.
var ErrSyntax = errors.New("alias file syntax error")

// ErrUnsupportedFormat is returned for an alias file extension with no known decoder.
var ErrUnsupportedFormat = errors.New("unsupported alias file format")
