package domain

import "errors"

// ErrInvalidInput indicates a course tree that is missing required
// structure (for example no units list at all).
var ErrInvalidInput = errors.New("invalid course input")
