package repository

import "errors"

// ErrDuplicateSequence is what the in-memory store reports where Postgres would raise 23505.
var ErrDuplicateSequence = errors.New("duplicate alive sequence number")
