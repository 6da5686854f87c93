package schema

import "errors"

// ErrReservedField is returned when a composed schema declares a field whose
// name collides with widget identity properties (_id, type).
var ErrReservedField = errors.New("schema: reserved field name")

// ErrUnknownField is returned by compilers when a directive references a
// field that does not exist.
var ErrUnknownField = errors.New("schema: unknown field")
