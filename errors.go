package sqlkit

import "errors"

var (
	// ErrNilRows is returned when a rows handle is nil.
	ErrNilRows = errors.New("sqlkit: rows can not be nil")

	// ErrIndexOutOfRange is returned when a 1-based column or parameter
	// index is zero, negative, or past the last column.
	ErrIndexOutOfRange = errors.New("sqlkit: index out of range")

	// ErrColumnNotFound is returned when a column name does not appear in
	// the result set.
	ErrColumnNotFound = errors.New("sqlkit: column not found")

	// ErrUnknownParamType is returned by SetTyped for a type tag it does
	// not know.
	ErrUnknownParamType = errors.New("sqlkit: unknown parameter type tag")
)
