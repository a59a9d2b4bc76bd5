package fock

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIndex is returned when an occupation list names the same state twice.
	ErrDuplicateIndex = errors.New("occupation list contains repeated index")

	// ErrIndexOutOfRange is returned for single-particle indices at or above MaxStates.
	ErrIndexOutOfRange = errors.New("single-particle index out of range")
)

/*
ConstructionError reports why a Determinant or Operator could not be built.
The underlying sentinel is reachable through errors.Is.
*/
type ConstructionError struct {
	Index uint
	cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%v: %d", e.cause, e.Index)
}

func (e *ConstructionError) Unwrap() error { return e.cause }

func duplicateIndex(j uint) error {
	return &ConstructionError{Index: j, cause: ErrDuplicateIndex}
}

func indexOutOfRange(j uint) error {
	return &ConstructionError{Index: j, cause: ErrIndexOutOfRange}
}
