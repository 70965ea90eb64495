package ir

import "fmt"

// InvariantError reports that a term of the wrong sort was found where
// the IR language requires a specific one (e.g. a Surface passed where
// a State was expected while building StateClipRect.Base).
type InvariantError struct {
	Wanted, Got Sort
	Where       string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ir: %s: wanted %s term, got %s", e.Where, e.Wanted, e.Got)
}

// NewInvariantError constructs an InvariantError for the given context.
func NewInvariantError(where string, wanted, got Sort) error {
	return &InvariantError{Wanted: wanted, Got: got, Where: where}
}
