package layout

import "errors"

var (
	// ErrInvalidLabel is returned for a state label that is not "q" followed by a number.
	ErrInvalidLabel = errors.New("invalid state label")

	// ErrInvalidSymbol is returned for a transition char that is neither one character nor the
	// epsilon marker.
	ErrInvalidSymbol = errors.New("invalid transition symbol")

	// ErrNoTransitions is returned when converting a layout without transitions.
	ErrNoTransitions = errors.New("no transitions added")
)
