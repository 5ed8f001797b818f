package fsa

import "fmt"

// ConfigurationError reports an automaton that is not ready to be
// determinized.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fsa: invalid configuration: %s", e.Reason)
}

// Is reports whether target is a ConfigurationError with the same reason, so
// errors.Is(err, ErrNoInitialState) works on wrapped values.
func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// ErrNoInitialState is returned by Determinize when SetInitialState was
// never called.
var ErrNoInitialState = &ConfigurationError{Reason: "initial state not set"}
