package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLabel converts an editor label such as "q12" to the engine state 12. Only the canonical
// form Label produces is accepted, so "q05" and "q+5" are rejected rather than merged with "q5".
func ParseLabel(label string) (int, error) {
	digits, ok := strings.CutPrefix(label, "q")
	if !ok || !canonical(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return n, nil
}

func canonical(digits string) bool {
	if digits == "" || (digits[0] == '0' && len(digits) > 1) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Label is the inverse of ParseLabel.
func Label(state int) string {
	return "q" + strconv.Itoa(state)
}
