package validators

import (
	"errors"
	"strings"
)

// MinInterests is the smallest interest selection a child profile can have
const MinInterests = 3

var (
	ErrTooFewInterests   = errors.New("children must pick at least 3 interests")
	ErrDuplicateInterest = errors.New("duplicate interests provided")
)

// InterestsValidator checks the selection size and uniqueness. Whether
// every name exists in the controlled vocabulary is checked against the
// database by the caller
func InterestsValidator(names []string) error {
	if len(names) < MinInterests {
		return ErrTooFewInterests
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if seen[n] {
			return ErrDuplicateInterest
		}
		seen[n] = true
	}

	return nil
}
