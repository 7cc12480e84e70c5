package lens

import (
	"strconv"

	lenserrors "github.com/authcorp/lens/errors"
)

// IntegerDigits views an integer as its decimal string. Put parses the
// string back and fails with InvalidFormat if it is not an integer literal.
func IntegerDigits() Lens[int, string] {
	return Complete(
		func(n int) (string, error) {
			return strconv.Itoa(n), nil
		},
		func(_ int, digits string) (int, error) {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return 0, lenserrors.InvalidFormat(digits, err)
			}
			return n, nil
		},
	)
}
