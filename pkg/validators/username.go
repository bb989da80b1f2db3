package validators

import "errors"

var (
	ErrUsernameEmpty   = errors.New("no username provided")
	ErrUsernameTooLong = errors.New("username must be at most 50 characters long")
	ErrUsernameInvalid = errors.New("username may only contain letters, digits, dots and underscores")
)

func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	if len(u) > 50 {
		return ErrUsernameTooLong
	}

	for _, r := range u {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_':
		default:
			return ErrUsernameInvalid
		}
	}

	return nil
}
