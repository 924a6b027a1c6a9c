package customer

import "errors"

const maxPhoneLength = 15

var (
	ErrPhoneNotDigits = errors.New("phone number must contain only digits")
	ErrPhoneTooLong   = errors.New("phone number must be at most 15 digits")
	ErrPhoneEmpty     = errors.New("phone number must not be empty")
)

// NormalizePhone validates the lookup key the same way the POS input
// does: digits only, at most 15 of them. It rejects rather than
// strips, so a value with any non-digit character is an error.
func NormalizePhone(raw string) (string, error) {
	if raw == "" {
		return "", ErrPhoneEmpty
	}

	if len(raw) > maxPhoneLength {
		return "", ErrPhoneTooLong
	}

	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", ErrPhoneNotDigits
		}
	}

	return raw, nil
}
