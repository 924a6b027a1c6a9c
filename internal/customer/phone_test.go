package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      string
		expectedError error
	}{
		{
			name:     "plain digits",
			raw:      "0599999999",
			expected: "0599999999",
		},
		{
			name:     "max length",
			raw:      strings.Repeat("7", 15),
			expected: strings.Repeat("7", 15),
		},
		{
			name:          "empty",
			raw:           "",
			expectedError: ErrPhoneEmpty,
		},
		{
			name:          "too long",
			raw:           strings.Repeat("7", 16),
			expectedError: ErrPhoneTooLong,
		},
		{
			name:          "dashes are rejected, not stripped",
			raw:           "059-999-9999",
			expectedError: ErrPhoneNotDigits,
		},
		{
			name:          "plus prefix",
			raw:           "+970599999999",
			expectedError: ErrPhoneNotDigits,
		},
		{
			name:          "spaces",
			raw:           "059 999",
			expectedError: ErrPhoneNotDigits,
		},
		{
			name:          "letters",
			raw:           "059abc",
			expectedError: ErrPhoneNotDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := NormalizePhone(tt.raw)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}
