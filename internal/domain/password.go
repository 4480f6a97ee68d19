package domain

import "strings"

// PasswordSpecialChars is the set of punctuation accepted as a special character.
const PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// PasswordMinLength is the minimum accepted password length in bytes.
const PasswordMinLength = 8

// PasswordPolicyMessage describes the policy to API clients.
const PasswordPolicyMessage = "Password must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, one number, and one special character."

// ValidatePassword reports whether password satisfies the password policy:
// at least PasswordMinLength bytes with one ASCII uppercase letter,
// one ASCII lowercase letter, one digit and one character from
// PasswordSpecialChars.
func ValidatePassword(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}

	return upper && lower && digit && special
}
