package mocks

import "github.com/phrazzld/booking-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// Without CompareFn it accepts exactly the hashes MockUserStore produces.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
