package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "all rules satisfied", password: "Password1!", want: true},
		{name: "exactly minimum length", password: "Abcde1?x", want: true},
		{name: "every special char accepted", password: `Aa1"xxxx`, want: true},
		{name: "braces count as special", password: "Aa1{xxxx", want: true},
		{name: "empty", password: "", want: false},
		{name: "too short", password: "Aa1!xyz", want: false},
		{name: "missing uppercase", password: "password1!", want: false},
		{name: "missing lowercase", password: "PASSWORD1!", want: false},
		{name: "missing digit", password: "Password!!", want: false},
		{name: "missing special", password: "Password12", want: false},
		{name: "underscore is not special", password: "Password1_", want: false},
		{name: "dash is not special", password: "Password1-", want: false},
		{name: "space is not special", password: "Password1 ", want: false},
		{name: "non-ascii letters do not count as upper", password: "ÄÖÜpass1!", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}

func TestValidatePassword_EachSpecialChar(t *testing.T) {
	t.Parallel()

	for _, r := range PasswordSpecialChars {
		password := "Abcdefg1" + string(r)
		assert.True(t, ValidatePassword(password), "expected %q to be accepted", password)
	}
}
