package auth

import (
	"strings"
	"unicode"
)

const specialChars = "!@$"

// ValidatePassword returns one message per violated rule, empty when the
// password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password should be at least 8 characters long")
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	if !upper {
		errs = append(errs, "Password should contain at least one uppercase letter")
	}
	if !lower {
		errs = append(errs, "Password should contain at least one lowercase letter")
	}
	if !digit {
		errs = append(errs, "Password should contain at least one number")
	}
	if !special {
		errs = append(errs, "Password should contain at least one special character")
	}
	return errs
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
