package auth

import (
	"strings"
	"unicode"
)

const passwordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// ValidatePassword is the single policy predicate, applied at signup and at
// reset alike: at least 8 characters with an uppercase letter, a lowercase
// letter, a digit and a punctuation symbol.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
