// Package validation contains format checks for account credentials.
package validation

import (
	"regexp"

	"github.com/walterobrien/authsim/internal/shared"
)

// emailRe matches a local part starting with a lowercase letter followed by
// letters, digits, underscores or dots, then an all-lowercase domain with a
// single dot. The pattern is anchored at the start only.
var emailRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9_.]+@[a-z]+\.[a-z]+`)

var (
	digitRe = regexp.MustCompile(`\d`)
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
)

// Email returns the input unchanged if it is a well-formed address,
// or shared.ErrInvalidEmail otherwise.
func Email(email string) (string, error) {
	if !emailRe.MatchString(email) {
		return "", shared.ErrInvalidEmail
	}
	return email, nil
}

// Password returns the input unchanged if it satisfies the complexity rules:
// at least 8 characters, one digit, one uppercase and one lowercase letter.
// The rules are checked in that order and the first failing one is reported.
func Password(password string) (string, error) {
	if len(password) < 8 {
		return "", shared.ErrPasswordTooShort
	}
	if !digitRe.MatchString(password) {
		return "", shared.ErrPasswordNoDigit
	}
	if !upperRe.MatchString(password) {
		return "", shared.ErrPasswordNoUpper
	}
	if !lowerRe.MatchString(password) {
		return "", shared.ErrPasswordNoLower
	}
	return password, nil
}
