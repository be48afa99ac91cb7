package service

import (
	"strings"
	"unicode"

	"github.com/paroquia-on/server/models"
)

// passwordSpecialSet is the fixed special-character class accepted by the
// password policy.
const passwordSpecialSet = "!@#$%&*"

// EvaluatePassword scores a candidate password against five independent
// character-class rules: minimum length of 8, an uppercase letter, a
// lowercase letter, a digit, and one character from passwordSpecialSet.
// The score is the count of satisfied rules; every rule is evaluated, with
// no short-circuiting.
//
// The function is pure and shared unchanged by the login, change and reset
// flows. A password passes the policy when [models.PasswordCheck.Acceptable]
// reports true, i.e. at most one class is missing.
func EvaluatePassword(password string) models.PasswordCheck {
	requirements := models.PasswordRequirements{
		Length:  len(password) >= 8,
		Special: strings.ContainsAny(password, passwordSpecialSet),
	}

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			requirements.Upper = true
		case unicode.IsLower(r):
			requirements.Lower = true
		case unicode.IsDigit(r):
			requirements.Number = true
		}
	}

	score := 0
	for _, ok := range []bool{
		requirements.Length,
		requirements.Upper,
		requirements.Lower,
		requirements.Number,
		requirements.Special,
	} {
		if ok {
			score++
		}
	}

	return models.PasswordCheck{Requirements: requirements, Score: score}
}
