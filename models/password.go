package models

// PasswordRequirements is the per-rule breakdown of a password policy
// evaluation. Each field reports whether the candidate password satisfied
// the corresponding character-class rule.
type PasswordRequirements struct {
	// Length is true when the password is at least 8 characters long.
	Length bool `json:"length"`

	// Upper is true when the password contains an uppercase letter.
	Upper bool `json:"upper"`

	// Lower is true when the password contains a lowercase letter.
	Lower bool `json:"lower"`

	// Number is true when the password contains a digit.
	Number bool `json:"number"`

	// Special is true when the password contains one of ! @ # $ % & *.
	Special bool `json:"special"`
}

// PasswordCheck is the result of scoring a candidate password against the
// five independent policy rules. Score is the count of satisfied rules
// (0..5); a password is acceptable when Score >= 4.
type PasswordCheck struct {
	Requirements PasswordRequirements `json:"requirements"`
	Score        int                  `json:"score"`
}

// Acceptable reports whether the password passes the policy gate used by
// the change and reset flows (at most one missing character class).
func (c PasswordCheck) Acceptable() bool {
	return c.Score >= 4
}
