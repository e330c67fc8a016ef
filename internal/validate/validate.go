// Package validate holds the pure field predicates used by registration forms
// before a draft may be submitted. They are advisory gates for the client; the
// submission service does not re-enforce them.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// PasscodeLength is the exact length of a conference registration passcode.
const PasscodeLength = 6

// passcodeRegexp matches a canonical passcode: exactly six lowercase letters or digits.
// Filter and validator share this one alphabet so the filter can never produce
// input the validator rejects.
var passcodeRegexp = regexp.MustCompile(`^[a-z0-9]{6}$`)

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	zipRegexp      = regexp.MustCompile(`^[0-9]{5}$`)
	nonDigitRegexp = regexp.MustCompile(`[^0-9]`)
)

// FilterPasscode normalizes raw user input into the canonical passcode form:
// lowercased, stripped of any character outside [a-z0-9], truncated to six
// characters. Separators such as spaces and dashes are stripped, not counted.
func FilterPasscode(raw string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(raw) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
			if b.Len() == PasscodeLength {
				break
			}
		}
	}
	return b.String()
}

// IsPasscode reports whether value is a valid passcode: exactly six characters,
// each a lowercase letter or digit after lowercasing.
func IsPasscode(value string) bool {
	return passcodeRegexp.MatchString(strings.ToLower(value))
}

// IsMinLength2 reports whether the trimmed value is at least two characters
// long. Characters are counted as runes, so an accented name letter counts
// once.
func IsMinLength2(value string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= 2
}

// IsValidEmail reports whether value has a plausible email shape.
func IsValidEmail(value string) bool {
	return emailRegexp.MatchString(value)
}

// IsValidPhoneNumber reports whether value contains at least ten digits once
// all non-digit characters are stripped.
func IsValidPhoneNumber(value string) bool {
	digits := nonDigitRegexp.ReplaceAllString(value, "")
	return len(digits) >= 10
}

// IsValidZip reports whether value is exactly five digits.
func IsValidZip(value string) bool {
	return zipRegexp.MatchString(value)
}
