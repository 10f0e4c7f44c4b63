// Package validate holds the pure input predicates shared by the contact,
// auth and sell flows. The patterns intentionally reproduce the original
// site's checks, permissiveness included; they are UI-parity rules, not
// security controls.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length rules carried over from the original forms.
const (
	MinFullNameLen    = 2
	MinPasswordLen    = 6
	MinMessageLen     = 10
	MaxMessageLen     = 1000
	MaxTitleLen       = 100
	MaxDescriptionLen = 1000
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	// Vietnamese mobile/landline shape: leading 0 or +84, then 9-10 digits,
	// no formatting characters. Kept separate from Phone on purpose.
	vnPhoneRe = regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)
)

// Email reports whether s looks like local@domain.tld: no whitespace, one @,
// at least one dot after it. Deliberately permissive beyond that.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone accepts an empty string (the field is optional; the caller decides
// whether empty is allowed) and otherwise requires digits, spaces, hyphens,
// plus signs and parentheses only.
func Phone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}

// VNPhone validates the stricter Vietnamese phone shape used by the sell flow.
func VNPhone(s string) bool {
	return vnPhoneRe.MatchString(s)
}

// Strength buckets for PasswordStrength.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "none"
	}
}

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// PasswordStrength scores a password the way the original registration page
// did. One point each for: length >= 8, a digit, a symbol from the fixed
// set, both an upper- and a lower-case letter. Under 6 characters (or a
// score <= 1) is weak, 2-3 is medium, 4 is strong.
func PasswordStrength(s string) Strength {
	if s == "" {
		return StrengthNone
	}
	if Length(s) < MinPasswordLen {
		return StrengthWeak
	}

	score := 0
	if Length(s) >= 8 {
		score++
	}
	if strings.ContainsAny(s, "0123456789") {
		score++
	}
	if strings.ContainsAny(s, passwordSymbols) {
		score++
	}
	hasLower := strings.ContainsFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' })
	hasUpper := strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	if hasLower && hasUpper {
		score++
	}

	switch {
	case score <= 1:
		return StrengthWeak
	case score <= 3:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}

// Required reports whether s is non-empty after trimming.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Length counts characters, not bytes. The original forms measured field
// lengths in characters, and Vietnamese text is multibyte in UTF-8; every
// threshold comparison must go through this.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
