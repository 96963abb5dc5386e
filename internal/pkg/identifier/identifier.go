// Package identifier formats the human-readable numbers handed out by the
// portal: registration numbers, roll numbers, membership numbers and
// membership card numbers. Formatting is kept separate from allocation so the
// output stays byte-compatible with numbers already issued.
package identifier

import "fmt"

// Sequence scope keys used by the allocator. Year- and band-qualified scopes
// are built with the helper functions below.
const (
	ScopeMembership = "membership"
)

// RegistrationScope returns the sequence scope for registration numbers of a
// given year.
func RegistrationScope(year int) string {
	return fmt.Sprintf("registration:%d", year)
}

// CardScope returns the sequence scope for membership card numbers of a given
// year.
func CardScope(year int) string {
	return fmt.Sprintf("card:%d", year)
}

// RollScope returns the sequence scope for roll numbers in a band.
func RollScope(band int) string {
	return fmt.Sprintf("roll:%d", band)
}

// RegistrationNumber formats a student registration number, e.g.
// MWSS20250007. The sequence is zero-padded to four digits; wider sequences
// keep all their digits.
func RegistrationNumber(year int, seq int64) string {
	return fmt.Sprintf("MWSS%d%04d", year, seq)
}

// RegistrationPrefix returns the prefix all registration numbers of a year
// share, used for count queries.
func RegistrationPrefix(year int) string {
	return fmt.Sprintf("MWSS%d", year)
}

// MembershipNumber formats a membership number, e.g. MWSS-M0001.
func MembershipNumber(seq int64) string {
	return fmt.Sprintf("MWSS-M%04d", seq)
}

// CardNumber formats a membership card number, e.g. MC20250012.
func CardNumber(year int, seq int64) string {
	return fmt.Sprintf("MC%d%04d", year, seq)
}

// CardPrefix returns the prefix all card numbers of a year share.
func CardPrefix(year int) string {
	return fmt.Sprintf("MC%d", year)
}

// BandPrefix maps a class number to its roll-number band: classes 1-4 get
// band 100, 5-8 get 500 and 9-12 get 900. Out-of-range classes fall back to
// band 100, matching numbers issued before validation was added.
func BandPrefix(classNumber int) int {
	switch {
	case classNumber >= 5 && classNumber <= 8:
		return 500
	case classNumber >= 9 && classNumber <= 12:
		return 900
	default:
		return 100
	}
}

// RollNumber formats a roll number within a band, e.g. 500003. The sequence
// is zero-padded to three digits with no truncation past that width.
func RollNumber(band int, seq int64) string {
	return fmt.Sprintf("%d%03d", band, seq)
}
