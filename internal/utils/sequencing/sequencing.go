// Package sequencing holds the formatting and token-derivation rules shared
// by the order and transaction identifier allocators.
package sequencing

import (
	"fmt"
	"regexp"
	"strings"
)

// SequenceWidth is the zero-padded width of generated sequence numbers.
const SequenceWidth = 3

var prefixPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// ValidPrefix reports whether s is a legal series prefix or suffix:
// uppercase letters, digits and hyphens, at least two characters.
func ValidPrefix(s string) bool {
	return len(s) >= 2 && prefixPattern.MatchString(s)
}

// ValidSuffix reports whether s is a legal series suffix. Suffixes may be a
// single character.
func ValidSuffix(s string) bool {
	return len(s) >= 1 && prefixPattern.MatchString(s)
}

// ZeroPad formats n with leading zeros to SequenceWidth digits. Numbers wider
// than the pad are kept intact.
func ZeroPad(n int64) string {
	return fmt.Sprintf("%0*d", SequenceWidth, n)
}

// NextOrderNumber returns the sequence value to issue next for a series.
// The max with startNumber covers series whose start was raised after some
// numbers were already issued.
func NextOrderNumber(lastNumber, startNumber int64) int64 {
	if startNumber < 1 {
		startNumber = 1
	}
	next := lastNumber + 1
	if startNumber > next {
		return startNumber
	}
	return next
}

// FormatOrderNumber builds "{PREFIX}-{NNN}" with an optional "-{SUFFIX}".
func FormatOrderNumber(prefix string, n int64, suffix string) string {
	number := prefix + "-" + ZeroPad(n)
	if suffix != "" {
		number += "-" + suffix
	}
	return number
}

// NameToken derives the uppercase first name used in transaction identifiers:
// the first whitespace-delimited word of the display name.
func NameToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}

// RoleToken maps a user role to its identifier abbreviation. Matching is by
// substring on the upper-cased role, ADMIN first, defaulting to EMP.
func RoleToken(role string) string {
	upper := strings.ToUpper(role)
	switch {
	case strings.Contains(upper, "ADMIN"):
		return "ADMIN"
	case strings.Contains(upper, "ACCOUNTANT"), upper == "ACC":
		return "ACC"
	default:
		return "EMP"
	}
}

// TypeToken maps a transaction type to its identifier abbreviation.
func TypeToken(transactionType string) string {
	if transactionType == "IMPREST" {
		return "IMP"
	}
	return "EXP"
}

// TransactionIDPrefix builds the bucket prefix a transaction sequence is
// reserved under: "{PREFIX}-{FIRSTNAME}-{ROLE}-{IMP|EXP}-".
func TransactionIDPrefix(seriesPrefix, nameToken, roleToken, typeToken string) string {
	return fmt.Sprintf("%s-%s-%s-%s-", seriesPrefix, nameToken, roleToken, typeToken)
}

// FormatTransactionID appends the zero-padded sequence to a bucket prefix.
func FormatTransactionID(idPrefix string, sequence int64) string {
	return idPrefix + ZeroPad(sequence)
}
