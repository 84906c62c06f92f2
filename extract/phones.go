package extract

import (
	"regexp"
	"strings"

	"vectra-e2e/models"
)

// Optional "+48" prefix, then three groups of three digits split by an
// optional space or dash.
var phoneRe = regexp.MustCompile(`\+?4?8?[\s-]?(\d{3}[\s-]?\d{3}[\s-]?\d{3})`)

var separatorStripper = strings.NewReplacer(" ", "", "-", "", "\t", "", "\n", "", "\r", "", "\f", "")

// ExtractPhoneNumbers returns every distinct 9-digit Polish phone number
// found in text.
func ExtractPhoneNumbers(text string) models.PhoneNumberSet {
	found := make(models.PhoneNumberSet)

	for _, m := range phoneRe.FindAllStringSubmatch(NormalizeSpaces(text), -1) {
		number := separatorStripper.Replace(m[1])
		if len(number) == 9 {
			found.Add(number)
		}
	}

	return found
}

// NormalizePhoneNumber reduces "+48 600-500-400", "48600500400" or
// "600 500 400" to "600500400". ok is false for anything that is not a
// 9-digit number once separators and the country code are gone.
func NormalizePhoneNumber(raw string) (number string, ok bool) {
	n := separatorStripper.Replace(NormalizeSpaces(strings.TrimSpace(raw)))
	n = strings.TrimPrefix(n, "+")
	if len(n) == 11 && strings.HasPrefix(n, "48") {
		n = n[2:]
	}
	if len(n) != 9 {
		return "", false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return n, true
}

// ContainsPhoneNumber reports whether expected, in any accepted spelling, is
// in set.
func ContainsPhoneNumber(set models.PhoneNumberSet, expected string) bool {
	n, ok := NormalizePhoneNumber(expected)
	if !ok {
		return false
	}
	return set.Contains(n)
}

// FormatPhoneNumber renders "123456789" as "123 456 789", the way the site
// prints it on contact cards.
func FormatPhoneNumber(number string) string {
	if len(number) != 9 {
		return number
	}
	return number[:3] + " " + number[3:6] + " " + number[6:]
}
