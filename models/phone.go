package models

import "sort"

// PhoneNumberSet holds normalized 9-digit phone numbers.
type PhoneNumberSet map[string]struct{}

func (s PhoneNumberSet) Add(number string) {
	s[number] = struct{}{}
}

// Contains reports whether number is in the set. number must already be
// normalized (9 digits, no separators, no country code).
func (s PhoneNumberSet) Contains(number string) bool {
	_, ok := s[number]
	return ok
}

func (s PhoneNumberSet) Len() int {
	return len(s)
}

// Sorted returns the numbers in ascending order, for logging and storage.
func (s PhoneNumberSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
