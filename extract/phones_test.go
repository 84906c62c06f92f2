package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhoneNumbers(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "country code and dashes",
			text:     "Zadzwoń: +48 123 456 789 lub 987-654-321",
			expected: []string{"123456789", "987654321"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
		{
			name:     "nbsp entity",
			text:     "tel.&nbsp;600&nbsp;500&nbsp;400",
			expected: []string{"600500400"},
		},
		{
			name:     "nbsp rune",
			text:     "Infolinia\u00a0801\u00a0500\u00a0500",
			expected: []string{"801500500"},
		},
		{
			name:     "duplicates collapse",
			text:     "600 500 400, +48 600-500-400, 600500400",
			expected: []string{"600500400"},
		},
		{
			name:     "country code without separator",
			text:     "48600500400",
			expected: []string{"600500400"},
		},
		{
			name:     "too few digits",
			text:     "kod 12 345 678",
			expected: []string{},
		},
		{
			name:     "several contact cards",
			text:     "Obsługa klienta 221 000 000 Biznes +48 58 524 00 00 Sprzedaż 222 333 444",
			expected: []string{"221000000", "222333444"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPhoneNumbers(tc.text)
			assert.Equal(t, tc.expected, got.Sorted())
		})
	}
}

func TestExtractPhoneNumbersIdempotent(t *testing.T) {
	text := "Zadzwoń: +48 123 456 789 lub 987-654-321"
	assert.Equal(t, ExtractPhoneNumbers(text), ExtractPhoneNumbers(text))
}

func TestContainsPhoneNumber(t *testing.T) {
	set := ExtractPhoneNumbers("tel. 600 500 400")

	assert.True(t, set.Contains("600500400"))
	assert.True(t, ContainsPhoneNumber(set, "600500400"))
	assert.True(t, ContainsPhoneNumber(set, "+48 600-500-400"))
	assert.False(t, ContainsPhoneNumber(set, "600500401"))
	assert.False(t, ContainsPhoneNumber(set, "not a number"))
	assert.False(t, ContainsPhoneNumber(ExtractPhoneNumbers(""), "600500400"))
}

func TestNormalizePhoneNumber(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"600500400", "600500400", true},
		{" +48 600-500-400 ", "600500400", true},
		{"48600500400", "600500400", true},
		{"600 500 40", "", false},
		{"60050040a", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		got, ok := NormalizePhoneNumber(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "123 456 789", FormatPhoneNumber("123456789"))
	assert.Equal(t, "12345", FormatPhoneNumber("12345"))
}
