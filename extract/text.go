// Package extract turns captured page text into prices and phone numbers.
// Nothing in here touches the browser; callers capture the text first.
package extract

import "strings"

var nbspReplacer = strings.NewReplacer("&nbsp;", " ", "\u00a0", " ")

// NormalizeSpaces replaces non-breaking spaces, both the HTML entity and the
// decoded rune, with ordinary spaces.
func NormalizeSpaces(text string) string {
	return nbspReplacer.Replace(text)
}
