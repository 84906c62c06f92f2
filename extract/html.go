package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextsBySelector parses an HTML fragment and returns the text content of
// every element matching the CSS selector, in document order.
func TextsBySelector(html, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var texts []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	return texts, nil
}

// TextOf returns the concatenated text of an HTML fragment.
func TextOf(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return doc.Text(), nil
}
