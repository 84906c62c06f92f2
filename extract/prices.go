package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vectra-e2e/models"
)

// ErrNoValidPrices is returned when none of the price texts held a number.
var ErrNoValidPrices = errors.New("no valid prices found")

// At most two fractional digits, so "49,9912" reads as 49.99.
var priceRe = regexp.MustCompile(`\d+(?:[.,]\d{1,2})?`)

// ParsePrice reads the first number out of a price text such as "99,99 zł/mies.".
func ParsePrice(text string) (float64, error) {
	raw := priceRe.FindString(NormalizeSpaces(text))
	if raw == "" {
		return 0, fmt.Errorf("no price pattern in %q", text)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return v, nil
}

// AggregatePrices parses one price per text and reduces them to the highest
// and lowest value. Texts that do not parse are listed in Skipped.
func AggregatePrices(texts []string) (models.PriceSummary, error) {
	var summary models.PriceSummary

	for _, text := range texts {
		price, err := ParsePrice(text)
		if err != nil {
			summary.Skipped = append(summary.Skipped, models.SkippedPrice{
				Text:   text,
				Reason: err.Error(),
			})
			continue
		}

		if len(summary.Samples) == 0 || price > summary.Highest {
			summary.Highest = price
		}
		if len(summary.Samples) == 0 || price < summary.Lowest {
			summary.Lowest = price
		}
		summary.Samples = append(summary.Samples, price)
	}

	if len(summary.Samples) == 0 {
		if len(texts) == 0 {
			return summary, fmt.Errorf("%w: no price texts given", ErrNoValidPrices)
		}
		return summary, fmt.Errorf("%w: %d texts, none parsed", ErrNoValidPrices, len(texts))
	}

	return summary, nil
}
