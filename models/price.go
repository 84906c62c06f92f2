package models

// PriceSummary is the min/max reduction of one set of price texts.
type PriceSummary struct {
	Highest float64
	Lowest  float64
	Samples []float64
	Skipped []SkippedPrice
}

// SkippedPrice records a price text that could not be turned into a number.
type SkippedPrice struct {
	Text   string
	Reason string
}
