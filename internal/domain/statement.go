package domain

// EnrichedPerformance is a performance joined with its play and the price and
// credits computed for it. Price is in cents.
type EnrichedPerformance struct {
	Play     Play  `json:"play"`
	Audience int   `json:"audience"`
	Price    int64 `json:"price"`
	Credits  int64 `json:"credits"`
}

// StatementData is the calculated side of a statement. TotalPrice and
// TotalCredits always equal the sums over Performances; only the aggregator
// sets them.
type StatementData struct {
	Customer     string                `json:"customer"`
	Performances []EnrichedPerformance `json:"performances"`
	TotalPrice   int64                 `json:"total_price"`
	TotalCredits int64                 `json:"total_credits"`
}
