// Package pricing holds the genre-specific price and credit rules and the
// registry that resolves a genre tag to its rule.
//
// Adding a genre means writing one Strategy and registering it; existing
// strategies are never edited.
package pricing

// Strategy computes price (in cents) and loyalty credits for a single
// performance of one genre.
type Strategy interface {
	Genre() string
	Price(audience int) int64
	Credits(audience int) int64
}

// BaseCredits is the credit rule shared by every genre: one credit per seat
// above 30.
func BaseCredits(audience int) int64 {
	return int64(max(audience-30, 0))
}

// BaseStrategy carries the genre tag and the default credit rule. Concrete
// strategies embed it and override Credits when their rule differs.
type BaseStrategy struct {
	genre string
}

// NewBaseStrategy creates a BaseStrategy for genre.
func NewBaseStrategy(genre string) BaseStrategy {
	return BaseStrategy{genre: genre}
}

// Genre returns the genre tag this strategy prices.
func (s BaseStrategy) Genre() string { return s.genre }

// Credits applies BaseCredits.
func (s BaseStrategy) Credits(audience int) int64 { return BaseCredits(audience) }
