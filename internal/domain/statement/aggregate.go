package statement

import "github.com/playbill/playbill/internal/domain"

// Aggregate sums prices and credits over performances. The returned
// StatementData owns a copy of the slice.
func Aggregate(customer string, performances []domain.EnrichedPerformance) domain.StatementData {
	data := domain.StatementData{
		Customer:     customer,
		Performances: make([]domain.EnrichedPerformance, len(performances)),
	}
	copy(data.Performances, performances)

	for _, p := range data.Performances {
		data.TotalPrice += p.Price
		data.TotalCredits += p.Credits
	}
	return data
}
