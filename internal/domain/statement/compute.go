package statement

import "github.com/playbill/playbill/internal/domain"

// Compute builds the StatementData for invoice. The first performance that
// cannot be priced aborts the invoice; no partial statement is returned.
func Compute(invoice domain.Invoice, catalog domain.Catalog, resolver Resolver) (domain.StatementData, error) {
	enriched := make([]domain.EnrichedPerformance, 0, len(invoice.Performances))
	for _, perf := range invoice.Performances {
		ep, err := Enrich(perf, catalog, resolver)
		if err != nil {
			return domain.StatementData{}, err
		}
		enriched = append(enriched, ep)
	}
	return Aggregate(invoice.Customer, enriched), nil
}

// Calculator binds a catalog and a resolver for computing many invoices.
type Calculator struct {
	catalog  domain.Catalog
	resolver Resolver
}

func NewCalculator(catalog domain.Catalog, resolver Resolver) *Calculator {
	return &Calculator{catalog: catalog, resolver: resolver}
}

func (c *Calculator) Compute(invoice domain.Invoice) (domain.StatementData, error) {
	return Compute(invoice, c.catalog, c.resolver)
}
