// Package statement turns an invoice into StatementData: every performance
// is enriched with its play and its computed price and credits, then the
// results are aggregated into invoice totals.
//
// Everything here is a pure function of its inputs. Catalog and invoice are
// only read, so one catalog may back any number of concurrent computations.
package statement

import (
	"github.com/playbill/playbill/internal/domain"
	"github.com/playbill/playbill/internal/domain/pricing"
)

// Resolver maps a genre tag to its pricing strategy. *pricing.Registry
// implements it.
type Resolver interface {
	Resolve(genre string) (pricing.Strategy, error)
}

var _ Resolver = (*pricing.Registry)(nil)

// Enrich joins perf with its play from catalog and prices it with the
// strategy registered for the play's genre.
func Enrich(perf domain.Performance, catalog domain.Catalog, resolver Resolver) (domain.EnrichedPerformance, error) {
	play, err := catalog.Lookup(perf.PlayID)
	if err != nil {
		return domain.EnrichedPerformance{}, err
	}

	s, err := resolver.Resolve(play.Genre)
	if err != nil {
		return domain.EnrichedPerformance{}, err
	}

	return domain.EnrichedPerformance{
		Play:     play,
		Audience: perf.Audience,
		Price:    s.Price(perf.Audience),
		Credits:  s.Credits(perf.Audience),
	}, nil
}
