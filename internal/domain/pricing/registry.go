package pricing

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/playbill/playbill/internal/domain"
)

// ErrDuplicateGenre is returned when a genre is registered twice.
var ErrDuplicateGenre = errors.New("genre already registered")

// Registry maps genre tags to strategies. It is safe for concurrent use, but
// callers normally finish registration before computing statements.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// DefaultRegistry returns a new registry holding the built-in genres.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(NewTragedy())
	r.MustRegister(NewComedy())
	return r
}

// Register adds s under its genre tag.
func (r *Registry) Register(s Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	genre := s.Genre()
	if _, exists := r.strategies[genre]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateGenre, genre)
	}
	r.strategies[genre] = s
	return nil
}

// MustRegister is Register for static setup; it panics on a duplicate.
func (r *Registry) MustRegister(s Strategy) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Resolve returns the strategy for genre, or *domain.UnknownGenreError.
func (r *Registry) Resolve(genre string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[genre]
	if !ok {
		return nil, &domain.UnknownGenreError{Genre: genre}
	}
	return s, nil
}

// Genres returns the registered genre tags in sorted order.
func (r *Registry) Genres() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := make([]string, 0, len(r.strategies))
	for g := range r.strategies {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	return genres
}
