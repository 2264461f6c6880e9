package recommend

import (
	"math/rand"
	"sync"
	"time"

	"cinebob/internal/catalog"
)

// Service answers the chat commands from a fixed catalog.
type Service struct {
	cat            *catalog.Catalog
	popularDefault int
	popularMax     int

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes service construction.
type Option func(*Service)

// WithPopularLimits sets the default and maximum count for Popular.
func WithPopularLimits(defaultCount, maxCount int) Option {
	return func(s *Service) {
		if defaultCount > 0 {
			s.popularDefault = defaultCount
		}
		if maxCount > 0 {
			s.popularMax = maxCount
		}
	}
}

// WithSeed fixes the random source, for deterministic tests.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewService builds a service over the catalog.
func NewService(cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		cat:            cat,
		popularDefault: 5,
		popularMax:     25,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the underlying catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// PopularDefault returns the count Popular uses when none is given.
func (s *Service) PopularDefault() int {
	return s.popularDefault
}

// PopularMax returns the largest count a caller may request.
func (s *Service) PopularMax() int {
	return s.popularMax
}

// Recommend picks uniformly at random among movies carrying the genre, or
// among all movies when genre is empty. The boolean is false when nothing
// matches.
func (s *Service) Recommend(genre string) (catalog.Movie, bool) {
	if catalog.NormalizeGenre(genre) == "" {
		return s.Random()
	}
	indexes := s.cat.ByGenre(genre)
	if len(indexes) == 0 {
		return catalog.Movie{}, false
	}
	return s.cat.At(indexes[s.intn(len(indexes))]), true
}

// Genres returns the distinct genre labels present in the catalog.
func (s *Service) Genres() []string {
	return s.cat.Genres()
}

// Popular returns the top-n movies by rating. n <= 0 selects the default;
// n above the configured maximum is capped; the result never exceeds the
// catalog size.
func (s *Service) Popular(n int) []catalog.Movie {
	if n <= 0 {
		n = s.popularDefault
	}
	if n > s.popularMax {
		n = s.popularMax
	}
	return s.cat.TopByRating(n)
}

// Random returns one uniformly random movie. The boolean is false only for
// an empty catalog.
func (s *Service) Random() (catalog.Movie, bool) {
	if s.cat.Len() == 0 {
		return catalog.Movie{}, false
	}
	return s.cat.At(s.intn(s.cat.Len())), true
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
