package catalog

import (
	"sort"
)

// Catalog is an ordered, read-only collection of movies with a genre index
// built once at construction.
type Catalog struct {
	movies  []Movie
	byGenre map[string][]int
	genres  []string
}

// New builds a catalog from the given records. Movies without a title are
// skipped; empty genre lists are normalized to the unknown label. The input
// slice is not retained.
func New(movies []Movie) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, 0, len(movies)),
		byGenre: make(map[string][]int),
	}

	display := make(map[string]string)
	for _, movie := range movies {
		if movie.Title == "" {
			continue
		}
		if len(movie.Genres) == 0 {
			movie.Genres = []string{UnknownGenre}
		}
		idx := len(c.movies)
		c.movies = append(c.movies, movie)
		seen := make(map[string]struct{}, len(movie.Genres))
		for _, genre := range movie.Genres {
			key := NormalizeGenre(genre)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			c.byGenre[key] = append(c.byGenre[key], idx)
			if _, ok := display[key]; !ok {
				display[key] = DisplayGenre(genre)
			}
		}
	}

	c.genres = make([]string, 0, len(display))
	for _, label := range display {
		c.genres = append(c.genres, label)
	}
	sort.Strings(c.genres)
	return c
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at the given table position.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// All returns the movies in table order. Callers must not mutate the result.
func (c *Catalog) All() []Movie {
	return c.movies
}

// Genres returns the distinct genre labels in display casing, sorted.
func (c *Catalog) Genres() []string {
	return c.genres
}

// ByGenre returns the table positions of movies carrying the genre,
// case-insensitively, in table order.
func (c *Catalog) ByGenre(genre string) []int {
	return c.byGenre[NormalizeGenre(genre)]
}

// TopByRating returns up to n movies ordered by descending rating, ties
// broken by table order. n is clamped to [0, Len].
func (c *Catalog) TopByRating(n int) []Movie {
	if n < 0 {
		n = 0
	}
	if n > len(c.movies) {
		n = len(c.movies)
	}
	order := make([]int, len(c.movies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.movies[order[a]].Rating > c.movies[order[b]].Rating
	})
	top := make([]Movie, 0, n)
	for _, idx := range order[:n] {
		top = append(top, c.movies[idx])
	}
	return top
}
