package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownGenre labels movies whose dataset row carried no usable genre.
const UnknownGenre = "Unknown"

// Movie is a single catalog record. Immutable after load.
type Movie struct {
	Title  string
	Year   string
	Genres []string
	Rating float64
	Kind   string
	Plot   string
}

// DisplayTitle renders the title with its year when one is known.
func (m Movie) DisplayTitle() string {
	if strings.TrimSpace(m.Year) == "" {
		return m.Title
	}
	return m.Title + " (" + m.Year + ")"
}

// HasGenre reports whether the movie carries the genre, case-insensitively.
func (m Movie) HasGenre(genre string) bool {
	key := NormalizeGenre(genre)
	if key == "" {
		return false
	}
	for _, g := range m.Genres {
		if NormalizeGenre(g) == key {
			return true
		}
	}
	return false
}

// NormalizeGenre produces the lookup key for a genre label.
func NormalizeGenre(genre string) string {
	return strings.ToLower(strings.TrimSpace(genre))
}

var genreCaser = cases.Title(language.Und)

// DisplayGenre renders a genre label in display casing ("sci-fi" -> "Sci-Fi").
func DisplayGenre(genre string) string {
	trimmed := strings.TrimSpace(genre)
	if trimmed == "" {
		return UnknownGenre
	}
	return genreCaser.String(trimmed)
}

// SplitGenres splits a raw comma-separated genre field into trimmed labels.
// An empty field yields no labels.
func SplitGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		genres = append(genres, trimmed)
	}
	return genres
}
