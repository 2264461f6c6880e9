package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"cinebob/internal/catalog"
)

// RawCSV is a small raw dataset in the upstream export format, covering
// comma separated genres, a blank rating row, and a blank genre row.
const RawCSV = `Name,Date,Rate,Genre,Type,Duration,Certificate,Violence,Frightening
The Quiet Harbor,1994,9.3,Drama,Film,142 min,R,Moderate,Mild
Night Circuit,2008,9.0,"Action, Crime, Drama",Film,152 min,PG-13,Severe,Moderate
Paper Lanterns,1972,9.2,"Crime, Drama",Film,175 min,R,Severe,Moderate
Broken Signal,2019,,Thriller,Film,101 min,PG-13,Mild,Mild
Station Nine,2015,7.8,,Series,45 min,TV-14,None,Mild
Glass Orchard,1999,8.7,"Drama, Romance",Film,122 min,PG,None,None
`

// WriteRawCSV writes the standard raw dataset fixture into dir and returns
// its path.
func WriteRawCSV(t testing.TB, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "movies.csv")
	if err := os.WriteFile(path, []byte(RawCSV), 0o644); err != nil {
		t.Fatalf("write raw csv fixture: %v", err)
	}
	return path
}

// Movies returns a fixed movie set used across catalog and handler tests.
func Movies() []catalog.Movie {
	return []catalog.Movie{
		{Title: "The Quiet Harbor", Year: "1994", Genres: []string{"Drama"}, Rating: 9.3, Kind: "Film", Plot: "Film R rated, 142 min duration."},
		{Title: "Night Circuit", Year: "2008", Genres: []string{"Action", "Crime", "Drama"}, Rating: 9.0, Kind: "Film", Plot: "Film PG-13 rated, 152 min duration."},
		{Title: "Paper Lanterns", Year: "1972", Genres: []string{"Crime", "Drama"}, Rating: 9.2, Kind: "Film", Plot: "Film R rated, 175 min duration."},
		{Title: "Glass Orchard", Year: "1999", Genres: []string{"Drama", "Romance"}, Rating: 8.7, Kind: "Film", Plot: "Film PG rated, 122 min duration."},
	}
}

// NewCatalog builds a catalog from the provided movies, defaulting to the
// standard fixture set when none are given.
func NewCatalog(t testing.TB, movies ...catalog.Movie) *catalog.Catalog {
	t.Helper()

	if len(movies) == 0 {
		movies = Movies()
	}
	return catalog.New(movies)
}
