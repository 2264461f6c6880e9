package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"cinebob/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "data", "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return st
}

func TestReplaceAllRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	movies := []catalog.Movie{
		{Title: "The Quiet Harbor", Year: "1994", Genres: []string{"Drama"}, Rating: 9.3, Kind: "Film", Plot: "Film R rated."},
		{Title: "Night Circuit", Year: "2008", Genres: []string{"Action", "Crime", "Drama"}, Rating: 9.0, Kind: "Film"},
		{Title: "Station Nine", Rating: 7.8},
	}
	if err := st.ReplaceAll(ctx, movies); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != len(movies) {
		t.Fatalf("Count = %d, want %d", count, len(movies))
	}

	got, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != len(movies) {
		t.Fatalf("List returned %d movies, want %d", len(got), len(movies))
	}
	if got[0].Title != "The Quiet Harbor" || got[0].Rating != 9.3 {
		t.Fatalf("first movie = %+v", got[0])
	}
	if want := []string{"Action", "Crime", "Drama"}; !reflect.DeepEqual(got[1].Genres, want) {
		t.Fatalf("genres round trip = %v, want %v", got[1].Genres, want)
	}
	if got[2].Year != "" || got[2].Kind != "" || got[2].Plot != "" {
		t.Fatalf("empty optional fields should stay empty: %+v", got[2])
	}
}

func TestReplaceAllReplacesPreviousRows(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first := []catalog.Movie{
		{Title: "One", Rating: 5},
		{Title: "Two", Rating: 6},
	}
	if err := st.ReplaceAll(ctx, first); err != nil {
		t.Fatalf("ReplaceAll first: %v", err)
	}

	second := []catalog.Movie{{Title: "Three", Rating: 7}}
	if err := st.ReplaceAll(ctx, second); err != nil {
		t.Fatalf("ReplaceAll second: %v", err)
	}

	got, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Three" {
		t.Fatalf("List after replace = %v", got)
	}
}

func TestCountEmptyStore(t *testing.T) {
	st := openTestStore(t)

	count, err := st.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("Count = %d, want 0", count)
	}
}

func TestCheckHealth(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.ReplaceAll(ctx, []catalog.Movie{{Title: "One", Rating: 5}}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	health, err := st.CheckHealth(ctx)
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable || !health.TableExists {
		t.Fatalf("health = %+v", health)
	}
	if !health.IntegrityCheck {
		t.Fatalf("integrity check failed: %+v", health)
	}
	if health.TotalMovies != 1 {
		t.Fatalf("health movies = %d, want 1", health.TotalMovies)
	}
}

func TestOpenRejectsFutureSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := st.db.Exec(`UPDATE schema_version SET version = version + 1`); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch error, got %v", err)
	}
}
