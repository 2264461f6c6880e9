package recommend_test

import (
	"testing"

	"cinebob/internal/catalog"
	"cinebob/internal/recommend"
	"cinebob/internal/testsupport"
)

func TestRecommendByGenre(t *testing.T) {
	svc := recommend.NewService(testsupport.NewCatalog(t), recommend.WithSeed(1))

	for i := 0; i < 20; i++ {
		movie, ok := svc.Recommend("crime")
		if !ok {
			t.Fatal("expected a crime recommendation")
		}
		if !movie.HasGenre("crime") {
			t.Fatalf("recommended %q lacks the requested genre", movie.Title)
		}
	}
}

func TestRecommendUnknownGenre(t *testing.T) {
	svc := recommend.NewService(testsupport.NewCatalog(t), recommend.WithSeed(1))

	if _, ok := svc.Recommend("opera"); ok {
		t.Fatal("expected no match for unknown genre")
	}
}

func TestRecommendEmptyGenreFallsBackToRandom(t *testing.T) {
	svc := recommend.NewService(testsupport.NewCatalog(t), recommend.WithSeed(7))

	movie, ok := svc.Recommend("  ")
	if !ok || movie.Title == "" {
		t.Fatalf("expected a random pick, got ok=%v movie=%+v", ok, movie)
	}
}

func TestPopularDefaultsAndCaps(t *testing.T) {
	svc := recommend.NewService(testsupport.NewCatalog(t),
		recommend.WithPopularLimits(2, 3))

	byDefault := svc.Popular(0)
	if len(byDefault) != 2 {
		t.Fatalf("Popular(0) returned %d movies, want default 2", len(byDefault))
	}
	if byDefault[0].Title != "The Quiet Harbor" || byDefault[1].Title != "Paper Lanterns" {
		t.Fatalf("Popular(0) order = %v", byDefault)
	}

	capped := svc.Popular(100)
	if len(capped) != 3 {
		t.Fatalf("Popular(100) returned %d movies, want cap 3", len(capped))
	}
}

func TestPopularNeverExceedsCatalog(t *testing.T) {
	cat := testsupport.NewCatalog(t, catalog.Movie{Title: "Only One", Rating: 5})
	svc := recommend.NewService(cat)

	if got := svc.Popular(10); len(got) != 1 {
		t.Fatalf("Popular(10) on single-movie catalog = %d movies", len(got))
	}
}

func TestRandomOnEmptyCatalog(t *testing.T) {
	svc := recommend.NewService(catalog.New(nil))

	if _, ok := svc.Random(); ok {
		t.Fatal("Random on empty catalog should report false")
	}
	if _, ok := svc.Recommend(""); ok {
		t.Fatal("Recommend on empty catalog should report false")
	}
}

func TestGenresComeFromCatalog(t *testing.T) {
	svc := recommend.NewService(testsupport.NewCatalog(t))

	genres := svc.Genres()
	if len(genres) != 4 {
		t.Fatalf("genres = %v", genres)
	}
	if genres[0] != "Action" || genres[len(genres)-1] != "Romance" {
		t.Fatalf("genres = %v", genres)
	}
}
