package dataset

import (
	"strings"
	"testing"
)

func TestInspectShapeAndMissing(t *testing.T) {
	inspection, err := Inspect(strings.NewReader(rawExport))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if inspection.Rows != 5 {
		t.Fatalf("rows = %d, want 5", inspection.Rows)
	}
	if len(inspection.Columns) != 9 {
		t.Fatalf("columns = %d, want 9", len(inspection.Columns))
	}
	if !inspection.GenreColumn {
		t.Fatal("genre column should be detected")
	}

	missing := make(map[string]int, len(inspection.Columns))
	for _, col := range inspection.Columns {
		missing[col.Name] = col.Missing
	}
	if missing["Rate"] != 1 {
		t.Fatalf("Rate missing = %d, want 1", missing["Rate"])
	}
	if missing["Genre"] != 1 {
		t.Fatalf("Genre missing = %d, want 1", missing["Genre"])
	}
	if missing["Name"] != 0 {
		t.Fatalf("Name missing = %d, want 0", missing["Name"])
	}
}

func TestInspectSamplesCapped(t *testing.T) {
	inspection, err := Inspect(strings.NewReader(rawExport))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	for _, col := range inspection.Columns {
		if len(col.Samples) > sampleLimit {
			t.Fatalf("column %s has %d samples", col.Name, len(col.Samples))
		}
	}
}

func TestInspectGenreFrequencies(t *testing.T) {
	inspection, err := Inspect(strings.NewReader(rawExport))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if len(inspection.TopGenres) == 0 {
		t.Fatal("expected genre frequencies")
	}
	top := inspection.TopGenres[0]
	if top.Genre != "Drama" || top.Count != 2 {
		t.Fatalf("top genre = %+v, want Drama x2", top)
	}

	want := []string{"Action", "Comedy", "Crime", "Drama", "Thriller"}
	if len(inspection.Genres) != len(want) {
		t.Fatalf("genres = %v, want %v", inspection.Genres, want)
	}
	for i, genre := range want {
		if inspection.Genres[i] != genre {
			t.Fatalf("genres = %v, want %v", inspection.Genres, want)
		}
	}
}

func TestInspectWithoutGenreColumn(t *testing.T) {
	input := "Name,Rate\nHeat,8.3\n"
	inspection, err := Inspect(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if inspection.GenreColumn {
		t.Fatal("no genre column expected")
	}
	if len(inspection.TopGenres) != 0 {
		t.Fatalf("top genres = %v", inspection.TopGenres)
	}
}
