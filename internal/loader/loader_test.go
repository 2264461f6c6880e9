package loader_test

import (
	"context"
	"errors"
	"testing"

	"cinebob/internal/loader"
	"cinebob/internal/logging"
	"cinebob/internal/testsupport"
)

func TestLoadProcessesRawDatasetWhenStoreEmpty(t *testing.T) {
	csvPath := testsupport.WriteRawCSV(t, t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithRawCSV(csvPath))

	cat, err := loader.Load(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 4 {
		t.Fatalf("catalog has %d movies, want 4", cat.Len())
	}
	if len(cat.Genres()) != 4 {
		t.Fatalf("genres = %v", cat.Genres())
	}
}

func TestLoadReusesPopulatedStore(t *testing.T) {
	csvPath := testsupport.WriteRawCSV(t, t.TempDir())
	cfg := testsupport.NewConfig(t, testsupport.WithRawCSV(csvPath))

	if _, err := loader.Load(context.Background(), cfg, logging.NewNop()); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	// A populated store no longer needs the raw export.
	cfg.Catalog.RawCSVPath = ""
	cat, err := loader.Load(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if cat.Len() != 4 {
		t.Fatalf("catalog has %d movies, want 4", cat.Len())
	}
}

func TestLoadFailsWithoutData(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	_, err := loader.Load(context.Background(), cfg, logging.NewNop())
	if !errors.Is(err, loader.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestLoadFailsOnMissingRawFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithRawCSV("/nonexistent/movies.csv"))

	if _, err := loader.Load(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatal("expected error for missing raw dataset")
	}
}
