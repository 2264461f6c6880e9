// Package loader builds the in-memory catalog from the processed store,
// processing the raw dataset first when the store is empty.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cinebob/internal/catalog"
	"cinebob/internal/catalog/store"
	"cinebob/internal/config"
	"cinebob/internal/dataset"
	"cinebob/internal/logging"
)

// ErrNoData indicates there is nothing to serve: the store is empty and no
// raw dataset is configured. Fatal at boot.
var ErrNoData = errors.New("catalog has no data")

// Load opens the catalog store and returns the in-memory catalog. When the
// store is empty and a raw CSV is configured, the raw export is processed
// into the store first, mirroring the original dataset preparation flow.
func Load(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	log := logging.NewComponentLogger(logger, "loader")

	st, err := store.Open(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer st.Close()

	count, err := st.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stored movies: %w", err)
	}

	if count == 0 {
		if cfg.Catalog.RawCSVPath == "" {
			return nil, fmt.Errorf("%w: store %s is empty and catalog.raw_csv_path is not set", ErrNoData, cfg.StorePath())
		}
		log.Info("catalog store empty, processing raw dataset",
			logging.String("raw_csv", cfg.Catalog.RawCSVPath))
		movies, report, err := dataset.ProcessFile(cfg.Catalog.RawCSVPath)
		if err != nil {
			return nil, fmt.Errorf("process raw dataset: %w", err)
		}
		if err := st.ReplaceAll(ctx, movies); err != nil {
			return nil, fmt.Errorf("persist processed dataset: %w", err)
		}
		log.Info("raw dataset processed",
			logging.Int("rows_read", report.RowsRead),
			logging.Int("rows_kept", report.RowsKept),
			logging.Int("rows_dropped", report.RowsDropped))
	}

	movies, err := st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stored movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, ErrNoData
	}

	cat := catalog.New(movies)
	log.Info("catalog loaded",
		logging.Int("movies", cat.Len()),
		logging.Int("genres", len(cat.Genres())))
	return cat, nil
}
