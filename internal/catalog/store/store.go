package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"cinebob/internal/catalog"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and verifies the
// schema version.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// ReplaceAll atomically replaces the stored catalog with the given movies.
func (s *Store) ReplaceAll(ctx context.Context, movies []catalog.Movie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (title, year, genres, rating, kind, plot) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, movie := range movies {
		if strings.TrimSpace(movie.Title) == "" {
			continue
		}
		if _, err := stmt.ExecContext(
			ctx,
			movie.Title,
			nullableString(movie.Year),
			strings.Join(movie.Genres, ","),
			movie.Rating,
			nullableString(movie.Kind),
			nullableString(movie.Plot),
		); err != nil {
			return fmt.Errorf("insert movie %q: %w", movie.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// List returns all stored movies in insertion order.
func (s *Store) List(ctx context.Context) ([]catalog.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, year, genres, rating, kind, plot FROM movies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// Count returns the number of stored movies.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

// Health describes diagnostic information about the catalog database.
type Health struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	TableExists      bool
	IntegrityCheck   bool
	TotalMovies      int
	Error            string
}

// CheckHealth returns diagnostic information about the catalog database.
func (s *Store) CheckHealth(ctx context.Context) (Health, error) {
	health := Health{DBPath: s.path}

	if s.path == "" {
		return health, errors.New("catalog database path is unknown")
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return health, nil
		}
		return health, fmt.Errorf("stat catalog database: %w", err)
	}
	if info.IsDir() {
		return health, fmt.Errorf("catalog database path %q is a directory", s.path)
	}
	health.DatabaseExists = true

	connCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(connCtx); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("ping catalog database: %w", err)
	}
	health.DatabaseReadable = true

	var tableName string
	row := s.db.QueryRowContext(connCtx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'movies'")
	if err := row.Scan(&tableName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health, nil
		}
		health.Error = err.Error()
		return health, fmt.Errorf("query table info: %w", err)
	}
	health.TableExists = true

	if err := s.db.QueryRowContext(connCtx, "SELECT COUNT(*) FROM movies").Scan(&health.TotalMovies); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("count movies: %w", err)
	}

	var integrityResult string
	if err := s.db.QueryRowContext(connCtx, "PRAGMA integrity_check").Scan(&integrityResult); err != nil {
		health.Error = err.Error()
		return health, fmt.Errorf("integrity check: %w", err)
	}
	health.IntegrityCheck = strings.EqualFold(integrityResult, "ok")

	return health, nil
}

func scanMovie(scanner interface{ Scan(dest ...any) error }) (catalog.Movie, error) {
	var (
		title  string
		year   sql.NullString
		genres string
		rating float64
		kind   sql.NullString
		plot   sql.NullString
	)
	if err := scanner.Scan(&title, &year, &genres, &rating, &kind, &plot); err != nil {
		return catalog.Movie{}, fmt.Errorf("scan movie: %w", err)
	}
	return catalog.Movie{
		Title:  title,
		Year:   year.String,
		Genres: catalog.SplitGenres(genres),
		Rating: rating,
		Kind:   kind.String,
		Plot:   plot.String,
	}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
