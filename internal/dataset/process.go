package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cinebob/internal/catalog"
)

// Raw IMDb export column names. Resolution is case-insensitive.
const (
	colName        = "Name"
	colDate        = "Date"
	colRate        = "Rate"
	colGenre       = "Genre"
	colType        = "Type"
	colDuration    = "Duration"
	colCertificate = "Certificate"
	colViolence    = "Violence"
	colFrightening = "Frightening"
)

// ErrMissingColumns indicates the export lacks one of the mandatory columns.
var ErrMissingColumns = errors.New("dataset missing required columns")

// Report summarizes a processing run.
type Report struct {
	RowsRead    int
	RowsKept    int
	RowsDropped int
	Columns     []string
}

// Process reads a raw IMDb CSV export and returns normalized movie records.
// Rows missing a title, rating, or genre are dropped, matching the source
// dataset's cleaning step. A rating that is present but not numeric is kept
// with the value 0.
func Process(r io.Reader) ([]catalog.Movie, Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, Report{}, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	report := Report{Columns: append([]string{}, header...)}

	var missing []string
	for _, required := range []string{colName, colRate, colGenre} {
		if _, ok := cols[strings.ToLower(required)]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, report, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var movies []catalog.Movie
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("read row %d: %w", report.RowsRead+2, err)
		}
		report.RowsRead++

		title := field(row, cols, colName)
		rate := field(row, cols, colRate)
		genreRaw := field(row, cols, colGenre)
		if title == "" || rate == "" || genreRaw == "" {
			report.RowsDropped++
			continue
		}

		rating, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			rating = 0
		}

		movie := catalog.Movie{
			Title:  title,
			Year:   field(row, cols, colDate),
			Genres: catalog.SplitGenres(genreRaw),
			Rating: rating,
			Kind:   field(row, cols, colType),
			Plot:   buildPlot(row, cols),
		}
		movies = append(movies, movie)
		report.RowsKept++
	}

	return movies, report, nil
}

// ProcessFile processes the raw export at path. A missing file is an error;
// the caller treats it as fatal at boot.
func ProcessFile(path string) ([]catalog.Movie, Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	return Process(file)
}

// buildPlot synthesizes a short description from the export's content
// detail columns, mirroring the original dataset preparation.
func buildPlot(row []string, cols map[string]int) string {
	duration := field(row, cols, colDuration)
	certificate := field(row, cols, colCertificate)
	if duration == "" && certificate == "" {
		return ""
	}

	var sb strings.Builder
	if kind := field(row, cols, colType); kind != "" {
		sb.WriteString(kind)
		sb.WriteByte(' ')
	}
	if certificate != "" {
		sb.WriteString(certificate)
		sb.WriteString(" rated")
	}
	if duration != "" {
		if certificate != "" {
			sb.WriteString(", ")
		}
		sb.WriteString(duration)
		sb.WriteString(" duration")
	}
	sb.WriteByte('.')

	warnings := make([]string, 0, 2)
	if v := field(row, cols, colViolence); v != "" {
		warnings = append(warnings, "Violence: "+v)
	}
	if f := field(row, cols, colFrightening); f != "" {
		warnings = append(warnings, "Frightening: "+f)
	}
	if len(warnings) > 0 {
		sb.WriteString(" Content warnings: ")
		sb.WriteString(strings.Join(warnings, ", "))
	}

	return sb.String()
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[strings.ToLower(name)]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
