package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"cinebob/internal/catalog"
)

// ColumnSummary describes one column of the raw export.
type ColumnSummary struct {
	Name    string
	Missing int
	Samples []string
}

// GenreCount pairs a genre label with its row frequency.
type GenreCount struct {
	Genre string
	Count int
}

// Inspection is a structural report over a raw export, produced without
// normalizing or dropping anything.
type Inspection struct {
	Rows        int
	Columns     []ColumnSummary
	Genres      []string
	TopGenres   []GenreCount
	GenreColumn bool
}

const sampleLimit = 3

// Inspect reads a raw export and reports its shape, per-column missing
// values and samples, and genre distribution.
func Inspect(r io.Reader) (Inspection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return Inspection{}, fmt.Errorf("read header: %w", err)
	}

	summaries := make([]ColumnSummary, len(header))
	for i, name := range header {
		summaries[i] = ColumnSummary{Name: strings.TrimSpace(name)}
	}

	genreIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), colGenre) {
			genreIdx = i
			break
		}
	}

	genreCounts := make(map[string]int)
	genreDisplay := make(map[string]string)
	rows := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Inspection{}, fmt.Errorf("read row %d: %w", rows+2, err)
		}
		rows++

		for i := range summaries {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if value == "" {
				summaries[i].Missing++
				continue
			}
			if len(summaries[i].Samples) < sampleLimit {
				summaries[i].Samples = append(summaries[i].Samples, value)
			}
		}

		if genreIdx >= 0 && genreIdx < len(row) {
			for _, genre := range catalog.SplitGenres(row[genreIdx]) {
				key := catalog.NormalizeGenre(genre)
				genreCounts[key]++
				if _, ok := genreDisplay[key]; !ok {
					genreDisplay[key] = catalog.DisplayGenre(genre)
				}
			}
		}
	}

	inspection := Inspection{
		Rows:        rows,
		Columns:     summaries,
		GenreColumn: genreIdx >= 0,
	}

	for key := range genreCounts {
		inspection.Genres = append(inspection.Genres, genreDisplay[key])
		inspection.TopGenres = append(inspection.TopGenres, GenreCount{Genre: genreDisplay[key], Count: genreCounts[key]})
	}
	sort.Strings(inspection.Genres)
	sort.Slice(inspection.TopGenres, func(a, b int) bool {
		if inspection.TopGenres[a].Count != inspection.TopGenres[b].Count {
			return inspection.TopGenres[a].Count > inspection.TopGenres[b].Count
		}
		return inspection.TopGenres[a].Genre < inspection.TopGenres[b].Genre
	})
	if len(inspection.TopGenres) > 10 {
		inspection.TopGenres = inspection.TopGenres[:10]
	}

	return inspection, nil
}

// InspectFile inspects the raw export at path.
func InspectFile(path string) (Inspection, error) {
	file, err := os.Open(path)
	if err != nil {
		return Inspection{}, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	return Inspect(file)
}
