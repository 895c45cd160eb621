package gateway

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"banksynth/internal/domain"
)

// CSVDatasetWriter implements the DatasetWriter interface for CSV exports.
// Each collection lands in <dir>/<table>.csv with the catalog column order;
// the bad-data metadata fields never reach the files.
type CSVDatasetWriter struct {
	dir string
}

// NewCSVDatasetWriter creates a new writer targeting the given directory.
func NewCSVDatasetWriter(dir string) *CSVDatasetWriter {
	return &CSVDatasetWriter{dir: dir}
}

// WriteCollection writes one collection to its CSV file. An empty collection
// still produces a file with just the header row.
func (w *CSVDatasetWriter) WriteCollection(ctx context.Context, collection domain.NamedCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	columns := domain.Columns(collection.Table)
	if columns == nil {
		return fmt.Errorf("unknown table %q", collection.Table)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("could not create output directory %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, collection.Table+".csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("could not write header to %s: %w", path, err)
	}

	row := make([]string, len(columns))
	for _, rec := range collection.Records {
		for i, col := range columns {
			row[i] = csvValue(rec[col])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write record to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush %s: %w", path, err)
	}
	return w.writeMetadata(collection)
}

// csvMetadata is the sidecar describing injected corruption in one file.
type csvMetadata struct {
	TotalRecords      int     `json:"total_records"`
	BadDataCount      int     `json:"bad_data_count"`
	BadDataPercentage float64 `json:"bad_data_percentage"`
	ExportTimestamp   string  `json:"export_timestamp"`
	FileName          string  `json:"file_name"`
}

// writeMetadata emits <table>.csv_metadata.json next to the export, but only
// when the collection carries corrupted rows.
func (w *CSVDatasetWriter) writeMetadata(collection domain.NamedCollection) error {
	bad := 0
	for _, rec := range collection.Records {
		if rec.IsBad() {
			bad++
		}
	}
	if bad == 0 {
		return nil
	}

	meta := csvMetadata{
		TotalRecords:      len(collection.Records),
		BadDataCount:      bad,
		BadDataPercentage: math.Round(float64(bad)/float64(len(collection.Records))*10000) / 100,
		ExportTimestamp:   time.Now().Format(time.RFC3339),
		FileName:          collection.Table + ".csv",
	}

	path := filepath.Join(w.dir, collection.Table+".csv_metadata.json")
	body, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode metadata for %s: %w", collection.Table, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// csvValue renders a field for CSV. Nil becomes the empty cell; floats keep
// at most their natural precision without exponent notation.
func csvValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
