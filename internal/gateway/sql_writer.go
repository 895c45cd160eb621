package gateway

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"banksynth/internal/domain"
)

// SQLDatasetWriter implements the DatasetWriter interface for SQL exports.
// Each collection lands in <dir>/<table>.sql as one INSERT statement per
// record, columns in catalog order, ready for a sequential import.
type SQLDatasetWriter struct {
	dir string
}

// NewSQLDatasetWriter creates a new writer targeting the given directory.
func NewSQLDatasetWriter(dir string) *SQLDatasetWriter {
	return &SQLDatasetWriter{dir: dir}
}

// WriteCollection writes one collection to its SQL file.
func (w *SQLDatasetWriter) WriteCollection(ctx context.Context, collection domain.NamedCollection) error {
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

	path := filepath.Join(w.dir, collection.Table+".sql")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	bad := 0
	for _, rec := range collection.Records {
		if rec.IsBad() {
			bad++
		}
	}
	percentage := 0.0
	if len(collection.Records) > 0 {
		percentage = math.Round(float64(bad)/float64(len(collection.Records))*10000) / 100
	}

	buf := bufio.NewWriter(file)
	fmt.Fprintf(buf, "-- INSERT statements for %s\n", collection.Table)
	fmt.Fprintf(buf, "-- Generated on %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(buf, "-- Total records: %d, Bad data: %d (%v%%)\n\n",
		len(collection.Records), bad, percentage)

	columnList := strings.Join(columns, ", ")

	values := make([]string, len(columns))
	for _, rec := range collection.Records {
		for i, col := range columns {
			values[i] = sqlValue(rec[col])
		}
		_, err := fmt.Fprintf(buf, "INSERT INTO %s (%s) VALUES (%s);\n",
			collection.Table, columnList, strings.Join(values, ", "))
		if err != nil {
			return fmt.Errorf("could not write record to %s: %w", path, err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("could not flush %s: %w", path, err)
	}
	return nil
}

// sqlValue renders a field as a SQL literal. Strings get single quotes with
// embedded quotes doubled; nil becomes NULL; booleans become 1/0 for the
// BIT columns downstream.
func sqlValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprintf("%v", x), "'", "''") + "'"
	}
}
