package usecase

import (
	"time"

	"github.com/google/uuid"

	"banksynth/internal/domain"
)

// QualityReport summarizes one run: per-table volumes, how many records
// carry injected defects, and the defect breakdown by category.
type QualityReport struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"`
	Tables      []TableQuality `json:"tables"`
	Totals      TableQuality   `json:"totals"`
	ByCategory  map[string]int `json:"bad_records_by_category"`
}

// TableQuality is the per-table slice of the report.
type TableQuality struct {
	Table      string  `json:"table,omitempty"`
	Records    int     `json:"records"`
	BadRecords int     `json:"bad_records"`
	BadShare   float64 `json:"bad_share"`
}

// BuildQualityReport walks every collection once and tallies the bad-data
// metadata.
func BuildQualityReport(dataset *domain.Dataset) *QualityReport {
	report := &QualityReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		ByCategory:  make(map[string]int),
	}

	for _, collection := range dataset.Tables() {
		quality := TableQuality{
			Table:   collection.Table,
			Records: len(collection.Records),
		}
		for _, rec := range collection.Records {
			if !rec.IsBad() {
				continue
			}
			quality.BadRecords++
			if cat := rec.BadDataType(); cat != "" {
				report.ByCategory[cat]++
			}
		}
		if quality.Records > 0 {
			quality.BadShare = float64(quality.BadRecords) / float64(quality.Records)
		}

		report.Tables = append(report.Tables, quality)
		report.Totals.Records += quality.Records
		report.Totals.BadRecords += quality.BadRecords
	}

	if report.Totals.Records > 0 {
		report.Totals.BadShare = float64(report.Totals.BadRecords) / float64(report.Totals.Records)
	}
	return report
}
