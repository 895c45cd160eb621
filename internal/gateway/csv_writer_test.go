package gateway_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"banksynth/internal/domain"
	"banksynth/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBranches() domain.NamedCollection {
	return domain.NamedCollection{
		Table: domain.TableBranches,
		Records: []domain.Record{
			{
				"branch_id":             "BR1001",
				"branch_name":           "Springfield Main Branch",
				"branch_code":           "SPR123",
				"branch_type":           "Full Service",
				"street":                "12 Main St",
				"city":                  "Springfield",
				"state":                 "IL",
				"zip_code":              "62701",
				"country":               "USA",
				"phone":                 "(217) 555-0100",
				"email":                 "branch.spr123@bank.com",
				"manager_name":          "Dana Whitfield",
				"opening_date":          "2010-04-12",
				"created_at":            "2024-01-01 00:00:00",
				domain.FieldIsBadData:   false,
				domain.FieldBadDataType: nil,
			},
			{
				"branch_id":             "BR1002",
				"branch_name":           "Riverton Plaza Branch",
				"manager_name":          nil,
				"opening_date":          "2015-09-30",
				domain.FieldIsBadData:   true,
				domain.FieldBadDataType: "missing_data",
			},
		},
	}
}

func TestCSVDatasetWriter_WriteCollection(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewCSVDatasetWriter(dir)

	require.NoError(t, w.WriteCollection(context.Background(), sampleBranches()))

	file, err := os.Open(filepath.Join(dir, "branches.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Header follows the catalog column order; metadata stays out.
	assert.Equal(t, domain.Columns(domain.TableBranches), rows[0])
	assert.NotContains(t, rows[0], domain.FieldIsBadData)
	assert.NotContains(t, rows[0], domain.FieldBadDataType)

	assert.Equal(t, "BR1001", rows[1][0])
	assert.Equal(t, "Dana Whitfield", rows[1][11])

	// Nulled fields export as empty cells.
	assert.Equal(t, "", rows[2][11])
}

func TestCSVDatasetWriter_MetadataSidecar(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewCSVDatasetWriter(dir)

	require.NoError(t, w.WriteCollection(context.Background(), sampleBranches()))

	raw, err := os.ReadFile(filepath.Join(dir, "branches.csv_metadata.json"))
	require.NoError(t, err)

	var meta struct {
		TotalRecords      int     `json:"total_records"`
		BadDataCount      int     `json:"bad_data_count"`
		BadDataPercentage float64 `json:"bad_data_percentage"`
		FileName          string  `json:"file_name"`
	}
	require.NoError(t, json.Unmarshal(raw, &meta))

	assert.Equal(t, 2, meta.TotalRecords)
	assert.Equal(t, 1, meta.BadDataCount)
	assert.InDelta(t, 50.0, meta.BadDataPercentage, 0.001)
	assert.Equal(t, "branches.csv", meta.FileName)
}

func TestCSVDatasetWriter_NoSidecarForCleanTables(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewCSVDatasetWriter(dir)

	clean := sampleBranches()
	clean.Records = clean.Records[:1]
	require.NoError(t, w.WriteCollection(context.Background(), clean))

	_, err := os.Stat(filepath.Join(dir, "branches.csv_metadata.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCSVDatasetWriter_EmptyCollection(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewCSVDatasetWriter(dir)

	collection := domain.NamedCollection{Table: domain.TableCustomers}
	require.NoError(t, w.WriteCollection(context.Background(), collection))

	raw, err := os.ReadFile(filepath.Join(dir, "customers.csv"))
	require.NoError(t, err)

	file := string(raw)
	assert.Contains(t, file, "customer_id,first_name")
}

func TestCSVDatasetWriter_UnknownTable(t *testing.T) {
	w := gateway.NewCSVDatasetWriter(t.TempDir())

	err := w.WriteCollection(context.Background(), domain.NamedCollection{Table: "no_such_table"})
	assert.Error(t, err)
}

func TestCSVDatasetWriter_CancelledContext(t *testing.T) {
	w := gateway.NewCSVDatasetWriter(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.WriteCollection(ctx, sampleBranches())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVDatasetWriter_ValueFormatting(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewCSVDatasetWriter(dir)

	collection := domain.NamedCollection{
		Table: domain.TableUserLogins,
		Records: []domain.Record{{
			"login_id":                 int64(7),
			"customer_id":              "C10000001",
			"login_timestamp":          "2024-06-01 10:30:00",
			"session_duration_minutes": 45,
			"is_vpn_used":              true,
			"failure_reason":           nil,
		}},
	}
	require.NoError(t, w.WriteCollection(context.Background(), collection))

	file, err := os.Open(filepath.Join(dir, "user_logins.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byColumn := make(map[string]string, len(rows[0]))
	for i, col := range rows[0] {
		byColumn[col] = rows[1][i]
	}
	assert.Equal(t, "7", byColumn["login_id"])
	assert.Equal(t, "45", byColumn["session_duration_minutes"])
	assert.Equal(t, "true", byColumn["is_vpn_used"])
	assert.Equal(t, "", byColumn["failure_reason"])
}
