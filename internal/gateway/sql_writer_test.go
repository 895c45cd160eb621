package gateway_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"banksynth/internal/domain"
	"banksynth/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLDatasetWriter_WriteCollection(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewSQLDatasetWriter(dir)

	collection := domain.NamedCollection{
		Table: domain.TableUserLogins,
		Records: []domain.Record{{
			"login_id":                 int64(1),
			"customer_id":              "C10000001",
			"login_timestamp":          "2024-06-01 10:30:00",
			"ip_address":               "10.1.2.3",
			"device_type":              "Mobile",
			"browser":                  "Chrome",
			"operating_system":         "Android",
			"login_method":             "PASSWORD",
			"login_status":             "SUCCESS",
			"failure_reason":           nil,
			"session_duration_minutes": 45,
			"geolocation":              "Chicago, IL, USA",
			"is_vpn_used":              false,
			"created_at":               "2024-06-01 10:30:00",
			domain.FieldIsBadData:      false,
			domain.FieldBadDataType:    nil,
		}},
	}
	require.NoError(t, w.WriteCollection(context.Background(), collection))

	raw, err := os.ReadFile(filepath.Join(dir, "user_logins.sql"))
	require.NoError(t, err)
	sql := string(raw)

	assert.True(t, strings.HasPrefix(sql, "-- INSERT statements for user_logins\n"))
	assert.Contains(t, sql, "-- Total records: 1, Bad data: 0 (0%)")
	assert.Contains(t, sql, "INSERT INTO user_logins (login_id, customer_id,")
	assert.Contains(t, sql, "'C10000001'")
	assert.Contains(t, sql, "NULL")
	// Booleans land as BIT literals.
	assert.Contains(t, sql, ", 0,")
	// Metadata fields never reach the statement.
	assert.NotContains(t, sql, domain.FieldIsBadData)
}

func TestSQLDatasetWriter_EscapesQuotes(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewSQLDatasetWriter(dir)

	collection := domain.NamedCollection{
		Table: domain.TableMerchants,
		Records: []domain.Record{{
			"merchant_id":   "MER100001",
			"merchant_name": "O'Malley's Corner Store",
			"category":      "Grocery",
			"mcc_code":      "5411",
			"status":        "Active",
		}},
	}
	require.NoError(t, w.WriteCollection(context.Background(), collection))

	raw, err := os.ReadFile(filepath.Join(dir, "merchants.sql"))
	require.NoError(t, err)

	assert.Contains(t, string(raw), "'O''Malley''s Corner Store'")
}

func TestSQLDatasetWriter_OneStatementPerRecord(t *testing.T) {
	dir := t.TempDir()
	w := gateway.NewSQLDatasetWriter(dir)

	records := make([]domain.Record, 5)
	for i := range records {
		records[i] = domain.Record{"branch_id": "BR1001", "branch_name": "Main"}
	}
	collection := domain.NamedCollection{Table: domain.TableBranches, Records: records}
	require.NoError(t, w.WriteCollection(context.Background(), collection))

	raw, err := os.ReadFile(filepath.Join(dir, "branches.sql"))
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(string(raw), "INSERT INTO branches"))
}

func TestSQLDatasetWriter_UnknownTable(t *testing.T) {
	w := gateway.NewSQLDatasetWriter(t.TempDir())

	err := w.WriteCollection(context.Background(), domain.NamedCollection{Table: "no_such_table"})
	assert.Error(t, err)
}
