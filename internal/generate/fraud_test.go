package generate_test

import (
	"fmt"
	"testing"

	"banksynth/internal/domain"
	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		amount    float64
		want      string
		scoreLow  int
		scoreHigh int
	}{
		{500, "LOW", 20, 39},
		{1000, "LOW", 20, 39},
		{2000, "MEDIUM", 40, 59},
		{5000, "MEDIUM", 40, 59},
		{7000, "HIGH", 60, 79},
		{10000, "HIGH", 60, 79},
		{15000, "CRITICAL", 80, 100},
	}

	rnd := newRand(1)
	for _, tt := range tests {
		t.Run(fmt.Sprintf("amount_%.0f", tt.amount), func(t *testing.T) {
			severity, score := generate.Severity(rnd, tt.amount)
			assert.Equal(t, tt.want, severity)
			assert.GreaterOrEqual(t, score, tt.scoreLow)
			assert.LessOrEqual(t, score, tt.scoreHigh)
		})
	}
}

func fixtureTransactions(n int) []domain.Record {
	txs := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		txs = append(txs, domain.Record{
			"transaction_id":   fmt.Sprintf("TXN%09d", 100000000+i),
			"account_id":       fmt.Sprintf("ACC%07d", 1000000+i%10),
			"amount":           float64(100 * (i + 1)),
			"transaction_date": "2024-06-15",
		})
	}
	return txs
}

func TestFraudAlertGenerator_Generate(t *testing.T) {
	transactions := fixtureTransactions(200)
	customers := cleanCustomers(10)
	accounts := cleanAccounts(customers)

	g := generate.NewFraudAlertGenerator(newRand(1), 0.05, 0)
	alerts := g.Generate(transactions, accounts)

	// floor(200 * 0.05)
	require.Len(t, alerts, 10)

	txIDs := make(map[string]struct{}, len(transactions))
	for _, tx := range transactions {
		txIDs[tx["transaction_id"].(string)] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, alert := range alerts {
		txID := alert["transaction_id"].(string)
		_, known := txIDs[txID]
		assert.True(t, known, "alert references unknown transaction %q", txID)

		// Sampling is without replacement.
		_, dup := seen[txID]
		assert.False(t, dup, "transaction %q alerted twice", txID)
		seen[txID] = struct{}{}

		assert.Contains(t, domain.AlertStatuses, alert["alert_status"])
		if alert["customer_id"] != nil {
			assert.Regexp(t, `^C\d{8}$`, alert["customer_id"])
		}
	}
}

func TestFraudAlertGenerator_ResolvesCustomerThroughAccount(t *testing.T) {
	transactions := []domain.Record{{
		"transaction_id":   "TXN100000001",
		"account_id":       "ACC1000001",
		"amount":           250.0,
		"transaction_date": "2024-06-15",
	}}
	accounts := []domain.Record{{
		"account_id":  "ACC1000001",
		"customer_id": "C10000001",
	}}

	g := generate.NewFraudAlertGenerator(newRand(1), 1.0, 0)
	alerts := g.Generate(transactions, accounts)

	require.Len(t, alerts, 1)
	assert.Equal(t, "C10000001", alerts[0]["customer_id"])
}

func TestFraudAlertGenerator_UnresolvableCustomerIsNull(t *testing.T) {
	transactions := []domain.Record{{
		"transaction_id":   "TXN100000002",
		"account_id":       "ACC9999999",
		"amount":           250.0,
		"transaction_date": "2024-06-15",
	}}

	g := generate.NewFraudAlertGenerator(newRand(1), 1.0, 0)
	alerts := g.Generate(transactions, nil)

	require.Len(t, alerts, 1)
	assert.Nil(t, alerts[0]["customer_id"])
}

func TestFraudAlertGenerator_ToleratesCorruptTransactionDates(t *testing.T) {
	transactions := []domain.Record{
		{"transaction_id": "TXN100000003", "amount": 50.0, "transaction_date": nil},
		{"transaction_id": "TXN100000004", "amount": "CORRUPTED", "transaction_date": "not-a-date"},
	}

	g := generate.NewFraudAlertGenerator(newRand(1), 1.0, 0)
	alerts := g.Generate(transactions, nil)

	require.Len(t, alerts, 2)
	for _, alert := range alerts {
		assert.NotEmpty(t, alert["alert_timestamp"])
		assert.Contains(t, []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}, alert["severity"])
	}
}

func TestFraudAlertGenerator_EmptyInput(t *testing.T) {
	g := generate.NewFraudAlertGenerator(newRand(1), 0.05, 0)
	assert.Empty(t, g.Generate(nil, nil))
}
