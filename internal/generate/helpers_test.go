package generate_test

import (
	"fmt"
	"math/rand"
	"time"

	"banksynth/internal/domain"
)

// newRand returns a deterministic source so generator output is stable
// within a test.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// cleanCustomers builds a fixture of n fully valid customers.
func cleanCustomers(n int) []domain.Record {
	created := time.Now().AddDate(-1, 0, 0).Format("2006-01-02 15:04:05")
	customers := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		customers = append(customers, domain.Record{
			"customer_id": fmt.Sprintf("C%08d", 10000000+i),
			"first_name":  "Jordan",
			"last_name":   "Rivera",
			"email":       "jordan.rivera@example.com",
			"created_at":  created,
		})
	}
	return customers
}

// cleanAccounts builds one valid account per customer, opened a year ago.
func cleanAccounts(customers []domain.Record) []domain.Record {
	opened := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
	accounts := make([]domain.Record, 0, len(customers))
	for i, c := range customers {
		accountType := "Checking"
		if i%2 == 0 {
			accountType = "Savings"
		}
		accounts = append(accounts, domain.Record{
			"account_id":   fmt.Sprintf("ACC%07d", 1000000+i),
			"customer_id":  c["customer_id"],
			"account_type": accountType,
			"balance":      2500.00,
			"currency":     "USD",
			"status":       "Active",
			"opened_date":  opened,
		})
	}
	return accounts
}

// countBad returns how many records carry the bad-data flag.
func countBad(records []domain.Record) int {
	bad := 0
	for _, r := range records {
		if r.IsBad() {
			bad++
		}
	}
	return bad
}
