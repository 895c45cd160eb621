package generate_test

import (
	"testing"

	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountGenerator_Generate(t *testing.T) {
	customers := cleanCustomers(50)

	g := generate.NewAccountGenerator(newRand(1), 0)
	accounts := g.Generate(customers, 1, 3)

	require.GreaterOrEqual(t, len(accounts), 50)
	require.LessOrEqual(t, len(accounts), 150)

	customerIDs := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		customerIDs[c["customer_id"].(string)] = struct{}{}
	}

	numbers := make(map[string]struct{})
	for _, a := range accounts {
		assert.Regexp(t, `^ACC\d{7}$`, a["account_id"])

		_, known := customerIDs[a["customer_id"].(string)]
		assert.True(t, known, "account references unknown customer %v", a["customer_id"])

		number := a["account_number"].(string)
		assert.Len(t, number, 10)
		_, dup := numbers[number]
		assert.False(t, dup, "account number %q issued twice", number)
		numbers[number] = struct{}{}

		assert.Greater(t, a["balance"].(float64), 0.0)

		// The account opens on or after its owner's created_at.
		assert.GreaterOrEqual(t,
			a["opened_date"].(string),
			customers[0]["created_at"].(string)[:10])
	}

	assert.Zero(t, countBad(accounts))
}

func TestAccountGenerator_BalanceBands(t *testing.T) {
	customers := cleanCustomers(200)

	g := generate.NewAccountGenerator(newRand(2), 0)
	accounts := g.Generate(customers, 1, 1)

	bands := map[string][2]float64{
		"Savings":                {100, 50000},
		"Checking":               {500, 100000},
		"Money Market":           {1000, 250000},
		"Certificate of Deposit": {5000, 1000000},
	}
	for _, a := range accounts {
		band, ok := bands[a["account_type"].(string)]
		require.True(t, ok, "unknown account type %v", a["account_type"])

		balance := a["balance"].(float64)
		assert.GreaterOrEqual(t, balance, band[0])
		assert.LessOrEqual(t, balance, band[1])
	}
}

func TestAccountGenerator_OnePerCustomer(t *testing.T) {
	customers := cleanCustomers(5)

	g := generate.NewAccountGenerator(newRand(5), 0)
	accounts := g.Generate(customers, 1, 1)

	require.Len(t, accounts, 5)

	owners := make(map[string]struct{}, 5)
	for _, a := range accounts {
		assert.False(t, a.IsBad())
		owners[a["customer_id"].(string)] = struct{}{}
	}
	assert.Len(t, owners, 5, "each customer owns exactly one account")
}

func TestAccountGenerator_EmptyCustomers(t *testing.T) {
	g := generate.NewAccountGenerator(newRand(3), 0)
	assert.Empty(t, g.Generate(nil, 1, 3))
}

func TestAccountGenerator_FullCorruption(t *testing.T) {
	customers := cleanCustomers(100)

	g := generate.NewAccountGenerator(newRand(4), 1.0)
	accounts := g.Generate(customers, 1, 1)

	require.Len(t, accounts, 100)
	assert.Equal(t, 100, countBad(accounts))
	for _, a := range accounts {
		assert.NotEmpty(t, a.BadDataType())
	}
}
