package generate_test

import (
	"testing"

	"banksynth/internal/domain"
	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateGenerator_Generate(t *testing.T) {
	g := generate.NewExchangeRateGenerator(newRand(1), 0)
	rates := g.Generate(30)

	// One record per day per pair.
	require.Len(t, rates, 30*len(domain.CurrencyPairs))

	seen := make(map[string]struct{}, len(rates))
	for _, r := range rates {
		id := r["rate_id"].(string)
		assert.Regexp(t, `^EXR\d{8}[A-Z]{6}$`, id)

		_, dup := seen[id]
		assert.False(t, dup, "rate id %q issued twice", id)
		seen[id] = struct{}{}

		buy := r["buy_rate"].(float64)
		sell := r["sell_rate"].(float64)
		assert.Greater(t, buy, 0.0)
		assert.Greater(t, sell, buy, "sell rate must sit above buy rate")
	}
	assert.Zero(t, countBad(rates))
}

func TestInvestmentAccountGenerator_Generate(t *testing.T) {
	customers := cleanCustomers(40)
	accounts := cleanAccounts(customers)

	g := generate.NewInvestmentAccountGenerator(newRand(1), 0)
	investments := g.Generate(customers, accounts, 10)

	require.Len(t, investments, 10)

	accountIDs := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		accountIDs[a["account_id"].(string)] = struct{}{}
	}
	for _, inv := range investments {
		_, known := accountIDs[inv["account_id"].(string)]
		assert.True(t, known, "investment references unknown account %v", inv["account_id"])

		assert.Contains(t, domain.InvestmentTypes, inv["investment_type"])
		assert.Greater(t, inv["current_balance"].(float64), 0.0)
		assert.Greater(t, inv["management_fee_rate"].(float64), 0.0)
	}
}

func TestInvestmentAccountGenerator_DefaultVolume(t *testing.T) {
	customers := cleanCustomers(40)
	accounts := cleanAccounts(customers)

	g := generate.NewInvestmentAccountGenerator(newRand(2), 0)
	investments := g.Generate(customers, accounts, 0)

	// 30% of the customers owning accounts.
	assert.Len(t, investments, 12)
}

func TestInvestmentAccountGenerator_NoAccounts(t *testing.T) {
	g := generate.NewInvestmentAccountGenerator(newRand(3), 0)
	assert.Empty(t, g.Generate(cleanCustomers(10), nil, 5))
}
