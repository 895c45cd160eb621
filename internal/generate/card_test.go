package generate_test

import (
	"testing"

	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// luhnValid reports whether the full card number passes the Luhn check.
func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func TestCardGenerator_Generate(t *testing.T) {
	customers := cleanCustomers(30)
	accounts := cleanAccounts(customers)

	g := generate.NewCardGenerator(newRand(1), 0)
	cards := g.Generate(customers, accounts, 1, 2)
	require.NotEmpty(t, cards)

	accountOwner := make(map[string]string, len(accounts))
	for _, a := range accounts {
		accountOwner[a["account_id"].(string)] = a["customer_id"].(string)
	}

	for _, card := range cards {
		number := card["card_number"].(string)
		assert.True(t, luhnValid(number), "card number %q fails the Luhn check", number)

		if card["card_network"] == "American Express" {
			assert.Len(t, number, 15)
			assert.Contains(t, []string{"34", "37"}, number[:2])
		} else {
			assert.Len(t, number, 16)
		}

		// A card's account belongs to the card's customer.
		owner := accountOwner[card["account_id"].(string)]
		assert.Equal(t, owner, card["customer_id"])

		limit := card["credit_limit"].(float64)
		if card["card_type"] == "Credit" {
			assert.Greater(t, limit, 0.0)
		} else {
			assert.Zero(t, limit)
		}
	}
}

func TestCardGenerator_SkipsCustomersWithoutAccounts(t *testing.T) {
	customers := cleanCustomers(10)

	g := generate.NewCardGenerator(newRand(2), 0)
	assert.Empty(t, g.Generate(customers, nil, 1, 2))
}

func TestCardGenerator_CorruptionFlagsEveryRecord(t *testing.T) {
	customers := cleanCustomers(50)
	accounts := cleanAccounts(customers)

	g := generate.NewCardGenerator(newRand(3), 1.0)
	cards := g.Generate(customers, accounts, 1, 1)

	require.NotEmpty(t, cards)
	assert.Equal(t, len(cards), countBad(cards))
}
