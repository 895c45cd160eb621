package generate

import (
	"math/rand"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// InvestmentAccountGenerator produces investment sub-accounts linked to
// existing customers and deposit accounts. Identity is a plain sequence, not
// a prefixed random id.
type InvestmentAccountGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	seq    Sequence
	now    time.Time
}

// NewInvestmentAccountGenerator builds a generator with the given corruption
// probability.
func NewInvestmentAccountGenerator(rnd *rand.Rand, badProbability float64) *InvestmentAccountGenerator {
	return &InvestmentAccountGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		now:    time.Now(),
	}
}

// Generate returns numAccounts investment accounts; numAccounts <= 0 means
// "30% of the customers that own at least one account". Sub-accounts prefer
// Savings/Checking base accounts and fall back to the first 50 accounts when
// none qualify. Missing upstream collections degrade to an empty result.
func (g *InvestmentAccountGenerator) Generate(customers, accounts []domain.Record, numAccounts int) []domain.Record {
	if len(customers) == 0 || len(accounts) == 0 {
		return nil
	}

	if numAccounts <= 0 {
		byCustomer := groupByCustomer(accounts)
		withAccounts := 0
		for _, customer := range customers {
			if len(byCustomer[SafeString(customer["customer_id"], "")]) > 0 {
				withAccounts++
			}
		}
		numAccounts = withAccounts * 30 / 100
	}

	eligible := make([]domain.Record, 0, len(accounts))
	for _, account := range accounts {
		switch strings.ToLower(SafeString(account["account_type"], "")) {
		case "savings", "checking":
			eligible = append(eligible, account)
		}
	}
	if len(eligible) == 0 {
		limit := len(accounts)
		if limit > 50 {
			limit = 50
		}
		eligible = accounts[:limit]
	}

	out := make([]domain.Record, 0, numAccounts)
	for i := 0; i < numAccounts; i++ {
		customer := pick(g.rnd, customers)
		base := pick(g.rnd, eligible)
		out = append(out, g.newInvestmentAccount(customer, base))
	}
	return out
}

func (g *InvestmentAccountGenerator) newInvestmentAccount(customer, base domain.Record) domain.Record {
	balance := round2(uniform(g.rnd, 1000, 500000))

	account := domain.Record{
		"investment_account_id": g.seq.Next(),
		"customer_id":           customer["customer_id"],
		"account_id":            base["account_id"],
		"investment_type":       pick(g.rnd, domain.InvestmentTypes),
		"risk_tolerance":        pick(g.rnd, domain.RiskTolerances),
		"account_status":        pick(g.rnd, domain.InvestmentAccountStatuses),
		"investment_strategy":   pick(g.rnd, domain.InvestmentStrategies),
		"primary_asset_class":   pick(g.rnd, domain.AssetClasses),
		"opening_date":          g.now.AddDate(0, 0, -between(g.rnd, 30, 365*5)).Format(dateLayout),
		"current_balance":       balance,
		"total_deposits":        round2(balance * uniform(g.rnd, 0.7, 1.3)),
		"ytd_return_rate":       round4(uniform(g.rnd, -0.15, 0.25)),
		"annual_return_rate":    round4(uniform(g.rnd, -0.15, 0.25)),
		"management_fee_rate":   round4(uniform(g.rnd, 0.001, 0.025)),
		"total_value":           round2(balance * (1 + uniform(g.rnd, -0.1, 0.1))),
		"is_managed_account":    g.rnd.Intn(2) == 0,
		"created_at":            g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		account = g.corrupt(account)
	}
	return account
}

func (g *InvestmentAccountGenerator) corrupt(account domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		return baddata.ApplyMissingData(account,
			[]string{"investment_type", "risk_tolerance", "management_fee_rate"})

	case baddata.OutOfRange:
		account["current_balance"] = -1000000.0
		account["annual_return_rate"] = 5.5
		return baddata.Mark(account, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Low tolerance opposite an aggressive product.
		account["risk_tolerance"] = "LOW"
		account["investment_type"] = "AGGRESSIVE_PORTFOLIO"
		return baddata.Mark(account, baddata.InconsistentData)

	case baddata.InvalidFormat:
		account["investment_type"] = "INVALID_TYPE_XYZ"
		account["risk_tolerance"] = "EXTREME"
		return baddata.Mark(account, baddata.InvalidFormat)
	}
	return g.inject.ApplyMalformedData(account, "account_status")
}
