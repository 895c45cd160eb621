package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// AccountGenerator produces 1..N accounts per customer. Every account opens
// 0-30 days after its owner's created_at, never before, so downstream
// temporal ordering (transactions within the account lifespan) holds for
// clean records.
type AccountGenerator struct {
	rnd     *rand.Rand
	inject  *baddata.Injector
	ids     *IDAllocator
	numbers map[string]struct{}
	now     time.Time
}

// NewAccountGenerator builds a generator with the given corruption
// probability.
func NewAccountGenerator(rnd *rand.Rand, badProbability float64) *AccountGenerator {
	return &AccountGenerator{
		rnd:     rnd,
		inject:  baddata.NewInjector(rnd, badProbability),
		ids:     NewIDAllocator(rnd, "ACC", 1000000, 9999999),
		numbers: make(map[string]struct{}),
		now:     time.Now(),
	}
}

// Generate returns accounts for the given customers, minPerCustomer to
// maxPerCustomer each. An empty customer collection yields an empty result.
func (g *AccountGenerator) Generate(customers []domain.Record, minPerCustomer, maxPerCustomer int) []domain.Record {
	accounts := make([]domain.Record, 0, len(customers)*minPerCustomer)

	for _, customer := range customers {
		n := between(g.rnd, minPerCustomer, maxPerCustomer)
		for i := 0; i < n; i++ {
			accounts = append(accounts, g.newAccount(customer))
		}
	}
	return accounts
}

func (g *AccountGenerator) newAccount(customer domain.Record) domain.Record {
	accountType := pick(g.rnd, domain.AccountTypes)

	// Open after the customer exists. A corrupted customer created_at falls
	// back to now, keeping the record structurally complete.
	createdAt := g.now
	if t, err := ParseDate(SafeString(customer["created_at"], "")); err == nil {
		createdAt = t
	}
	opened := createdAt.AddDate(0, 0, between(g.rnd, 0, 30))

	account := domain.Record{
		"account_id":            g.ids.Next(),
		"customer_id":           customer["customer_id"],
		"account_number":        g.accountNumber(),
		"account_type":          accountType,
		"balance":               g.balance(accountType),
		"currency":              pick(g.rnd, domain.Currencies),
		"status":                pickWeighted(g.rnd, domain.AccountStatuses, []float64{0.8, 0.05, 0.05, 0.05, 0.05}),
		"opened_date":           opened.Format(dateLayout),
		"created_at":            opened.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		account = g.corrupt(account)
	}
	return account
}

// accountNumber returns a unique 10-digit number.
func (g *AccountGenerator) accountNumber() string {
	for {
		num := fmt.Sprintf("%d", 1000000000+g.rnd.Int63n(9000000000))
		if _, taken := g.numbers[num]; taken {
			continue
		}
		g.numbers[num] = struct{}{}
		return num
	}
}

func (g *AccountGenerator) invalidAccountNumber() string {
	invalid := []string{
		"123",
		strings.Repeat("1", 50),
		"ABC123XYZ",
		"0000000000",
		"",
		"123-456-789",
		"NULL",
	}
	return pick(g.rnd, invalid)
}

// balance draws from the realistic band for the account type.
func (g *AccountGenerator) balance(accountType string) float64 {
	switch accountType {
	case "Savings":
		return round2(uniform(g.rnd, 100, 50000))
	case "Checking":
		return round2(uniform(g.rnd, 500, 100000))
	case "Money Market":
		return round2(uniform(g.rnd, 1000, 250000))
	default: // Certificate of Deposit
		return round2(uniform(g.rnd, 5000, 1000000))
	}
}

func (g *AccountGenerator) invalidBalance() float64 {
	invalid := []float64{-10000.00, 9999999999.99, 0.00, -0.01, 1000000000.00}
	return pick(g.rnd, invalid)
}

func (g *AccountGenerator) corrupt(account domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"account_number", "balance", "currency", "status"}, between(g.rnd, 1, 3))
		return baddata.ApplyMissingData(account, fields)

	case baddata.InvalidFormat:
		if g.rnd.Intn(2) == 0 {
			return baddata.ApplyInvalidFormat(account, "account_number", g.invalidAccountNumber())
		}
		return baddata.ApplyInvalidFormat(account, "currency", "XYZ")

	case baddata.OutOfRange:
		if g.rnd.Intn(2) == 0 {
			account["balance"] = g.invalidBalance()
		} else {
			future := g.now.AddDate(0, 0, between(g.rnd, 1, 365))
			account["opened_date"] = future.Format(dateLayout)
			account["created_at"] = future.Format(dateTimeLayout)
		}
		return baddata.Mark(account, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Closed account retaining a balance, or the zeroed inverse.
		if account["status"] == "Closed" && SafeFloat(account["balance"], 0) > 1000 {
			account["balance"] = 0.00
		} else {
			account["status"] = "Closed"
		}
		return baddata.Mark(account, baddata.InconsistentData)
	}
	field := pick(g.rnd, []string{"account_type", "status"})
	return g.inject.ApplyMalformedData(account, field)
}
