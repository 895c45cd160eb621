package generate

import (
	"math/rand"
	"sort"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// cardTypeWeights is the 6-way mix for accounts that carry cards; the
// Purchase/Refund share only exists for them.
var (
	cardTypeWeights = []float64{0.15, 0.2, 0.15, 0.2, 0.25, 0.05}

	cardlessTypes       = []string{"Deposit", "Withdrawal", "Transfer", "Payment"}
	cardlessTypeWeights = []float64{0.3, 0.3, 0.25, 0.15}
)

// TransactionGenerator produces transactions per account, dated within the
// account lifespan, and returns the full collection sorted by
// (transaction_date, transaction_time) with corrupted or missing values
// ordered last.
type TransactionGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewTransactionGenerator builds a generator with the given corruption
// probability.
func NewTransactionGenerator(rnd *rand.Rand, badProbability float64) *TransactionGenerator {
	return &TransactionGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "TXN", 100000000, 999999999),
		now:    time.Now(),
	}
}

// Generate returns minPerAccount..maxPerAccount transactions per account.
// Accounts whose opened_date is missing, unparsable, or not in the past are
// skipped entirely; that filter is the policy for corrupted upstream
// accounts, not an error path.
func (g *TransactionGenerator) Generate(accounts, cards []domain.Record, minPerAccount, maxPerAccount int) []domain.Record {
	cardsByAccount := make(map[string][]domain.Record)
	for _, card := range cards {
		if id := SafeString(card["account_id"], ""); id != "" {
			cardsByAccount[id] = append(cardsByAccount[id], card)
		}
	}

	var transactions []domain.Record

	for _, account := range accounts {
		opened, err := ParseDate(SafeString(account["opened_date"], ""))
		if err != nil {
			continue
		}
		daysOpen := int(g.now.Sub(opened).Hours() / 24)
		if daysOpen <= 0 {
			continue
		}

		accountID := SafeString(account["account_id"], "")
		accountCards := cardsByAccount[accountID]

		n := between(g.rnd, minPerAccount, maxPerAccount)
		for i := 0; i < n; i++ {
			transactions = append(transactions, g.newTransaction(account, accountCards, opened, daysOpen))
		}
	}

	sortTransactions(transactions)
	return transactions
}

func (g *TransactionGenerator) newTransaction(account domain.Record, accountCards []domain.Record, opened time.Time, daysOpen int) domain.Record {
	when := opened.AddDate(0, 0, between(g.rnd, 0, daysOpen))
	dateStr := when.Format(dateLayout)
	timeStr := when.Format(timeLayout)

	var txType string
	if len(accountCards) > 0 {
		txType = pickWeighted(g.rnd, domain.TransactionTypes, cardTypeWeights)
	} else {
		txType = pickWeighted(g.rnd, cardlessTypes, cardlessTypeWeights)
	}

	// card_id only attaches to card-backed transaction types.
	var cardID any
	if len(accountCards) > 0 && (txType == "Purchase" || txType == "Refund") {
		cardID = pick(g.rnd, accountCards)["card_id"]
	}

	tx := domain.Record{
		"transaction_id":        g.ids.Next(),
		"account_id":            account["account_id"],
		"card_id":               cardID,
		"transaction_type":      txType,
		"amount":                g.amount(SafeString(account["account_type"], "Checking"), txType),
		"currency":              SafeString(account["currency"], "USD"),
		"transaction_date":      dateStr,
		"transaction_time":      timeStr,
		"description":           g.description(txType),
		"status":                pickWeighted(g.rnd, domain.TransactionStatuses, []float64{0.9, 0.05, 0.03, 0.02}),
		"created_at":            dateStr + " " + timeStr,
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		tx = g.corrupt(tx)
	}
	return tx
}

// amount draws a type-keyed base and scales it by account type.
func (g *TransactionGenerator) amount(accountType, txType string) float64 {
	var base float64
	switch txType {
	case "Deposit", "Transfer":
		base = uniform(g.rnd, 100, 10000)
	case "Payment":
		base = uniform(g.rnd, 50, 5000)
	default: // Withdrawal, Purchase, Refund
		base = uniform(g.rnd, 10, 1000)
	}

	switch accountType {
	case "Savings":
		base *= uniform(g.rnd, 0.5, 2)
	case "Certificate of Deposit":
		base *= uniform(g.rnd, 2, 5)
	}
	return round2(base)
}

func (g *TransactionGenerator) invalidAmount() float64 {
	invalid := []float64{-10000.00, 99999999.99, 0.00, -0.01, 1000000000.00}
	return pick(g.rnd, invalid)
}

var transactionDescriptions = map[string][]string{
	"Deposit":    {"Salary Deposit", "Check Deposit", "Cash Deposit", "ATM Deposit", "Mobile Deposit"},
	"Withdrawal": {"ATM Withdrawal", "Cash Withdrawal", "Bank Withdrawal"},
	"Transfer":   {"Transfer to Savings", "Bill Payment", "Money Transfer", "Online Transfer"},
	"Payment":    {"Credit Card Payment", "Loan Payment", "Utility Bill", "Mortgage Payment"},
	"Purchase":   {"Grocery Store", "Gas Station", "Online Shopping", "Restaurant", "Retail Store"},
	"Refund":     {"Purchase Refund", "Service Refund", "Overcharge Refund"},
}

func (g *TransactionGenerator) description(txType string) string {
	options, ok := transactionDescriptions[txType]
	if !ok {
		return "Transaction"
	}
	return pick(g.rnd, options)
}

func (g *TransactionGenerator) invalidDescription() string {
	invalid := []string{
		"",
		longString(500),
		"NULL",
		"<test>",
		"DROP TABLE transactions;",
	}
	return pick(g.rnd, invalid)
}

func (g *TransactionGenerator) invalidDate() string {
	invalid := []string{"9999-12-31", "1800-01-01", ""}
	return pick(g.rnd, invalid)
}

func (g *TransactionGenerator) corrupt(tx domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"amount", "description", "status", "transaction_date", "transaction_time"},
			between(g.rnd, 1, 3))
		return baddata.ApplyMissingData(tx, fields)

	case baddata.InvalidFormat:
		switch g.rnd.Intn(3) {
		case 0:
			return baddata.ApplyInvalidFormat(tx, "transaction_date", g.invalidDate())
		case 1:
			return baddata.ApplyInvalidFormat(tx, "description", g.invalidDescription())
		}
		return baddata.ApplyInvalidFormat(tx, "currency", "XXX")

	case baddata.OutOfRange:
		if g.rnd.Intn(2) == 0 {
			future := g.now.AddDate(0, 0, between(g.rnd, 1, 365))
			tx["transaction_date"] = future.Format(dateLayout)
			tx["transaction_time"] = future.Format(timeLayout)
		} else {
			tx["amount"] = g.invalidAmount()
		}
		return baddata.Mark(tx, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Failed transaction carrying a positive amount gets negated.
		if tx["status"] == "Failed" && SafeFloat(tx["amount"], 0) > 0 {
			tx["amount"] = -SafeFloat(tx["amount"], 0)
		} else {
			tx["status"] = "Failed"
		}
		return baddata.Mark(tx, baddata.InconsistentData)
	}
	field := pick(g.rnd, []string{"description", "transaction_type", "status"})
	return g.inject.ApplyMalformedData(tx, field)
}

// sortKey maps nil or missing date/time to sentinel maxima so corrupted
// records sort to the end deterministically.
func sortKey(tx domain.Record) (string, string) {
	date := SafeString(tx["transaction_date"], "9999-12-31")
	if tx["transaction_date"] == nil {
		date = "9999-12-31"
	}
	t := SafeString(tx["transaction_time"], "23:59:59")
	if tx["transaction_time"] == nil {
		t = "23:59:59"
	}
	return date, t
}

func sortTransactions(transactions []domain.Record) {
	sort.SliceStable(transactions, func(i, j int) bool {
		di, ti := sortKey(transactions[i])
		dj, tj := sortKey(transactions[j])
		if di != dj {
			return di < dj
		}
		return ti < tj
	})
}

func longString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'X'
	}
	return string(b)
}
