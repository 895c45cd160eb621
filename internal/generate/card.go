package generate

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// CardGenerator issues cards against existing customer accounts. Customers
// without any account are skipped entirely: a card must always point at an
// account belonging to its own customer.
type CardGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewCardGenerator builds a generator with the given corruption probability.
func NewCardGenerator(rnd *rand.Rand, badProbability float64) *CardGenerator {
	return &CardGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "CRD", 1000000, 9999999),
		now:    time.Now(),
	}
}

// Generate returns minPerCustomer..maxPerCustomer cards per eligible
// customer, each attached to one of that customer's accounts.
func (g *CardGenerator) Generate(customers, accounts []domain.Record, minPerCustomer, maxPerCustomer int) []domain.Record {
	byCustomer := groupByCustomer(accounts)
	cards := make([]domain.Record, 0, len(customers))

	for _, customer := range customers {
		customerID := SafeString(customer["customer_id"], "")
		owned := byCustomer[customerID]
		if len(owned) == 0 {
			continue
		}

		n := between(g.rnd, minPerCustomer, maxPerCustomer)
		for i := 0; i < n; i++ {
			cards = append(cards, g.newCard(customerID, pick(g.rnd, owned)))
		}
	}
	return cards
}

func (g *CardGenerator) newCard(customerID string, account domain.Record) domain.Record {
	cardType := pick(g.rnd, domain.CardTypes)
	network := pick(g.rnd, domain.CardNetworks)

	created := g.now
	if t, err := ParseDate(SafeString(account["created_at"], "")); err == nil {
		created = t
	}
	created = created.AddDate(0, 0, between(g.rnd, 0, 60))

	card := domain.Record{
		"card_id":               g.ids.Next(),
		"customer_id":           customerID,
		"account_id":            account["account_id"],
		"card_number":           g.cardNumber(network),
		"card_type":             cardType,
		"card_network":          network,
		"expiration_date":       g.expiry(),
		"cvv":                   g.cvv(),
		"credit_limit":          g.creditLimit(cardType, between(g.rnd, 600, 850)),
		"status":                pickWeighted(g.rnd, domain.CardStatuses, []float64{0.85, 0.05, 0.05, 0.05}),
		"created_at":            created.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		card = g.corrupt(card)
	}
	return card
}

// cardNumber produces a Luhn-valid number. American Express uses the
// 15-digit scheme with prefix 34/37; all other networks get 16 digits with
// prefix 4 or 5.
func (g *CardGenerator) cardNumber(network string) string {
	var prefix string
	var length int
	if network == "American Express" {
		prefix = pick(g.rnd, []string{"34", "37"})
		length = 15
	} else {
		prefix = pick(g.rnd, []string{"4", "5"})
		length = 16
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	for sb.Len() < length-1 {
		sb.WriteByte(byte('0' + g.rnd.Intn(10)))
	}
	body := sb.String()
	return body + strconv.Itoa(luhnCheckDigit(body))
}

// luhnCheckDigit computes the check digit appended to the given body.
func luhnCheckDigit(body string) int {
	sum := 0
	// Walk right to left; the rightmost body digit sits immediately left of
	// the check digit, so it gets doubled.
	double := true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

func (g *CardGenerator) invalidCardNumber() string {
	invalid := []string{
		"1234567890123456",
		"1111-2222-3333-4444",
		"abcd-efgh-ijkl-mnop",
		strings.Repeat("1", 19),
		"0000000000000000",
		"",
		"NULL",
	}
	return pick(g.rnd, invalid)
}

// expiry returns an MM/YY date 1-5 years out.
func (g *CardGenerator) expiry() string {
	return g.now.AddDate(0, 0, between(g.rnd, 365, 365*5)).Format(expiryLayout)
}

// expiredExpiry returns a past MM/YY date.
func (g *CardGenerator) expiredExpiry() string {
	return g.now.AddDate(0, 0, -between(g.rnd, 1, 365*3)).Format(expiryLayout)
}

func (g *CardGenerator) invalidExpiry() string {
	invalid := []string{"13/25", "00/23", "AA/BB", "05/2025", "05-25", "", "99/99"}
	return pick(g.rnd, invalid)
}

func (g *CardGenerator) cvv() string {
	return strconv.Itoa(between(g.rnd, 100, 999))
}

func (g *CardGenerator) invalidCVV() string {
	invalid := []string{"12", "12345", "abc", "000", "", "NULL"}
	return pick(g.rnd, invalid)
}

// creditLimit maps a credit score onto a limit band for Credit cards;
// non-credit cards carry no limit.
func (g *CardGenerator) creditLimit(cardType string, creditScore int) float64 {
	if cardType != "Credit" {
		return 0
	}
	base := 1000.0
	switch {
	case creditScore >= 800:
		base = 25000
	case creditScore >= 750:
		base = 15000
	case creditScore >= 700:
		base = 10000
	case creditScore >= 650:
		base = 5000
	case creditScore >= 600:
		base = 2000
	}
	return round2(base * uniform(g.rnd, 0.8, 1.2))
}

func (g *CardGenerator) invalidCreditLimit() float64 {
	invalid := []float64{-5000.00, 99999999.99, 0.00, -0.01, 100000000.00}
	return pick(g.rnd, invalid)
}

func (g *CardGenerator) corrupt(card domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"card_number", "expiration_date", "cvv", "credit_limit"}, between(g.rnd, 1, 3))
		return baddata.ApplyMissingData(card, fields)

	case baddata.InvalidFormat:
		switch g.rnd.Intn(3) {
		case 0:
			return baddata.ApplyInvalidFormat(card, "card_number", g.invalidCardNumber())
		case 1:
			return baddata.ApplyInvalidFormat(card, "expiration_date", g.invalidExpiry())
		}
		return baddata.ApplyInvalidFormat(card, "cvv", g.invalidCVV())

	case baddata.OutOfRange:
		if g.rnd.Intn(2) == 0 {
			card["expiration_date"] = g.expiredExpiry()
		} else {
			card["credit_limit"] = g.invalidCreditLimit()
		}
		return baddata.Mark(card, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Type/network contradiction.
		if card["card_type"] == "Credit" && card["card_network"] == "Visa" {
			card["card_network"] = "InvalidNetwork"
		} else {
			card["card_type"] = "Credit"
			card["credit_limit"] = 0.00
		}
		return baddata.Mark(card, baddata.InconsistentData)
	}
	field := pick(g.rnd, []string{"card_type", "card_network", "status"})
	return g.inject.ApplyMalformedData(card, field)
}

// groupByCustomer indexes records by their customer_id, skipping records
// whose customer_id was corrupted away.
func groupByCustomer(records []domain.Record) map[string][]domain.Record {
	grouped := make(map[string][]domain.Record)
	for _, rec := range records {
		id := SafeString(rec["customer_id"], "")
		if id == "" {
			continue
		}
		grouped[id] = append(grouped[id], rec)
	}
	return grouped
}
