package generate

import (
	"fmt"
	"math/rand"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// FraudAlertGenerator derives alerts from the finished transaction
// collection. Severity is a monotonic step function of the absolute
// transaction amount; the alerted customer is resolved through an
// account-to-customer map built once from the account list, and left null
// when unresolvable so downstream foreign keys stay intact.
type FraudAlertGenerator struct {
	rnd       *rand.Rand
	inject    *baddata.Injector
	seq       Sequence
	fraudRate float64
	now       time.Time
}

// NewFraudAlertGenerator builds a generator alerting on fraudRate of the
// transaction volume, with the given corruption probability.
func NewFraudAlertGenerator(rnd *rand.Rand, fraudRate, badProbability float64) *FraudAlertGenerator {
	return &FraudAlertGenerator{
		rnd:       rnd,
		inject:    baddata.NewInjector(rnd, badProbability),
		fraudRate: fraudRate,
		now:       time.Now(),
	}
}

// Generate returns floor(len(transactions)*fraudRate) alerts, capped at the
// transaction count, over a sample drawn without replacement.
func (g *FraudAlertGenerator) Generate(transactions, accounts []domain.Record) []domain.Record {
	if len(transactions) == 0 {
		return nil
	}

	accountToCustomer := make(map[string]string, len(accounts))
	for _, account := range accounts {
		if id := SafeString(account["account_id"], ""); id != "" {
			accountToCustomer[id] = SafeString(account["customer_id"], "")
		}
	}

	numAlerts := int(float64(len(transactions)) * g.fraudRate)
	if numAlerts > len(transactions) {
		numAlerts = len(transactions)
	}

	alerts := make([]domain.Record, 0, numAlerts)
	for _, tx := range sampleWithoutReplacement(g.rnd, transactions, numAlerts) {
		alerts = append(alerts, g.newAlert(tx, accountToCustomer))
	}
	return alerts
}

func (g *FraudAlertGenerator) newAlert(tx domain.Record, accountToCustomer map[string]string) domain.Record {
	transDate := g.transactionDate(tx)

	// 1-72 hours after the transaction. Shifting a corrupted far-future
	// date can overflow time arithmetic; leave the alert at the
	// transaction instant in that case.
	alertDate := transDate.Add(time.Duration(between(g.rnd, 1, 72)) * time.Hour)
	if alertDate.Before(transDate) {
		alertDate = transDate
	}

	amount := SafeFloat(tx["amount"], -1)
	if amount < 0 {
		if _, ok := tx["amount"].(float64); ok {
			amount = -amount
		} else {
			amount = uniform(g.rnd, 10, 10000)
		}
	}

	severity, score := Severity(g.rnd, amount)

	var customerID any
	if accountID := SafeString(tx["account_id"], ""); accountID != "" {
		if id, ok := accountToCustomer[accountID]; ok && id != "" {
			customerID = id
		}
	}

	var analystID any
	if g.rnd.Float64() > 0.4 {
		analystID = fmt.Sprintf("ANALYST_%d", between(g.rnd, 100, 999))
	}

	loss := 0.0
	if g.rnd.Float64() > 0.5 {
		loss = round2(amount * uniform(g.rnd, 0, 0.8))
	}

	status := pick(g.rnd, domain.AlertStatuses)

	alert := domain.Record{
		"alert_id":              g.seq.Next(),
		"transaction_id":        tx["transaction_id"],
		"account_id":            tx["account_id"],
		"customer_id":           customerID,
		"alert_timestamp":       alertDate.Format(dateTimeLayout),
		"detection_method":      pick(g.rnd, domain.DetectionMethods),
		"fraud_reason":          pick(g.rnd, domain.FraudReasons),
		"fraud_type":            pick(g.rnd, domain.FraudTypes),
		"severity":              severity,
		"severity_score":        score,
		"alert_status":          status,
		"assigned_analyst_id":   analystID,
		"resolution_date":       nil,
		"financial_loss":        loss,
		"is_false_positive":     false,
		"created_at":            g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if isClosedStatus(status) {
		alert["resolution_date"] = alertDate.AddDate(0, 0, between(g.rnd, 1, 30)).Format(dateTimeLayout)
	}

	if g.inject.ShouldInject() {
		alert = g.corrupt(alert)
	}
	return alert
}

// transactionDate parses the transaction's date defensively: multiple known
// layouts are tried, and total failure substitutes a random recent date
// rather than failing the run.
func (g *FraudAlertGenerator) transactionDate(tx domain.Record) time.Time {
	raw := tx["transaction_date"]
	if s, ok := raw.(string); ok && s != "" {
		if t, err := ParseDate(s); err == nil {
			return t
		}
	}
	return g.now.AddDate(0, 0, -between(g.rnd, 1, 30))
}

// Severity maps an absolute amount onto the monotonic severity ladder and
// draws a score within the band.
func Severity(rnd *rand.Rand, amount float64) (string, int) {
	switch {
	case amount > 10000:
		return "CRITICAL", between(rnd, 80, 100)
	case amount > 5000:
		return "HIGH", between(rnd, 60, 79)
	case amount > 1000:
		return "MEDIUM", between(rnd, 40, 59)
	default:
		return "LOW", between(rnd, 20, 39)
	}
}

func isClosedStatus(status string) bool {
	for _, s := range domain.ClosedAlertStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (g *FraudAlertGenerator) corrupt(alert domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		return baddata.ApplyMissingData(alert,
			[]string{"fraud_reason", "severity", "detection_method"})

	case baddata.OutOfRange:
		alert["severity_score"] = -10
		alert["financial_loss"] = -500000.0
		return baddata.Mark(alert, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Resolved with no resolution date.
		alert["alert_status"] = "RESOLVED"
		alert["resolution_date"] = nil
		return baddata.Mark(alert, baddata.InconsistentData)

	case baddata.InvalidFormat:
		alert["alert_timestamp"] = "2024/13/45 25:61:61"
		alert["fraud_reason"] = "INVALID_REASON_XYZ"
		return baddata.Mark(alert, baddata.InvalidFormat)
	}
	return g.inject.ApplyMalformedData(alert, "fraud_reason")
}
