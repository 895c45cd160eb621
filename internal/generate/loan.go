package generate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// LoanGenerator produces loans for customers that own at least one account,
// plus the fully amortized payment schedule for each loan. The schedule math
// must tolerate corrupted loan fields (nil rate, string principal) because
// loans are corrupted before their schedules are derived.
type LoanGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewLoanGenerator builds a generator with the given corruption probability.
// Payments roll corruption at half the loan probability.
func NewLoanGenerator(rnd *rand.Rand, badProbability float64) *LoanGenerator {
	return &LoanGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "LN", 1000000, 9999999),
		now:    time.Now(),
	}
}

// Generate returns loans and their payment schedules. Customers without
// accounts are skipped; schedules are only derived for loans that kept a
// usable amount, rate, and term after corruption.
func (g *LoanGenerator) Generate(customers, accounts []domain.Record, minPerCustomer, maxPerCustomer int) (loans, payments []domain.Record) {
	byCustomer := groupByCustomer(accounts)

	for _, customer := range customers {
		customerID := SafeString(customer["customer_id"], "")
		owned := byCustomer[customerID]
		n := between(g.rnd, minPerCustomer, maxPerCustomer)
		if len(owned) == 0 || n == 0 {
			continue
		}

		for i := 0; i < n; i++ {
			loan := g.newLoan(customerID, pick(g.rnd, owned))
			loans = append(loans, loan)

			if loan["loan_amount"] == nil || loan["interest_rate"] == nil || loan["term_months"] == nil {
				continue
			}
			for _, payment := range g.Schedule(loan) {
				g.assignOutcome(payment)
				if g.inject.ShouldInjectScaled(0.5) {
					payment = g.corruptPayment(payment)
				}
				payments = append(payments, payment)
			}
		}
	}
	return loans, payments
}

func (g *LoanGenerator) newLoan(customerID string, account domain.Record) domain.Record {
	loanType := pick(g.rnd, domain.LoanTypes)
	creditScore := between(g.rnd, 600, 850)

	amount := g.loanAmount(loanType)
	term := pick(g.rnd, domain.LoanTerms)
	rate := g.interestRate(loanType, creditScore)
	monthly := CalculateMonthlyPayment(amount, rate, term)

	start := g.now.AddDate(0, 0, -between(g.rnd, 0, 365*5))
	startDate := start.Format(dateLayout)

	loan := domain.Record{
		"loan_id":               g.ids.Next(),
		"customer_id":           customerID,
		"account_id":            account["account_id"],
		"loan_type":             loanType,
		"loan_amount":           amount,
		"interest_rate":         rate,
		"term_months":           term,
		"start_date":            startDate,
		"end_date":              start.AddDate(0, 0, term*30).Format(dateLayout),
		"monthly_payment":       monthly,
		"remaining_balance":     amount,
		"status":                pickWeighted(g.rnd, domain.LoanStatuses, []float64{0.6, 0.2, 0.05, 0.1, 0.04, 0.01}),
		"interest_type":         pick(g.rnd, domain.InterestTypes),
		"created_at":            startDate + " 00:00:00",
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		loan = g.corruptLoan(loan)
	}
	return loan
}

// loanAmount draws a plausible principal for the loan type.
func (g *LoanGenerator) loanAmount(loanType string) float64 {
	switch loanType {
	case "Personal Loan":
		return round2(uniform(g.rnd, 1000, 50000))
	case "Auto Loan":
		return round2(uniform(g.rnd, 5000, 100000))
	case "Home Loan":
		return round2(uniform(g.rnd, 100000, 1000000))
	case "Mortgage":
		return round2(uniform(g.rnd, 150000, 2000000))
	default:
		return round2(uniform(g.rnd, 5000, 250000))
	}
}

// interestRate starts from a 5% base, discounts for higher credit scores,
// adds a type premium (secured home lending +1pp, unsecured personal +3pp),
// and floors the result at 2%.
func (g *LoanGenerator) interestRate(loanType string, creditScore int) float64 {
	rate := 0.05

	switch {
	case creditScore >= 750:
		rate -= 0.02
	case creditScore >= 700:
		rate -= 0.015
	case creditScore >= 650:
		rate -= 0.01
	case creditScore >= 600:
		rate -= 0.005
	}

	switch loanType {
	case "Home Loan", "Mortgage":
		rate += 0.01
	case "Personal Loan":
		rate += 0.03
	}

	rate += uniform(g.rnd, -0.005, 0.005)
	return round4(math.Max(0.02, rate))
}

// CalculateMonthlyPayment computes the amortizing payment
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1),  r = annualRate/12
//
// with defensive fallbacks for degenerate input: non-positive terms are
// treated as 12 months, a non-positive principal pays 0, a non-positive rate
// amortizes straight-line, and a monthly rate at or below -100% is clamped
// to -0.99 so the formula stays finite.
func CalculateMonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		termMonths = 12
	}
	if principal <= 0 {
		return 0.00
	}
	if annualRate <= 0 {
		return round2(principal / float64(termMonths))
	}

	monthlyRate := annualRate / 12
	if monthlyRate <= -1 {
		monthlyRate = -0.99
	}

	growth := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal * (monthlyRate * growth) / (growth - 1)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return round2(principal / float64(termMonths))
	}
	return round2(payment)
}

// Schedule derives the full payment schedule for a loan. Corrupted loan
// fields are coerced to safe defaults (principal 10000, rate 5%, term 12)
// rather than failing, and the final installment is recomputed to pay off
// the remaining balance exactly regardless of rounding drift in earlier
// installments.
func (g *LoanGenerator) Schedule(loan domain.Record) []domain.Record {
	principal := SafeFloat(loan["loan_amount"], 10000.0)
	rate := SafeFloat(loan["interest_rate"], 0.05)
	term := SafeInt(loan["term_months"], 12)
	if term <= 0 {
		term = 12
	}

	monthly := loan["monthly_payment"]
	payment := SafeFloat(monthly, 0)
	if monthly == nil || payment == 0 {
		payment = CalculateMonthlyPayment(principal, rate, term)
	}

	monthlyRate := rate / 12

	paymentDate := g.now
	if t, err := ParseDate(SafeString(loan["start_date"], "")); err == nil {
		paymentDate = t
	}

	loanID := SafeString(loan["loan_id"], "LN0000000")
	customerID := SafeString(loan["customer_id"], "UNKNOWN")

	remaining := principal
	schedule := make([]domain.Record, 0, term)

	for num := 1; num <= term; num++ {
		interest := round2(remaining * monthlyRate)
		principalPart := round2(math.Min(payment-interest, remaining))

		if num == term {
			// Pay off exactly whatever is left.
			principalPart = round2(remaining)
			payment = principalPart + interest
		}
		remaining = round2(math.Max(0, remaining-principalPart))

		schedule = append(schedule, domain.Record{
			"payment_id":            PaymentID(loanID, num, customerID),
			"loan_id":               loanID,
			"customer_id":           customerID,
			"payment_number":        num,
			"payment_date":          paymentDate.Format(dateLayout),
			"due_date":              paymentDate.Format(dateLayout),
			"amount_due":            round2(payment),
			"principal_amount":      principalPart,
			"interest_amount":       interest,
			"total_paid":            0.00,
			"status":                "Pending",
			"created_at":            paymentDate.Format(dateTimeLayout),
			domain.FieldIsBadData:   false,
			domain.FieldBadDataType: nil,
		})

		paymentDate = paymentDate.AddDate(0, 0, 30) // approximate month
	}
	return schedule
}

// PaymentID deterministically derives a payment identifier from the loan id
// suffix, the payment sequence, and the customer id suffix. Re-deriving with
// the same triple reproduces the same value; no randomness is involved.
func PaymentID(loanID string, paymentNumber int, customerID string) string {
	loanSuffix := loanID
	if len(loanSuffix) > 2 {
		loanSuffix = loanSuffix[2:]
	}
	customerSuffix := customerID
	if len(customerSuffix) > 1 {
		customerSuffix = customerSuffix[1:]
	}
	return fmt.Sprintf("PAY%s%03d%s", loanSuffix, paymentNumber, customerSuffix)
}

// assignOutcome stamps a paid/late/missed/partial outcome with fixed
// weights: 70% paid in full, 15% late partial payment, 10% missed, 5% small
// partial.
func (g *LoanGenerator) assignOutcome(payment domain.Record) {
	due := SafeFloat(payment["amount_due"], 0)
	switch draw := g.rnd.Float64(); {
	case draw < 0.7:
		payment["total_paid"] = due
		payment["status"] = "Paid"
	case draw < 0.85:
		payment["total_paid"] = round2(due * uniform(g.rnd, 0.5, 0.95))
		payment["status"] = "Late"
	case draw < 0.95:
		payment["total_paid"] = 0.00
		payment["status"] = "Missed"
	default:
		payment["total_paid"] = round2(due * uniform(g.rnd, 0.1, 0.5))
		payment["status"] = "Partial"
	}
}

func (g *LoanGenerator) corruptLoan(loan domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"interest_rate", "term_months", "monthly_payment", "loan_type"}, 2)
		return baddata.ApplyMissingData(loan, fields)

	case baddata.OutOfRange:
		loan["interest_rate"] = uniform(g.rnd, -0.1, -0.01)
		return baddata.Mark(loan, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Monthly payment far too small for the principal.
		amount := SafeFloat(loan["loan_amount"], 0)
		loan["monthly_payment"] = round2(amount * 0.01)
		return baddata.Mark(loan, baddata.InconsistentData)

	case baddata.InvalidFormat:
		// Stays DECIMAL-insertable while being an impossible rate; an
		// unparsable string here would fail the downstream import outright.
		loan["interest_rate"] = 999.9999
		return baddata.Mark(loan, baddata.InvalidFormat)
	}
	field := pick(g.rnd, []string{"loan_type", "status"})
	return g.inject.ApplyMalformedData(loan, field)
}

func (g *LoanGenerator) corruptPayment(payment domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"amount_due", "principal_amount", "interest_amount"}, 2)
		return baddata.ApplyMissingData(payment, fields)

	case baddata.OutOfRange:
		payment["total_paid"] = round2(SafeFloat(payment["amount_due"], 0) * 2)
		return baddata.Mark(payment, baddata.OutOfRange)

	case baddata.InconsistentData:
		payment["status"] = "Late"
		return baddata.Mark(payment, baddata.InconsistentData)

	case baddata.InvalidFormat:
		// Far-future date rather than an unparsable string, for the same
		// importability reason as the loan rate above.
		payment["payment_date"] = "9999-12-31"
		return baddata.Mark(payment, baddata.InvalidFormat)
	}
	return g.inject.ApplyMalformedData(payment, "status")
}
