package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// CustomerGenerator produces the customers collection and its 1:1
// customer_details companion. It is the root of the dependency graph: every
// downstream entity anchors its earliest timestamps on a customer's
// created_at.
type CustomerGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewCustomerGenerator builds a generator with the given corruption
// probability.
func NewCustomerGenerator(rnd *rand.Rand, badProbability float64) *CustomerGenerator {
	return &CustomerGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "C", 10000000, 99999999),
		now:    time.Now(),
	}
}

type address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string
}

// Generate returns n customers and n customer details. The two collections
// roll corruption independently, so one source customer may contribute zero,
// one, or two bad records.
func (g *CustomerGenerator) Generate(n int) (customers, details []domain.Record) {
	customers = make([]domain.Record, 0, n)
	details = make([]domain.Record, 0, n)

	for i := 0; i < n; i++ {
		customerID := g.ids.Next()
		firstName := pick(g.rnd, domain.FirstNames)
		lastName := pick(g.rnd, domain.LastNames)
		addr := g.newAddress()
		createdAt := g.now.AddDate(0, 0, -between(g.rnd, 0, 365*5)).Format(dateTimeLayout)

		customer := domain.Record{
			"customer_id":           customerID,
			"first_name":            firstName,
			"last_name":             lastName,
			"email":                 g.email(firstName, lastName),
			"phone":                 g.phone(),
			"date_of_birth":         g.dateOfBirth(),
			"street":                addr.street,
			"city":                  addr.city,
			"state":                 addr.state,
			"zip_code":              addr.zipCode,
			"country":               addr.country,
			"created_at":            createdAt,
			domain.FieldIsBadData:   false,
			domain.FieldBadDataType: nil,
		}
		if g.inject.ShouldInject() {
			customer = g.corruptCustomer(customer)
		}
		customers = append(customers, customer)

		detail := domain.Record{
			"customer_id":           customerID,
			"employment_status":     pick(g.rnd, domain.EmploymentTypes),
			"annual_income":         g.annualIncome(),
			"credit_score":          g.creditScore(),
			"marital_status":        pick(g.rnd, domain.MaritalStatuses),
			"education_level":       pick(g.rnd, domain.EducationLevels),
			"created_at":            createdAt,
			domain.FieldIsBadData:   false,
			domain.FieldBadDataType: nil,
		}
		if g.inject.ShouldInject() {
			detail = g.corruptDetail(detail)
		}
		details = append(details, detail)
	}

	return customers, details
}

func (g *CustomerGenerator) email(first, last string) string {
	return fmt.Sprintf("%s.%s@%s",
		strings.ToLower(first), strings.ToLower(last), pick(g.rnd, domain.EmailDomains))
}

func (g *CustomerGenerator) invalidEmail() string {
	invalid := []string{
		"invalid.email",
		"missing@domain",
		"@nodomain.com",
		"spaces in@email.com",
		"verylongemailaddress" + strings.Repeat("x", 50) + "@domain.com",
		"NULL",
		"",
	}
	return pick(g.rnd, invalid)
}

func (g *CustomerGenerator) phone() string {
	return fmt.Sprintf("+1-%d-%d-%d",
		between(g.rnd, 200, 999), between(g.rnd, 200, 999), between(g.rnd, 1000, 9999))
}

func (g *CustomerGenerator) invalidPhone() string {
	invalid := []string{
		"123",
		strings.Repeat("1", 50),
		"abc-def-ghij",
		"123-456-789",
		"000-000-0000",
		"+999-999-9999",
		"",
	}
	return pick(g.rnd, invalid)
}

func (g *CustomerGenerator) newAddress() address {
	city := pick(g.rnd, domain.Cities)
	zip, ok := domain.ZipCodes[city]
	if !ok {
		zip = fmt.Sprintf("%d", between(g.rnd, 10000, 99999))
	}
	return address{
		street: fmt.Sprintf("%d %s %s",
			between(g.rnd, 1, 9999), pick(g.rnd, domain.StreetNames), pick(g.rnd, domain.StreetTypes)),
		city:    city,
		state:   pick(g.rnd, domain.States),
		zipCode: zip,
		country: pick(g.rnd, domain.Countries),
	}
}

// dateOfBirth returns a DOB for an 18-80 year old.
func (g *CustomerGenerator) dateOfBirth() string {
	end := g.now.AddDate(0, 0, -365*18)
	start := end.AddDate(0, 0, -365*62)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, between(g.rnd, 0, days)).Format(dateLayout)
}

func (g *CustomerGenerator) futureDateOfBirth() string {
	return g.now.AddDate(0, 0, between(g.rnd, 1, 365*10)).Format(dateLayout)
}

func (g *CustomerGenerator) creditScore() int {
	return between(g.rnd, 300, 850)
}

func (g *CustomerGenerator) invalidCreditScore() any {
	invalid := []any{-100, 0, 1000, 9999, nil}
	return invalid[g.rnd.Intn(len(invalid))]
}

func (g *CustomerGenerator) annualIncome() int {
	type bracket struct {
		min, max int
		weight   float64
	}
	brackets := []bracket{
		{20000, 50000, 0.3},
		{50000, 100000, 0.4},
		{100000, 200000, 0.2},
		{200000, 500000, 0.1},
	}
	weights := make([]float64, len(brackets))
	for i, b := range brackets {
		weights[i] = b.weight
	}
	b := pickWeighted(g.rnd, brackets, weights)
	return between(g.rnd, b.min, b.max)
}

func (g *CustomerGenerator) invalidAnnualIncome() any {
	invalid := []any{-50000, 0, 999999999, -1, nil}
	return invalid[g.rnd.Intn(len(invalid))]
}

func (g *CustomerGenerator) corruptCustomer(customer domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"email", "phone", "street", "city"}, between(g.rnd, 1, 3))
		return baddata.ApplyMissingData(customer, fields)

	case baddata.InvalidFormat:
		if g.rnd.Intn(2) == 0 {
			return baddata.ApplyInvalidFormat(customer, "email", g.invalidEmail())
		}
		return baddata.ApplyInvalidFormat(customer, "phone", g.invalidPhone())

	case baddata.OutOfRange:
		if g.rnd.Intn(2) == 0 {
			customer["date_of_birth"] = g.futureDateOfBirth()
		} else {
			customer["date_of_birth"] = "1899-01-01"
		}
		return baddata.Mark(customer, baddata.OutOfRange)

	case baddata.InconsistentData:
		// City/state mismatch.
		customer["state"] = "XX"
		return baddata.Mark(customer, baddata.InconsistentData)

	}
	field := pick(g.rnd, []string{"first_name", "last_name", "email"})
	return g.inject.ApplyMalformedData(customer, field)
}

func (g *CustomerGenerator) corruptDetail(detail domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"employment_status", "annual_income", "credit_score"}, between(g.rnd, 1, 3))
		return baddata.ApplyMissingData(detail, fields)

	case baddata.OutOfRange:
		if g.rnd.Intn(2) == 0 {
			detail["credit_score"] = g.invalidCreditScore()
		} else {
			detail["annual_income"] = g.invalidAnnualIncome()
		}
		return baddata.Mark(detail, baddata.OutOfRange)

	case baddata.InconsistentData:
		// High income for an unemployed customer.
		if detail["employment_status"] == "Unemployed" {
			detail["annual_income"] = between(g.rnd, 100000, 500000)
		}
		return baddata.Mark(detail, baddata.InconsistentData)

	case baddata.InvalidFormat:
		return baddata.ApplyInvalidFormat(detail, "employment_status", "InvalidStatus123")
	}
	return g.inject.ApplyMalformedData(detail, "education_level")
}
