package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// BranchGenerator produces bank branches. Branches are independent of every
// other entity; employees attach to them afterwards.
type BranchGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewBranchGenerator builds a generator with the given corruption
// probability.
func NewBranchGenerator(rnd *rand.Rand, badProbability float64) *BranchGenerator {
	return &BranchGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "BR", 1000, 9999),
		now:    time.Now(),
	}
}

// Generate returns n branches.
func (g *BranchGenerator) Generate(n int) []domain.Record {
	branches := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		branches = append(branches, g.newBranch())
	}
	return branches
}

func (g *BranchGenerator) newBranch() domain.Record {
	city := pick(g.rnd, domain.Cities)
	code := g.branchCode(city)

	branch := domain.Record{
		"branch_id":   g.ids.Next(),
		"branch_name": fmt.Sprintf("%s %s Branch", city, pick(g.rnd, []string{"Main", "Central", "Downtown", "Plaza"})),
		"branch_code": code,
		"branch_type": pick(g.rnd, domain.BranchTypes),
		"street":      fmt.Sprintf("%d %s St", between(g.rnd, 1, 9999), pick(g.rnd, []string{"Main", "Oak", "Broadway"})),
		"city":        city,
		"state":       pick(g.rnd, domain.States),
		"zip_code":    fmt.Sprintf("%d", between(g.rnd, 10000, 99999)),
		"country":     "USA",
		"phone":       fmt.Sprintf("(%d) %d-%d", between(g.rnd, 200, 999), between(g.rnd, 200, 999), between(g.rnd, 1000, 9999)),
		"email":       g.email(code),
		"manager_name": fmt.Sprintf("%s %s",
			pick(g.rnd, domain.FirstNames), pick(g.rnd, domain.LastNames)),
		"opening_date":          g.now.AddDate(0, 0, -between(g.rnd, 365, 365*20)).Format(dateLayout),
		"created_at":            g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		branch = g.corrupt(branch)
	}
	return branch
}

// branchCode derives a code from the first three letters of the city.
func (g *BranchGenerator) branchCode(city string) string {
	var letters strings.Builder
	for _, r := range city {
		if unicode.IsLetter(r) {
			letters.WriteRune(r)
		}
	}
	prefix := strings.ToUpper(letters.String())
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%d", prefix, between(g.rnd, 100, 999))
}

func (g *BranchGenerator) email(code string) string {
	domains := []string{"bank.com", "financial.com", "banking-services.com"}
	return fmt.Sprintf("branch.%s@%s", strings.ToLower(code), pick(g.rnd, domains))
}

func (g *BranchGenerator) corrupt(branch domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"manager_name", "phone", "email", "branch_type"}, between(g.rnd, 1, 2))
		return baddata.ApplyMissingData(branch, fields)

	case baddata.InvalidFormat:
		return baddata.ApplyInvalidFormat(branch, "phone", "invalid-phone")

	case baddata.InconsistentData:
		// City/state mismatch.
		branch["state"] = "XX"
		return baddata.Mark(branch, baddata.InconsistentData)

	case baddata.OutOfRange:
		// Branch opened in the future.
		branch["opening_date"] = g.now.AddDate(0, 0, between(g.rnd, 1, 365)).Format(dateLayout)
		return baddata.Mark(branch, baddata.OutOfRange)
	}
	return g.inject.ApplyMalformedData(branch, "branch_name")
}
