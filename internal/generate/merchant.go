package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

var merchantNamePrefixes = map[string][]string{
	"Retail":        {"Best", "Super", "Mega", "Quality", "Prime"},
	"Restaurant":    {"Golden", "Royal", "Tasty", "Delicious", "Gourmet"},
	"Travel":        {"Global", "Express", "First Class", "Premium", "Luxury"},
	"Entertainment": {"Star", "Magic", "Dream", "Fantasy", "Epic"},
	"Utilities":     {"City", "Metro", "National", "Regional", "Local"},
	"Healthcare":    {"Medi", "Health", "Care", "Wellness", "Clinic"},
}

var merchantNameSuffixes = map[string][]string{
	"Retail":        {"Mart", "Store", "Shop", "Center", "Outlet"},
	"Restaurant":    {"Grill", "Bistro", "Cafe", "Kitchen", "Diner"},
	"Travel":        {"Travels", "Tours", "Airlines", "Hotels", "Cruises"},
	"Entertainment": {"Cinema", "Theater", "Games", "Fun", "Entertainment"},
	"Utilities":     {"Services", "Utility", "Company", "Corp", "Inc"},
	"Healthcare":    {"Hospital", "Clinic", "Center", "Care", "Medical"},
}

// mccCodes maps categories to their Merchant Category Codes.
var mccCodes = map[string][]string{
	"Retail":        {"5411", "5311", "5331", "5399"},
	"Restaurant":    {"5812", "5814", "5813"},
	"Travel":        {"4722", "4511", "4111", "4131"},
	"Entertainment": {"7832", "7996", "7997", "7999"},
	"Utilities":     {"4900", "4814", "4899"},
	"Healthcare":    {"8011", "8021", "8031", "8049"},
}

// MerchantGenerator produces merchants with category-keyed names and MCCs.
type MerchantGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewMerchantGenerator builds a generator with the given corruption
// probability.
func NewMerchantGenerator(rnd *rand.Rand, badProbability float64) *MerchantGenerator {
	return &MerchantGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "MER", 100000, 999999),
		now:    time.Now(),
	}
}

// Generate returns n merchants.
func (g *MerchantGenerator) Generate(n int) []domain.Record {
	merchants := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		merchants = append(merchants, g.newMerchant())
	}
	return merchants
}

func (g *MerchantGenerator) newMerchant() domain.Record {
	category := pick(g.rnd, domain.MerchantCategories)
	name := g.merchantName(category)
	slug := strings.ToLower(strings.ReplaceAll(name, " ", ""))

	merchant := domain.Record{
		"merchant_id":           g.ids.Next(),
		"merchant_name":         name,
		"category":              category,
		"mcc_code":              g.mcc(category),
		"street":                fmt.Sprintf("%d %s Ave", between(g.rnd, 1, 9999), pick(g.rnd, []string{"Commerce", "Market", "Business"})),
		"city":                  pick(g.rnd, domain.Cities),
		"state":                 pick(g.rnd, []string{"CA", "NY", "TX", "FL", "IL"}),
		"zip_code":              fmt.Sprintf("%d", between(g.rnd, 10000, 99999)),
		"country":               "USA",
		"phone":                 fmt.Sprintf("(%d) %d-%d", between(g.rnd, 200, 999), between(g.rnd, 200, 999), between(g.rnd, 1000, 9999)),
		"email":                 fmt.Sprintf("info@%s.com", slug),
		"website":               fmt.Sprintf("www.%s.com", slug),
		"status":                pickWeighted(g.rnd, []string{"Active", "Inactive", "Suspended"}, []float64{0.9, 0.07, 0.03}),
		"created_at":            g.now.AddDate(0, 0, -between(g.rnd, 0, 365*5)).Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		merchant = g.corrupt(merchant)
	}
	return merchant
}

func (g *MerchantGenerator) merchantName(category string) string {
	prefixes, ok := merchantNamePrefixes[category]
	if !ok {
		prefixes = []string{"Super"}
	}
	suffixes, ok := merchantNameSuffixes[category]
	if !ok {
		suffixes = []string{"Store"}
	}
	return pick(g.rnd, prefixes) + " " + pick(g.rnd, suffixes)
}

func (g *MerchantGenerator) mcc(category string) string {
	codes, ok := mccCodes[category]
	if !ok {
		return "5399"
	}
	return pick(g.rnd, codes)
}

func (g *MerchantGenerator) corrupt(merchant domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"mcc_code", "phone", "email", "category"}, 2)
		return baddata.ApplyMissingData(merchant, fields)

	case baddata.InvalidFormat:
		return baddata.ApplyInvalidFormat(merchant, "mcc_code", "ABCD")

	case baddata.InconsistentData:
		// MCC that matches no category.
		merchant["mcc_code"] = "0000"
		return baddata.Mark(merchant, baddata.InconsistentData)

	case baddata.OutOfRange:
		merchant["created_at"] = g.now.AddDate(0, 0, between(g.rnd, 1, 365)).Format(dateTimeLayout)
		return baddata.Mark(merchant, baddata.OutOfRange)
	}
	return g.inject.ApplyMalformedData(merchant, "merchant_name")
}
