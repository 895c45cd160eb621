package generate

import (
	"fmt"
	"math/rand"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// ExchangeRateGenerator produces one row per (day, currency pair) over a
// trailing window. Rate ids are derived from the date and the pair, so the
// (day, pair) grid carries no collision risk by construction.
type ExchangeRateGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	now    time.Time
}

// NewExchangeRateGenerator builds a generator with the given corruption
// probability.
func NewExchangeRateGenerator(rnd *rand.Rand, badProbability float64) *ExchangeRateGenerator {
	return &ExchangeRateGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		now:    time.Now(),
	}
}

// Generate returns numDays * len(CurrencyPairs) rates covering the trailing
// numDays days.
func (g *ExchangeRateGenerator) Generate(numDays int) []domain.Record {
	rates := make([]domain.Record, 0, numDays*len(domain.CurrencyPairs))
	start := g.now.AddDate(0, 0, -numDays)

	for day := 0; day < numDays; day++ {
		date := start.AddDate(0, 0, day)
		for _, pair := range domain.CurrencyPairs {
			rates = append(rates, g.newRate(date, pair))
		}
	}
	return rates
}

func (g *ExchangeRateGenerator) newRate(date time.Time, pair domain.CurrencyPair) domain.Record {
	base, ok := domain.BaseRates[pair]
	if !ok {
		base = round4(uniform(g.rnd, 0.5, 2.0))
	}

	// Daily variation of +-2% around the anchor, with a 0.1%-0.5% spread
	// split evenly around the mid.
	mid := round4(base * (1 + uniform(g.rnd, -0.02, 0.02)))
	spread := uniform(g.rnd, 0.001, 0.005)
	buy := round4(mid * (1 - spread/2))
	sell := round4(mid * (1 + spread/2))

	day := date.Format(dateLayout)
	rate := domain.Record{
		"rate_id":               fmt.Sprintf("EXR%s%s%s", date.Format("20060102"), pair.Base, pair.Target),
		"base_currency":         pair.Base,
		"target_currency":       pair.Target,
		"buy_rate":              buy,
		"sell_rate":             sell,
		"mid_rate":              mid,
		"rate_date":             day,
		"valid_from":            day + " 00:00:00",
		"valid_to":              day + " 23:59:59",
		"source":                pick(g.rnd, domain.RateSources),
		"created_at":            date.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		rate = g.corrupt(rate)
	}
	return rate
}

func (g *ExchangeRateGenerator) corrupt(rate domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		return baddata.ApplyMissingData(rate, []string{"buy_rate", "sell_rate", "mid_rate"})

	case baddata.OutOfRange:
		rate["buy_rate"] = -0.5
		return baddata.Mark(rate, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Sell below buy inverts the spread.
		rate["sell_rate"] = round4(SafeFloat(rate["buy_rate"], 1.0) * 0.9)
		return baddata.Mark(rate, baddata.InconsistentData)

	case baddata.InvalidFormat:
		return baddata.ApplyInvalidFormat(rate, "buy_rate", "invalid")
	}
	return g.inject.ApplyMalformedData(rate, "source")
}
