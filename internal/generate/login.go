package generate

import (
	"fmt"
	"math/rand"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// UserLoginGenerator produces a 90-day login history for a slice of
// customers, including occasional brute-force bursts of rapid failures
// from a single address.
type UserLoginGenerator struct {
	rnd       *rand.Rand
	inject    *baddata.Injector
	seq       Sequence
	minLogins int
	maxLogins int
	now       time.Time
}

func NewUserLoginGenerator(rnd *rand.Rand, minLogins, maxLogins int, badProbability float64) *UserLoginGenerator {
	return &UserLoginGenerator{
		rnd:       rnd,
		inject:    baddata.NewInjector(rnd, badProbability),
		minLogins: minLogins,
		maxLogins: maxLogins,
		now:       time.Now(),
	}
}

// Generate covers at most the first 100 customers. Each gets between
// minLogins and maxLogins ordinary sessions, and a 5% chance of an
// additional brute-force burst.
func (g *UserLoginGenerator) Generate(customers []domain.Record) []domain.Record {
	sampled := customers
	if len(sampled) > 100 {
		sampled = sampled[:100]
	}

	var logins []domain.Record
	for _, customer := range sampled {
		customerID := SafeString(customer["customer_id"], "")
		if customerID == "" {
			continue
		}

		n := between(g.rnd, g.minLogins, g.maxLogins)
		for i := 0; i < n; i++ {
			logins = append(logins, g.newLogin(customerID))
		}

		if g.rnd.Float64() < 0.05 {
			logins = append(logins, g.bruteForceBurst(customerID)...)
		}
	}
	return logins
}

func (g *UserLoginGenerator) newLogin(customerID string) domain.Record {
	ts := g.now.Add(-time.Duration(between(g.rnd, 0, 90*24*60)) * time.Minute)

	success := g.rnd.Float64() < 0.95
	status := "SUCCESS"
	var failureReason any
	session := 0
	if success {
		session = between(g.rnd, 1, 240)
	} else {
		status = pick(g.rnd, []string{"FAILED", "BLOCKED"})
		failureReason = pick(g.rnd, domain.LoginFailureReasons)
	}

	login := domain.Record{
		"login_id":                 g.seq.Next(),
		"customer_id":              customerID,
		"login_timestamp":          ts.Format(dateTimeLayout),
		"ip_address":               g.ipAddress(success),
		"device_type":              pick(g.rnd, domain.DeviceTypes),
		"browser":                  pick(g.rnd, domain.Browsers),
		"operating_system":         pick(g.rnd, domain.OperatingSystems),
		"login_method":             pick(g.rnd, domain.LoginMethods),
		"login_status":             status,
		"failure_reason":           failureReason,
		"session_duration_minutes": session,
		"geolocation":              g.geolocation(),
		"is_vpn_used":              g.rnd.Float64() < 0.1,
		"created_at":               g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:      false,
		domain.FieldBadDataType:    nil,
	}

	if g.inject.ShouldInject() {
		login = g.corrupt(login)
	}
	return login
}

// bruteForceBurst emits 5-20 failed attempts seconds apart, all from one
// address behind a VPN. The burst records stay clean; corruption applies
// only to ordinary sessions so a burst remains recognizable in the data.
func (g *UserLoginGenerator) bruteForceBurst(customerID string) []domain.Record {
	start := g.now.Add(-time.Duration(between(g.rnd, 0, 90*24*60)) * time.Minute)
	ip := fmt.Sprintf("10.0.0.%d", between(g.rnd, 1, 255))
	n := between(g.rnd, 5, 20)

	burst := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i*between(g.rnd, 2, 30)) * time.Second)
		burst = append(burst, domain.Record{
			"login_id":                 g.seq.Next(),
			"customer_id":              customerID,
			"login_timestamp":          ts.Format(dateTimeLayout),
			"ip_address":               ip,
			"device_type":              "Unknown Device",
			"browser":                  "UNKNOWN",
			"operating_system":         "UNKNOWN",
			"login_method":             "PASSWORD",
			"login_status":             "FAILED",
			"failure_reason":           "BRUTE_FORCE_ATTEMPT",
			"session_duration_minutes": 0,
			"geolocation":              nil,
			"is_vpn_used":              true,
			"created_at":               g.now.Format(dateTimeLayout),
			domain.FieldIsBadData:      false,
			domain.FieldBadDataType:    nil,
		})
	}
	return burst
}

// ipAddress returns a private-range address for about half of failed
// attempts and a public one otherwise.
func (g *UserLoginGenerator) ipAddress(success bool) string {
	if !success && g.rnd.Float64() < 0.5 {
		return fmt.Sprintf("192.168.%d.%d", between(g.rnd, 0, 255), between(g.rnd, 1, 254))
	}
	return randomIPv4(g.rnd)
}

func (g *UserLoginGenerator) geolocation() string {
	city := pick(g.rnd, domain.Cities)
	state := pick(g.rnd, domain.States)
	return fmt.Sprintf("%s, %s, USA", city, state)
}

func (g *UserLoginGenerator) corrupt(login domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		return baddata.ApplyMissingData(login,
			[]string{"ip_address", "device_type", "geolocation"})

	case baddata.InvalidFormat:
		login["ip_address"] = "999.999.999.999"
		login["login_timestamp"] = "not-a-timestamp"
		return baddata.Mark(login, baddata.InvalidFormat)

	case baddata.OutOfRange:
		login["session_duration_minutes"] = -45
		return baddata.Mark(login, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Successful login carrying a failure reason.
		login["login_status"] = "SUCCESS"
		login["failure_reason"] = "ACCOUNT_LOCKED"
		return baddata.Mark(login, baddata.InconsistentData)
	}
	return g.inject.ApplyMalformedData(login, "browser")
}
