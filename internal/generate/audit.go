package generate

import (
	"math/rand"
	"sort"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// AuditLogGenerator produces system audit trails for the union of customer
// and employee user ids, sorted chronologically across the whole set.
type AuditLogGenerator struct {
	rnd        *rand.Rand
	inject     *baddata.Injector
	alloc      *IDAllocator
	minPerUser int
	maxPerUser int
	now        time.Time
}

func NewAuditLogGenerator(rnd *rand.Rand, minPerUser, maxPerUser int, badProbability float64) *AuditLogGenerator {
	return &AuditLogGenerator{
		rnd:        rnd,
		inject:     baddata.NewInjector(rnd, badProbability),
		alloc:      NewIDAllocator(rnd, "AUD", 100000000, 999999999),
		minPerUser: minPerUser,
		maxPerUser: maxPerUser,
		now:        time.Now(),
	}
}

var auditStatusWeights = []float64{0.85, 0.08, 0.04, 0.02, 0.01}

// Generate emits minPerUser to maxPerUser entries per user over the last
// 180 days, then orders the whole log by (action_date, action_time).
func (g *AuditLogGenerator) Generate(customers, employees []domain.Record) []domain.Record {
	userIDs := g.collectUserIDs(customers, employees)

	var logs []domain.Record
	for _, userID := range userIDs {
		n := between(g.rnd, g.minPerUser, g.maxPerUser)
		for i := 0; i < n; i++ {
			logs = append(logs, g.newEntry(userID))
		}
	}

	sort.SliceStable(logs, func(i, j int) bool {
		di := SafeString(logs[i]["action_date"], "9999-12-31")
		dj := SafeString(logs[j]["action_date"], "9999-12-31")
		if di != dj {
			return di < dj
		}
		return SafeString(logs[i]["action_time"], "23:59:59") < SafeString(logs[j]["action_time"], "23:59:59")
	})
	return logs
}

func (g *AuditLogGenerator) collectUserIDs(customers, employees []domain.Record) []string {
	ids := make([]string, 0, len(customers)+len(employees))
	for _, c := range customers {
		if id := SafeString(c["customer_id"], ""); id != "" {
			ids = append(ids, id)
		}
	}
	for _, e := range employees {
		if id := SafeString(e["employee_id"], ""); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *AuditLogGenerator) newEntry(userID string) domain.Record {
	ts := g.now.Add(-time.Duration(between(g.rnd, 0, 180*24*60)) * time.Minute)

	entityType := pick(g.rnd, domain.AuditEntityTypes)
	status := pickWeighted(g.rnd, domain.AuditStatusCodes, auditStatusWeights)

	var errMessage any
	if status == "FAILURE" || status == "ERROR" {
		errMessage = pick(g.rnd, domain.AuditErrorMessages)
	}

	entry := domain.Record{
		"audit_id":              g.alloc.Next(),
		"user_id":               userID,
		"action_type":           pick(g.rnd, domain.AuditActionTypes),
		"entity_type":           entityType,
		"entity_id":             g.entityID(entityType),
		"action_date":           ts.Format(dateLayout),
		"action_time":           ts.Format(timeLayout),
		"ip_address":            randomIPv4(g.rnd),
		"user_agent":            pick(g.rnd, domain.UserAgents),
		"status_code":           status,
		"action_details":        pick(g.rnd, domain.AuditActionDetails),
		"error_message":         errMessage,
		"created_at":            g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}

	if g.inject.ShouldInject() {
		entry = g.corrupt(entry)
	}
	return entry
}

func (g *AuditLogGenerator) entityID(entityType string) string {
	prefixes := map[string]string{
		"CUSTOMER":    "C",
		"ACCOUNT":     "ACC",
		"TRANSACTION": "TXN",
		"CARD":        "CRD",
		"LOAN":        "LN",
	}
	prefix, ok := prefixes[entityType]
	if !ok {
		prefix = "ENT"
	}
	return prefix + padDigits(g.rnd, 7)
}

func (g *AuditLogGenerator) corrupt(entry domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		return baddata.ApplyMissingData(entry,
			[]string{"ip_address", "user_agent", "action_details"})

	case baddata.InvalidFormat:
		entry["action_date"] = "31-12-2024"
		entry["ip_address"] = "300.1.2.3"
		return baddata.Mark(entry, baddata.InvalidFormat)

	case baddata.OutOfRange:
		entry["action_time"] = "25:99:99"
		return baddata.Mark(entry, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Success status carrying an error message.
		entry["status_code"] = "SUCCESS"
		entry["error_message"] = "Internal server error"
		return baddata.Mark(entry, baddata.InconsistentData)
	}
	return g.inject.ApplyMalformedData(entry, "action_details")
}
