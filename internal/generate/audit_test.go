package generate_test

import (
	"fmt"
	"testing"

	"banksynth/internal/domain"
	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogGenerator_Generate(t *testing.T) {
	customers := cleanCustomers(10)
	employees := make([]domain.Record, 0, 5)
	for i := 0; i < 5; i++ {
		employees = append(employees, domain.Record{
			"employee_id": fmt.Sprintf("EMP%05d", 10000+i),
		})
	}

	g := generate.NewAuditLogGenerator(newRand(1), 5, 10, 0)
	logs := g.Generate(customers, employees)

	// Both populations contribute 5-10 entries each.
	require.GreaterOrEqual(t, len(logs), 15*5)
	require.LessOrEqual(t, len(logs), 15*10)

	users := make(map[string]struct{})
	for _, l := range logs {
		assert.Regexp(t, `^AUD\d{9}$`, l["audit_id"])
		users[l["user_id"].(string)] = struct{}{}

		status := l["status_code"].(string)
		if status == "FAILURE" || status == "ERROR" {
			assert.NotNil(t, l["error_message"])
		} else {
			assert.Nil(t, l["error_message"])
		}
	}
	assert.Len(t, users, 15, "every customer and employee should appear")
}

func TestAuditLogGenerator_SortedChronologically(t *testing.T) {
	customers := cleanCustomers(30)

	g := generate.NewAuditLogGenerator(newRand(2), 5, 10, 0)
	logs := g.Generate(customers, nil)
	require.NotEmpty(t, logs)

	prevDate, prevTime := "", ""
	for _, l := range logs {
		date := l["action_date"].(string)
		timeStr := l["action_time"].(string)
		if date == prevDate {
			assert.LessOrEqual(t, prevTime, timeStr)
		} else {
			assert.LessOrEqual(t, prevDate, date)
		}
		prevDate, prevTime = date, timeStr
	}
}

func TestAuditLogGenerator_NoUsers(t *testing.T) {
	g := generate.NewAuditLogGenerator(newRand(3), 5, 10, 0)
	assert.Empty(t, g.Generate(nil, nil))
}
