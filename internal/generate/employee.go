package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"
)

// EmployeeGenerator staffs the branches in two passes: pass one issues
// exactly one Branch Manager per branch, so every branch has a manager
// before any staff assignment; pass two distributes the remaining employee
// budget across random branches and resolves each non-manager's manager_id
// to that branch's manager.
type EmployeeGenerator struct {
	rnd    *rand.Rand
	inject *baddata.Injector
	ids    *IDAllocator
	now    time.Time
}

// NewEmployeeGenerator builds a generator with the given corruption
// probability.
func NewEmployeeGenerator(rnd *rand.Rand, badProbability float64) *EmployeeGenerator {
	return &EmployeeGenerator{
		rnd:    rnd,
		inject: baddata.NewInjector(rnd, badProbability),
		ids:    NewIDAllocator(rnd, "EMP", 10000, 99999),
		now:    time.Now(),
	}
}

// Generate returns numEmployees employees across the given branches. The
// first len(branches) records are the branch managers.
func (g *EmployeeGenerator) Generate(branches []domain.Record, numEmployees int) []domain.Record {
	if len(branches) == 0 {
		return nil
	}
	employees := make([]domain.Record, 0, numEmployees)
	managerByBranch := make(map[string]string, len(branches))

	for _, branch := range branches {
		manager := g.newEmployee(SafeString(branch["branch_id"], ""), "Branch Manager", nil)
		manager["department"] = "Branch Management"
		manager["hire_date"] = g.now.AddDate(0, 0, -between(g.rnd, 365, 365*10)).Format(dateLayout)
		manager["status"] = "Active"

		if g.inject.ShouldInject() {
			manager = g.corrupt(manager)
		}
		// Resolve staff against the manager even when the manager record
		// itself got corrupted; the id column survives every category.
		managerByBranch[SafeString(manager["branch_id"], "")] = SafeString(manager["employee_id"], "")
		employees = append(employees, manager)
	}

	for i := len(branches); i < numEmployees; i++ {
		branch := pick(g.rnd, branches)
		branchID := SafeString(branch["branch_id"], "")
		role := pick(g.rnd, domain.EmployeeRoles)

		var managerID any
		if role != "Branch Manager" {
			if id, ok := managerByBranch[branchID]; ok && id != "" {
				managerID = id
			}
		}

		employee := g.newEmployee(branchID, role, managerID)
		if g.inject.ShouldInject() {
			employee = g.corrupt(employee)
		}
		employees = append(employees, employee)
	}
	return employees
}

func (g *EmployeeGenerator) newEmployee(branchID, role string, managerID any) domain.Record {
	firstName := pick(g.rnd, domain.FirstNames)
	lastName := pick(g.rnd, domain.LastNames)

	return domain.Record{
		"employee_id":           g.ids.Next(),
		"branch_id":             branchID,
		"first_name":            firstName,
		"last_name":             lastName,
		"email":                 fmt.Sprintf("%s.%s@bank.com", strings.ToLower(firstName), strings.ToLower(lastName)),
		"phone_extension":       fmt.Sprintf("x%d", between(g.rnd, 1000, 9999)),
		"role":                  role,
		"department":            pick(g.rnd, domain.Departments),
		"salary":                g.salary(role),
		"hire_date":             g.now.AddDate(0, 0, -between(g.rnd, 30, 365*5)).Format(dateLayout),
		"manager_id":            managerID,
		"status":                pickWeighted(g.rnd, []string{"Active", "Inactive", "On Leave"}, []float64{0.9, 0.05, 0.05}),
		"created_at":            g.now.Format(dateTimeLayout),
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}
}

// salary draws from the role-keyed band.
func (g *EmployeeGenerator) salary(role string) int {
	bands := map[string][2]int{
		"Teller":           {30000, 45000},
		"Customer Service": {35000, 50000},
		"Loan Officer":     {50000, 80000},
		"Branch Manager":   {70000, 120000},
		"Operations":       {45000, 70000},
		"Compliance":       {60000, 90000},
	}
	band, ok := bands[role]
	if !ok {
		band = [2]int{40000, 60000}
	}
	return between(g.rnd, band[0], band[1])
}

func (g *EmployeeGenerator) corrupt(employee domain.Record) domain.Record {
	switch g.inject.PickCategory() {
	case baddata.MissingData:
		fields := sampleWithoutReplacement(g.rnd,
			[]string{"email", "phone_extension", "salary", "department"}, 2)
		return baddata.ApplyMissingData(employee, fields)

	case baddata.OutOfRange:
		employee["salary"] = -50000
		return baddata.Mark(employee, baddata.OutOfRange)

	case baddata.InconsistentData:
		// Teller-level role carrying manager-level pay.
		if employee["role"] == "Teller" {
			employee["salary"] = 100000
		} else {
			employee["role"] = "Teller"
			employee["salary"] = 100000
		}
		return baddata.Mark(employee, baddata.InconsistentData)

	case baddata.InvalidFormat:
		return baddata.ApplyInvalidFormat(employee, "email", "invalid-email")
	}
	return g.inject.ApplyMalformedData(employee, "role")
}
