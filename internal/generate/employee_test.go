package generate_test

import (
	"testing"

	"banksynth/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchGenerator_Generate(t *testing.T) {
	g := generate.NewBranchGenerator(newRand(1), 0)
	branches := g.Generate(25)

	require.Len(t, branches, 25)
	for _, b := range branches {
		assert.Regexp(t, `^BR\d{4}$`, b["branch_id"])
		assert.Regexp(t, `^[A-Z]{1,3}\d{3}$`, b["branch_code"])
		assert.NotEmpty(t, b["branch_name"])
		assert.NotEmpty(t, b["manager_name"])
	}
	assert.Zero(t, countBad(branches))
}

func TestEmployeeGenerator_Generate(t *testing.T) {
	branchGen := generate.NewBranchGenerator(newRand(1), 0)
	branches := branchGen.Generate(5)

	g := generate.NewEmployeeGenerator(newRand(2), 0)
	employees := g.Generate(branches, 40)

	require.Len(t, employees, 40)

	// One manager per branch, generated first.
	managerByBranch := make(map[string]string)
	for _, e := range employees[:5] {
		assert.Equal(t, "Branch Manager", e["role"])
		assert.Nil(t, e["manager_id"])
		managerByBranch[e["branch_id"].(string)] = e["employee_id"].(string)
	}
	assert.Len(t, managerByBranch, 5)

	for _, e := range employees[5:] {
		assert.Regexp(t, `^EMP\d{5}$`, e["employee_id"])

		if e["role"] == "Branch Manager" {
			continue
		}
		// Staff report to their branch's manager.
		assert.Equal(t, managerByBranch[e["branch_id"].(string)], e["manager_id"])
	}
}

func TestEmployeeGenerator_NoBranches(t *testing.T) {
	g := generate.NewEmployeeGenerator(newRand(3), 0)
	assert.Empty(t, g.Generate(nil, 40))
}

func TestMerchantGenerator_Generate(t *testing.T) {
	g := generate.NewMerchantGenerator(newRand(1), 0)
	merchants := g.Generate(100)

	require.Len(t, merchants, 100)
	for _, m := range merchants {
		assert.Regexp(t, `^MER\d{6}$`, m["merchant_id"])
		assert.Regexp(t, `^\d{4}$`, m["mcc_code"])
		assert.NotEmpty(t, m["merchant_name"])
	}
	assert.Zero(t, countBad(merchants))
}
