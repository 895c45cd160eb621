package baddata_test

import (
	"math/rand"
	"testing"

	"banksynth/internal/baddata"
	"banksynth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord() domain.Record {
	return domain.Record{
		"id":                    "X1",
		"name":                  "Alice",
		"balance":               100.0,
		"status":                "Active",
		domain.FieldIsBadData:   false,
		domain.FieldBadDataType: nil,
	}
}

func TestInjector_ShouldInject_Bounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	never := baddata.NewInjector(rnd, 0.0)
	for i := 0; i < 1000; i++ {
		assert.False(t, never.ShouldInject(), "probability 0 must never inject")
	}

	always := baddata.NewInjector(rnd, 1.0)
	for i := 0; i < 1000; i++ {
		assert.True(t, always.ShouldInject(), "probability 1 must always inject")
	}
}

func TestInjector_ShouldInject_ClampsProbability(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	assert.False(t, baddata.NewInjector(rnd, -0.5).ShouldInject())
	assert.True(t, baddata.NewInjector(rnd, 1.5).ShouldInject())
}

func TestInjector_PickCategory_ActiveOnly(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	in := baddata.NewInjector(rnd, 1.0)

	seen := map[baddata.Category]bool{}
	for i := 0; i < 500; i++ {
		cat := in.PickCategory()
		seen[cat] = true
		assert.NotEqual(t, baddata.DuplicateData, cat,
			"duplicate_data is excluded from the default rotation")
	}

	// Every active category should show up over 500 draws.
	for _, cat := range baddata.ActiveCategories {
		assert.True(t, seen[cat], "category %s never drawn", cat)
	}
}

func TestApplyMissingData(t *testing.T) {
	rec := newRecord()
	got := baddata.ApplyMissingData(rec, []string{"name", "balance", "not_a_field"})

	assert.Nil(t, got["name"])
	assert.Nil(t, got["balance"])
	assert.True(t, got.IsBad())
	assert.Equal(t, "missing_data", got.BadDataType())
	_, ok := got["not_a_field"]
	assert.False(t, ok, "missing-data must not invent new fields")
}

func TestApplyInvalidFormat(t *testing.T) {
	rec := newRecord()
	got := baddata.ApplyInvalidFormat(rec, "id", "NOT-AN-ID")

	assert.Equal(t, "NOT-AN-ID", got["id"])
	assert.Equal(t, "invalid_format", got.BadDataType())
}

func TestApplyOutOfRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	in := baddata.NewInjector(rnd, 1.0)

	for i := 0; i < 100; i++ {
		rec := newRecord()
		got := in.ApplyOutOfRange(rec, "balance", 0, 1000)

		v, ok := got["balance"].(float64)
		require.True(t, ok)
		assert.True(t, v < 0 || v > 1000, "value %v should be outside [0,1000]", v)
		assert.Equal(t, "out_of_range", got.BadDataType())
	}
}

func TestApplyInconsistentData(t *testing.T) {
	rec := newRecord()
	got := baddata.ApplyInconsistentData(rec, [][2]string{{"id", "status"}})

	assert.Equal(t, "MISMATCH_X1", got["status"])
	assert.Equal(t, "inconsistent_data", got.BadDataType())
}

func TestApplyMalformedData(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	in := baddata.NewInjector(rnd, 1.0)

	rec := newRecord()
	got := in.ApplyMalformedData(rec, "name")

	s, ok := got["name"].(string)
	require.True(t, ok)
	assert.True(t, len(s) > len("Alice"), "payload should be appended")
	assert.Contains(t, s, "Alice")
	assert.Equal(t, "malformed_data", got.BadDataType())
}

func TestApplyMalformedData_NilFieldStillFlags(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	in := baddata.NewInjector(rnd, 1.0)

	rec := newRecord()
	rec["name"] = nil
	got := in.ApplyMalformedData(rec, "name")

	assert.Nil(t, got["name"])
	assert.True(t, got.IsBad())
}

func TestApplyDuplicateData_IsInert(t *testing.T) {
	rec := newRecord()
	before := rec.Clone()

	got := baddata.ApplyDuplicateData(rec)

	assert.True(t, got.IsBad())
	assert.Equal(t, "duplicate_data", got.BadDataType())
	// Business fields untouched: the transform is a declared no-op.
	for k, v := range before {
		if k == domain.FieldIsBadData || k == domain.FieldBadDataType {
			continue
		}
		assert.Equal(t, v, got[k], "field %s must not change", k)
	}
}

func TestCorruption_PreservesShape(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	in := baddata.NewInjector(rnd, 1.0)

	transforms := map[string]func(domain.Record) domain.Record{
		"missing": func(r domain.Record) domain.Record {
			return baddata.ApplyMissingData(r, []string{"name"})
		},
		"invalid": func(r domain.Record) domain.Record {
			return baddata.ApplyInvalidFormat(r, "balance", "not-a-number")
		},
		"range": func(r domain.Record) domain.Record {
			return in.ApplyOutOfRange(r, "balance", 0, 1000)
		},
		"inconsistent": func(r domain.Record) domain.Record {
			return baddata.ApplyInconsistentData(r, [][2]string{{"id", "name"}})
		},
		"malformed": func(r domain.Record) domain.Record {
			return in.ApplyMalformedData(r, "status")
		},
	}

	for name, fn := range transforms {
		t.Run(name, func(t *testing.T) {
			clean := newRecord()
			corrupted := fn(newRecord())

			require.Len(t, corrupted, len(clean))
			for k := range clean {
				_, ok := corrupted[k]
				assert.True(t, ok, "key %s missing after corruption", k)
			}
		})
	}
}
