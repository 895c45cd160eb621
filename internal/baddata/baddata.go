// Package baddata implements the cross-cutting corruption policy shared by
// every entity generator: the decision procedure for whether a freshly built
// record gets corrupted, the category taxonomy, and the generic field-level
// transforms. Entity-specific corruption lives with each generator; the
// helpers here guarantee the shared invariants (both metadata fields set, no
// business column added or removed).
package baddata

import (
	"fmt"
	"math/rand"
	"strings"

	"banksynth/internal/domain"
)

// Category identifies one corruption strategy.
type Category string

const (
	MissingData      Category = "missing_data"
	InvalidFormat    Category = "invalid_format"
	OutOfRange       Category = "out_of_range"
	InconsistentData Category = "inconsistent_data"
	MalformedData    Category = "malformed_data"

	// DuplicateData exists in the taxonomy but is excluded from the default
	// rotation, and its transform is deliberately inert: selecting it only
	// flags the record without copying anything. Downstream tooling keys on
	// the flag alone for this category.
	DuplicateData Category = "duplicate_data"
)

// ActiveCategories is the default rotation PickCategory draws from.
var ActiveCategories = []Category{
	MissingData,
	InvalidFormat,
	OutOfRange,
	InconsistentData,
	MalformedData,
}

// malformedPayloads are injection-style suffixes appended by MalformedData.
// Kept SQL-insertable so the importer accepts the rows.
var malformedPayloads = []string{
	" OR 1=1",
	"-- COMMENT",
	"/* COMMENT */",
	"null",
	"very_long_string_" + strings.Repeat("x", 50),
	"<test>",
	"[test]",
}

// Injector decides, per record, whether and how to corrupt it. One Injector
// is owned by each generator instance; probability is fixed for the run.
type Injector struct {
	rnd         *rand.Rand
	probability float64
}

// NewInjector builds an injector with the given corruption probability in
// [0,1]. Probabilities outside the interval are clamped.
func NewInjector(rnd *rand.Rand, probability float64) *Injector {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return &Injector{rnd: rnd, probability: probability}
}

// ShouldInject draws once against the configured probability.
// probability 0 never injects, probability 1 always does.
func (in *Injector) ShouldInject() bool {
	return in.rnd.Float64() < in.probability
}

// ShouldInjectScaled draws against probability*factor. The loan generator
// uses this to corrupt payments at half the loan rate.
func (in *Injector) ShouldInjectScaled(factor float64) bool {
	return in.rnd.Float64() < in.probability*factor
}

// PickCategory chooses uniformly among the active categories.
func (in *Injector) PickCategory() Category {
	return ActiveCategories[in.rnd.Intn(len(ActiveCategories))]
}

// Mark stamps the metadata fields for a given category. Every corruption
// path ends here, directly or through one of the helpers below.
func Mark(rec domain.Record, cat Category) domain.Record {
	rec[domain.FieldIsBadData] = true
	rec[domain.FieldBadDataType] = string(cat)
	return rec
}

// ApplyMissingData nulls the named fields that exist on the record.
func ApplyMissingData(rec domain.Record, fields []string) domain.Record {
	for _, f := range fields {
		if _, ok := rec[f]; ok {
			rec[f] = nil
		}
	}
	return Mark(rec, MissingData)
}

// ApplyInvalidFormat overwrites a field with a syntactically invalid value.
func ApplyInvalidFormat(rec domain.Record, field string, invalid any) domain.Record {
	if _, ok := rec[field]; ok {
		rec[field] = invalid
	}
	return Mark(rec, InvalidFormat)
}

// ApplyOutOfRange pushes a numeric field outside [min,max]: either below the
// minimum or above the maximum, by 10%-200% of the bound's magnitude.
func (in *Injector) ApplyOutOfRange(rec domain.Record, field string, min, max float64) domain.Record {
	if _, ok := rec[field]; ok {
		spread := in.rnd.Float64()*1.9 + 0.1
		if in.rnd.Intn(2) == 0 {
			rec[field] = min - magnitude(min)*spread
		} else {
			rec[field] = max + magnitude(max)*spread
		}
	}
	return Mark(rec, OutOfRange)
}

// magnitude scales the overshoot; a zero bound still has to be exceeded.
func magnitude(bound float64) float64 {
	if bound == 0 {
		return 1
	}
	return abs(bound)
}

// ApplyInconsistentData breaks the relationship between field pairs by
// rewriting the second member of each pair to contradict the first.
func ApplyInconsistentData(rec domain.Record, pairs [][2]string) domain.Record {
	for _, p := range pairs {
		v1, ok1 := rec[p[0]]
		_, ok2 := rec[p[1]]
		if ok1 && ok2 {
			rec[p[1]] = fmt.Sprintf("MISMATCH_%v", v1)
		}
	}
	return Mark(rec, InconsistentData)
}

// ApplyMalformedData appends an injection-style payload to a text field.
// Nil fields are left untouched but the record is still flagged.
func (in *Injector) ApplyMalformedData(rec domain.Record, field string) domain.Record {
	if v, ok := rec[field]; ok && v != nil {
		payload := malformedPayloads[in.rnd.Intn(len(malformedPayloads))]
		rec[field] = fmt.Sprintf("%v%s", v, payload)
	}
	return Mark(rec, MalformedData)
}

// ApplyDuplicateData flags the record without performing any duplication
// transform. This is a documented no-op, not an oversight: the category is
// reserved in the taxonomy but its transform was never enabled, and
// consumers depend on the flag-only behavior.
func ApplyDuplicateData(rec domain.Record) domain.Record {
	return Mark(rec, DuplicateData)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
