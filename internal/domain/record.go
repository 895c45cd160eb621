package domain

// Record is a flat mapping of column name to scalar value (string, float64,
// int, bool, or nil). Records stay schemaless on purpose: injected corruption
// may place a type-incompatible or nil value into any business column, but the
// set of keys never changes, so a downstream importer with fixed SQL columns
// can still consume every row.
type Record map[string]any

// Synthetic-provenance fields carried by every record. They are metadata, not
// business fields, and are excluded on export.
const (
	FieldIsBadData   = "is_bad_data"
	FieldBadDataType = "bad_data_type"
)

// IsBad reports whether the record was intentionally corrupted.
func (r Record) IsBad() bool {
	bad, _ := r[FieldIsBadData].(bool)
	return bad
}

// BadDataType returns the corruption category name, or "" for clean records.
func (r Record) BadDataType() string {
	s, _ := r[FieldBadDataType].(string)
	return s
}

// Clone returns a shallow copy of the record. Values are scalars, so a
// shallow copy is a full copy.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
