package quotefeed

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// FieldMapping relates one target row field to one source column.
// An empty Source is the no-source sentinel: the provider has no equivalent
// column and the field resolves to nil.
type FieldMapping struct {
	Target string
	Source string
}

// FieldMap is the ordered field correspondence table for one row type.
// Every required constructor field of the row type has an entry, including
// no-source entries. An incomplete table is a build-time defect, not a
// runtime condition.
type FieldMap []FieldMapping

// Resolve maps a source row (column name to raw value) into a Record keyed
// by target field names. A mapped source column missing from the row is a
// FieldError: missing required fields are rejected at this boundary rather
// than at the row constructor.
func (m FieldMap) Resolve(row map[string]any) (Record, error) {
	rec := make(Record, len(m))
	for _, f := range m {
		if f.Source == "" {
			rec[f.Target] = nil
			continue
		}
		v, ok := row[f.Source]
		if !ok {
			return nil, &FieldError{Field: f.Target, Reason: fmt.Sprintf("source column %q missing", f.Source)}
		}
		rec[f.Target] = v
	}
	return rec, nil
}

// Record holds the resolved, target-named raw values for one row, ready for
// typed construction. Getters coerce the loosely-typed source values and
// report a FieldError on any type or shape violation.
type Record map[string]any

func (r Record) raw(name string) (any, error) {
	v, ok := r[name]
	if !ok {
		return nil, &FieldError{Field: name, Reason: "not resolved by the field map"}
	}
	return v, nil
}

// Decimal returns the named field as a decimal. The field must be present
// and non-nil.
func (r Record) Decimal(name string) (decimal.Decimal, error) {
	v, err := r.raw(name)
	if err != nil {
		return decimal.Zero, err
	}
	switch n := v.(type) {
	case nil:
		return decimal.Zero, &FieldError{Field: name, Reason: "is null"}
	case decimal.Decimal:
		return n, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, &FieldError{Field: name, Reason: fmt.Sprintf("invalid number %q", n)}
		}
		return d, nil
	default:
		return decimal.Zero, &FieldError{Field: name, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
}

// OptionalDecimal is like Decimal but resolves a nil value to nil instead
// of failing.
func (r Record) OptionalDecimal(name string) (*decimal.Decimal, error) {
	v, err := r.raw(name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	d, err := r.Decimal(name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Int64 returns the named field as an integer.
func (r Record) Int64(name string) (int64, error) {
	v, err := r.raw(name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case nil:
		return 0, &FieldError{Field: name, Reason: "is null"}
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return 0, &FieldError{Field: name, Reason: fmt.Sprintf("%v is not an integer", n)}
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, &FieldError{Field: name, Reason: fmt.Sprintf("invalid integer %q", n)}
		}
		return i, nil
	default:
		return 0, &FieldError{Field: name, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
}

// Date returns the named field as a Date. The field must be present and
// non-nil; strings are parsed as ISO-8601.
func (r Record) Date(name string) (Date, error) {
	v, err := r.raw(name)
	if err != nil {
		return Date{}, err
	}
	switch n := v.(type) {
	case nil:
		return Date{}, &FieldError{Field: name, Reason: "is null"}
	case Date:
		return n, nil
	case string:
		d, err := ParseDate(n)
		if err != nil {
			return Date{}, &FieldError{Field: name, Reason: fmt.Sprintf("invalid date %q", n)}
		}
		return d, nil
	default:
		return Date{}, &FieldError{Field: name, Reason: fmt.Sprintf("unexpected type %T", v)}
	}
}

// OptionalDate is like Date but resolves a nil value to nil instead of failing.
func (r Record) OptionalDate(name string) (*Date, error) {
	v, err := r.raw(name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	d, err := r.Date(name)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
