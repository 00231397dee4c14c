package quotefeed

import (
	"iter"
	"slices"
	"sort"
)

// RowMap stores a chronological series of rows, each keyed by a calendar date.
// It ensures that dates are unique and the series is always sorted, so
// iterating yields strictly ascending dates. Appending a row on an existing
// date overwrites the previous one (last write wins).
type RowMap[T any] struct {
	days []Date
	rows []T
}

// Len returns the number of rows in the map.
func (m *RowMap[T]) Len() int { return len(m.days) }

// chronological is a private implementation to keep the map chronologically sorted.
type chronological[T any] struct{ *RowMap[T] }

func (s chronological[T]) Len() int           { return len(s.days) }
func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
}

func (m *RowMap[T]) sort() { sort.Sort(chronological[T]{m}) }

// Append adds a row to the map.
//
// An existing row at that date is overwritten.
func (m *RowMap[T]) Append(on Date, row T) *RowMap[T] {
	if i := slices.Index(m.days, on); i >= 0 {
		// Found a row on that exact same day.
		// We choose to replace, because it gives higher priority to the last data.
		m.rows[i] = row
		return m
	}
	m.days, m.rows = append(m.days, on), append(m.rows, row)
	m.sort()
	return m
}

// Get returns the row at 'day' and true, or the zero row and false.
func (m *RowMap[T]) Get(day Date) (T, bool) {
	if i := slices.Index(m.days, day); i >= 0 {
		return m.rows[i], true
	}
	var zero T
	return zero, false
}

// First returns the earliest date in the map, or the zero date if empty.
func (m *RowMap[T]) First() Date {
	if len(m.days) == 0 {
		return Date{}
	}
	return m.days[0]
}

// Last returns the latest date in the map, or the zero date if empty.
func (m *RowMap[T]) Last() Date {
	if len(m.days) == 0 {
		return Date{}
	}
	return m.days[len(m.days)-1]
}

// All returns an iterator over all date/row pairs, in chronological order.
func (m *RowMap[T]) All() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range m.days {
			if !yield(on, m.rows[i]) {
				return
			}
		}
	}
}
