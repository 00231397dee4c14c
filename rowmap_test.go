package quotefeed

import (
	"testing"
	"time"
)

func TestRowMapKeepsChronologicalOrder(t *testing.T) {
	m := &RowMap[string]{}
	m.Append(NewDate(2025, time.March, 3), "c").
		Append(NewDate(2025, time.January, 1), "a").
		Append(NewDate(2025, time.February, 2), "b")

	var days []Date
	for on := range m.All() {
		days = append(days, on)
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Fatalf("dates out of order: %s before %s", days[i-1], days[i])
		}
	}
	if m.First() != NewDate(2025, time.January, 1) || m.Last() != NewDate(2025, time.March, 3) {
		t.Errorf("First/Last = %s/%s", m.First(), m.Last())
	}
}

func TestRowMapLastWriteWins(t *testing.T) {
	on := NewDate(2025, time.May, 5)
	m := &RowMap[string]{}
	m.Append(on, "first").Append(on, "second")

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if got, _ := m.Get(on); got != "second" {
		t.Errorf("Get(%s) = %q, want %q", on, got, "second")
	}
}

func TestRowMapEmpty(t *testing.T) {
	m := &RowMap[int]{}
	if !m.First().IsZero() || !m.Last().IsZero() {
		t.Errorf("First/Last on empty map = %s/%s, want zero dates", m.First(), m.Last())
	}
	if _, ok := m.Get(NewDate(2025, time.January, 1)); ok {
		t.Errorf("Get on empty map reported a row")
	}
}
