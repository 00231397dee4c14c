package quotefeed

import "fmt"

// Kind names an entity kind in errors and diagnostics.
type Kind string

const (
	KindMarket      Kind = "market data"
	KindDividend    Kind = "dividend data"
	KindSplit       Kind = "split data"
	KindFundamental Kind = "fundamental data"
)

// EmptySourceError reports that the source held zero usable rows for a
// ticker and entity kind. This is a data gap, not a request mistake:
// callers may degrade it to an empty aggregate.
type EmptySourceError struct {
	Ticker Ticker
	Kind   Kind
}

func (e *EmptySourceError) Error() string {
	return fmt.Sprintf("no %s rows returned by the source for %s", e.Kind, e.Ticker)
}

// TickerNotFoundError reports that a requested ticker is absent from the
// fetched session data. Unlike EmptySourceError it signals a request or
// configuration mistake and is never degraded.
type TickerNotFoundError struct {
	Ticker Ticker
}

func (e *TickerNotFoundError) Error() string {
	return fmt.Sprintf("ticker %s not found in the fetched data", e.Ticker)
}

// RowError reports that a single row failed typed construction. It carries
// the offending date so systematic mapping defects stay diagnosable.
type RowError struct {
	Date Date
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("row %s: %v", e.Date, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// ProcessingError is the single aggregate-level failure: the entity could
// not be built, for whatever row-level or source-level reason. The original
// cause (EmptySourceError or RowError) is wrapped and reachable with
// errors.As.
type ProcessingError struct {
	Ticker Ticker
	Kind   Kind
	Err    error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s processing error for %s: %v", e.Kind, e.Ticker, e.Err)
}
func (e *ProcessingError) Unwrap() error { return e.Err }

// FieldError reports a type, shape or value violation on a single field
// during record resolution or row construction.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return fmt.Sprintf("field %q: %s", e.Field, e.Reason) }
