package yahoo

// Table is the raw tabular slice of a chart response for one ticker and
// one entity kind: timestamp-indexed rows of named columns. The upstream
// source does not guarantee row order; the normalizer sorts explicitly.
type Table struct {
	Symbol string
	Rows   []Row
}

// Row is one raw table row. Column values keep the loose types of the
// source payload (float64, int64, nil for null bars).
type Row struct {
	Unix    int64
	Columns map[string]any
}

// history bundles the per-ticker tables sliced out of one bulk fetch.
type history struct {
	currency  string
	prices    *Table
	dividends *Table
	splits    *Table
}

// between returns a copy of the table keeping only rows whose timestamp
// is at or after from and strictly before to.
func (t *Table) between(from, to int64) *Table {
	if t == nil {
		return nil
	}
	out := &Table{Symbol: t.Symbol}
	for _, r := range t.Rows {
		if r.Unix >= from && r.Unix < to {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}
