package crif

import (
	"fmt"
	"strconv"
	"strings"
)

// RequiredColumns is the subset of the nine-column schema (spec.md §6) that
// must be present for the table to be buildable at all. Schema errors name
// the missing column, per spec.md §7.
var RequiredColumns = []string{"AmountUSD", "RiskType", "Qualifier"}

// AllColumns lists the full nine-column schema, in the order the loader
// presents them. Columns outside this set are ignored.
var AllColumns = []string{
	"ProductClass", "RiskType", "Qualifier", "Bucket",
	"Label1", "Label2", "Amount", "AmountCurrency", "AmountUSD",
}

// Record is one already-parsed CRIF row, keyed by canonical column name.
// This is the external boundary: whatever CSV/JSON loader produces the
// table (out of the core's scope per spec.md §1) hands rows in as Records.
type Record map[string]string

// Table holds the full, immutable set of CRIF rows plus indexes built once
// at construction time. Per the Design Note in spec.md §9, the indexes are
// an internal optimization over repeated full-table scans; callers only
// ever see the View operations below.
type Table struct {
	rows           []Row
	byProductClass map[string][]int
	byRiskClass    map[RiskClass][]int
}

// NewTable builds a Table from a header and a slice of records. header is
// used only to validate that the required columns are present; missing
// required columns are a fatal schema error (spec.md §7). Malformed numeric
// cells are treated as zero, silently, by design (real CRIF feeds have
// blank AmountUSD for add-on parameter rows).
func NewTable(header []string, records []Record) (Table, error) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	for _, col := range RequiredColumns {
		if !present[col] {
			return Table{}, fmt.Errorf("missing required column %q", col)
		}
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, parseRecord(rec))
	}
	return NewTableFromRows(rows), nil
}

// NewTableFromRows builds a Table directly from already-typed rows,
// bypassing schema validation. Used by callers that construct Row values
// programmatically (tests, internal/testing fixtures) rather than from a
// parsed feed.
func NewTableFromRows(rows []Row) Table {
	t := Table{
		rows:           rows,
		byProductClass: make(map[string][]int),
		byRiskClass:    make(map[RiskClass][]int),
	}
	for i, r := range rows {
		if r.ProductClass != "" {
			t.byProductClass[r.ProductClass] = append(t.byProductClass[r.ProductClass], i)
		}
		if rc, ok := r.RiskClass(); ok {
			t.byRiskClass[rc] = append(t.byRiskClass[rc], i)
		}
	}
	return t
}

func parseRecord(rec Record) Row {
	amountUSD, hasAmount := parseAmount(rec["AmountUSD"])
	return Row{
		ProductClass: strings.TrimSpace(rec["ProductClass"]),
		RiskType:     RiskType(strings.TrimSpace(rec["RiskType"])),
		Qualifier:    strings.TrimSpace(rec["Qualifier"]),
		Bucket:       ParseBucket(rec["Bucket"]),
		Label1:       strings.TrimSpace(rec["Label1"]),
		Label2:       strings.TrimSpace(rec["Label2"]),
		AmountUSD:    amountUSD,
		HasAmount:    hasAmount,
	}
}

// parseAmount treats a blank or unparseable cell as absent (contributes
// zero), per spec.md §3's invariant and §7's "malformed numeric cells"
// error kind.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// View returns a View over every row in the table.
func (t Table) View() View {
	return View{rows: t.rows}
}

// Len reports the number of rows in the table.
func (t Table) Len() int { return len(t.rows) }

// ByProductClass returns a View restricted to rows whose ProductClass
// equals pc, using the prebuilt index.
func (t Table) ByProductClass(pc string) View {
	idx := t.byProductClass[pc]
	rows := make([]Row, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, t.rows[i])
	}
	return View{rows: rows}
}

// ByRiskClass returns a View restricted to rows belonging to risk class rc,
// using the prebuilt index.
func (t Table) ByRiskClass(rc RiskClass) View {
	idx := t.byRiskClass[rc]
	rows := make([]Row, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, t.rows[i])
	}
	return View{rows: rows}
}
