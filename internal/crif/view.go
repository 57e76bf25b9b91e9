package crif

import (
	"strings"

	"github.com/suhasg-simmrs/simm-rs/internal/utils"
)

// View is a pure, read-only query surface over a slice of CRIF rows
// (spec.md §4.2). A View never mutates the underlying table; Filter
// returns a new View holding its own row slice.
type View struct {
	rows []Row
}

// NewView wraps an arbitrary row slice as a View (used by packages that
// build intermediate row groups, e.g. per-bucket subsets in internal/riskclass).
func NewView(rows []Row) View { return View{rows: rows} }

// Rows returns the underlying rows. Callers must not mutate the result.
func (v View) Rows() []Row { return v.rows }

// Len reports the number of rows in the view.
func (v View) Len() int { return len(v.rows) }

// Unique returns the distinct non-empty values of the given column
// accessor, in first-seen order.
func (v View) Unique(col func(Row) string) []string {
	values := make([]string, 0, len(v.rows))
	for _, r := range v.rows {
		values = append(values, col(r))
	}
	return utils.OrderedUnique(values)
}

// Filter returns the sub-view of rows matching every predicate (a
// conjunction), preserving row order.
func (v View) Filter(preds ...func(Row) bool) View {
	out := make([]Row, 0, len(v.rows))
	for _, r := range v.rows {
		ok := true
		for _, p := range preds {
			if !p(r) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return View{rows: out}
}

// ColumnIn builds a Filter predicate testing column membership in allowed.
func ColumnIn(col func(Row) string, allowed ...string) func(Row) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(r Row) bool {
		_, ok := set[col(r)]
		return ok
	}
}

// SumUSD sums AmountUSD over the view, skipping rows whose amount is absent
// (blank or unparseable) — these silently contribute zero, per spec.md §3.
func (v View) SumUSD() float64 {
	var sum float64
	for _, r := range v.rows {
		if r.HasAmount {
			sum += r.AmountUSD
		}
	}
	return sum
}

// TenorList returns the unique, lowercased Label1 values restricted to the
// canonical twelve tenors, in first-seen order.
func (v View) TenorList() []Tenor {
	seen := make(map[Tenor]struct{})
	var out []Tenor
	for _, r := range v.rows {
		t, ok := ParseTenor(r.Label1)
		if !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// CurrencyPairList returns unique six-character Qualifier strings,
// deduplicated up to swap: "KRWUSD" and "USDKRW" collapse to whichever is
// seen first.
func (v View) CurrencyPairList() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range v.rows {
		q := strings.ToUpper(strings.TrimSpace(r.Qualifier))
		if len(q) != 6 {
			continue
		}
		swapped := q[3:6] + q[0:3]
		if _, dup := seen[q]; dup {
			continue
		}
		if _, dup := seen[swapped]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

// ProductList returns the unique ProductClass values in first-seen order.
func (v View) ProductList() []string {
	return v.Unique(func(r Row) string { return r.ProductClass })
}

// BucketList returns the unique Bucket values in first-seen order, with
// Residual represented as the sentinel bucket.
func (v View) BucketList() []Bucket {
	seen := make(map[Bucket]struct{})
	var out []Bucket
	for _, r := range v.rows {
		b := r.Bucket
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// QualifierList returns the unique Qualifier values in first-seen order.
func (v View) QualifierList() []string {
	return v.Unique(func(r Row) string { return r.Qualifier })
}
