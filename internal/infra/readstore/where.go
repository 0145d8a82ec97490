package readstore

import (
	"strconv"
	"strings"

	"venue-desk/internal/usecase/queries"
)

// where collects AND-ed conditions with positional arguments.
// Column names are always literals from this package.
type where struct {
	conds []string
	args  []any
}

func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) add(cond string) {
	w.conds = append(w.conds, cond)
}

// eq skips empty values.
func (w *where) eq(col, value string) {
	if value == "" {
		return
	}
	w.add(col + " = " + w.arg(value))
}

// between applies a strict range: from < col < to.
func (w *where) between(col string, r queries.TimeRange) {
	if r.From != nil {
		w.add(col + " > " + w.arg(*r.From))
	}
	if r.To != nil {
		w.add(col + " < " + w.arg(*r.To))
	}
}

// after continues a (created_at DESC, id DESC) listing.
func (w *where) after(createdCol, idCol string, k *queries.Keyset) {
	if k == nil {
		return
	}
	w.add("(" + createdCol + ", " + idCol + ") < (" + w.arg(k.CreatedAt) + ", " + w.arg(k.ID) + ")")
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "\nWHERE " + strings.Join(w.conds, "\n  AND ")
}

// limit renders LIMIT for positive n; zero reads every row.
func (w *where) limit(n int32) string {
	if n <= 0 {
		return ""
	}
	return "\nLIMIT " + w.arg(n)
}
