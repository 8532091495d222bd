package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
// Condition expressions use $%d for the argument placeholder.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(expr string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(expr, len(w.args)))
}

// addTwice binds one argument to an expression that references it in two
// places, e.g. `(from_base_id = $%d OR to_base_id = $%d)`.
func (w *whereBuilder) addTwice(expr string, arg any) {
	w.args = append(w.args, arg)
	n := len(w.args)
	w.conds = append(w.conds, fmt.Sprintf(expr, n, n))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
