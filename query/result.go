package query

import (
	"github.com/mbenson/jcrbox/jcr"
	"github.com/mbenson/jcrbox/literal"
	"github.com/mbenson/jcrbox/schema"
)

// Row wraps a repository result row with literal-addressed accessors: the
// selector name of a modeled source is resolved through its schema group's
// selector table, so callers never handle raw selector strings.
type Row struct {
	jcr.Row
}

// WrapRow adapts a repository row.
func WrapRow(row jcr.Row) Row {
	return Row{Row: row}
}

// NodeOf returns the row's node for the given source.
func (r Row) NodeOf(source literal.Source) (jcr.Node, error) {
	selector, err := schema.SelectorName(source)
	if err != nil {
		return nil, err
	}
	return r.Node(selector)
}

// PathOf returns the path of the row's node for the given source.
func (r Row) PathOf(source literal.Source) (string, error) {
	selector, err := schema.SelectorName(source)
	if err != nil {
		return "", err
	}
	return r.Path(selector)
}

// ScoreOf returns the row's score for the given source.
func (r Row) ScoreOf(source literal.Source) (float64, error) {
	selector, err := schema.SelectorName(source)
	if err != nil {
		return 0, err
	}
	return r.Score(selector)
}

// Result wraps a repository query result, materializing its rows once.
type Result struct {
	wrapped jcr.QueryResult

	rows []Row
	err  error
	done bool
}

// Wrap adapts a repository query result.
func Wrap(result jcr.QueryResult) *Result {
	return &Result{wrapped: result}
}

// Rows returns the result rows, wrapped. Rows are fetched from the underlying
// result once and reused on subsequent calls.
func (r *Result) Rows() ([]Row, error) {
	if !r.done {
		r.done = true
		raw, err := r.wrapped.Rows()
		if err != nil {
			r.err = err
		} else {
			r.rows = make([]Row, len(raw))
			for i, row := range raw {
				r.rows[i] = WrapRow(row)
			}
		}
	}
	return r.rows, r.err
}

// IsEmpty reports whether the result has no rows.
func (r *Result) IsEmpty() (bool, error) {
	rows, err := r.Rows()
	if err != nil {
		return false, err
	}
	return len(rows) == 0, nil
}
