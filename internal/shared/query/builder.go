// Package query builds parameterized WHERE/ORDER BY/LIMIT suffixes for the
// postgres repositories. Filters compose lazily: nothing renders until a
// repository asks for the count or select clauses.
package query

import (
	"fmt"
	"strings"

	"library-api/internal/shared/pagination"
)

// Builder accumulates AND-combined predicates, one optional ordering and an
// optional page window. Predicates use ? placeholders; Clauses renumbers them
// into $1..$n in order of addition.
type Builder struct {
	conds    []string
	args     []interface{}
	orderCol string
	orderAsc bool
	ordered  bool
	limit    int
	offset   int
	paged    bool
}

func New() *Builder {
	return &Builder{}
}

// Where adds a predicate. Multiple predicates combine with AND.
func (b *Builder) Where(cond string, args ...interface{}) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// OrderBy sets the ordering column. The column name must come from a
// whitelist owned by the caller, never from raw user input.
func (b *Builder) OrderBy(column string, ascending bool) *Builder {
	b.orderCol = column
	b.orderAsc = ascending
	b.ordered = true
	return b
}

// Paginate applies a normalized page request as LIMIT/OFFSET.
func (b *Builder) Paginate(p pagination.PageRequest) *Builder {
	b.limit = p.RecordsPerPage
	b.offset = p.Offset()
	b.paged = true
	return b
}

// CountClauses renders only the WHERE clause and its args, for the
// total-count query that runs before paging.
func (b *Builder) CountClauses() (string, []interface{}) {
	return b.renderWhere(), append([]interface{}{}, b.args...)
}

// Clauses renders WHERE, ORDER BY and LIMIT/OFFSET with sequential
// placeholder numbering.
func (b *Builder) Clauses() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(b.renderWhere())

	if b.ordered {
		direction := "ASC"
		if !b.orderAsc {
			direction = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", b.orderCol, direction)
	}

	args := append([]interface{}{}, b.args...)
	if b.paged {
		fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, b.limit, b.offset)
	}

	return sb.String(), args
}

func (b *Builder) renderWhere() string {
	if len(b.conds) == 0 {
		return ""
	}

	joined := strings.Join(b.conds, " AND ")

	// Renumber ? placeholders into $1..$n.
	var sb strings.Builder
	n := 0
	for _, r := range joined {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}

	return " WHERE " + sb.String()
}
