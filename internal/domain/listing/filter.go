// Package listing holds the pagination and search-filter logic shared
// by every resource repository: clamped page requests, total-page math
// and composition of parameterized WHERE fragments.
package listing

import (
	"fmt"
	"strings"
)

// Filter is an optional free-text search term plus an optional
// categorical filter. Both are matched as case-insensitive substrings;
// the category match is deliberately lenient rather than exact.
type Filter struct {
	Term     string
	Category string
}

func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Term) == "" && strings.TrimSpace(f.Category) == ""
}

// Predicate renders the filter as a parameterized WHERE fragment over
// the given searchable columns, with placeholders numbered from $1.
// Column names are fixed constants chosen by each store, never user
// input. An empty filter yields an empty fragment that matches all
// rows.
func (f Filter) Predicate(searchColumns []string, categoryColumn string) (string, []any) {
	var clauses []string
	var args []any

	term := strings.TrimSpace(f.Term)
	if term != "" && len(searchColumns) > 0 {
		placeholder := fmt.Sprintf("$%d", len(args)+1)
		matches := make([]string, 0, len(searchColumns))
		for _, column := range searchColumns {
			matches = append(matches, column+" ILIKE "+placeholder)
		}
		clauses = append(clauses, "("+strings.Join(matches, " OR ")+")")
		args = append(args, "%"+term+"%")
	}

	category := strings.TrimSpace(f.Category)
	if category != "" && categoryColumn != "" {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", categoryColumn, len(args)+1))
		args = append(args, "%"+category+"%")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
