// Package sequence generates the human-readable sequential identifiers
// used for employee IDs and payslip numbers: a fixed scope prefix (for
// example a calendar year, possibly empty) followed by a zero-padded
// numeric suffix of fixed width. Within a scope, suffixes increase by
// one per created record.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ErrCapacityExceeded reports an exhausted suffix space for a scope.
// Callers must abort the creation; there is no wraparound.
var ErrCapacityExceeded = errors.New("identifier capacity exceeded")

// LastIDFunc returns the lexicographically last persisted identifier
// starting with scopePrefix, or the empty string when none exists.
type LastIDFunc func(ctx context.Context, scopePrefix string) (string, error)

type Generator struct {
	width  int
	lastID LastIDFunc
}

func New(width int, lastID LastIDFunc) *Generator {
	return &Generator{width: width, lastID: lastID}
}

// Next computes the next identifier for the scope. The read is not
// atomic against concurrent creators; the primary-key constraint on the
// underlying table is the backstop, and callers retry generation once
// on a duplicate-key insert before giving up.
func (g *Generator) Next(ctx context.Context, scopePrefix string) (string, error) {
	last, err := g.lastID(ctx, scopePrefix)
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		suffix := last
		if len(suffix) > g.width {
			suffix = suffix[len(suffix)-g.width:]
		}
		parsed, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("malformed identifier %q in scope %q: %w", last, scopePrefix, err)
		}
		next = parsed + 1
	}

	if next > maxSuffix(g.width) {
		return "", fmt.Errorf("%w: scope %q is full", ErrCapacityExceeded, scopePrefix)
	}

	return fmt.Sprintf("%s%0*d", scopePrefix, g.width, next), nil
}

func maxSuffix(width int) int {
	max := 1
	for i := 0; i < width; i++ {
		max *= 10
	}
	return max - 1
}
