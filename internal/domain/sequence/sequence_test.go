package sequence

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func fixedLast(id string) LastIDFunc {
	return func(ctx context.Context, scopePrefix string) (string, error) {
		return id, nil
	}
}

func TestNextStartsAtOne(t *testing.T) {
	gen := New(5, fixedLast(""))
	id, err := gen.Next(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "202400001" {
		t.Fatalf("expected 202400001, got %s", id)
	}
}

func TestNextIncrementsLast(t *testing.T) {
	gen := New(5, fixedLast("202400001"))
	id, err := gen.Next(context.Background(), "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "202400002" {
		t.Fatalf("expected 202400002, got %s", id)
	}
}

func TestNextMonotonicNoGaps(t *testing.T) {
	last := ""
	gen := New(5, func(ctx context.Context, scopePrefix string) (string, error) {
		return last, nil
	})

	for i := 1; i <= 25; i++ {
		id, err := gen.Next(context.Background(), "2025")
		if err != nil {
			t.Fatalf("generation %d failed: %v", i, err)
		}
		if !strings.HasPrefix(id, "2025") {
			t.Fatalf("expected prefix 2025, got %s", id)
		}
		want := i
		got := mustSuffix(t, id, 5)
		if got != want {
			t.Fatalf("expected suffix %d, got %d", want, got)
		}
		last = id
	}
}

func TestNextPayslipWidth(t *testing.T) {
	gen := New(9, fixedLast(""))
	id, err := gen.Next(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "000000001" {
		t.Fatalf("expected 000000001, got %s", id)
	}
}

func TestNextCapacityExceeded(t *testing.T) {
	gen := New(5, fixedLast("202499999"))
	_, err := gen.Next(context.Background(), "2024")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestNextCapacityExceededWideSuffix(t *testing.T) {
	gen := New(9, fixedLast("999999999"))
	_, err := gen.Next(context.Background(), "")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestNextMalformedLastID(t *testing.T) {
	gen := New(5, fixedLast("2024abcde"))
	_, err := gen.Next(context.Background(), "2024")
	if err == nil {
		t.Fatal("expected error for malformed identifier")
	}
	if errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("malformed identifier must not report capacity: %v", err)
	}
}

func TestNextPropagatesLookupError(t *testing.T) {
	wantErr := errors.New("boom")
	gen := New(5, func(ctx context.Context, scopePrefix string) (string, error) {
		return "", wantErr
	})
	_, err := gen.Next(context.Background(), "2024")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func mustSuffix(t *testing.T, id string, width int) int {
	t.Helper()
	var n int
	for _, r := range id[len(id)-width:] {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit suffix in %s", id)
		}
		n = n*10 + int(r-'0')
	}
	return n
}
