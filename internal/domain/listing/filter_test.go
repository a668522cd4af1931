package listing

import (
	"reflect"
	"testing"
)

func TestPredicateEmptyFilter(t *testing.T) {
	fragment, args := Filter{}.Predicate([]string{"firstname", "lastname"}, "")
	if fragment != "" {
		t.Fatalf("expected empty fragment, got %q", fragment)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestPredicateWhitespaceOnlyFilter(t *testing.T) {
	fragment, args := Filter{Term: "   ", Category: "\t"}.Predicate([]string{"firstname"}, "account_type")
	if fragment != "" || len(args) != 0 {
		t.Fatalf("whitespace filter must match all rows, got %q %v", fragment, args)
	}
}

func TestPredicateTermOnly(t *testing.T) {
	fragment, args := Filter{Term: "smith"}.Predicate([]string{"firstname", "lastname", "username"}, "")
	want := "WHERE (firstname ILIKE $1 OR lastname ILIKE $1 OR username ILIKE $1)"
	if fragment != want {
		t.Fatalf("expected %q, got %q", want, fragment)
	}
	if !reflect.DeepEqual(args, []any{"%smith%"}) {
		t.Fatalf("expected wildcard-wrapped term, got %v", args)
	}
}

func TestPredicateCategoryOnly(t *testing.T) {
	fragment, args := Filter{Category: "admin"}.Predicate([]string{"account_id", "account_email"}, "account_type")
	if fragment != "WHERE account_type ILIKE $1" {
		t.Fatalf("unexpected fragment %q", fragment)
	}
	if !reflect.DeepEqual(args, []any{"%admin%"}) {
		t.Fatalf("expected wildcard-wrapped category, got %v", args)
	}
}

func TestPredicateTermAndCategory(t *testing.T) {
	fragment, args := Filter{Term: "jo", Category: "staff"}.Predicate([]string{"account_id", "account_email"}, "account_type")
	want := "WHERE (account_id ILIKE $1 OR account_email ILIKE $1) AND account_type ILIKE $2"
	if fragment != want {
		t.Fatalf("expected %q, got %q", want, fragment)
	}
	if !reflect.DeepEqual(args, []any{"%jo%", "%staff%"}) {
		t.Fatalf("unexpected args %v", args)
	}
}
