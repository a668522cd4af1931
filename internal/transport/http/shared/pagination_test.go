package shared

import (
	"net/http/httptest"
	"testing"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		paginated bool
		page      int
		size      int
		term      string
		category  string
	}{
		{"no params", "/users", false, 0, 0, "", ""},
		{"full pagination", "/users?page=3&records_per_page=25", true, 3, 25, "", ""},
		{"page only", "/users?page=2", true, 2, 10, "", ""},
		{"size only", "/users?records_per_page=5", true, 1, 5, "", ""},
		{"zero clamped", "/users?page=0&records_per_page=0", true, 1, 1, "", ""},
		{"negative clamped", "/users?page=-4&records_per_page=-2", true, 1, 1, "", ""},
		{"garbage defaults", "/users?page=abc&records_per_page=xyz", true, 1, 10, "", ""},
		{"size capped", "/users?page=1&records_per_page=5000", true, 1, 100, "", ""},
		{"search and type", "/accounts?search=ben&type=staff", false, 0, 0, "ben", "staff"},
		{"search trimmed", "/accounts?search=%20ben%20", false, 0, 0, "ben", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			params := ParseListParams(r, 10, 100)

			if params.Paginated != tc.paginated {
				t.Fatalf("paginated = %v, want %v", params.Paginated, tc.paginated)
			}
			if tc.paginated {
				if params.Page.Page != tc.page || params.Page.PageSize != tc.size {
					t.Fatalf("page = %+v, want page %d size %d", params.Page, tc.page, tc.size)
				}
			}
			if params.Filter.Term != tc.term {
				t.Fatalf("term = %q, want %q", params.Filter.Term, tc.term)
			}
			if params.Filter.Category != tc.category {
				t.Fatalf("category = %q, want %q", params.Filter.Category, tc.category)
			}
		})
	}
}
