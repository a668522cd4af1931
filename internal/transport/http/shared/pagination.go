package shared

import (
	"net/http"
	"strconv"
	"strings"

	"paydesk/internal/domain/listing"
)

// ListParams are the query parameters every collection endpoint
// understands. A request is paginated only when it carries both page
// and records_per_page; otherwise the full collection is returned.
type ListParams struct {
	Paginated bool
	Page      listing.PageRequest
	Filter    listing.Filter
}

func ParseListParams(r *http.Request, defaultPageSize, maxPageSize int) ListParams {
	query := r.URL.Query()

	params := ListParams{
		Filter: listing.Filter{
			Term:     strings.TrimSpace(query.Get("search")),
			Category: strings.TrimSpace(query.Get("type")),
		},
	}

	rawPage := query.Get("page")
	rawSize := query.Get("records_per_page")
	if rawPage == "" && rawSize == "" {
		return params
	}

	page := atoiDefault(rawPage, 1)
	size := atoiDefault(rawSize, defaultPageSize)
	if maxPageSize > 0 && size > maxPageSize {
		size = maxPageSize
	}

	params.Paginated = true
	params.Page = listing.NewPageRequest(page, size)
	return params
}

func atoiDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
