package listing

import "context"

// PageRequest is a normalized pagination request. Page and PageSize are
// always at least 1; construct values through NewPageRequest so caller
// input is clamped rather than trusted.
type PageRequest struct {
	Page     int
	PageSize int
}

func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

type PageResult[T any] struct {
	Items        []T `json:"items"`
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

type CountFunc func(ctx context.Context) (int, error)

type FetchFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Paginate runs the count query, then fetches one bounded page. The
// result is fully populated even when the page is past the end and
// carries no items.
func Paginate[T any](ctx context.Context, req PageRequest, count CountFunc, fetch FetchFunc[T]) (PageResult[T], error) {
	result := PageResult[T]{
		Items:       make([]T, 0, req.PageSize),
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
	}

	total, err := count(ctx)
	if err != nil {
		return PageResult[T]{}, err
	}
	result.TotalRecords = total
	result.TotalPages = TotalPages(total, req.PageSize)

	items, err := fetch(ctx, req.PageSize, req.Offset())
	if err != nil {
		return PageResult[T]{}, err
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

// TotalPages is ceil(totalRecords / pageSize), 0 when there are no
// records.
func TotalPages(totalRecords, pageSize int) int {
	if totalRecords <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalRecords + pageSize - 1) / pageSize
}
