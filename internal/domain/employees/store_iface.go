package employees

import (
	"context"

	"paydesk/internal/domain/listing"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, employeeID string) (*Employee, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Employee, error)
	// LastEmployeeID returns the highest existing employee ID starting
	// with scopePrefix, or "" when none exists.
	LastEmployeeID(ctx context.Context, scopePrefix string) (string, error)
	Insert(ctx context.Context, emp Employee) error
	Update(ctx context.Context, emp Employee) (int64, error)
	Delete(ctx context.Context, employeeID string) (int64, error)
}
