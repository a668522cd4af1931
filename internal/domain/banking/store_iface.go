package banking

import (
	"context"

	"paydesk/internal/domain/listing"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Detail, error)
	Get(ctx context.Context, employeeID string) (*Detail, error)
	Exists(ctx context.Context, employeeID, bankAccountNumber string) (bool, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Detail, error)
	Insert(ctx context.Context, detail Detail) error
	Update(ctx context.Context, detail Detail) (int64, error)
	Delete(ctx context.Context, employeeID string) (int64, error)
}
