package accounts

import (
	"context"

	"paydesk/internal/domain/listing"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Account, error)
	Get(ctx context.Context, accountID string) (*Account, error)
	Exists(ctx context.Context, accountID string) (bool, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Account, error)
	Insert(ctx context.Context, acct Account) error
	Update(ctx context.Context, acct Account) (int64, error)
	Delete(ctx context.Context, accountID string) (int64, error)
}
