package users

import (
	"context"

	"paydesk/internal/domain/listing"
)

type StoreAPI interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]User, error)
	Insert(ctx context.Context, user User) (int, error)
	Update(ctx context.Context, user User) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}
