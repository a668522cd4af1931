package payslips

import (
	"context"

	"paydesk/internal/domain/listing"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Payslip, error)
	Get(ctx context.Context, payslipNo string) (*Payslip, error)
	Count(ctx context.Context, filter listing.Filter) (int, error)
	Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Payslip, error)
	GetDetail(ctx context.Context, payslipNo string) (*Detail, error)
	ListDetailed(ctx context.Context) ([]Detail, error)
	CountDetailed(ctx context.Context, filter listing.Filter) (int, error)
	PageDetailed(ctx context.Context, filter listing.Filter, limit, offset int) ([]Detail, error)
	// LastPayslipNo returns the highest existing payslip number, or ""
	// when the table is empty.
	LastPayslipNo(ctx context.Context, scopePrefix string) (string, error)
	Insert(ctx context.Context, p Payslip) error
	Update(ctx context.Context, p Payslip) (int64, error)
	Delete(ctx context.Context, payslipNo string) (int64, error)
}
