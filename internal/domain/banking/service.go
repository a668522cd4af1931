package banking

import (
	"context"
	"errors"

	"paydesk/internal/domain/listing"
	"paydesk/internal/domain/scrub"
	"paydesk/internal/platform/apperr"
	"paydesk/internal/platform/db"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Detail, error) {
	d, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return d, nil
}

func (s *Service) ListPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[Detail], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]Detail, error) {
			return s.store.Page(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[Detail]{}, apperr.Storage(err)
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Detail, error) {
	in = cleanInput(in)

	if err := validate(in); err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, in.EmployeeID, in.BankAccountNumber)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if exists {
		return nil, apperr.Conflict("Banking details already exist for this employee.")
	}

	detail := Detail(in)
	err = s.store.Insert(ctx, detail)
	if errors.Is(err, db.ErrDuplicateKey) {
		return nil, apperr.Conflict("Banking details already exist for this employee.")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &detail, nil
}

func (s *Service) Update(ctx context.Context, employeeID string, in Input) (*Detail, error) {
	in.EmployeeID = employeeID
	in = cleanInput(in)

	if err := validate(in); err != nil {
		return nil, err
	}

	detail := Detail(in)
	affected, err := s.store.Update(ctx, detail)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Banking details")
	}
	return &detail, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) (bool, error) {
	affected, err := s.store.Delete(ctx, employeeID)
	if err != nil {
		return false, apperr.Storage(err)
	}
	return affected > 0, nil
}

func validate(in Input) error {
	var issues apperr.IssueList
	issues.Require("employee_id", in.EmployeeID, "Employee ID is required.")
	issues.Require("preferred_bank", in.PreferredBank, "Preferred bank is required.")
	issues.Require("bank_account_number", in.BankAccountNumber, "Bank account number is required.")
	issues.Require("bank_account_name", in.BankAccountName, "Bank account name is required.")
	return issues.Err()
}

func cleanInput(in Input) Input {
	in.EmployeeID = scrub.Clean(in.EmployeeID)
	in.PreferredBank = scrub.Clean(in.PreferredBank)
	in.BankAccountNumber = scrub.Clean(in.BankAccountNumber)
	in.BankAccountName = scrub.Clean(in.BankAccountName)
	return in
}
