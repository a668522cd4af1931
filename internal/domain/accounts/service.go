package accounts

import (
	"context"
	"errors"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

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

func (s *Service) List(ctx context.Context) ([]Account, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, accountID string) (*Account, error) {
	acct, err := s.store.Get(ctx, accountID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return acct, nil
}

func (s *Service) ListPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[Account], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]Account, error) {
			return s.store.Page(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[Account]{}, apperr.Storage(err)
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Account, error) {
	in = cleanInput(in)

	if err := validate(in, true); err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, in.AccountID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if exists {
		return nil, apperr.Conflict("Account ID already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.AccountPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	acct := Account{
		AccountID:     in.AccountID,
		EmployeeID:    in.EmployeeID,
		AccountEmail:  in.AccountEmail,
		PasswordHash:  string(hashed),
		AccountType:   in.AccountType,
		AccountStatus: in.AccountStatus,
	}
	err = s.store.Insert(ctx, acct)
	if errors.Is(err, db.ErrDuplicateKey) {
		return nil, apperr.Conflict("Account ID already exists.")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return &acct, nil
}

func (s *Service) Update(ctx context.Context, accountID string, in Input) (*Account, error) {
	in.AccountID = accountID
	in = cleanInput(in)

	if err := validate(in, false); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.AccountPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	acct := Account{
		AccountID:     accountID,
		EmployeeID:    in.EmployeeID,
		AccountEmail:  in.AccountEmail,
		PasswordHash:  string(hashed),
		AccountType:   in.AccountType,
		AccountStatus: in.AccountStatus,
	}
	affected, err := s.store.Update(ctx, acct)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Account")
	}

	// employee_id is not updatable; re-read so the response reflects the
	// stored row.
	updated, err := s.store.Get(ctx, accountID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, accountID string) (bool, error) {
	affected, err := s.store.Delete(ctx, accountID)
	if err != nil {
		return false, apperr.Storage(err)
	}
	return affected > 0, nil
}

func validate(in Input, requireEmployee bool) error {
	var issues apperr.IssueList
	issues.Require("account_id", in.AccountID, "Account ID is required.")
	if requireEmployee {
		issues.Require("employee_id", in.EmployeeID, "Employee ID is required.")
	}
	issues.Require("account_email", in.AccountEmail, "Email is required.")
	issues.Require("account_pass", in.AccountPass, "Password is required.")
	issues.Require("account_type", in.AccountType, "Account type is required.")
	issues.Require("account_status", in.AccountStatus, "Account status is required.")

	if in.AccountEmail != "" {
		if _, err := mail.ParseAddress(in.AccountEmail); err != nil {
			issues.Add("account_email", "Invalid email format.")
		}
	}

	return issues.Err()
}

func cleanInput(in Input) Input {
	in.AccountID = scrub.Clean(in.AccountID)
	in.EmployeeID = scrub.Clean(in.EmployeeID)
	in.AccountEmail = scrub.Clean(in.AccountEmail)
	in.AccountType = scrub.Clean(in.AccountType)
	in.AccountStatus = scrub.Clean(in.AccountStatus)
	return in
}
