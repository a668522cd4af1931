package employees

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paydesk/internal/domain/listing"
	"paydesk/internal/domain/scrub"
	"paydesk/internal/domain/sequence"
	"paydesk/internal/platform/apperr"
	"paydesk/internal/platform/db"
)

// employeeIDWidth is the zero-padded suffix width; the full ID is the
// 4-digit year plus this many digits.
const employeeIDWidth = 5

type Service struct {
	store StoreAPI
	gen   *sequence.Generator
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{
		store: store,
		gen:   sequence.New(employeeIDWidth, store.LastEmployeeID),
		now:   time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	emp, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return emp, nil
}

func (s *Service) ListPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[Employee], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]Employee, error) {
			return s.store.Page(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[Employee]{}, apperr.Storage(err)
	}
	return result, nil
}

// Create assigns the next employee ID for the current year and inserts
// the record. Generation and insert are not atomic, so a concurrent
// creator can win the same ID; the primary key rejects the loser and
// generation is retried once before reporting a conflict.
func (s *Service) Create(ctx context.Context, in Input) (*Employee, error) {
	in = cleanInput(in)

	var issues apperr.IssueList
	issues.Require("firstname", in.FirstName, "First name is required.")
	issues.Require("lastname", in.LastName, "Last name is required.")
	issues.Require("contact_number", in.ContactNumber, "Contact number is required.")
	issues.Require("email", in.Email, "Email is required.")
	if err := issues.Err(); err != nil {
		return nil, err
	}

	yearPrefix := s.now().Format("2006")
	emp := Employee{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
	}

	for attempt := 0; attempt < 2; attempt++ {
		id, err := s.gen.Next(ctx, yearPrefix)
		if errors.Is(err, sequence.ErrCapacityExceeded) {
			return nil, apperr.CapacityExceeded(fmt.Sprintf("Maximum employee ID limit reached for year %s.", yearPrefix))
		}
		if err != nil {
			return nil, apperr.Storage(err)
		}

		emp.EmployeeID = id
		err = s.store.Insert(ctx, emp)
		if err == nil {
			return &emp, nil
		}
		if !errors.Is(err, db.ErrDuplicateKey) {
			return nil, apperr.Storage(err)
		}
	}

	return nil, apperr.Conflict("Employee ID was claimed concurrently, please retry.")
}

func (s *Service) Update(ctx context.Context, employeeID string, in Input) (*Employee, error) {
	in = cleanInput(in)

	var issues apperr.IssueList
	issues.Require("firstname", in.FirstName, "First name is required.")
	issues.Require("lastname", in.LastName, "Last name is required.")
	issues.Require("contact_number", in.ContactNumber, "Contact number is required.")
	issues.Require("email", in.Email, "Email is required.")
	if err := issues.Err(); err != nil {
		return nil, err
	}

	emp := Employee{
		EmployeeID:    employeeID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
	}
	affected, err := s.store.Update(ctx, emp)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Employee")
	}
	return &emp, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) (bool, error) {
	affected, err := s.store.Delete(ctx, employeeID)
	if err != nil {
		return false, apperr.Storage(err)
	}
	return affected > 0, nil
}

func cleanInput(in Input) Input {
	in.FirstName = scrub.Clean(in.FirstName)
	in.LastName = scrub.Clean(in.LastName)
	in.ContactNumber = scrub.Clean(in.ContactNumber)
	in.Email = scrub.Clean(in.Email)
	return in
}
