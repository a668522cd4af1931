package payslips

import (
	"context"
	"errors"
	"time"

	"paydesk/internal/domain/listing"
	"paydesk/internal/domain/scrub"
	"paydesk/internal/domain/sequence"
	"paydesk/internal/platform/apperr"
	"paydesk/internal/platform/db"
)

// payslipNoWidth is the full zero-padded width of a payslip number.
// Unlike employee IDs there is no year prefix.
const payslipNoWidth = 9

type Service struct {
	store      StoreAPI
	gen        *sequence.Generator
	storageDir string
}

func NewService(store StoreAPI, storageDir string) *Service {
	return &Service{
		store:      store,
		gen:        sequence.New(payslipNoWidth, store.LastPayslipNo),
		storageDir: storageDir,
	}
}

func (s *Service) List(ctx context.Context) ([]Payslip, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, payslipNo string) (*Payslip, error) {
	p, err := s.store.Get(ctx, payslipNo)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *Service) ListPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[Payslip], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]Payslip, error) {
			return s.store.Page(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[Payslip]{}, apperr.Storage(err)
	}
	return result, nil
}

func (s *Service) GetDetail(ctx context.Context, payslipNo string) (*Detail, error) {
	d, err := s.store.GetDetail(ctx, payslipNo)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return d, nil
}

func (s *Service) ListDetailed(ctx context.Context) ([]Detail, error) {
	out, err := s.store.ListDetailed(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (s *Service) ListDetailedPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[Detail], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.CountDetailed(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]Detail, error) {
			return s.store.PageDetailed(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[Detail]{}, apperr.Storage(err)
	}
	return result, nil
}

// Create assigns the next payslip number and inserts the record.
// Generation and insert are not atomic, so a concurrent creator can win
// the same number; the primary key rejects the loser and generation is
// retried once before reporting a conflict.
func (s *Service) Create(ctx context.Context, in Input) (*Payslip, error) {
	in = cleanInput(in)

	p, err := buildPayslip(in)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		no, err := s.gen.Next(ctx, "")
		if errors.Is(err, sequence.ErrCapacityExceeded) {
			return nil, apperr.CapacityExceeded("Maximum payslip number limit reached.")
		}
		if err != nil {
			return nil, apperr.Storage(err)
		}

		p.PayslipNo = no
		err = s.store.Insert(ctx, *p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, db.ErrDuplicateKey) {
			return nil, apperr.Storage(err)
		}
	}

	return nil, apperr.Conflict("Payslip number was claimed concurrently, please retry.")
}

func (s *Service) Update(ctx context.Context, payslipNo string, in Input) (*Payslip, error) {
	in = cleanInput(in)

	p, err := buildPayslip(in)
	if err != nil {
		return nil, err
	}

	p.PayslipNo = payslipNo
	affected, err := s.store.Update(ctx, *p)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Payslip")
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, payslipNo string) (bool, error) {
	affected, err := s.store.Delete(ctx, payslipNo)
	if err != nil {
		return false, apperr.Storage(err)
	}
	return affected > 0, nil
}

// buildPayslip validates the input and parses its dates. Date issues
// are reported in the same validation error as missing fields.
func buildPayslip(in Input) (*Payslip, error) {
	var issues apperr.IssueList
	issues.Require("employee_id", in.EmployeeID, "Employee ID is required.")
	issues.Require("bank_account", in.BankAccount, "Bank account is required.")
	if in.TotalSalary <= 0 {
		issues.Add("total_salary", "Salary is required.")
	}
	issues.Require("person_in_charge", in.PersonInCharge, "Person in charge is required.")
	issues.Require("cutoff_date", in.CutoffDate, "Cutoff date is required.")
	issues.Require("date_of_payment", in.DateOfPayment, "Date of payment is required.")
	issues.Require("payment_status", in.PaymentStatus, "Payment status is required.")

	var cutoff, payment time.Time
	var err error
	if in.CutoffDate != "" {
		if cutoff, err = parseDate(in.CutoffDate); err != nil {
			issues.Add("cutoff_date", "Invalid cutoff date.")
		}
	}
	if in.DateOfPayment != "" {
		if payment, err = parseDate(in.DateOfPayment); err != nil {
			issues.Add("date_of_payment", "Invalid date of payment.")
		}
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}

	return &Payslip{
		EmployeeID:     in.EmployeeID,
		BankAccount:    in.BankAccount,
		TotalSalary:    in.TotalSalary,
		PersonInCharge: in.PersonInCharge,
		CutoffDate:     cutoff,
		DateOfPayment:  payment,
		PaymentStatus:  in.PaymentStatus,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func cleanInput(in Input) Input {
	in.EmployeeID = scrub.Clean(in.EmployeeID)
	in.BankAccount = scrub.Clean(in.BankAccount)
	in.PersonInCharge = scrub.Clean(in.PersonInCharge)
	in.CutoffDate = scrub.Clean(in.CutoffDate)
	in.DateOfPayment = scrub.Clean(in.DateOfPayment)
	in.PaymentStatus = scrub.Clean(in.PaymentStatus)
	return in
}
