package payslips

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/db"
)

var searchColumns = []string{
	"payslip_no", "employee_id", "bank_account", "person_in_charge",
	"payment_status", "cutoff_date::text", "date_of_payment::text",
}

// Columns on the joined detail view are qualified because payslip and
// employee_banking_details both carry an employee_id.
var detailSearchColumns = []string{
	"pay.payslip_no", "pay.employee_id", "emp.firstname", "emp.lastname",
	"pay.bank_account", "pay.person_in_charge",
	"pay.cutoff_date::text", "pay.date_of_payment::text",
}

const payslipColumns = `payslip_no, employee_id, bank_account, total_salary, person_in_charge, cutoff_date, date_of_payment, payment_status`

// detailFrom joins on the payslip's own bank_account and total_salary
// columns. The bank account stored on the payslip is the one the
// payment was made to, even if the employee's banking details changed
// since.
const detailFrom = `
    FROM payslip pay
    JOIN employees emp ON pay.employee_id = emp.employee_id
    JOIN employee_banking_details bank ON pay.bank_account = bank.bank_account_number
  `

const detailSelect = `
    SELECT pay.payslip_no, pay.employee_id,
           CONCAT_WS(' ', emp.firstname, emp.lastname),
           pay.bank_account, bank.preferred_bank,
           pay.total_salary, pay.person_in_charge,
           pay.cutoff_date, pay.date_of_payment, pay.payment_status
  ` + detailFrom

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Payslip, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, `
    SELECT `+payslipColumns+`
    FROM payslip
    ORDER BY date_of_payment DESC, payslip_no
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

func (s *Store) Get(ctx context.Context, payslipNo string) (*Payslip, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var p Payslip
	err := s.DB.QueryRow(ctx, `
    SELECT `+payslipColumns+`
    FROM payslip
    WHERE payslip_no = $1
  `, payslipNo).Scan(&p.PayslipNo, &p.EmployeeID, &p.BankAccount, &p.TotalSalary,
		&p.PersonInCharge, &p.CutoffDate, &p.DateOfPayment, &p.PaymentStatus)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Count(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM payslip "+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Payslip, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	query := fmt.Sprintf(`
    SELECT `+payslipColumns+`
    FROM payslip
    %s
    ORDER BY date_of_payment DESC, payslip_no
    LIMIT $%d OFFSET $%d
  `, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

func (s *Store) GetDetail(ctx context.Context, payslipNo string) (*Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var d Detail
	err := s.DB.QueryRow(ctx, detailSelect+" WHERE pay.payslip_no = $1", payslipNo).
		Scan(&d.PayslipNo, &d.EmployeeID, &d.EmployeeName, &d.BankAccount, &d.PreferredBank,
			&d.TotalSalary, &d.PersonInCharge, &d.CutoffDate, &d.DateOfPayment, &d.PaymentStatus)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) ListDetailed(ctx context.Context) ([]Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, detailSelect+" ORDER BY pay.date_of_payment DESC, pay.payslip_no")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (s *Store) CountDetailed(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(detailSearchColumns, "")
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*)"+detailFrom+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) PageDetailed(ctx context.Context, filter listing.Filter, limit, offset int) ([]Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(detailSearchColumns, "")
	query := fmt.Sprintf(`
    %s
    %s
    ORDER BY pay.date_of_payment DESC, pay.payslip_no
    LIMIT $%d OFFSET $%d
  `, detailSelect, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows)
}

func (s *Store) LastPayslipNo(ctx context.Context, scopePrefix string) (string, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var last string
	err := s.DB.QueryRow(ctx, `
    SELECT payslip_no
    FROM payslip
    WHERE payslip_no LIKE $1
    ORDER BY payslip_no DESC
    LIMIT 1
  `, scopePrefix+"%").Scan(&last)
	if db.IsNoRows(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last, nil
}

func (s *Store) Insert(ctx context.Context, p Payslip) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	_, err := s.DB.Exec(ctx, `
    INSERT INTO payslip (payslip_no, employee_id, bank_account, total_salary, person_in_charge, cutoff_date, date_of_payment, payment_status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
  `, p.PayslipNo, p.EmployeeID, p.BankAccount, p.TotalSalary,
		p.PersonInCharge, p.CutoffDate, p.DateOfPayment, p.PaymentStatus)
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("payslip insert: %w", db.ErrDuplicateKey)
	}
	return err
}

func (s *Store) Update(ctx context.Context, p Payslip) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, `
    UPDATE payslip
    SET employee_id = $1,
        bank_account = $2,
        total_salary = $3,
        person_in_charge = $4,
        cutoff_date = $5,
        date_of_payment = $6,
        payment_status = $7
    WHERE payslip_no = $8
  `, p.EmployeeID, p.BankAccount, p.TotalSalary, p.PersonInCharge,
		p.CutoffDate, p.DateOfPayment, p.PaymentStatus, p.PayslipNo)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, payslipNo string) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, "DELETE FROM payslip WHERE payslip_no = $1", payslipNo)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanPayslips(rows pgx.Rows) ([]Payslip, error) {
	var out []Payslip
	for rows.Next() {
		var p Payslip
		if err := rows.Scan(&p.PayslipNo, &p.EmployeeID, &p.BankAccount, &p.TotalSalary,
			&p.PersonInCharge, &p.CutoffDate, &p.DateOfPayment, &p.PaymentStatus); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanDetails(rows pgx.Rows) ([]Detail, error) {
	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.PayslipNo, &d.EmployeeID, &d.EmployeeName, &d.BankAccount,
			&d.PreferredBank, &d.TotalSalary, &d.PersonInCharge,
			&d.CutoffDate, &d.DateOfPayment, &d.PaymentStatus); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
