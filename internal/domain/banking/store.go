package banking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/db"
)

var searchColumns = []string{"employee_id", "preferred_bank", "bank_account_number", "bank_account_name"}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, preferred_bank, bank_account_number, bank_account_name
    FROM employee_banking_details
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.EmployeeID, &d.PreferredBank, &d.BankAccountNumber, &d.BankAccountName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var d Detail
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, preferred_bank, bank_account_number, bank_account_name
    FROM employee_banking_details
    WHERE employee_id = $1
  `, employeeID).Scan(&d.EmployeeID, &d.PreferredBank, &d.BankAccountNumber, &d.BankAccountName)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) Exists(ctx context.Context, employeeID, bankAccountNumber string) (bool, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employee_banking_details
    WHERE employee_id = $1 AND bank_account_number = $2
  `, employeeID, bankAccountNumber).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Count(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employee_banking_details "+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Detail, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	query := fmt.Sprintf(`
    SELECT employee_id, preferred_bank, bank_account_number, bank_account_name
    FROM employee_banking_details
    %s
    ORDER BY employee_id
    LIMIT $%d OFFSET $%d
  `, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.EmployeeID, &d.PreferredBank, &d.BankAccountNumber, &d.BankAccountName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, detail Detail) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_banking_details (employee_id, preferred_bank, bank_account_number, bank_account_name)
    VALUES ($1, $2, $3, $4)
  `, detail.EmployeeID, detail.PreferredBank, detail.BankAccountNumber, detail.BankAccountName)
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("employee_banking_details insert: %w", db.ErrDuplicateKey)
	}
	return err
}

func (s *Store) Update(ctx context.Context, detail Detail) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, `
    UPDATE employee_banking_details
    SET preferred_bank = $1,
        bank_account_number = $2,
        bank_account_name = $3
    WHERE employee_id = $4
  `, detail.PreferredBank, detail.BankAccountNumber, detail.BankAccountName, detail.EmployeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, employeeID string) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, "DELETE FROM employee_banking_details WHERE employee_id = $1", employeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
