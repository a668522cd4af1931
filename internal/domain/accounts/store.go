package accounts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/db"
)

var (
	searchColumns  = []string{"account_id", "account_email"}
	categoryColumn = "account_type"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Account, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, `
    SELECT account_id, employee_id, account_email, account_password, account_type, account_status
    FROM employee_account
    ORDER BY account_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.AccountID, &a.EmployeeID, &a.AccountEmail, &a.PasswordHash, &a.AccountType, &a.AccountStatus); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, accountID string) (*Account, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var a Account
	err := s.DB.QueryRow(ctx, `
    SELECT account_id, employee_id, account_email, account_password, account_type, account_status
    FROM employee_account
    WHERE account_id = $1
  `, accountID).Scan(&a.AccountID, &a.EmployeeID, &a.AccountEmail, &a.PasswordHash, &a.AccountType, &a.AccountStatus)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) Exists(ctx context.Context, accountID string) (bool, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employee_account WHERE account_id = $1", accountID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Count(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, categoryColumn)
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employee_account "+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Account, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, categoryColumn)
	query := fmt.Sprintf(`
    SELECT account_id, employee_id, account_email, account_password, account_type, account_status
    FROM employee_account
    %s
    ORDER BY account_id
    LIMIT $%d OFFSET $%d
  `, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.AccountID, &a.EmployeeID, &a.AccountEmail, &a.PasswordHash, &a.AccountType, &a.AccountStatus); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, acct Account) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	_, err := s.DB.Exec(ctx, `
    INSERT INTO employee_account (account_id, employee_id, account_email, account_password, account_type, account_status)
    VALUES ($1, $2, $3, $4, $5, $6)
  `, acct.AccountID, acct.EmployeeID, acct.AccountEmail, acct.PasswordHash, acct.AccountType, acct.AccountStatus)
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("employee_account insert: %w", db.ErrDuplicateKey)
	}
	return err
}

func (s *Store) Update(ctx context.Context, acct Account) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, `
    UPDATE employee_account
    SET account_email = $1,
        account_password = $2,
        account_type = $3,
        account_status = $4
    WHERE account_id = $5
  `, acct.AccountEmail, acct.PasswordHash, acct.AccountType, acct.AccountStatus, acct.AccountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, accountID string) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, "DELETE FROM employee_account WHERE account_id = $1", accountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
