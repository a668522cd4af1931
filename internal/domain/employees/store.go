package employees

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/db"
)

var searchColumns = []string{"employee_id", "firstname", "lastname", "email"}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, firstname, lastname, contact_number, email
    FROM employees
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var emp Employee
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, firstname, lastname, contact_number, email
    FROM employees
    WHERE employee_id = $1
  `, employeeID).Scan(&emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.ContactNumber, &emp.Email)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Count(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employees "+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Employee, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	query := fmt.Sprintf(`
    SELECT employee_id, firstname, lastname, contact_number, email
    FROM employees
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

	return scanEmployees(rows)
}

func (s *Store) LastEmployeeID(ctx context.Context, scopePrefix string) (string, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var last string
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id
    FROM employees
    WHERE employee_id LIKE $1
    ORDER BY employee_id DESC
    LIMIT 1
  `, scopePrefix+"%").Scan(&last)
	if db.IsNoRows(err) {
		return "", nil
	}
	return last, err
}

func (s *Store) Insert(ctx context.Context, emp Employee) error {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	_, err := s.DB.Exec(ctx, `
    INSERT INTO employees (employee_id, firstname, lastname, contact_number, email)
    VALUES ($1, $2, $3, $4, $5)
  `, emp.EmployeeID, emp.FirstName, emp.LastName, emp.ContactNumber, emp.Email)
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("employees insert: %w", db.ErrDuplicateKey)
	}
	return err
}

func (s *Store) Update(ctx context.Context, emp Employee) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET firstname = $1,
        lastname = $2,
        contact_number = $3,
        email = $4
    WHERE employee_id = $5
  `, emp.FirstName, emp.LastName, emp.ContactNumber, emp.Email, emp.EmployeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, employeeID string) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE employee_id = $1", employeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEmployees(rows pgxRows) ([]Employee, error) {
	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.ContactNumber, &emp.Email); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}
