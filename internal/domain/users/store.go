package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/db"
)

// searchColumns is the fixed set of text columns a free-text search
// matches against. Never derived from user input.
var searchColumns = []string{"firstname", "lastname", "username"}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) List(ctx context.Context) ([]User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := s.DB.Query(ctx, `
    SELECT id, firstname, lastname, username, password
    FROM users
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int) (*User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, firstname, lastname, username, password
    FROM users
    WHERE id = $1
  `, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) FindByUsername(ctx context.Context, username string) (*User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var u User
	err := s.DB.QueryRow(ctx, `
    SELECT id, firstname, lastname, username, password
    FROM users
    WHERE username = $1
  `, username).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) Count(ctx context.Context, filter listing.Filter) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users "+predicate, args...).Scan(&total)
	return total, err
}

func (s *Store) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]User, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	predicate, args := filter.Predicate(searchColumns, "")
	query := fmt.Sprintf(`
    SELECT id, firstname, lastname, username, password
    FROM users
    %s
    ORDER BY id
    LIMIT $%d OFFSET $%d
  `, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, user User) (int, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	var id int
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (firstname, lastname, username, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, user.FirstName, user.LastName, user.Username, user.PasswordHash).Scan(&id)
	if db.IsUniqueViolation(err) {
		return 0, fmt.Errorf("users insert: %w", db.ErrDuplicateKey)
	}
	return id, err
}

func (s *Store) Update(ctx context.Context, user User) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET firstname = $1,
        lastname = $2,
        password = $3
    WHERE id = $4
  `, user.FirstName, user.LastName, user.PasswordHash, user.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := db.WithQueryTimeout(ctx)
	defer cancel()

	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
