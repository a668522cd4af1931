package users

import (
	"context"
	"errors"

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

func (s *Service) List(ctx context.Context) ([]User, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

// Get returns (nil, nil) when no user matches; absence is not an error
// at this layer.
func (s *Service) Get(ctx context.Context, id int) (*User, error) {
	u, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return u, nil
}

func (s *Service) ListPage(ctx context.Context, req listing.PageRequest, filter listing.Filter) (listing.PageResult[User], error) {
	result, err := listing.Paginate(ctx, req,
		func(ctx context.Context) (int, error) { return s.store.Count(ctx, filter) },
		func(ctx context.Context, limit, offset int) ([]User, error) {
			return s.store.Page(ctx, filter, limit, offset)
		},
	)
	if err != nil {
		return listing.PageResult[User]{}, apperr.Storage(err)
	}
	return result, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*User, error) {
	in = cleanInput(in)

	var issues apperr.IssueList
	issues.Require("firstname", in.FirstName, "First name is required.")
	issues.Require("lastname", in.LastName, "Last name is required.")
	issues.Require("username", in.Username, "Username is required.")
	issues.Require("password", in.Password, "Password is required.")
	if err := issues.Err(); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Username is already taken.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	user := User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		PasswordHash: string(hashed),
	}
	id, err := s.store.Insert(ctx, user)
	if errors.Is(err, db.ErrDuplicateKey) {
		return nil, apperr.Conflict("Username is already taken.")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	user.ID = id
	return &user, nil
}

// Update keeps the stored password hash untouched when the incoming
// password is empty; only a non-empty password is re-hashed.
func (s *Service) Update(ctx context.Context, id int, in Input) (*User, error) {
	in = cleanInput(in)

	var issues apperr.IssueList
	issues.Require("firstname", in.FirstName, "First name is required.")
	issues.Require("lastname", in.LastName, "Last name is required.")
	if err := issues.Err(); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if existing == nil {
		return nil, apperr.NotFound("User")
	}

	updated := *existing
	updated.FirstName = in.FirstName
	updated.LastName = in.LastName
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		updated.PasswordHash = string(hashed)
	}

	affected, err := s.store.Update(ctx, updated)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("User")
	}
	return &updated, nil
}

// Delete reports false without an error when no row matched; the
// caller decides whether that is a failure.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, apperr.Storage(err)
	}
	return affected > 0, nil
}

func cleanInput(in Input) Input {
	in.FirstName = scrub.Clean(in.FirstName)
	in.LastName = scrub.Clean(in.LastName)
	in.Username = scrub.Clean(in.Username)
	return in
}
