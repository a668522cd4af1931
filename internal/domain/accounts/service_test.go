package accounts

import (
	"context"
	"sort"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/apperr"
)

type fakeStore struct {
	accounts map[string]Account
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]Account)}
}

func (f *fakeStore) List(ctx context.Context) ([]Account, error) {
	ids := make([]string, 0, len(f.accounts))
	for id := range f.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.accounts[id])
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, accountID string) (*Account, error) {
	a, ok := f.accounts[accountID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeStore) Exists(ctx context.Context, accountID string) (bool, error) {
	_, ok := f.accounts[accountID]
	return ok, nil
}

func (f *fakeStore) Count(ctx context.Context, filter listing.Filter) (int, error) {
	matched, _ := f.match(filter)
	return len(matched), nil
}

func (f *fakeStore) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Account, error) {
	matched, _ := f.match(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeStore) match(filter listing.Filter) ([]Account, error) {
	all, _ := f.List(context.Background())
	var out []Account
	for _, a := range all {
		if filter.Term != "" {
			haystack := strings.ToLower(a.AccountID + " " + a.AccountEmail)
			if !strings.Contains(haystack, strings.ToLower(filter.Term)) {
				continue
			}
		}
		if filter.Category != "" && !strings.Contains(strings.ToLower(a.AccountType), strings.ToLower(filter.Category)) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) Insert(ctx context.Context, acct Account) error {
	f.accounts[acct.AccountID] = acct
	return nil
}

func (f *fakeStore) Update(ctx context.Context, acct Account) (int64, error) {
	existing, ok := f.accounts[acct.AccountID]
	if !ok {
		return 0, nil
	}
	acct.EmployeeID = existing.EmployeeID
	f.accounts[acct.AccountID] = acct
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, accountID string) (int64, error) {
	if _, ok := f.accounts[accountID]; !ok {
		return 0, nil
	}
	delete(f.accounts, accountID)
	return 1, nil
}

func validInput() Input {
	return Input{
		AccountID:     "ACCT-001",
		EmployeeID:    "202400001",
		AccountEmail:  "ben.cruz@example.com",
		AccountPass:   "secret123",
		AccountType:   "staff",
		AccountStatus: "active",
	}
}

func TestCreateHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	stored := store.accounts[created.AccountID]
	if stored.PasswordHash == "secret123" {
		t.Fatal("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestCreateMissingEmailListed(t *testing.T) {
	svc := NewService(newFakeStore())

	in := validInput()
	in.AccountEmail = ""
	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperr.From(err)
	if appErr.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "Email is required.") {
		t.Fatalf("expected email issue in message, got %q", appErr.Message)
	}
}

func TestCreateInvalidEmailFormat(t *testing.T) {
	svc := NewService(newFakeStore())

	in := validInput()
	in.AccountEmail = "not-an-email"
	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(apperr.From(err).Message, "Invalid email format.") {
		t.Fatalf("expected format issue, got %q", apperr.From(err).Message)
	}
}

func TestCreateDuplicateAccountID(t *testing.T) {
	svc := NewService(newFakeStore())

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(context.Background(), validInput())
	if appErr := apperr.From(err); appErr.Code != "conflict" {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateRejectsWhenNoRowInserted(t *testing.T) {
	svc := NewService(newFakeStore())

	in := validInput()
	in.AccountEmail = ""
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected validation error")
	}
	all, _ := svc.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("no row must be inserted on validation failure, got %d", len(all))
	}
}

func TestUpdatePreservesEmployeeID(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.EmployeeID = ""
	in.AccountStatus = "disabled"
	updated, err := svc.Update(context.Background(), created.AccountID, in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.EmployeeID != "202400001" {
		t.Fatalf("employee_id must survive update, got %q", updated.EmployeeID)
	}
	if updated.AccountStatus != "disabled" {
		t.Fatalf("status not updated: %+v", updated)
	}
}

func TestListPageCategoryFilter(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	for i, acctType := range []string{"admin", "staff", "staff"} {
		in := validInput()
		in.AccountID = "ACCT-00" + string(rune('1'+i))
		in.AccountType = acctType
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	result, err := svc.ListPage(context.Background(), listing.NewPageRequest(1, 10), listing.Filter{Category: "staff"})
	if err != nil {
		t.Fatalf("list page failed: %v", err)
	}
	if result.TotalRecords != 2 {
		t.Fatalf("expected 2 staff accounts, got %d", result.TotalRecords)
	}
}

func TestDeleteMissingAccount(t *testing.T) {
	svc := NewService(newFakeStore())
	ok, err := svc.Delete(context.Background(), "ACCT-404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected success=false")
	}
}
