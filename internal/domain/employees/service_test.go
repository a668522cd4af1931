package employees

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"paydesk/internal/domain/listing"
	"paydesk/internal/platform/apperr"
	"paydesk/internal/platform/db"
)

type fakeStore struct {
	employees map[string]Employee
	// insertRejects forces the next n inserts to fail with a duplicate
	// key, simulating a concurrent creator winning the generated ID.
	insertRejects int
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: make(map[string]Employee)}
}

func (f *fakeStore) sortedIDs() []string {
	ids := make([]string, 0, len(f.employees))
	for id := range f.employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *fakeStore) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	for _, id := range f.sortedIDs() {
		out = append(out, f.employees[id])
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, employeeID string) (*Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return nil, nil
	}
	return &emp, nil
}

func (f *fakeStore) Count(ctx context.Context, filter listing.Filter) (int, error) {
	matched, _ := f.match(filter)
	return len(matched), nil
}

func (f *fakeStore) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]Employee, error) {
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

func (f *fakeStore) match(filter listing.Filter) ([]Employee, error) {
	all, _ := f.List(context.Background())
	if filter.IsEmpty() {
		return all, nil
	}
	term := strings.ToLower(filter.Term)
	var out []Employee
	for _, emp := range all {
		haystack := strings.ToLower(emp.EmployeeID + " " + emp.FirstName + " " + emp.LastName + " " + emp.Email)
		if strings.Contains(haystack, term) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeStore) LastEmployeeID(ctx context.Context, scopePrefix string) (string, error) {
	last := ""
	for _, id := range f.sortedIDs() {
		if strings.HasPrefix(id, scopePrefix) {
			last = id
		}
	}
	return last, nil
}

func (f *fakeStore) Insert(ctx context.Context, emp Employee) error {
	if f.insertRejects > 0 {
		f.insertRejects--
		return db.ErrDuplicateKey
	}
	if _, ok := f.employees[emp.EmployeeID]; ok {
		return db.ErrDuplicateKey
	}
	f.employees[emp.EmployeeID] = emp
	return nil
}

func (f *fakeStore) Update(ctx context.Context, emp Employee) (int64, error) {
	if _, ok := f.employees[emp.EmployeeID]; !ok {
		return 0, nil
	}
	f.employees[emp.EmployeeID] = emp
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, employeeID string) (int64, error) {
	if _, ok := f.employees[employeeID]; !ok {
		return 0, nil
	}
	delete(f.employees, employeeID)
	return 1, nil
}

func serviceAt(store StoreAPI, year string) *Service {
	svc := NewService(store)
	svc.now = func() time.Time {
		t, _ := time.Parse("2006", year)
		return t
	}
	return svc
}

func validInput() Input {
	return Input{
		FirstName:     "Ben",
		LastName:      "Cruz",
		ContactNumber: "09171234567",
		Email:         "ben.cruz@example.com",
	}
}

func TestCreateAssignsFirstIDOfYear(t *testing.T) {
	svc := serviceAt(newFakeStore(), "2024")

	emp, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.EmployeeID != "202400001" {
		t.Fatalf("expected 202400001, got %s", emp.EmployeeID)
	}

	second, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.EmployeeID != "202400002" {
		t.Fatalf("expected 202400002, got %s", second.EmployeeID)
	}
}

func TestCreateScopesByYear(t *testing.T) {
	store := newFakeStore()

	if _, err := serviceAt(store, "2024").Create(context.Background(), validInput()); err != nil {
		t.Fatalf("2024 create failed: %v", err)
	}
	emp, err := serviceAt(store, "2025").Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("2025 create failed: %v", err)
	}
	if emp.EmployeeID != "202500001" {
		t.Fatalf("new year must restart the counter, got %s", emp.EmployeeID)
	}
}

func TestCreateRetriesOnceOnDuplicate(t *testing.T) {
	store := newFakeStore()
	store.insertRejects = 1
	svc := serviceAt(store, "2024")

	emp, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create should succeed after one retry: %v", err)
	}
	if emp.EmployeeID == "" {
		t.Fatal("expected assigned employee ID")
	}
}

func TestCreateConflictAfterRetryExhausted(t *testing.T) {
	store := newFakeStore()
	store.insertRejects = 2
	svc := serviceAt(store, "2024")

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected conflict")
	}
	if appErr := apperr.From(err); appErr.Code != "conflict" {
		t.Fatalf("expected conflict, got %s", appErr.Code)
	}
}

func TestCreateCapacityExceeded(t *testing.T) {
	store := newFakeStore()
	store.employees["202499999"] = Employee{EmployeeID: "202499999"}
	svc := serviceAt(store, "2024")

	_, err := svc.Create(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected capacity error")
	}
	appErr := apperr.From(err)
	if appErr.Code != "capacity_exceeded" {
		t.Fatalf("expected capacity_exceeded, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "2024") {
		t.Fatalf("message should name the exhausted year: %q", appErr.Message)
	}
}

func TestCreateValidationListsAllIssues(t *testing.T) {
	svc := serviceAt(newFakeStore(), "2024")

	_, err := svc.Create(context.Background(), Input{FirstName: "Only"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := apperr.From(err)
	if appErr.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", appErr.Code)
	}
	if len(appErr.Fields) != 3 {
		t.Fatalf("expected 3 issues, got %+v", appErr.Fields)
	}
}

func TestCreateStripsMarkup(t *testing.T) {
	store := newFakeStore()
	svc := serviceAt(store, "2024")

	in := validInput()
	in.FirstName = " <b>Ben</b> "
	emp, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.FirstName != "Ben" {
		t.Fatalf("expected scrubbed first name, got %q", emp.FirstName)
	}
}

func TestRoundTrip(t *testing.T) {
	svc := serviceAt(newFakeStore(), "2024")

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	fetched, err := svc.Get(context.Background(), created.EmployeeID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched == nil || *fetched != *created {
		t.Fatalf("round trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	svc := serviceAt(newFakeStore(), "2024")
	emp, err := svc.Get(context.Background(), "202400042")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp != nil {
		t.Fatalf("expected nil for missing employee, got %+v", emp)
	}
}

func TestUpdateMissingEmployee(t *testing.T) {
	svc := serviceAt(newFakeStore(), "2024")
	_, err := svc.Update(context.Background(), "202400042", validInput())
	if appErr := apperr.From(err); appErr.Code != "not_found" {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestListPageFilterNoMatch(t *testing.T) {
	store := newFakeStore()
	svc := serviceAt(store, "2024")
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	result, err := svc.ListPage(context.Background(), listing.NewPageRequest(1, 10), listing.Filter{Term: "zz-nomatch-zz"})
	if err != nil {
		t.Fatalf("list page failed: %v", err)
	}
	if result.TotalRecords != 0 || result.TotalPages != 0 || len(result.Items) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
