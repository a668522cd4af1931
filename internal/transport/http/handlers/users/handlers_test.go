package usershandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/listing"
	"paydesk/internal/domain/users"
)

type fakeStore struct {
	users  map[int]users.User
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int]users.User), nextID: 1}
}

func (f *fakeStore) List(ctx context.Context) ([]users.User, error) {
	ids := make([]int, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]users.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.users[id])
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id int) (*users.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeStore) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Count(ctx context.Context, filter listing.Filter) (int, error) {
	all, _ := f.List(ctx)
	return len(all), nil
}

func (f *fakeStore) Page(ctx context.Context, filter listing.Filter, limit, offset int) ([]users.User, error) {
	all, _ := f.List(ctx)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeStore) Insert(ctx context.Context, u users.User) (int, error) {
	id := f.nextID
	f.nextID++
	u.ID = id
	f.users[id] = u
	return id, nil
}

func (f *fakeStore) Update(ctx context.Context, u users.User) (int64, error) {
	if _, ok := f.users[u.ID]; !ok {
		return 0, nil
	}
	f.users[u.ID] = u
	return 1, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func newTestRouter(store *fakeStore) http.Handler {
	router := chi.NewRouter()
	NewHandler(users.NewService(store), 10, 100).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v\n%s", err, rec.Body.String())
	}
	return rec, envelope
}

func TestCreateAndGet(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, envelope := doJSON(t, router, http.MethodPost, "/users/",
		`{"firstname":"Ben","lastname":"Cruz","username":"bcruz","password":"hunter22"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]any)
	if data["username"] != "bcruz" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if _, leaked := data["password"]; leaked {
		t.Fatal("password must not be serialized")
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/users/1/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if envelope["success"] != true {
		t.Fatalf("expected success envelope, got %+v", envelope)
	}
}

func TestCreateValidationError(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, envelope := doJSON(t, router, http.MethodPost, "/users/", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errObj := envelope["error"].(map[string]any)
	if errObj["code"] != "validation_error" {
		t.Fatalf("expected validation_error, got %+v", errObj)
	}
	if fields := errObj["fields"].([]any); len(fields) != 4 {
		t.Fatalf("expected 4 field issues, got %+v", fields)
	}
}

func TestDuplicateUsernameConflicts(t *testing.T) {
	router := newTestRouter(newFakeStore())

	body := `{"firstname":"Ben","lastname":"Cruz","username":"bcruz","password":"hunter22"}`
	if rec, _ := doJSON(t, router, http.MethodPost, "/users/", body); rec.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", rec.Code)
	}
	rec, envelope := doJSON(t, router, http.MethodPost, "/users/", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	errObj := envelope["error"].(map[string]any)
	if errObj["code"] != "conflict" {
		t.Fatalf("expected conflict, got %+v", errObj)
	}
}

func TestGetMissingUser(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, envelope := doJSON(t, router, http.MethodGet, "/users/42/", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	errObj := envelope["error"].(map[string]any)
	if errObj["code"] != "not_found" {
		t.Fatalf("expected not_found, got %+v", errObj)
	}
}

func TestListDispatchesOnPagination(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	for i := 0; i < 12; i++ {
		body := `{"firstname":"Ben","lastname":"Cruz","username":"user` + string(rune('a'+i)) + `","password":"hunter22"}`
		if rec, _ := doJSON(t, router, http.MethodPost, "/users/", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed create failed: %d", rec.Code)
		}
	}

	rec, envelope := doJSON(t, router, http.MethodGet, "/users/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if all := envelope["data"].([]any); len(all) != 12 {
		t.Fatalf("expected full collection of 12, got %d", len(all))
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/users/?page=2&records_per_page=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := envelope["data"].(map[string]any)
	if data["totalRecords"] != float64(12) || data["totalPages"] != float64(3) {
		t.Fatalf("unexpected page metadata: %+v", data)
	}
	if items := data["items"].([]any); len(items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(items))
	}
}

func TestDeleteMissingUser(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, _ := doJSON(t, router, http.MethodDelete, "/users/42/", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
