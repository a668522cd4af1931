package accountshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/accounts"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type payload struct {
	AccountID     string `json:"account_id"`
	EmployeeID    string `json:"employee_id"`
	AccountEmail  string `json:"account_email"`
	AccountPass   string `json:"account_password"`
	AccountType   string `json:"account_type"`
	AccountStatus string `json:"account_status"`
}

func (p payload) input() accounts.Input {
	return accounts.Input{
		AccountID:     p.AccountID,
		EmployeeID:    p.EmployeeID,
		AccountEmail:  p.AccountEmail,
		AccountPass:   p.AccountPass,
		AccountType:   p.AccountType,
		AccountStatus: p.AccountStatus,
	}
}

type Handler struct {
	service         *accounts.Service
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(service *accounts.Service, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{service: service, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{accountID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	params := shared.ParseListParams(r, h.defaultPageSize, h.maxPageSize)

	if params.Paginated {
		result, err := h.service.ListPage(r.Context(), params.Page, params.Filter)
		if err != nil {
			api.FailErr(w, err, reqID)
			return
		}
		api.Success(w, result, reqID)
		return
	}

	out, err := h.service.List(r.Context())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	account, err := h.service.Get(r.Context(), chi.URLParam(r, "accountID"))
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if account == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "Account not found.", reqID)
		return
	}
	api.Success(w, account, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	account, err := h.service.Create(r.Context(), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Created(w, account, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	account, err := h.service.Update(r.Context(), chi.URLParam(r, "accountID"), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, account, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	accountID := chi.URLParam(r, "accountID")
	ok, err := h.service.Delete(r.Context(), accountID)
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "Account not found.", reqID)
		return
	}
	api.Success(w, map[string]string{"account_id": accountID}, reqID)
}
