package employeeshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/employees"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type payload struct {
	FirstName     string `json:"firstname"`
	LastName      string `json:"lastname"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

func (p payload) input() employees.Input {
	return employees.Input{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		ContactNumber: p.ContactNumber,
		Email:         p.Email,
	}
}

type Handler struct {
	service         *employees.Service
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(service *employees.Service, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{service: service, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
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

	emp, err := h.service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if emp == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "Employee not found.", reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.service.Create(r.Context(), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Created(w, emp, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	emp, err := h.service.Update(r.Context(), chi.URLParam(r, "employeeID"), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	employeeID := chi.URLParam(r, "employeeID")
	ok, err := h.service.Delete(r.Context(), employeeID)
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "Employee not found.", reqID)
		return
	}
	api.Success(w, map[string]string{"employee_id": employeeID}, reqID)
}
