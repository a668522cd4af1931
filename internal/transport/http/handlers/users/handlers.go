package usershandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/users"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type payload struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func (p payload) input() users.Input {
	return users.Input{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Username:  p.Username,
		Password:  p.Password,
	}
}

type Handler struct {
	service         *users.Service
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(service *users.Service, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{service: service, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{userID}", func(r chi.Router) {
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

	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "User not found.", reqID)
		return
	}
	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if user == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "User not found.", reqID)
		return
	}
	api.Success(w, user, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	user, err := h.service.Create(r.Context(), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Created(w, user, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "User not found.", reqID)
		return
	}
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	user, err := h.service.Update(r.Context(), id, p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, user, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "User not found.", reqID)
		return
	}
	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "User not found.", reqID)
		return
	}
	api.Success(w, map[string]int{"id": id}, reqID)
}
