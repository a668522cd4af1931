package payslipshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paydesk/internal/domain/payslips"
	"paydesk/internal/transport/http/api"
	"paydesk/internal/transport/http/middleware"
	"paydesk/internal/transport/http/shared"
)

type payload struct {
	EmployeeID     string  `json:"employee_id"`
	BankAccount    string  `json:"bank_account"`
	TotalSalary    float64 `json:"total_salary"`
	PersonInCharge string  `json:"person_in_charge"`
	CutoffDate     string  `json:"cutoff_date"`
	DateOfPayment  string  `json:"date_of_payment"`
	PaymentStatus  string  `json:"payment_status"`
}

func (p payload) input() payslips.Input {
	return payslips.Input{
		EmployeeID:     p.EmployeeID,
		BankAccount:    p.BankAccount,
		TotalSalary:    p.TotalSalary,
		PersonInCharge: p.PersonInCharge,
		CutoffDate:     p.CutoffDate,
		DateOfPayment:  p.DateOfPayment,
		PaymentStatus:  p.PaymentStatus,
	}
}

type Handler struct {
	service         *payslips.Service
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(service *payslips.Service, defaultPageSize, maxPageSize int) *Handler {
	return &Handler{service: service, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/detailed", h.handleListDetailed)
		r.Route("/{payslipNo}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Get("/detail", h.handleGetDetail)
			r.Get("/pdf", h.handlePDF)
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

func (h *Handler) handleListDetailed(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	params := shared.ParseListParams(r, h.defaultPageSize, h.maxPageSize)

	if params.Paginated {
		result, err := h.service.ListDetailedPage(r.Context(), params.Page, params.Filter)
		if err != nil {
			api.FailErr(w, err, reqID)
			return
		}
		api.Success(w, result, reqID)
		return
	}

	out, err := h.service.ListDetailed(r.Context())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	p, err := h.service.Get(r.Context(), chi.URLParam(r, "payslipNo"))
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if p == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "Payslip not found.", reqID)
		return
	}
	api.Success(w, p, reqID)
}

func (h *Handler) handleGetDetail(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	d, err := h.service.GetDetail(r.Context(), chi.URLParam(r, "payslipNo"))
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if d == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "Payslip not found.", reqID)
		return
	}
	api.Success(w, d, reqID)
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	path, err := h.service.GeneratePDF(r.Context(), chi.URLParam(r, "payslipNo"))
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	created, err := h.service.Create(r.Context(), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "payslipNo"), p.input())
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	payslipNo := chi.URLParam(r, "payslipNo")
	ok, err := h.service.Delete(r.Context(), payslipNo)
	if err != nil {
		api.FailErr(w, err, reqID)
		return
	}
	if !ok {
		api.Fail(w, http.StatusNotFound, "not_found", "Payslip not found.", reqID)
		return
	}
	api.Success(w, map[string]string{"payslip_no": payslipNo}, reqID)
}
