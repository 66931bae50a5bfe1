package paysliphandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"slipgen/internal/domain/payslip"
	"slipgen/internal/platform/metrics"
	"slipgen/internal/transport/http/api"
	"slipgen/internal/transport/http/middleware"
	"slipgen/internal/transport/http/shared"
)

// IdempotencyAPI is the replay store guarding double-submitted saves.
type IdempotencyAPI interface {
	Check(ctx context.Context, ownerID, endpoint, key, requestHash string) (json.RawMessage, bool, error)
	Save(ctx context.Context, ownerID, endpoint, key, requestHash string, response json.RawMessage) error
}

type Handler struct {
	Service         *payslip.Service
	Metrics         *metrics.Collector
	Idempotency     IdempotencyAPI
	DefaultCurrency string
}

func NewHandler(service *payslip.Service, collector *metrics.Collector, idempotency IdempotencyAPI, defaultCurrency string) *Handler {
	return &Handler{Service: service, Metrics: collector, Idempotency: idempotency, DefaultCurrency: defaultCurrency}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.Use(middleware.RequireOwner)
		r.Post("/preview", h.handlePreview)
		r.Post("/", h.handleSave)
		r.Get("/", h.handleList)
		r.Get("/history", h.handleHistory)
		r.Get("/{payslipID}", h.handleGet)
		r.Patch("/{payslipID}", h.handleUpdate)
		r.Delete("/{payslipID}", h.handleDelete)
		r.Get("/{payslipID}/download", h.handleDownload)
	})
	r.With(middleware.RequireOwner).Get("/pay-periods", h.handlePayPeriod)
}

type deductionPayload struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Value  float64  `json:"value"`
	Amount *float64 `json:"amount,omitempty"`
}

type draftPayload struct {
	EmployeeName   string                 `json:"employeeName"`
	PayrollNumber  string                 `json:"payrollNumber"`
	CompanyName    string                 `json:"companyName"`
	PayPeriodStart string                 `json:"payPeriodStart"`
	PayPeriodEnd   string                 `json:"payPeriodEnd"`
	Period         string                 `json:"period"`
	PaymentEntries []payslip.PaymentEntry `json:"paymentEntries"`
	Deductions     []deductionPayload     `json:"deductions"`
	YTDOverride    *payslip.Figures       `json:"ytdOverride,omitempty"`
	YTDRecordIDs   []string               `json:"ytdRecordIds,omitempty"`
	ChildProfileID string                 `json:"childProfileId,omitempty"`
	Currency       string                 `json:"currency,omitempty"`
}

// toData converts the wire payload into a draft. Deductions arriving with a
// frozen amount keep it; ones without are priced once against the draft's
// gross pay, which is the create-time snapshot behavior.
func (p draftPayload) toData() (*payslip.Data, error) {
	start, err := shared.ParseDate(p.PayPeriodStart)
	if err != nil {
		return nil, fmt.Errorf("payPeriodStart: %w", err)
	}
	end, err := shared.ParseDate(p.PayPeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("payPeriodEnd: %w", err)
	}

	data := &payslip.Data{
		EmployeeName:   p.EmployeeName,
		PayrollNumber:  p.PayrollNumber,
		CompanyName:    p.CompanyName,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		Period:         p.Period,
		PaymentEntries: p.PaymentEntries,
		YTDOverride:    p.YTDOverride,
	}
	payslip.NormalizeEntries(data.PaymentEntries)
	data.GrossPay = payslip.GrossPay(data.PaymentEntries)

	for _, d := range p.Deductions {
		if d.Amount != nil {
			data.Deductions = append(data.Deductions, payslip.Deduction{
				ID: d.ID, Name: d.Name, Kind: d.Kind, Value: d.Value, Amount: *d.Amount,
			})
			continue
		}
		data.Deductions = append(data.Deductions, payslip.NewDeduction(payslip.DeductionInput{
			Name: d.Name, Kind: d.Kind, Value: d.Value,
		}, data.GrossPay))
	}
	return data, nil
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	data, err := payload.toData()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	result, err := h.Service.Preview(r.Context(), owner.OwnerID, data, payload.YTDRecordIDs)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "preview_failed", "failed to compute preview", reqID)
		return
	}
	api.Success(w, result, reqID)
}

// handleSave persists a validated draft as an immutable record. Saved
// records live forever, so a double-submitted save is guarded by an optional
// Idempotency-Key: a retry with the same key and body replays the original
// response instead of creating a second payslip.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read request payload", reqID)
		return
	}
	var payload draftPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	idemKey := r.Header.Get("Idempotency-Key")
	requestHash := middleware.RequestHash(body)
	if idemKey != "" && h.Idempotency != nil {
		stored, found, err := h.Idempotency.Check(r.Context(), owner.OwnerID, "payslips.save", idemKey, requestHash)
		if errors.Is(err, middleware.ErrIdempotencyConflict) {
			api.Fail(w, http.StatusConflict, "idempotency_conflict", "Idempotency-Key was already used with a different payload", reqID)
			return
		}
		if err != nil {
			slog.Warn("idempotency check failed", "err", err, "requestId", reqID)
		}
		if found {
			api.Success(w, stored, reqID)
			return
		}
	}

	data, err := payload.toData()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}

	currency := payload.Currency
	if currency == "" {
		currency = h.DefaultCurrency
	}

	record, err := h.Service.Save(r.Context(), owner.OwnerID, payload.ChildProfileID, currency, data)
	var verr *payslip.ValidationError
	if errors.As(err, &verr) {
		shared.FailValidation(w, reqID, verr)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_save_failed", "failed to save payslip", reqID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordSave()
	}
	if idemKey != "" && h.Idempotency != nil {
		if encoded, err := json.Marshal(record); err == nil {
			if err := h.Idempotency.Save(r.Context(), owner.OwnerID, "payslips.save", idemKey, requestHash, encoded); err != nil {
				slog.Warn("idempotency save failed", "err", err, "requestId", reqID)
			}
		}
	}
	api.Created(w, record, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 20, 100)
	records, total, err := h.Service.List(r.Context(), owner.OwnerID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_list_failed", "failed to list payslips", reqID)
		return
	}
	api.Success(w, map[string]any{"items": records, "page": page.Meta(total)}, reqID)
}

// handleHistory lists an employee's saved payslips as year-to-date
// candidates. A store failure degrades to an empty candidate list so the
// authoring flow keeps working without history.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	employee := strings.TrimSpace(r.URL.Query().Get("employee"))
	if employee == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "employee query parameter is required", reqID)
		return
	}

	records, err := h.Service.History(r.Context(), owner.OwnerID, employee)
	if err != nil {
		slog.Warn("history fetch failed", "err", err, "requestId", reqID)
		api.Success(w, []payslip.Record{}, reqID)
		return
	}
	if records == nil {
		records = []payslip.Record{}
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	record, err := h.Service.Get(r.Context(), owner.OwnerID, chi.URLParam(r, "payslipID"))
	if errors.Is(err, payslip.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "payslip_not_found", "payslip not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_get_failed", "failed to load payslip", reqID)
		return
	}

	// Editing reloads a record into a fresh draft; saved records themselves
	// stay immutable.
	if r.URL.Query().Get("as") == "draft" {
		api.Success(w, payslip.Draft(record), reqID)
		return
	}
	api.Success(w, record, reqID)
}

type updatePayload struct {
	EmployeeName  *string `json:"employeeName,omitempty"`
	CompanyName   *string `json:"companyName,omitempty"`
	PayrollNumber *string `json:"payrollNumber,omitempty"`
	Currency      *string `json:"currency,omitempty"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	err := h.Service.Update(r.Context(), owner.OwnerID, chi.URLParam(r, "payslipID"), payslip.RecordPatch{
		EmployeeName:  payload.EmployeeName,
		CompanyName:   payload.CompanyName,
		PayrollNumber: payload.PayrollNumber,
		Currency:      payload.Currency,
	})
	if errors.Is(err, payslip.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "payslip_not_found", "payslip not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_update_failed", "failed to update payslip", reqID)
		return
	}
	api.Success(w, map[string]any{"updated": true}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	err := h.Service.Delete(r.Context(), owner.OwnerID, chi.URLParam(r, "payslipID"))
	if errors.Is(err, payslip.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "payslip_not_found", "payslip not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_delete_failed", "failed to delete payslip", reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	currency := r.URL.Query().Get("currency")
	pdfBytes, err := h.Service.GeneratePDF(r.Context(), owner.OwnerID, chi.URLParam(r, "payslipID"), currency)
	if errors.Is(err, payslip.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "payslip_not_found", "payslip not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_export_failed", "failed to generate payslip PDF", reqID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordExport()
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", chi.URLParam(r, "payslipID")))
	_, _ = w.Write(pdfBytes)
}

func (h *Handler) handlePayPeriod(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	reference, err := shared.ParseDate(r.URL.Query().Get("reference"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "reference must be a valid date", reqID)
		return
	}
	if reference.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "reference query parameter is required", reqID)
		return
	}

	if preset := r.URL.Query().Get("preset"); preset != "" {
		period, err := payslip.PeriodPreset(preset, reference)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
			return
		}
		api.Success(w, period, reqID)
		return
	}

	period, err := payslip.PeriodFor(r.URL.Query().Get("frequency"), reference)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
		return
	}
	api.Success(w, period, reqID)
}
