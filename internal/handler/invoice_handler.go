package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/middleware"
	"github.com/paymind/paymind-server/internal/models"
)

// maxUploadSize caps an uploaded invoice CSV at 10 MB.
const maxUploadSize = 10 << 20

// IngestInvoicesRequest carries the rows to classify and upsert.
type IngestInvoicesRequest struct {
	Invoices []models.RawInvoiceRow `json:"invoices"`
}

// InvoiceIngestResponse reports the invoices written by one ingestion call.
type InvoiceIngestResponse struct {
	Invoices []*models.Invoice `json:"invoices"`
	Count    int               `json:"count"`
}

// ListInvoices handles GET /api/invoices.
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.Invoice.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list invoices",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve invoices")
		return
	}

	if invoices == nil {
		invoices = []*models.Invoice{}
	}
	render.JSON(w, r, invoices)
}

// IngestInvoices handles POST /api/invoices. The "invoices" field must be a
// JSON array of invoice rows; rows are upserted by business invoice ID.
func (h *Handler) IngestInvoices(w http.ResponseWriter, r *http.Request) {
	var req IngestInvoicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Invoices == nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "\"invoices\" must be a JSON array of invoice rows")
		return
	}

	invoices, err := h.service.Invoice.ProcessRows(r.Context(), req.Invoices)
	if err != nil {
		h.logger.Error("Failed to ingest invoices",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to ingest invoices")
		return
	}

	render.JSON(w, r, InvoiceIngestResponse{
		Invoices: invoices,
		Count:    len(invoices),
	})
}

// UploadInvoicesCSV handles POST /api/invoices/upload. The CSV arrives as the
// "file" part of a multipart form.
func (h *Handler) UploadInvoicesCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Request must be a multipart form with a \"file\" part")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Missing \"file\" part in multipart form")
		return
	}
	defer file.Close()

	rows, err := h.service.Invoice.ParseCSV(file)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, err.Error())
		return
	}

	invoices, err := h.service.Invoice.ProcessRows(r.Context(), rows)
	if err != nil {
		h.logger.Error("Failed to ingest uploaded invoices",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to ingest invoices")
		return
	}

	render.JSON(w, r, InvoiceIngestResponse{
		Invoices: invoices,
		Count:    len(invoices),
	})
}

// ResetInvoices handles DELETE /api/invoices. It removes all invoices and
// their dependent messages and analyses.
func (h *Handler) ResetInvoices(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Invoice.ResetAll(r.Context()); err != nil {
		h.logger.Error("Failed to reset invoices",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to reset invoices")
		return
	}

	render.JSON(w, r, StatusResponse{
		Status:  "reset",
		Message: "All invoices removed",
	})
}
