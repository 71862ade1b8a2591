package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/middleware"
	"github.com/paymind/paymind-server/internal/models"
	"github.com/paymind/paymind-server/internal/repository"
	"github.com/paymind/paymind-server/internal/service"
)

// runSnapshotEmpty reports whether the posted body carried no run content
// beyond a name.
func runSnapshotEmpty(s *service.RunSnapshot) bool {
	return s.Status == "" &&
		s.Stats == (service.AggregateStats{}) &&
		s.MessagesGenerated == 0 &&
		s.AIProvider == "" &&
		s.AIModel == "" &&
		s.AnalysisReport == "" &&
		len(s.GeneratedMessages) == 0 &&
		s.ResponseAnalysis == nil &&
		len(s.Invoices) == 0 &&
		len(s.Logs) == 0
}

// WorkflowRunResponse is one archived run with its stored JSON blobs expanded
// back into structured fields.
type WorkflowRunResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Status            string          `json:"status"`
	TotalInvoices     int             `json:"totalInvoices"`
	OverdueInvoices   int             `json:"overdueInvoices"`
	TotalCredits      decimal.Decimal `json:"totalCredits"`
	OverdueAmount     decimal.Decimal `json:"overdueAmount"`
	MessagesGenerated int             `json:"messagesGenerated"`
	AIProvider        *string         `json:"aiProvider,omitempty"`
	AIModel           *string         `json:"aiModel,omitempty"`
	AnalysisReport    *string         `json:"analysisReport,omitempty"`
	GeneratedMessages json.RawMessage `json:"generatedMessages,omitempty"`
	ResponseAnalysis  json.RawMessage `json:"responseAnalysis,omitempty"`
	InvoicesSnapshot  json.RawMessage `json:"invoicesSnapshot,omitempty"`
	StartedAt         time.Time       `json:"startedAt"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`

	Logs []*models.WorkflowLog `json:"logs"`
}

func newWorkflowRunResponse(run *models.WorkflowRun) *WorkflowRunResponse {
	resp := &WorkflowRunResponse{
		ID:                run.ID,
		Name:              run.Name,
		Status:            run.Status,
		TotalInvoices:     run.TotalInvoices,
		OverdueInvoices:   run.OverdueInvoices,
		TotalCredits:      run.TotalCredits,
		OverdueAmount:     run.OverdueAmount,
		MessagesGenerated: run.MessagesGenerated,
		StartedAt:         run.StartedAt,
		Logs:              run.Logs,
	}

	if run.AIProvider.Valid {
		resp.AIProvider = &run.AIProvider.String
	}
	if run.AIModel.Valid {
		resp.AIModel = &run.AIModel.String
	}
	if run.AnalysisReport.Valid {
		resp.AnalysisReport = &run.AnalysisReport.String
	}
	if run.GeneratedMessages.Valid {
		resp.GeneratedMessages = json.RawMessage(run.GeneratedMessages.String)
	}
	if run.ResponseAnalysis.Valid {
		resp.ResponseAnalysis = json.RawMessage(run.ResponseAnalysis.String)
	}
	if run.InvoicesSnapshot.Valid {
		resp.InvoicesSnapshot = json.RawMessage(run.InvoicesSnapshot.String)
	}
	if run.CompletedAt.Valid {
		resp.CompletedAt = &run.CompletedAt.Time
	}
	if resp.Logs == nil {
		resp.Logs = []*models.WorkflowLog{}
	}

	return resp
}

// SaveWorkflowRun handles POST /api/workflow-runs. The client may post a full
// run snapshot to archive as-is; a body carrying only a name (or no body at
// all) freezes the current workflow state instead.
func (h *Handler) SaveWorkflowRun(w http.ResponseWriter, r *http.Request) {
	var req service.RunSnapshot
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Invalid JSON request body")
		return
	}

	snapshot := &req
	if runSnapshotEmpty(snapshot) {
		snapshot = h.service.Workflow.Snapshot(req.Name)
	}

	run, err := h.service.History.Save(r.Context(), snapshot)
	if err != nil {
		h.logger.Error("Failed to save workflow run",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to save workflow run")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newWorkflowRunResponse(run))
}

// ListWorkflowRuns handles GET /api/workflow-runs, newest first.
func (h *Handler) ListWorkflowRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.service.History.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list workflow runs",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve workflow runs")
		return
	}

	responses := make([]*WorkflowRunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, newWorkflowRunResponse(run))
	}
	render.JSON(w, r, responses)
}

// GetWorkflowRun handles GET /api/workflow-runs/{id}.
func (h *Handler) GetWorkflowRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.service.History.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrWorkflowRunNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeWorkflowRunNotFound, errorMessageWorkflowRunNotFound)
			return
		}

		h.logger.Error("Failed to get workflow run",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve workflow run")
		return
	}

	render.JSON(w, r, newWorkflowRunResponse(run))
}

// DeleteWorkflowRun handles DELETE /api/workflow-runs/{id}.
func (h *Handler) DeleteWorkflowRun(w http.ResponseWriter, r *http.Request) {
	err := h.service.History.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrWorkflowRunNotFound) {
			h.sendError(w, r, http.StatusNotFound, errorCodeWorkflowRunNotFound, errorMessageWorkflowRunNotFound)
			return
		}

		h.logger.Error("Failed to delete workflow run",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to delete workflow run")
		return
	}

	render.JSON(w, r, StatusResponse{
		Status:  "deleted",
		Message: "Workflow run deleted",
	})
}

// DeleteAllWorkflowRuns handles DELETE /api/workflow-runs.
func (h *Handler) DeleteAllWorkflowRuns(w http.ResponseWriter, r *http.Request) {
	if err := h.service.History.DeleteAll(r.Context()); err != nil {
		h.logger.Error("Failed to delete workflow runs",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to delete workflow runs")
		return
	}

	render.JSON(w, r, StatusResponse{
		Status:  "deleted",
		Message: "All workflow runs deleted",
	})
}
