package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/middleware"
	"github.com/paymind/paymind-server/internal/workflow"
)

// StartWorkflow handles POST /api/workflow/start. The run continues in the
// background after this request returns.
func (h *Handler) StartWorkflow(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAgentRequest(w, r)
	if !ok {
		return
	}
	opts, ok := h.agentOptions(w, r, req)
	if !ok {
		return
	}

	err := h.service.Workflow.Start(r.Context(), opts)
	if err != nil {
		if errors.Is(err, workflow.ErrAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeWorkflowAlreadyRunning, errorMessageWorkflowAlreadyRunning)
			return
		}

		h.logger.Error("Failed to start workflow",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to start workflow")
		return
	}

	render.JSON(w, r, StatusResponse{
		Status:  "started",
		Message: "Workflow started successfully",
	})
}

// StopWorkflow handles POST /api/workflow/stop.
func (h *Handler) StopWorkflow(w http.ResponseWriter, r *http.Request) {
	err := h.service.Workflow.Stop()
	if err != nil {
		if errors.Is(err, workflow.ErrNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeWorkflowNotRunning, errorMessageWorkflowNotRunning)
			return
		}

		h.logger.Error("Failed to stop workflow",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to stop workflow")
		return
	}

	render.JSON(w, r, StatusResponse{
		Status:  "stopped",
		Message: "Workflow stopped successfully",
	})
}

// GetWorkflowStatus handles GET /api/workflow/status. The snapshot includes
// step states, agent states, and the newest-first log ring.
func (h *Handler) GetWorkflowStatus(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Workflow.Status())
}
