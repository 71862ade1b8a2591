// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/service"
)

const (
	errorCodeValidation             = "VALIDATION_ERROR"
	errorCodeNoInvoices             = "NO_INVOICES"
	errorCodeAIProvider             = "AI_PROVIDER_ERROR"
	errorCodeWorkflowAlreadyRunning = "WORKFLOW_ALREADY_RUNNING"
	errorCodeWorkflowNotRunning     = "WORKFLOW_NOT_RUNNING"
	errorCodeWorkflowRunNotFound    = "WORKFLOW_RUN_NOT_FOUND"
)

const (
	errorMessageWorkflowAlreadyRunning = "Workflow is already running"
	errorMessageWorkflowNotRunning     = "Workflow is not running"
	errorMessageWorkflowRunNotFound    = "Workflow run not found"
	errorMessageNoInvoices             = "No invoices loaded"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// StatusResponse acknowledges a state-changing call that returns no entity.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}
