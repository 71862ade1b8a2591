package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/paymind/paymind-server/internal/ai"
	"github.com/paymind/paymind-server/internal/middleware"
	"github.com/paymind/paymind-server/internal/service"
)

// AgentRequest carries the provider selection for one agent call plus the
// per-agent inputs. Every field is optional except customerMessage for the
// response handler; empty provider fields fall back to server configuration.
type AgentRequest struct {
	Provider        string   `json:"provider"`
	Model           string   `json:"model"`
	APIKey          string   `json:"apiKey"`
	Language        string   `json:"language"`
	InvoiceIDs      []string `json:"invoiceIds"`
	InvoiceID       string   `json:"invoiceId"`
	CustomerMessage string   `json:"customerMessage"`
}

// decodeAgentRequest reads an optional JSON body. A missing body selects all
// server defaults.
func (h *Handler) decodeAgentRequest(w http.ResponseWriter, r *http.Request) (*AgentRequest, bool) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Invalid JSON request body")
		return nil, false
	}
	return &req, true
}

func (h *Handler) agentOptions(w http.ResponseWriter, r *http.Request, req *AgentRequest) (service.AgentOptions, bool) {
	opts := service.AgentOptions{
		Model:    req.Model,
		APIKey:   req.APIKey,
		Language: req.Language,
	}

	if req.Provider != "" {
		provider, err := ai.ParseProvider(req.Provider)
		if err != nil {
			h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Unknown provider")
			return service.AgentOptions{}, false
		}
		opts.Provider = provider
	}

	return opts, true
}

// sendAgentError maps an agent call failure to a response. Provider errors
// surface verbatim so the caller sees what the upstream API reported.
func (h *Handler) sendAgentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNoInvoices):
		h.sendError(w, r, http.StatusBadRequest, errorCodeNoInvoices, errorMessageNoInvoices)
	case errors.Is(err, service.ErrCustomerMessageRequired):
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "customerMessage is required")
	default:
		h.logger.Error("Agent call failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, errorCodeAIProvider, err.Error())
	}
}

// RunPaymentMonitor handles POST /api/agents/payment-monitor.
func (h *Handler) RunPaymentMonitor(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAgentRequest(w, r)
	if !ok {
		return
	}
	opts, ok := h.agentOptions(w, r, req)
	if !ok {
		return
	}

	result, err := h.service.Agent.RunPaymentMonitor(r.Context(), opts)
	if err != nil {
		h.sendAgentError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}

// RunReminderGenerator handles POST /api/agents/reminder-generator. With no
// invoiceIds the eligible overdue invoices are selected server-side.
func (h *Handler) RunReminderGenerator(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAgentRequest(w, r)
	if !ok {
		return
	}
	opts, ok := h.agentOptions(w, r, req)
	if !ok {
		return
	}

	messages, err := h.service.Agent.RunReminderGenerator(r.Context(), opts, req.InvoiceIDs)
	if err != nil {
		// Drafts generated before the failure are already persisted; the
		// caller retries and gets the remainder.
		h.sendAgentError(w, r, err)
		return
	}

	if messages == nil {
		messages = []*service.GeneratedMessage{}
	}
	render.JSON(w, r, messages)
}

// RunResponseHandler handles POST /api/agents/response-handler.
func (h *Handler) RunResponseHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAgentRequest(w, r)
	if !ok {
		return
	}
	opts, ok := h.agentOptions(w, r, req)
	if !ok {
		return
	}

	result, err := h.service.Agent.RunResponseHandler(r.Context(), opts, req.InvoiceID, req.CustomerMessage)
	if err != nil {
		h.sendAgentError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}
