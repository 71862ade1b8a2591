package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"

	"github.com/paymind/paymind-server/internal/service"
)

// SettingsResponse is the provider catalog with per-provider configuration
// state. API keys themselves are never returned.
type SettingsResponse struct {
	Providers []service.ProviderSettings `json:"providers"`
}

// ValidateKeyRequest carries one provider/key pair to check.
type ValidateKeyRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

// ValidateKeyResponse reports the outcome of a key check. Validation failures
// are a 200 with Valid false, not an error status.
type ValidateKeyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SettingsResponse{
		Providers: h.service.Settings.ListProviders(r.Context()),
	})
}

// ValidateKey handles POST /api/settings. The check performs one minimal
// generation call against the provider with the submitted key.
func (h *Handler) ValidateKey(w http.ResponseWriter, r *http.Request) {
	var req ValidateKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "Invalid JSON request body")
		return
	}

	if req.Provider == "" || req.APIKey == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeValidation, "provider and apiKey are required")
		return
	}

	valid, message := h.service.Settings.ValidateKey(r.Context(), req.Provider, req.APIKey)
	resp := ValidateKeyResponse{Valid: valid}
	if !valid {
		resp.Error = message
	}
	render.JSON(w, r, resp)
}
