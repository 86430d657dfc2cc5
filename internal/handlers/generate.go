package handlers

import (
	"encoding/json"
	"net/http"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/resolver"
)

// GenerateHandler handles HTTP requests for template resolution.
type GenerateHandler struct {
	resolver resolver.Resolver
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(r resolver.Resolver) *GenerateHandler {
	return &GenerateHandler{resolver: r}
}

// GenerateRequest represents the HTTP request payload for template resolution.
type GenerateRequest struct {
	Command string `json:"command"`
}

// GenerateResponse represents the HTTP response payload for template resolution.
type GenerateResponse struct {
	HTML       string `json:"html"`
	TemplateID string `json:"template_id"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ServeHTTP resolves a natural-language UI command into markup, either from
// the template cache or by generating and persisting a new template.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Command == "" {
		logger.WarnContext(ctx, "empty command in request")
		writeError(w, http.StatusBadRequest, "Command is required")
		return
	}

	res, err := h.resolver.Resolve(ctx, req.Command)
	if err != nil {
		logger.ErrorContext(ctx, "resolution failed", "error", err)
		// Any pipeline failure surfaces as one opaque 500; no partial
		// state reaches the caller.
		writeError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		HTML:       res.HTML,
		TemplateID: res.TemplateID,
	})
}

// writeError writes an error response with a human-readable detail message.
func writeError(w http.ResponseWriter, statusCode int, detail string) {
	writeJSON(w, statusCode, ErrorResponse{Detail: detail})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
