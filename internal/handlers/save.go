package handlers

import (
	"encoding/json"
	"net/http"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/resolver"
)

// SaveHandler handles HTTP requests that persist user-modified templates.
type SaveHandler struct {
	resolver resolver.Resolver
}

// NewSaveHandler creates a new SaveHandler.
func NewSaveHandler(r resolver.Resolver) *SaveHandler {
	return &SaveHandler{resolver: r}
}

// SaveRequest represents the HTTP request payload for saving a user edit.
type SaveRequest struct {
	HTML             string `json:"html"`
	ParentTemplateID string `json:"parent_template_id"`
	User             string `json:"user"`
}

// SaveResponse represents the HTTP response payload for saving a user edit.
type SaveResponse struct {
	Message    string `json:"message"`
	TemplateID string `json:"template_id"`
}

// ServeHTTP stores a user-modified template linked to its parent template.
func (h *SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.HTML == "" {
		logger.WarnContext(ctx, "empty html in save request")
		writeError(w, http.StatusBadRequest, "HTML is required")
		return
	}

	templateID, err := h.resolver.SaveUserEdit(ctx, req.HTML, req.ParentTemplateID, req.User)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save user template", "error", err)
		writeError(w, http.StatusInternalServerError, "Error saving template: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SaveResponse{
		Message:    "Template saved successfully",
		TemplateID: templateID,
	})
}
