package handlers

import (
	"context"
	"net/http"
	"time"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/vectorstore"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	vectorStore        vectorstore.VectorStore
	collectionName     string
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(vectorStore vectorstore.VectorStore, collectionName string) *HealthHandler {
	return &HealthHandler{
		vectorStore:        vectorStore,
		collectionName:     collectionName,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "ok" or "degraded"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks,omitempty"`
}

// ServeHTTP reports whether the service and its index are reachable.
// The store and the text-generation service are deliberately not probed
// here; the index is the dependency that silently degrades.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	status := "ok"
	httpStatus := http.StatusOK

	if h.vectorStore != nil {
		exists, err := h.vectorStore.CollectionExists(checkCtx, h.collectionName)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "vector store health check failed", "error", err)
			checks["vector_store"] = "error"
		case !exists:
			logger.WarnContext(ctx, "vector store collection missing", "collection", h.collectionName)
			checks["vector_store"] = "missing_collection"
		default:
			checks["vector_store"] = "ok"
		}
		if checks["vector_store"] != "ok" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}
