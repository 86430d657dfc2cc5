package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"uiblocks/internal/handlers"
	"uiblocks/internal/resolver"
	"uiblocks/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Resolver       resolver.Resolver
	VectorStore    vectorstore.VectorStore
	CollectionName string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and request logger middleware
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	generateHandler := handlers.NewGenerateHandler(deps.Resolver)
	saveHandler := handlers.NewSaveHandler(deps.Resolver)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)

	r.Method(http.MethodPost, "/generate-ui", generateHandler)
	r.Method(http.MethodPost, "/save-ui", saveHandler)
	r.Method(http.MethodGet, "/healthz", healthHandler)

	return r
}
