package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks uiblocks/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection. A point with an
	// existing ID is overwritten (last write wins).
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search and returns up to k results
	// ordered by descending score. An empty collection yields an empty
	// slice, not an error.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// CollectionExists checks if a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// EnsureCollection ensures a collection exists with the specified vector size.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error
}
