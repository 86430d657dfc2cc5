package resolver

import "errors"

// Sentinel errors for the index and store boundaries. Parse and upstream
// failures carry their own sentinels at the package that owns the boundary
// (intent.ErrParse, llm.ErrUpstream); these cover the persistence side.
var (
	// ErrIndex is returned when the similarity index is unreachable or
	// rejects an operation on the request path.
	ErrIndex = errors.New("template index error")
	// ErrStore is returned when the document store is unreachable or
	// rejects a write.
	ErrStore = errors.New("template store error")
)
