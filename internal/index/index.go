// Package index wraps the vector store with template-specific query and
// insert operations. The index is a derived, rebuildable cache of the
// template store: entries may lag the store transiently, and a lost entry
// only costs a regeneration.
package index

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/storage"
	"uiblocks/internal/vectorstore"
)

// indexNamespace seeds the name-based UUIDs used as point IDs. Changing it
// would orphan every existing point.
var indexNamespace = uuid.MustParse("8f3c1e62-41d7-4f60-9a2e-6f5b8a2d9c01")

// Match is the readback of the nearest stored entry: the similarity score
// plus the metadata persisted alongside the vector.
type Match struct {
	Score      float32
	TemplateID string
	Component  string
	Fields     string
	Purpose    string
	Style      string
	HTML       string
	Source     string
}

// TemplateIndex exposes query-for-match and insert-after-generation against
// one collection of the vector store.
type TemplateIndex struct {
	store      vectorstore.VectorStore
	collection string
}

// New creates a TemplateIndex over the given collection.
func New(store vectorstore.VectorStore, collection string) *TemplateIndex {
	return &TemplateIndex{store: store, collection: collection}
}

// Query returns the single nearest entry for the query vector, or nil when
// the index has nothing to offer. Deciding whether the match is good enough
// to reuse is the caller's hit-gate policy, not the index's.
func (i *TemplateIndex) Query(ctx context.Context, vec []float32) (*Match, error) {
	results, err := i.store.Search(ctx, i.collection, vec, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query template index: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	top := results[0]
	m := &Match{
		Score:      top.Score,
		TemplateID: metaString(top.Meta, "template_id"),
		Component:  metaString(top.Meta, "component"),
		Fields:     metaString(top.Meta, "fields"),
		Purpose:    metaString(top.Meta, "purpose"),
		Style:      metaString(top.Meta, "style"),
		HTML:       metaString(top.Meta, "html"),
		Source:     metaString(top.Meta, "source"),
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "index query result",
		"score", m.Score,
		"component", m.Component,
		"template_id", m.TemplateID,
	)
	return m, nil
}

// Insert stores the record's vector and metadata under a point ID derived
// from key. The same key always maps to the same point ID, so inserting a
// structurally identical intent overwrites the previous entry instead of
// accumulating near-duplicates (last write wins).
func (i *TemplateIndex) Insert(ctx context.Context, vec []float32, rec *storage.TemplateRecord, key string) error {
	meta, err := rec.Primitives()
	if err != nil {
		return err
	}

	payload := make(map[string]any, len(meta))
	for k, v := range meta {
		payload[k] = v
	}

	point := vectorstore.Point{
		ID:   PointID(key),
		Vec:  vec,
		Meta: payload,
	}
	if err := i.store.Upsert(ctx, i.collection, []vectorstore.Point{point}); err != nil {
		return fmt.Errorf("failed to insert index entry: %w", err)
	}
	return nil
}

// PointID maps a derived key to the deterministic UUID used as the vector
// store point ID. Qdrant point IDs must be UUIDs, so the raw
// component_purpose_fieldCount string cannot be used directly.
func PointID(key string) string {
	return uuid.NewSHA1(indexNamespace, []byte(key)).String()
}

// metaString reads a string field from search metadata, tolerating missing
// or differently typed values.
func metaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if v, ok := meta[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}
