// Package resolver implements the semantic template resolution pipeline:
// extract a structured intent from the command, look for a semantically
// equivalent cached template, and on a miss synthesize, persist and index a
// new one.
package resolver

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_resolver.go -package=mocks uiblocks/internal/resolver Resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/index"
	"uiblocks/internal/intent"
	"uiblocks/internal/llm"
	"uiblocks/internal/markup"
	"uiblocks/internal/storage"
)

// Resolution is the complete answer to a resolve request. There is no
// partial form: callers get either all of this or an error.
type Resolution struct {
	HTML       string
	TemplateID string
	// CacheHit reports whether the template came from the index rather
	// than fresh generation. Kept out of the HTTP response; used for
	// logging and tests.
	CacheHit bool
}

// Resolver answers natural-language UI commands and records user edits.
type Resolver interface {
	// Resolve runs the full pipeline for one command.
	Resolve(ctx context.Context, command string) (Resolution, error)
	// SaveUserEdit persists a user-modified template linked to its parent
	// and returns the new template ID. The parent ID is stored as given,
	// not validated. The similarity index is not touched.
	SaveUserEdit(ctx context.Context, html, parentTemplateID, user string) (string, error)
}

// IntentExtractor is the slice of the intent package the engine needs.
type IntentExtractor interface {
	Extract(ctx context.Context, command string) (intent.Intent, error)
}

// HitGate decides whether the nearest index entry counts as a reusable
// cache hit for the given intent.
type HitGate func(in intent.Intent, m index.Match) bool

// ComponentGate is the default hit gate: the match must belong to the same
// component family, compared with exact case-sensitive string equality.
// Similarity score alone is never sufficient; near neighbors from another
// component family must not be served. Purpose, style and fields are
// deliberately not part of the gate, which can over-match within a
// component family.
func ComponentGate(in intent.Intent, m index.Match) bool {
	return m.Component == in.Component
}

// Engine implements Resolver. All collaborators are injected at
// construction, built once at process start and reused across requests;
// the engine itself holds no per-request mutable state.
type Engine struct {
	extractor     IntentExtractor
	embedder      llm.Embedder
	index         *index.TemplateIndex
	templates     storage.TemplateStore
	userTemplates storage.UserTemplateStore
	generator     llm.Generator
	hitGate       HitGate
}

// Option configures an Engine.
type Option func(*Engine)

// WithHitGate replaces the default component-equality hit gate.
func WithHitGate(g HitGate) Option {
	return func(e *Engine) {
		e.hitGate = g
	}
}

// New creates a resolution engine.
func New(
	extractor IntentExtractor,
	embedder llm.Embedder,
	idx *index.TemplateIndex,
	templates storage.TemplateStore,
	userTemplates storage.UserTemplateStore,
	generator llm.Generator,
	opts ...Option,
) *Engine {
	e := &Engine{
		extractor:     extractor,
		embedder:      embedder,
		index:         idx,
		templates:     templates,
		userTemplates: userTemplates,
		generator:     generator,
		hitGate:       ComponentGate,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve runs extract, embed, search, and either returns the cached
// template or falls back to generate-and-persist. Steps run strictly
// sequentially; any failure before the store write aborts the request with
// no partial state exposed. Two concurrent calls with the same intent may
// both miss and both generate; the derived index key makes the second index
// write overwrite the first, while the store keeps both rows. That race is
// accepted rather than locked away.
func (e *Engine) Resolve(ctx context.Context, command string) (Resolution, error) {
	logger := contextutil.LoggerFromContext(ctx)

	in, err := e.extractor.Extract(ctx, command)
	if err != nil {
		return Resolution{}, err
	}

	vec, err := e.embedder.Embed(ctx, in.QueryText())
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to embed query: %w", err)
	}

	match, err := e.index.Query(ctx, vec)
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: %w", ErrIndex, err)
	}

	if match != nil && e.hitGate(in, *match) {
		logger.InfoContext(ctx, "template cache hit",
			"component", in.Component,
			"template_id", match.TemplateID,
			"score", match.Score,
		)
		templateID := match.TemplateID
		if templateID == "" {
			// Legacy entries indexed without an ID still serve their HTML.
			templateID = uuid.New().String()
		}
		return Resolution{HTML: match.HTML, TemplateID: templateID, CacheHit: true}, nil
	}

	logger.InfoContext(ctx, "template cache miss", "component", in.Component, "purpose", in.Purpose)

	raw, err := e.generator.Generate(ctx, buildGenerationPrompt(in))
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to generate markup: %w", err)
	}
	logger.DebugContext(ctx, "generation raw output", "output", raw)

	html := markup.StripFences(raw)

	rec := &storage.TemplateRecord{
		TemplateID: uuid.New().String(),
		Component:  in.Component,
		Fields:     strings.Join(in.Fields, ", "),
		Purpose:    in.Purpose,
		Style:      in.Style,
		HTML:       html,
		Source:     storage.SourceGenerated,
	}

	// The primitive-serialization boundary: prove the record flattens to
	// plain strings before anything durable happens.
	if _, err := rec.Primitives(); err != nil {
		return Resolution{}, err
	}

	// Store write first: it is authoritative, and a crash after it leaves
	// no dangling index entry without a backing record.
	if err := e.templates.Insert(ctx, rec); err != nil {
		return Resolution{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	// The index is a derived cache, so a failed write here is logged and
	// swallowed rather than failing a request whose record is already safe.
	if err := e.index.Insert(ctx, vec, rec, in.DerivedKey()); err != nil {
		logger.ErrorContext(ctx, "index write failed after store write",
			"template_id", rec.TemplateID,
			"key", in.DerivedKey(),
			"error", err,
		)
	}

	logger.InfoContext(ctx, "template generated and persisted",
		"component", in.Component,
		"template_id", rec.TemplateID,
	)
	return Resolution{HTML: html, TemplateID: rec.TemplateID, CacheHit: false}, nil
}

// SaveUserEdit records a user-modified template. Always a fresh record with
// a fresh ID; no matching or generation is involved.
func (e *Engine) SaveUserEdit(ctx context.Context, html, parentTemplateID, user string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rec := &storage.UserTemplateRecord{
		TemplateID:       uuid.New().String(),
		ParentTemplateID: parentTemplateID,
		User:             user,
		HTML:             html,
		Source:           storage.SourceUserModified,
	}

	if err := e.userTemplates.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStore, err)
	}

	logger.InfoContext(ctx, "user template saved",
		"template_id", rec.TemplateID,
		"parent_template_id", parentTemplateID,
		"user", user,
	)
	return rec.TemplateID, nil
}

// buildGenerationPrompt asks for raw markup for the extracted intent.
func buildGenerationPrompt(in intent.Intent) string {
	return fmt.Sprintf(
		"Generate a responsive %s for %s purpose, using %s CSS. Fields: %s.\nReturn only raw HTML. Do NOT include markdown or explanation.",
		in.Component, in.Purpose, in.Style, strings.Join(in.Fields, ", "),
	)
}

var _ Resolver = (*Engine)(nil)
