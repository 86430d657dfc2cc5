package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_template_store.go -package=mocks uiblocks/internal/storage TemplateStore,UserTemplateStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when inserting a record whose template_id
	// already exists.
	ErrDuplicateID = errors.New("template_id already exists")
)

// TemplateStore defines the interface for canonical template persistence.
// The store is the single authoritative owner of template records; the
// vector index only ever holds a derived copy.
type TemplateStore interface {
	// Insert persists a new record. The caller assigns TemplateID before
	// calling; a duplicate ID fails with ErrDuplicateID.
	Insert(ctx context.Context, rec *TemplateRecord) error
	// GetByID fetches a record by template_id.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, templateID string) (*TemplateRecord, error)
}

// UserTemplateStore defines the interface for user-modified template persistence.
type UserTemplateStore interface {
	// Insert persists a new user-modified record.
	Insert(ctx context.Context, rec *UserTemplateRecord) error
	// GetByID fetches a record by template_id.
	// Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, templateID string) (*UserTemplateRecord, error)
}

// TemplateRepo provides methods for template record operations.
// It implements the TemplateStore interface.
type TemplateRepo struct {
	db *sql.DB
}

// NewTemplateRepo creates a new TemplateRepo.
func NewTemplateRepo(db *sql.DB) *TemplateRepo {
	return &TemplateRepo{db: db}
}

// Insert persists a new template record.
func (r *TemplateRepo) Insert(ctx context.Context, rec *TemplateRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO templates (template_id, component, fields, purpose, style, html, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.TemplateID, rec.Component, rec.Fields, rec.Purpose, rec.Style, rec.HTML, rec.Source,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.TemplateID)
		}
		return fmt.Errorf("failed to insert template: %w", err)
	}
	return nil
}

// GetByID fetches a template record by template_id.
func (r *TemplateRepo) GetByID(ctx context.Context, templateID string) (*TemplateRecord, error) {
	var rec TemplateRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT template_id, component, fields, purpose, style, html, source, created_at
		 FROM templates WHERE template_id = ?`,
		templateID,
	).Scan(&rec.TemplateID, &rec.Component, &rec.Fields, &rec.Purpose, &rec.Style, &rec.HTML, &rec.Source, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query template: %w", err)
	}

	rec.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// UserTemplateRepo provides methods for user-modified template operations.
// It implements the UserTemplateStore interface.
type UserTemplateRepo struct {
	db *sql.DB
}

// NewUserTemplateRepo creates a new UserTemplateRepo.
func NewUserTemplateRepo(db *sql.DB) *UserTemplateRepo {
	return &UserTemplateRepo{db: db}
}

// Insert persists a new user-modified template record.
func (r *UserTemplateRepo) Insert(ctx context.Context, rec *UserTemplateRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_templates (template_id, parent_template_id, user_name, html, source)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.TemplateID, rec.ParentTemplateID, rec.User, rec.HTML, rec.Source,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.TemplateID)
		}
		return fmt.Errorf("failed to insert user template: %w", err)
	}
	return nil
}

// GetByID fetches a user-modified template record by template_id.
func (r *UserTemplateRepo) GetByID(ctx context.Context, templateID string) (*UserTemplateRecord, error) {
	var rec UserTemplateRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT template_id, parent_template_id, user_name, html, source, created_at
		 FROM user_templates WHERE template_id = ?`,
		templateID,
	).Scan(&rec.TemplateID, &rec.ParentTemplateID, &rec.User, &rec.HTML, &rec.Source, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user template: %w", err)
	}

	rec.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// parseTimestamp parses a SQLite DATETIME column value.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// SQLite might use a different format depending on how the value was written
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return t, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
