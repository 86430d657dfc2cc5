package storage

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Template sources.
const (
	SourceGenerated    = "generated"
	SourceUserModified = "user_modified"
)

// ErrSerialization is returned when a record value cannot be reduced to a
// plain string before persistence.
var ErrSerialization = errors.New("record value is not serializable")

// TemplateRecord is the canonical persisted form of a synthesized template.
// Records are created once and never mutated.
type TemplateRecord struct {
	TemplateID string // UUID, assigned at creation
	Component  string
	Fields     string // serialized field list, comma-joined
	Purpose    string
	Style      string
	HTML       string // sanitized markup, free of code fences
	Source     string // SourceGenerated for records created by the pipeline
	CreatedAt  time.Time
}

// UserTemplateRecord is a user-modified template linked to its parent by ID.
// The parent reference is a lineage back-link only; it is not validated
// against the templates table and the parent may be removed independently.
type UserTemplateRecord struct {
	TemplateID       string // UUID, assigned at creation
	ParentTemplateID string
	User             string
	HTML             string
	Source           string // always SourceUserModified
	CreatedAt        time.Time
}

// Primitives flattens the record into a map of plain strings for layers that
// persist free-form metadata (the vector index payload). Using Flatten here
// keeps store-specific identifier types from leaking across layers.
func (r *TemplateRecord) Primitives() (map[string]string, error) {
	return Flatten(map[string]any{
		"template_id": r.TemplateID,
		"component":   r.Component,
		"fields":      r.Fields,
		"purpose":     r.Purpose,
		"style":       r.Style,
		"html":        r.HTML,
		"source":      r.Source,
	})
}

// Flatten converts every value in m to its string form. Strings pass through;
// integers, floats, booleans and fmt.Stringer implementations (e.g. UUID
// types) are converted. Any other type fails with ErrSerialization.
func Flatten(m map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, err := flattenValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrSerialization, k, err)
		}
		out[k] = s
	}
	return out, nil
}

func flattenValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}
