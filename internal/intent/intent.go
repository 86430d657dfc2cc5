// Package intent turns a free-text UI command into a structured intent
// record using the text-generation service, treating the service's output
// as untrusted input behind a strict validation boundary.
package intent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned when the text-generation output cannot be parsed as
// a complete intent (malformed JSON, missing keys, or wrong shapes).
var ErrParse = errors.New("intent parse failure")

// Intent is the structured extraction of a user's UI request. All four
// fields are guaranteed present after a successful Extract; Fields may be
// empty but never nil.
type Intent struct {
	Component string   `json:"component"`
	Fields    []string `json:"fields"`
	Purpose   string   `json:"purpose"`
	Style     string   `json:"style"`
}

// QueryText is the textual projection of the intent that gets embedded for
// similarity search. The field order is fixed so the projection is
// reproducible across calls.
func (in Intent) QueryText() string {
	return in.Component + " " + in.Purpose + " " + strings.Join(in.Fields, ",")
}

// DerivedKey is the deterministic string used to approximate duplicate
// detection at the index layer. Two structurally identical intents map to
// the same key, so repeated inserts overwrite rather than accumulate.
func (in Intent) DerivedKey() string {
	return fmt.Sprintf("%s_%s_%d", in.Component, in.Purpose, len(in.Fields))
}

// coerceField converts a decoded JSON array element to a string. Models
// occasionally emit numbers or booleans where field names belong.
func coerceField(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("field element has unsupported type %T", v)
	}
}
