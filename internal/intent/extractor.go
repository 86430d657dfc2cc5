package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"uiblocks/internal/contextutil"
	"uiblocks/internal/llm"
	"uiblocks/internal/markup"
)

// extractPromptFormat embeds the raw command and asks for JSON-only output.
// The example pins the expected shape; without it smaller models drift into
// prose answers.
const extractPromptFormat = `Extract the structured intent from: "%s"

Respond with a valid JSON object ONLY with the following keys:
- component: string
- fields: array of strings
- purpose: string
- style: string

Only return valid JSON. Do NOT include markdown or explanation.
Example:
{
  "component": "form",
  "fields": ["name", "email", "message"],
  "purpose": "contact form",
  "style": "modern"
}`

// Extractor converts raw commands into Intent values.
type Extractor struct {
	generator llm.Generator
}

// NewExtractor creates a new Extractor backed by the given generator.
func NewExtractor(generator llm.Generator) *Extractor {
	return &Extractor{generator: generator}
}

// Extract invokes the text-generation service once with a fixed instruction
// prompt and parses the reply. The service call is not retried; a reply that
// is not a complete intent after code-fence stripping fails with ErrParse.
func (e *Extractor) Extract(ctx context.Context, command string) (Intent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	prompt := fmt.Sprintf(extractPromptFormat, command)
	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return Intent{}, fmt.Errorf("intent extraction call failed: %w", err)
	}
	logger.DebugContext(ctx, "intent extraction raw output", "output", raw)

	cleaned := markup.StripFences(raw)
	in, err := Parse(cleaned)
	if err != nil {
		logger.WarnContext(ctx, "intent output rejected", "error", err)
		return Intent{}, err
	}

	logger.InfoContext(ctx, "intent extracted",
		"component", in.Component,
		"purpose", in.Purpose,
		"fields", len(in.Fields),
	)
	return in, nil
}

// Parse validates a JSON document against the intent shape. All four keys
// must be present: component non-empty, purpose and style strings, fields an
// array whose elements coerce to strings (null is accepted as empty). Any
// deviation is an ErrParse, never a partial intent.
func Parse(s string) (Intent, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return Intent{}, fmt.Errorf("%w: invalid JSON: %v", ErrParse, err)
	}

	for _, key := range []string{"component", "fields", "purpose", "style"} {
		if _, ok := doc[key]; !ok {
			return Intent{}, fmt.Errorf("%w: missing key %q", ErrParse, key)
		}
	}

	var in Intent
	if err := json.Unmarshal(doc["component"], &in.Component); err != nil {
		return Intent{}, fmt.Errorf("%w: component is not a string", ErrParse)
	}
	if in.Component == "" {
		return Intent{}, fmt.Errorf("%w: component is empty", ErrParse)
	}
	if err := json.Unmarshal(doc["purpose"], &in.Purpose); err != nil {
		return Intent{}, fmt.Errorf("%w: purpose is not a string", ErrParse)
	}
	if err := json.Unmarshal(doc["style"], &in.Style); err != nil {
		return Intent{}, fmt.Errorf("%w: style is not a string", ErrParse)
	}

	var rawFields []any
	if err := json.Unmarshal(doc["fields"], &rawFields); err != nil {
		return Intent{}, fmt.Errorf("%w: fields is not an array", ErrParse)
	}
	in.Fields = make([]string, 0, len(rawFields))
	for _, rf := range rawFields {
		f, err := coerceField(rf)
		if err != nil {
			return Intent{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		in.Fields = append(in.Fields, f)
	}

	return in, nil
}
