package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Structural schemas for persisted documents. Dynamic JSON loaded from disk
// is validated before use; anything that fails the shape or version check is
// reset to empty rather than trusted.

var memoryDocSchema = map[string]any{
	"type":     "object",
	"required": []any{"schemaVersion"},
	"properties": map[string]any{
		"schemaVersion": map[string]any{"type": "integer", "const": float64(SchemaVersion)},
		"preferences": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"value", "confidence", "updatedAtMs"},
				"properties": map[string]any{
					"value":       map[string]any{"type": "string"},
					"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"updatedAtMs": map[string]any{"type": "integer"},
					"reason":      map[string]any{"type": "string"},
				},
			},
		},
		"concepts": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"conceptId", "totalAttempts", "difficultyScore"},
			},
		},
		"evidence": map[string]any{
			"type":     "array",
			"maxItems": float64(MaxEvidenceEvents),
		},
		"topReasons":  map[string]any{"type": "array"},
		"updatedAtMs": map[string]any{"type": "integer"},
	},
}

var explicitPrefsSchema = map[string]any{
	"type":     "object",
	"required": []any{"schemaVersion"},
	"properties": map[string]any{
		"schemaVersion":           map[string]any{"type": "integer", "const": float64(SchemaVersion)},
		"disabledPersonalization": map[string]any{"type": "boolean"},
		"pace":                    map[string]any{"enum": []any{"slow", "steady", "fast"}},
		"verbosity":               map[string]any{"enum": []any{"concise", "balanced", "detailed"}},
		"modality":                map[string]any{"enum": []any{"visual", "verbal", "mixed"}},
		"teachingStyle":           map[string]any{"enum": []any{"guided", "socratic", "visual", "concise"}},
		"explainEveryStep":        map[string]any{"type": "boolean"},
		"updatedAtMs":             map[string]any{"type": "integer"},
	},
}

var (
	compileOnce sync.Once
	compiledMem *jsonschema.Schema
	compiledPre *jsonschema.Schema
	compileErr  error
)

func compiledSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledMem, compileErr = compileSchema("student-memory", memoryDocSchema)
		if compileErr != nil {
			return
		}
		compiledPre, compileErr = compileSchema("explicit-preferences", explicitPrefsSchema)
	})
	return compiledMem, compiledPre, compileErr
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(defBytes, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}

// LoadDoc parses and validates a persisted memory document. A missing,
// malformed or version-mismatched document yields a fresh empty one —
// never an error the caller has to handle.
func LoadDoc(raw []byte) *StudentMemoryDoc {
	if len(raw) == 0 {
		return NewDoc()
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return NewDoc()
	}
	memSchema, _, err := compiledSchemas()
	if err != nil || memSchema.Validate(parsed) != nil {
		return NewDoc()
	}

	var doc StudentMemoryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return NewDoc()
	}
	if doc.Preferences == nil {
		doc.Preferences = make(map[string]PreferenceEstimate)
	}
	if doc.Concepts == nil {
		doc.Concepts = make(map[string]*ConceptStats)
	}
	return &doc
}

// LoadPreferences parses and validates persisted explicit preferences.
// Returns nil (no explicit preferences) on any mismatch.
func LoadPreferences(raw []byte) *ExplicitPreferences {
	if len(raw) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	_, prefSchema, err := compiledSchemas()
	if err != nil || prefSchema.Validate(parsed) != nil {
		return nil
	}

	var prefs ExplicitPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil
	}
	return &prefs
}
