package response

import (
	"encoding/json"
	"fmt"

	"library-ai-gateway/internal/agent/sanitize"
	"library-ai-gateway/internal/model"
)

// requiredKeys must be present on every element of a recommendation array.
var requiredKeys = []string{"book_id", "reason", "score"}

// ParseError reports model output that could not be turned into a
// recommendation list: fence residue, invalid JSON, or a shape violation.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse recommendations: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse recommendations: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse sanitizes raw model output and decodes it into a recommendation
// list. The decoded value must be a JSON array whose elements all carry
// book_id, reason and score; a single bad element fails the whole list.
// Score values are passed through without range checking.
func Parse(raw string) ([]model.RecommendationItem, error) {
	cleaned := sanitize.JSON(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}

	list, ok := decoded.([]any)
	if !ok {
		return nil, &ParseError{Reason: "top-level value is not an array"}
	}

	for i, elem := range list {
		obj, ok := elem.(map[string]any)
		if !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("element %d is not an object", i)}
		}
		for _, key := range requiredKeys {
			if _, present := obj[key]; !present {
				return nil, &ParseError{Reason: fmt.Sprintf("element %d is missing %q", i, key)}
			}
		}
	}

	var items []model.RecommendationItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, &ParseError{Reason: "field type mismatch", Err: err}
	}
	return items, nil
}
