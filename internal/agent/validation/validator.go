// Package validation checks the shape of a caller-supplied chat context
// before it is used to build a prompt. A failed check is never fatal: the
// caller degrades to the default prompt instead of rejecting the request.
package validation

import "fmt"

// listFields must decode as JSON arrays when present.
var listFields = []string{"borrowHistory", "currentBorrowings", "availableBooks", "libraryRules"}

// objectFields must decode as JSON objects when present.
var objectFields = []string{"stats", "targetBook"}

// Context validates a decoded chat-context payload. It returns false and a
// message naming the first offending field; it does not aggregate errors.
func Context(raw any) (bool, string) {
	ctx, ok := raw.(map[string]any)
	if !ok {
		return false, "context must be an object"
	}

	hasData, present := ctx["hasData"]
	if !present {
		return false, "missing required field: hasData"
	}

	// Container shapes only matter when the payload claims to carry data.
	if truthy(hasData) {
		for _, field := range listFields {
			if v, present := ctx[field]; present {
				if _, isList := v.([]any); !isList {
					return false, fmt.Sprintf("%s must be a list", field)
				}
			}
		}
		for _, field := range objectFields {
			if v, present := ctx[field]; present {
				if _, isObject := v.(map[string]any); !isObject {
					return false, fmt.Sprintf("%s must be an object", field)
				}
			}
		}
	}

	return true, ""
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
