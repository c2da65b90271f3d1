package common

import (
	"encoding/json"
	"fmt"
)

// ParseJSON extracts and unmarshals the first JSON object embedded in an
// LLM response, tolerating surrounding markdown fences or prose.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := -1
	end := -1
	for i, c := range response {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(response) - 1; i >= 0; i-- {
		if response[i] == '}' {
			end = i + 1
			break
		}
	}

	if start == -1 || end == -1 || start >= end {
		return zero, fmt.Errorf("no JSON object found in response")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
